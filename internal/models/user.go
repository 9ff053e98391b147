// Package models defines the persistent record types, the authenticated
// principal, and the application error taxonomy.
package models

import "time"

// Roles recognized by the platform. An admin owns exactly one club.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a regular member account. The password hash is part of the
// persisted record; API responses use Public().
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the client-facing shape of a user record.
type PublicUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the password hash for responses.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// Admin is a club administrator account. Admins live in their own
// collection; the same email may exist in both collections as distinct
// identities.
type Admin struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	ClubName  string    `json:"clubName"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicAdmin is the client-facing shape of an admin record.
type PublicAdmin struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ClubName  string    `json:"clubName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the password hash for responses.
func (a Admin) Public() PublicAdmin {
	return PublicAdmin{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		ClubName:  a.ClubName,
		CreatedAt: a.CreatedAt,
	}
}

// Principal is the identity embedded in a token and attached to a request.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Club is a directory entry derived from an admin record.
type Club struct {
	ID       string `json:"id"`
	ClubName string `json:"clubName"`
	Admin    string `json:"admin"`
	Email    string `json:"email"`
}
