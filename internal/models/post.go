package models

import "time"

// Coordinator is an embedded contact sub-record on a post.
type Coordinator struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Post is a club announcement published by an admin. AdminID identifies the
// owning admin; Image is an optional pre-encoded text blob passed through
// without validation.
type Post struct {
	ID           string        `json:"_id"`
	AdminID      string        `json:"adminID"`
	ClubName     string        `json:"clubName"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Coordinators []Coordinator `json:"coordinators"`
	Image        string        `json:"image,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt,omitempty"`
}

// PostPatch carries a partial update; nil fields leave the stored value
// untouched.
type PostPatch struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	Coordinators *[]Coordinator `json:"coordinators"`
	Image        *string        `json:"image"`
}
