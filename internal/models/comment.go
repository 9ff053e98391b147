package models

import "time"

// Comment is a user comment on a post. Only the authoring user may delete it.
type Comment struct {
	CommentID string    `json:"commentId"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentView is the client-facing comment shape.
type CommentView struct {
	ID     string    `json:"_id"`
	UserID string    `json:"userId"`
	Name   string    `json:"name"`
	Text   string    `json:"comment"`
	Date   time.Time `json:"date"`
}

// View converts a stored comment into its client-facing shape.
func (c Comment) View() CommentView {
	return CommentView{
		ID:     c.CommentID,
		UserID: c.UserID,
		Name:   c.UserName,
		Text:   c.Text,
		Date:   c.CreatedAt,
	}
}
