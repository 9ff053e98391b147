package store

import (
	"log/slog"
	"path/filepath"

	"clubverse/internal/models"
)

// Collections bundles every durable collection the service owns, one
// backing file per entity kind under the data directory.
type Collections struct {
	Users    *Collection[models.User]
	Admins   *Collection[models.Admin]
	Posts    *Collection[models.Post]
	Likes    *Collection[models.Engagement]
	Saves    *Collection[models.Engagement]
	Comments *Collection[models.Comment]
}

// Open creates and loads all collections from dataDir. Corrupt files are
// logged and start empty; only filesystem-level failures (unreadable
// directory) abort startup.
func Open(dataDir string, logger *slog.Logger) (*Collections, error) {
	c := &Collections{
		Users:    New[models.User]("users", filepath.Join(dataDir, "users.json"), logger),
		Admins:   New[models.Admin]("admins", filepath.Join(dataDir, "admins.json"), logger),
		Posts:    New[models.Post]("posts", filepath.Join(dataDir, "posts.json"), logger),
		Likes:    New[models.Engagement]("likes", filepath.Join(dataDir, "likes.json"), logger),
		Saves:    New[models.Engagement]("saves", filepath.Join(dataDir, "saves.json"), logger),
		Comments: New[models.Comment]("comments", filepath.Join(dataDir, "comments.json"), logger),
	}

	for _, load := range []func() error{
		c.Users.Load,
		c.Admins.Load,
		c.Posts.Load,
		c.Likes.Load,
		c.Saves.Load,
		c.Comments.Load,
	} {
		if err := load(); err != nil {
			return nil, err
		}
	}
	return c, nil
}
