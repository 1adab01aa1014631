// Package repo defines the storage contract behind the feed API server.
package repo

import (
	"errors"

	"snapfeed/pkg/models"
)

var ErrNotFound = errors.New("record not found")

// Storage persists posts and comments for the dev feed server. Implementations
// must return posts in insertion order, since the client relies on server
// response order.
type Storage interface {
	ListPosts() ([]models.Post, error)
	CreatePost(req models.CreatePostRequest) (*models.Post, error)
	UpdatePost(postID string, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(postID string) error
	LikePost(postID string) (*models.Post, error)
	ListCommentsByPost(postID string) ([]models.Comment, error)
	CreateComment(req models.CreateCommentRequest) (*models.Comment, error)
}
