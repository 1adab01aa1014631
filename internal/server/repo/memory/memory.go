// Package memory is the default storage for the dev feed server: everything
// lives in process, which is all the seeder and the tests need.
package memory

import (
	"sync"

	"snapfeed/internal/server/repo"
	"snapfeed/pkg/models"

	"github.com/google/uuid"
)

type storage struct {
	mu       sync.RWMutex
	posts    []models.Post
	comments map[string][]models.Comment
}

func New() repo.Storage {
	return &storage{
		comments: make(map[string][]models.Comment),
	}
}

func (s *storage) ListPosts() ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out, nil
}

func (s *storage) CreatePost(req models.CreatePostRequest) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		PostID:          uuid.New().String(),
		UserID:          req.UserID,
		Post:            req.Post,
		Description:     req.Description,
		Tags:            req.Tags,
		Likes:           req.Likes,
		ImageBase64List: req.ImageBase64List,
		VideoBase64:     req.VideoBase64,
		Date:            req.Date,
	}
	s.posts = append(s.posts, post)
	return &post, nil
}

func (s *storage) UpdatePost(postID string, req models.UpdatePostRequest) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].PostID == postID {
			s.posts[i].Post = req.Post
			s.posts[i].Likes = req.Likes
			if req.ImageBase64 != nil {
				s.posts[i].ImageBase64List = []string{*req.ImageBase64}
				s.posts[i].VideoBase64 = nil
			}
			post := s.posts[i]
			return &post, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *storage) DeletePost(postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].PostID == postID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			delete(s.comments, postID)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (s *storage) LikePost(postID string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].PostID == postID {
			s.posts[i].Likes++
			post := s.posts[i]
			return &post, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *storage) ListCommentsByPost(postID string) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Comment, len(s.comments[postID]))
	copy(out, s.comments[postID])
	return out, nil
}

func (s *storage) CreateComment(req models.CreateCommentRequest) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.posts {
		if s.posts[i].PostID == req.PostID {
			found = true
			break
		}
	}
	if !found {
		return nil, repo.ErrNotFound
	}

	comment := models.Comment{
		CommentID:   uuid.New().String(),
		PostID:      req.PostID,
		CommentorID: req.CommentorID,
		Comment:     req.Comment,
		Likes:       req.Likes,
	}
	s.comments[req.PostID] = append(s.comments[req.PostID], comment)
	return &comment, nil
}
