package usecase

import (
	"context"
	"fmt"
	"sync"

	"snapfeed/internal/repo/remote"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/models"
)

// PostFilter decides which fetched posts enter the local collection. Filtering
// belongs to the call site, not the store: the home feed hides the viewer's
// own posts, the explore feed keeps everything.
type PostFilter func(models.Post) bool

// ExcludeUser filters out posts authored by the given user.
func ExcludeUser(userID string) PostFilter {
	return func(p models.Post) bool {
		return p.UserID != userID
	}
}

// PostStore holds the local post collection. Iteration order always equals
// server response order; no client-side sort is applied.
type PostStore interface {
	Load(ctx context.Context, filter PostFilter) ([]models.Post, error)
	Like(ctx context.Context, postID string) (*models.Post, error)
	Update(ctx context.Context, postID string, req models.UpdatePostRequest) (*models.Post, error)
	Remove(ctx context.Context, postID string) error
	Insert(post models.Post)
	Posts() []models.Post
	Get(postID string) (*models.Post, bool)
}

type postStore struct {
	api    remote.PostAPI
	logger *logger.Logger

	mu      sync.RWMutex
	posts   []models.Post
	likeSeq map[string]uint64
}

func NewPostStore(api remote.PostAPI, logger *logger.Logger) PostStore {
	return &postStore{
		api:     api,
		logger:  logger,
		likeSeq: make(map[string]uint64),
	}
}

// Load replaces the collection with the server-reported set, in server order.
func (s *postStore) Load(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	fetched, err := s.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	posts := make([]models.Post, 0, len(fetched))
	for _, p := range fetched {
		if filter == nil || filter(p) {
			posts = append(posts, p)
		}
	}

	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()

	return s.Posts(), nil
}

// Like sends the mutation and reconciles the local likes field to the
// server-returned value rather than incrementing locally. Responses to
// overlapping likes on the same post are sequenced: only the response
// belonging to the latest issued request is applied.
func (s *postStore) Like(ctx context.Context, postID string) (*models.Post, error) {
	s.mu.Lock()
	s.likeSeq[postID]++
	my := s.likeSeq[postID]
	s.mu.Unlock()

	updated, err := s.api.Like(ctx, postID)
	if err != nil {
		s.logger.Error("Failed to like post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to like post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.likeSeq[postID] != my {
		s.logger.Warn("Discarding stale like response for post %s", postID)
		return updated, nil
	}
	for i := range s.posts {
		if s.posts[i].PostID == postID {
			s.posts[i].Likes = updated.Likes
			break
		}
	}
	return updated, nil
}

// Update edits a post's title, likes and single image through the server, then
// reconciles the local entry with the returned value.
func (s *postStore) Update(ctx context.Context, postID string, req models.UpdatePostRequest) (*models.Post, error) {
	updated, err := s.api.Update(ctx, postID, req)
	if err != nil {
		s.logger.Error("Failed to update post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].PostID == postID {
			s.posts[i] = *updated
			break
		}
	}
	return updated, nil
}

// Remove deletes the post remotely first; the local entry goes away only once
// the server has confirmed, so a failed delete leaves the collection intact.
func (s *postStore) Remove(ctx context.Context, postID string) error {
	if err := s.api.Delete(ctx, postID); err != nil {
		s.logger.Error("Failed to delete post %s: %v", postID, err)
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].PostID == postID {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}
	return nil
}

func (s *postStore) Insert(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append(s.posts, post)
}

func (s *postStore) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *postStore) Get(postID string) (*models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.PostID == postID {
			post := p
			return &post, true
		}
	}
	return nil, false
}
