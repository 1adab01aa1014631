package usecase

import (
	"context"
	"fmt"
	"sync"

	"snapfeed/internal/repo/remote"
	"snapfeed/pkg/logger"
)

// CommentCache keeps a per-post comment count derived from the authoritative
// comment list. Every change to a post's count bumps its refresh epoch, a
// monotonically increasing fence: anything rendering the count re-reads when
// the epoch it last saw is lower than the current one, so the count badge and
// the comment list move in the same logical step.
type CommentCache interface {
	CountFor(postID string) int
	Epoch(postID string) int
	Refresh(ctx context.Context, postID string) (int, error)
	NoteCommentAdded(postID string)
}

type commentEntry struct {
	count int
	epoch int
}

type commentCache struct {
	api    remote.CommentAPI
	logger *logger.Logger

	mu      sync.RWMutex
	entries map[string]commentEntry
}

func NewCommentCache(api remote.CommentAPI, logger *logger.Logger) CommentCache {
	return &commentCache{
		api:     api,
		logger:  logger,
		entries: make(map[string]commentEntry),
	}
}

// CountFor returns the last-known count, 0 for posts never refreshed.
func (c *commentCache) CountFor(postID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[postID].count
}

func (c *commentCache) Epoch(postID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[postID].epoch
}

// Refresh fetches the post's full comment list and stores its length. The
// count is always re-derived from the list, never tracked server-side.
func (c *commentCache) Refresh(ctx context.Context, postID string) (int, error) {
	comments, err := c.api.ListByPost(ctx, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch comments for post %s: %w", postID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry := c.entries[postID]
	entry.count = len(comments)
	entry.epoch++
	c.entries[postID] = entry
	return entry.count, nil
}

// NoteCommentAdded applies the optimistic +1 right after a successful comment
// submission, without waiting for a refresh round-trip.
func (c *commentCache) NoteCommentAdded(postID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry := c.entries[postID]
	entry.count++
	entry.epoch++
	c.entries[postID] = entry
}
