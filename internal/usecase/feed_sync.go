package usecase

import (
	"context"
	"fmt"
	"sync"

	"snapfeed/pkg/logger"
	"snapfeed/pkg/models"
)

// FeedSync orchestrates the initial feed load: fetch the post collection, then
// refresh every post's comment count concurrently. The feed is ready once all
// count fetches have settled; an individual failure leaves that post's count
// at 0 and is logged, it never blocks the feed.
type FeedSync interface {
	Load(ctx context.Context, filter PostFilter) ([]models.Post, error)
}

type feedSync struct {
	store  PostStore
	cache  CommentCache
	logger *logger.Logger
}

func NewFeedSync(store PostStore, cache CommentCache, logger *logger.Logger) FeedSync {
	return &feedSync{
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

func (f *feedSync) Load(ctx context.Context, filter PostFilter) ([]models.Post, error) {
	posts, err := f.store.Load(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	var wg sync.WaitGroup
	for _, post := range posts {
		wg.Add(1)
		go func(postID string) {
			defer wg.Done()
			if _, err := f.cache.Refresh(ctx, postID); err != nil {
				f.logger.Warn("Failed to refresh comment count for post %s, leaving it at 0: %v", postID, err)
			}
		}(post.PostID)
	}
	wg.Wait()

	return posts, nil
}
