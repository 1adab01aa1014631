package usecase

import (
	"context"
	"errors"
	"testing"

	"snapfeed/pkg/logger"
	"snapfeed/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newFeedSyncFixture(postAPI *MockPostAPI, commentAPI *MockCommentAPI) FeedSync {
	log := logger.New()
	return NewFeedSync(NewPostStore(postAPI, log), NewCommentCache(commentAPI, log), log)
}

func TestFeedSyncLoad_PopulatesCounts(t *testing.T) {
	postAPI := new(MockPostAPI)
	commentAPI := new(MockCommentAPI)
	log := logger.New()
	store := NewPostStore(postAPI, log)
	cache := NewCommentCache(commentAPI, log)
	sync := NewFeedSync(store, cache, log)

	postAPI.On("List", mock.Anything).Return(feedOf("p1", "p2"), nil)
	commentAPI.On("ListByPost", mock.Anything, "p1").Return([]models.Comment{}, nil)
	commentAPI.On("ListByPost", mock.Anything, "p2").Return([]models.Comment{}, nil)

	posts, err := sync.Load(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	// Both counts settled at 0 regardless of which fetch resolved first.
	assert.Equal(t, 0, cache.CountFor("p1"))
	assert.Equal(t, 0, cache.CountFor("p2"))
	assert.Equal(t, 1, cache.Epoch("p1"))
	assert.Equal(t, 1, cache.Epoch("p2"))
	commentAPI.AssertExpectations(t)
}

func TestFeedSyncLoad_CountFailureDoesNotBlockFeed(t *testing.T) {
	postAPI := new(MockPostAPI)
	commentAPI := new(MockCommentAPI)
	log := logger.New()
	store := NewPostStore(postAPI, log)
	cache := NewCommentCache(commentAPI, log)
	sync := NewFeedSync(store, cache, log)

	postAPI.On("List", mock.Anything).Return(feedOf("p1", "p2"), nil)
	commentAPI.On("ListByPost", mock.Anything, "p1").Return(nil, errors.New("timeout"))
	commentAPI.On("ListByPost", mock.Anything, "p2").Return([]models.Comment{{CommentID: "c1"}}, nil)

	posts, err := sync.Load(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, 0, cache.CountFor("p1"))
	assert.Equal(t, 1, cache.CountFor("p2"))
}

func TestFeedSyncLoad_PostFetchFailureIsBlocking(t *testing.T) {
	postAPI := new(MockPostAPI)
	commentAPI := new(MockCommentAPI)
	sync := newFeedSyncFixture(postAPI, commentAPI)

	postAPI.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := sync.Load(context.Background(), nil)

	assert.Error(t, err)
	commentAPI.AssertNotCalled(t, "ListByPost", mock.Anything, mock.Anything)
}

func TestFeedSyncLoad_AppliesViewerFilter(t *testing.T) {
	postAPI := new(MockPostAPI)
	commentAPI := new(MockCommentAPI)
	sync := newFeedSyncFixture(postAPI, commentAPI)

	postAPI.On("List", mock.Anything).Return([]models.Post{
		{PostID: "mine", UserID: "viewer"},
		{PostID: "theirs", UserID: "other"},
	}, nil)
	commentAPI.On("ListByPost", mock.Anything, "theirs").Return([]models.Comment{}, nil)

	posts, err := sync.Load(context.Background(), ExcludeUser("viewer"))

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "theirs", posts[0].PostID)
	// Counts are only refreshed for posts that entered the collection.
	commentAPI.AssertNotCalled(t, "ListByPost", mock.Anything, "mine")
}
