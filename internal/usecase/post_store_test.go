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

func feedOf(ids ...string) []models.Post {
	posts := make([]models.Post, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, models.Post{PostID: id, UserID: "author-" + id, Likes: 1})
	}
	return posts
}

func TestLoad_PreservesServerOrder(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p3", "p1", "p2"), nil)

	posts, err := store.Load(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, []string{"p3", "p1", "p2"}, []string{posts[0].PostID, posts[1].PostID, posts[2].PostID})
	mockAPI.AssertExpectations(t)
}

func TestLoad_ReplacesCollection(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p1", "p2"), nil).Once()
	mockAPI.On("List", mock.Anything).Return(feedOf("p9"), nil).Once()

	_, err := store.Load(context.Background(), nil)
	assert.NoError(t, err)
	_, err = store.Load(context.Background(), nil)
	assert.NoError(t, err)

	posts := store.Posts()
	assert.Len(t, posts, 1)
	assert.Equal(t, "p9", posts[0].PostID)
}

func TestLoad_FilterIsCallSiteProperty(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	viewerFeed := []models.Post{
		{PostID: "p1", UserID: "viewer"},
		{PostID: "p2", UserID: "someone-else"},
	}
	mockAPI.On("List", mock.Anything).Return(viewerFeed, nil)

	posts, err := store.Load(context.Background(), ExcludeUser("viewer"))

	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "p2", posts[0].PostID)
}

func TestLoad_FetchError(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := store.Load(context.Background(), nil)
	assert.Error(t, err)
	assert.Empty(t, store.Posts())
}

func TestLike_ReconcilesToServerValue(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p1"), nil)
	_, err := store.Load(context.Background(), nil)
	assert.NoError(t, err)

	// Server increments by more than 1; the local value must be the server's,
	// not previous+1.
	mockAPI.On("Like", mock.Anything, "p1").Return(&models.Post{PostID: "p1", Likes: 6}, nil)

	updated, err := store.Like(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, 6, updated.Likes)

	stored, ok := store.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, 6, stored.Likes)
}

func TestLike_FailureLeavesPostUnchanged(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p1"), nil)
	_, err := store.Load(context.Background(), nil)
	assert.NoError(t, err)

	mockAPI.On("Like", mock.Anything, "p1").Return(nil, errors.New("rate limited"))

	_, err = store.Like(context.Background(), "p1")
	assert.Error(t, err)

	stored, ok := store.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, 1, stored.Likes)
}

func TestLike_StaleResponseDiscarded(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p1"), nil)
	_, err := store.Load(context.Background(), nil)
	assert.NoError(t, err)

	release := make(chan struct{})
	started := make(chan struct{})

	// First like resolves slowly with likes=2, second resolves first with
	// likes=3. The earlier response must not clobber the later one.
	mockAPI.On("Like", mock.Anything, "p1").Return(&models.Post{PostID: "p1", Likes: 2}, nil).Once().
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		})
	mockAPI.On("Like", mock.Anything, "p1").Return(&models.Post{PostID: "p1", Likes: 3}, nil).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		store.Like(context.Background(), "p1")
	}()

	<-started
	_, err = store.Like(context.Background(), "p1")
	assert.NoError(t, err)

	close(release)
	<-done

	stored, _ := store.Get("p1")
	assert.Equal(t, 3, stored.Likes)
}

func TestRemove_Confirmed(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p1", "p2"), nil)
	_, err := store.Load(context.Background(), nil)
	assert.NoError(t, err)

	mockAPI.On("Delete", mock.Anything, "p1").Return(nil)

	assert.NoError(t, store.Remove(context.Background(), "p1"))
	_, ok := store.Get("p1")
	assert.False(t, ok)
	assert.Len(t, store.Posts(), 1)
}

func TestRemove_FailureKeepsPost(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p1", "p2"), nil)
	_, err := store.Load(context.Background(), nil)
	assert.NoError(t, err)

	mockAPI.On("Delete", mock.Anything, "p2").Return(errors.New("boom"))

	assert.Error(t, store.Remove(context.Background(), "p2"))
	_, ok := store.Get("p2")
	assert.True(t, ok)
	assert.Len(t, store.Posts(), 2)
}

func TestInsert_Appends(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p1"), nil)
	_, err := store.Load(context.Background(), nil)
	assert.NoError(t, err)

	store.Insert(models.Post{PostID: "p2"})

	posts := store.Posts()
	assert.Len(t, posts, 2)
	assert.Equal(t, "p2", posts[1].PostID)
}

func TestUpdate_ReconcilesLocalEntry(t *testing.T) {
	mockAPI := new(MockPostAPI)
	store := NewPostStore(mockAPI, logger.New())

	mockAPI.On("List", mock.Anything).Return(feedOf("p1"), nil)
	_, err := store.Load(context.Background(), nil)
	assert.NoError(t, err)

	req := models.UpdatePostRequest{Post: "new title", Likes: 4}
	mockAPI.On("Update", mock.Anything, "p1", req).Return(&models.Post{PostID: "p1", Post: "new title", Likes: 4}, nil)

	updated, err := store.Update(context.Background(), "p1", req)
	assert.NoError(t, err)
	assert.Equal(t, "new title", updated.Post)

	stored, _ := store.Get("p1")
	assert.Equal(t, "new title", stored.Post)
	assert.Equal(t, 4, stored.Likes)
}
