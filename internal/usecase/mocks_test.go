package usecase

import (
	"context"

	"snapfeed/internal/repo/remote"
	"snapfeed/pkg/models"

	"github.com/stretchr/testify/mock"
)

// MockPostAPI is a mock implementation of remote.PostAPI
type MockPostAPI struct {
	mock.Mock
}

func (m *MockPostAPI) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostAPI) Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostAPI) Update(ctx context.Context, postID string, req models.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostAPI) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostAPI) Like(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

var _ remote.PostAPI = (*MockPostAPI)(nil)

// MockCommentAPI is a mock implementation of remote.CommentAPI
type MockCommentAPI struct {
	mock.Mock
}

func (m *MockCommentAPI) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentAPI) Create(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

var _ remote.CommentAPI = (*MockCommentAPI)(nil)
