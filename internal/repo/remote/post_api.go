package remote

import (
	"context"
	"net/http"

	"snapfeed/pkg/models"
)

type PostAPI interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, postID string, req models.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, postID string) error
	Like(ctx context.Context, postID string) (*models.Post, error)
}

type postAPI struct {
	client *Client
}

func NewPostAPI(client *Client) PostAPI {
	return &postAPI{client: client}
}

func (a *postAPI) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := a.client.do(ctx, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (a *postAPI) Create(ctx context.Context, req models.CreatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := a.client.do(ctx, http.MethodPost, "/api/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (a *postAPI) Update(ctx context.Context, postID string, req models.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := a.client.do(ctx, http.MethodPut, "/api/posts/"+postID, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (a *postAPI) Delete(ctx context.Context, postID string) error {
	return a.client.do(ctx, http.MethodDelete, "/api/posts/"+postID, nil, nil)
}

func (a *postAPI) Like(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	if err := a.client.do(ctx, http.MethodPut, "/api/posts/"+postID+"/like", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}
