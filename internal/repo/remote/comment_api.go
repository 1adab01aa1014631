package remote

import (
	"context"
	"net/http"

	"snapfeed/pkg/models"
)

type CommentAPI interface {
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Create(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error)
}

type commentAPI struct {
	client *Client
}

func NewCommentAPI(client *Client) CommentAPI {
	return &commentAPI{client: client}
}

func (a *commentAPI) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := a.client.do(ctx, http.MethodGet, "/api/comments/post/"+postID, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (a *commentAPI) Create(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := a.client.do(ctx, http.MethodPost, "/api/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
