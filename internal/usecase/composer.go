package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"snapfeed/internal/entity"
	"snapfeed/internal/repo/remote"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/models"
)

// PostDraft carries the text fields of a post being composed. Media is staged
// separately on the MediaBuilder.
type PostDraft struct {
	UserID      string
	Title       string
	Description string
	Tags        string // comma-separated user input
	Likes       int
}

// PostComposer validates a draft, finalizes its media attachment and submits
// the new post. On success the created post (with its server-assigned id) is
// inserted into the local collection and the media draft is discarded.
type PostComposer interface {
	Submit(ctx context.Context, draft PostDraft) (*models.Post, error)
}

type postComposer struct {
	api     remote.PostAPI
	builder MediaBuilder
	store   PostStore
	logger  *logger.Logger
}

func NewPostComposer(api remote.PostAPI, builder MediaBuilder, store PostStore, logger *logger.Logger) PostComposer {
	return &postComposer{
		api:     api,
		builder: builder,
		store:   store,
		logger:  logger,
	}
}

func (p *postComposer) Submit(ctx context.Context, draft PostDraft) (*models.Post, error) {
	if draft.UserID == "" || draft.Title == "" || draft.Description == "" {
		return nil, entity.ErrMissingFields
	}

	media, err := p.builder.Finalize()
	if err != nil {
		return nil, err
	}

	req := models.CreatePostRequest{
		UserID:          draft.UserID,
		Post:            draft.Title,
		Description:     draft.Description,
		Tags:            NormalizeTags(draft.Tags),
		Likes:           draft.Likes,
		ImageBase64List: media.Images,
		Date:            time.Now().UTC().Format(time.RFC3339),
	}
	if media.Video != "" {
		req.VideoBase64 = &media.Video
	}

	created, err := p.api.Create(ctx, req)
	if err != nil {
		p.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	p.store.Insert(*created)
	p.builder.Reset()
	return created, nil
}

// NormalizeTags splits comma-separated tag input, trims whitespace and drops
// empties.
func NormalizeTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CommentComposer submits a new comment and applies the optimistic count
// correction to the cache.
type CommentComposer interface {
	Submit(ctx context.Context, postID, commentorID, text string) (*models.Comment, error)
}

type commentComposer struct {
	api    remote.CommentAPI
	cache  CommentCache
	logger *logger.Logger
}

func NewCommentComposer(api remote.CommentAPI, cache CommentCache, logger *logger.Logger) CommentComposer {
	return &commentComposer{
		api:    api,
		cache:  cache,
		logger: logger,
	}
}

func (c *commentComposer) Submit(ctx context.Context, postID, commentorID, text string) (*models.Comment, error) {
	if commentorID == "" || text == "" {
		return nil, entity.ErrMissingFields
	}

	created, err := c.api.Create(ctx, models.CreateCommentRequest{
		PostID:      postID,
		Comment:     text,
		CommentorID: commentorID,
		Likes:       0,
	})
	if err != nil {
		c.logger.Error("Failed to add comment to post %s: %v", postID, err)
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	c.cache.NoteCommentAdded(postID)
	return created, nil
}
