// Seeds a running feed server with demo posts and comments through the public
// API, using the same client stack the app uses.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"snapfeed/internal/repo/remote"
	"snapfeed/internal/usecase"
	"snapfeed/pkg/config"
	"snapfeed/pkg/logger"
)

// Tiny 1x1 PNG, enough for the content sniffer to tag it image/png.
var demoPNG = []byte{
	0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

type demoPost struct {
	userID      string
	title       string
	description string
	tags        string
	images      int
	comments    []string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	client := remote.NewClient(cfg.APIBaseURL)
	postAPI := remote.NewPostAPI(client)
	commentAPI := remote.NewCommentAPI(client)

	store := usecase.NewPostStore(postAPI, log)
	cache := usecase.NewCommentCache(commentAPI, log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, postAPI, commentAPI, store, cache, log); err != nil {
		log.Error("Failed to seed feed server: %v", err)
		panic(err)
	}

	log.Info("Feed server seeded successfully!")
}

func seed(
	ctx context.Context,
	postAPI remote.PostAPI,
	commentAPI remote.CommentAPI,
	store usecase.PostStore,
	cache usecase.CommentCache,
	log *logger.Logger,
) error {
	demos := []demoPost{
		{
			userID: "alice", title: "Morning run", description: "Trail by the river at sunrise",
			tags: "running, outdoors", images: 3,
			comments: []string{"Looks great!", "Which trail is this?"},
		},
		{
			userID: "bob", title: "Sourdough attempt #4", description: "Finally got the crumb right",
			tags: "baking", images: 1,
			comments: []string{"Recipe please"},
		},
		{
			userID: "charlie", title: "No media, just thoughts", description: "Posting without a picture for once",
			tags: "",
		},
	}

	for _, demo := range demos {
		builder := usecase.NewMediaBuilder(log)
		if demo.images > 0 {
			files := make([]io.Reader, demo.images)
			for i := range files {
				files[i] = bytes.NewReader(demoPNG)
			}
			if _, err := builder.SelectImages(ctx, files); err != nil {
				return err
			}
		}

		composer := usecase.NewPostComposer(postAPI, builder, store, log)
		created, err := composer.Submit(ctx, usecase.PostDraft{
			UserID:      demo.userID,
			Title:       demo.title,
			Description: demo.description,
			Tags:        demo.tags,
		})
		if err != nil {
			return err
		}
		log.Info("Seeded post %s by %s", created.PostID, created.UserID)

		commenter := usecase.NewCommentComposer(commentAPI, cache, log)
		for _, text := range demo.comments {
			if _, err := commenter.Submit(ctx, created.PostID, "demo-commenter", text); err != nil {
				return err
			}
		}
	}

	return nil
}
