package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"sync"

	"snapfeed/internal/entity"
	"snapfeed/pkg/logger"
)

// MediaBuilder stages the media attachment of a post being composed. A post
// carries up to three images or a single video, never both; selecting one kind
// always clears the other. Selections encode asynchronously, and a selection
// issued while an earlier encode is still in flight supersedes it.
type MediaBuilder interface {
	SelectImages(ctx context.Context, files []io.Reader) (entity.DraftAttachment, error)
	SelectVideo(ctx context.Context, file io.Reader) (entity.DraftAttachment, error)
	Draft() entity.DraftAttachment
	Finalize() (entity.MediaPayload, error)
	Reset()
}

type mediaBuilder struct {
	logger *logger.Logger

	mu    sync.Mutex
	seq   uint64
	draft entity.DraftAttachment
}

func NewMediaBuilder(logger *logger.Logger) MediaBuilder {
	return &mediaBuilder{logger: logger}
}

func (b *mediaBuilder) SelectImages(ctx context.Context, files []io.Reader) (entity.DraftAttachment, error) {
	if len(files) > entity.MaxImagesPerPost {
		return b.Draft(), entity.ErrTooManyFiles
	}

	my := b.nextSeq()

	encoded := make([]string, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file io.Reader) {
			defer wg.Done()
			encoded[i], errs[i] = encodeDataURL(ctx, file)
		}(i, file)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			// Fail-fast: one bad file rejects the whole selection.
			return b.Draft(), fmt.Errorf("failed to encode image: %w", err)
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.seq != my {
		b.logger.Warn("Image selection superseded by a later selection, discarding %d encoded images", len(encoded))
		return b.draft, nil
	}
	b.draft = entity.DraftAttachment{PendingImages: encoded}
	return b.draft, nil
}

func (b *mediaBuilder) SelectVideo(ctx context.Context, file io.Reader) (entity.DraftAttachment, error) {
	my := b.nextSeq()

	encoded, err := encodeDataURL(ctx, file)
	if err != nil {
		return b.Draft(), fmt.Errorf("failed to encode video: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.seq != my {
		b.logger.Warn("Video selection superseded by a later selection, discarding encoded video")
		return b.draft, nil
	}
	b.draft = entity.DraftAttachment{PendingVideo: encoded}
	return b.draft, nil
}

func (b *mediaBuilder) Draft() entity.DraftAttachment {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft
}

// Finalize maps the staged draft to its media payload. The conflicting-media
// check should be unreachable given that selections clear each other, but the
// two inputs can be staged independently before either clear runs, so it is
// validated again here.
func (b *mediaBuilder) Finalize() (entity.MediaPayload, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case len(b.draft.PendingImages) > 0 && b.draft.PendingVideo != "":
		return entity.NoMedia(), entity.ErrConflictingMedia
	case b.draft.PendingVideo != "":
		return entity.VideoPayload(b.draft.PendingVideo), nil
	case len(b.draft.PendingImages) > 0:
		return entity.ImagesPayload(b.draft.PendingImages), nil
	default:
		return entity.NoMedia(), nil
	}
}

func (b *mediaBuilder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.draft = entity.DraftAttachment{}
}

func (b *mediaBuilder) nextSeq() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	return b.seq
}

// encodeDataURL reads a raw file and produces the self-describing transport
// form used on the wire: data:<mime>;base64,<payload>. The MIME type is
// sniffed from the leading bytes.
func encodeDataURL(ctx context.Context, file io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
