package usecase

import (
	"sync"

	"snapfeed/internal/entity"
	"snapfeed/pkg/models"
)

// OverlayCoordinator tracks which overlay surfaces are visible. The comment
// panel, the expanded post and the expanded media are three independent
// single-slot cells: opening a cell silently replaces whatever that cell was
// showing (single-flight, never stacked), and the cells do not close each
// other — a comment panel and an expanded media view can legally coexist, as
// they do in the shipped UI. Closed is both the initial state and a valid
// return target for every cell.
type OverlayCoordinator struct {
	mu sync.RWMutex

	panelPostID  string
	expandedPost *models.Post
	media        *entity.MediaPayload
}

func NewOverlayCoordinator() *OverlayCoordinator {
	return &OverlayCoordinator{}
}

func (o *OverlayCoordinator) OpenPanel(postID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.panelPostID = postID
}

func (o *OverlayCoordinator) ClosePanel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.panelPostID = ""
}

// Panel reports the post whose comment panel is open, if any.
func (o *OverlayCoordinator) Panel() (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.panelPostID, o.panelPostID != ""
}

// ExpandPost shows the full-post overlay for a snapshot of the given post.
func (o *OverlayCoordinator) ExpandPost(post models.Post) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.expandedPost = &post
}

func (o *OverlayCoordinator) CollapsePost() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.expandedPost = nil
}

func (o *OverlayCoordinator) ExpandedPost() (*models.Post, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.expandedPost == nil {
		return nil, false
	}
	post := *o.expandedPost
	return &post, true
}

// ShowMedia opens the media overlay on the given payload. The payload's kind
// distinguishes a single image, an image set shown as a slideshow, and a
// video.
func (o *OverlayCoordinator) ShowMedia(media entity.MediaPayload) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.media = &media
}

func (o *OverlayCoordinator) CloseMedia() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.media = nil
}

func (o *OverlayCoordinator) Media() (entity.MediaPayload, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.media == nil {
		return entity.NoMedia(), false
	}
	return *o.media, true
}
