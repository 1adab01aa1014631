package entity

// MaxImagesPerPost is the upper bound on images attached to a single post.
const MaxImagesPerPost = 3

type MediaKind string

const (
	MediaKindNone     MediaKind = "none"
	MediaKindImage    MediaKind = "image"
	MediaKindImageSet MediaKind = "imageSet"
	MediaKindVideo    MediaKind = "video"
)

// MediaPayload is the validated media attachment of a post: either a non-empty
// set of up to MaxImagesPerPost encoded images, a single encoded video, or
// nothing. Images and Video are never both set; construct values through
// NoMedia, ImagesPayload or VideoPayload to keep that invariant.
type MediaPayload struct {
	Images []string
	Video  string
}

func NoMedia() MediaPayload {
	return MediaPayload{}
}

func ImagesPayload(images []string) MediaPayload {
	return MediaPayload{Images: images}
}

func VideoPayload(video string) MediaPayload {
	return MediaPayload{Video: video}
}

func (m MediaPayload) Kind() MediaKind {
	switch {
	case m.Video != "":
		return MediaKindVideo
	case len(m.Images) > 1:
		return MediaKindImageSet
	case len(m.Images) == 1:
		return MediaKindImage
	default:
		return MediaKindNone
	}
}

// DraftAttachment is the transient media state held while a post is being
// composed. At most one of PendingImages/PendingVideo is populated; selecting
// one kind clears the other.
type DraftAttachment struct {
	PendingImages []string
	PendingVideo  string
}

func (d DraftAttachment) Empty() bool {
	return len(d.PendingImages) == 0 && d.PendingVideo == ""
}
