package models

// Post is the wire representation of a feed post. Media travels inline as
// MIME-tagged base64 data strings so a post stays a plain JSON value.
type Post struct {
	PostID          string   `json:"postId"`
	UserID          string   `json:"userId"`
	Post            string   `json:"post"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Likes           int      `json:"likes"`
	ImageBase64List []string `json:"imageBase64List"`
	VideoBase64     *string  `json:"videoBase64"`
	Date            string   `json:"date"`
}

// CreatePostRequest is the body of POST /api/posts. PostID is assigned by the
// server.
type CreatePostRequest struct {
	UserID          string   `json:"userId"`
	Post            string   `json:"post"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	Likes           int      `json:"likes"`
	ImageBase64List []string `json:"imageBase64List"`
	VideoBase64     *string  `json:"videoBase64"`
	Date            string   `json:"date"`
}

// UpdatePostRequest is the body of PUT /api/posts/{postId}.
type UpdatePostRequest struct {
	Post        string  `json:"post"`
	Likes       int     `json:"likes"`
	ImageBase64 *string `json:"imageBase64"`
}

func (p *Post) HasVideo() bool {
	return p.VideoBase64 != nil && *p.VideoBase64 != ""
}
