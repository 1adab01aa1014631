package models

// Comment is the wire representation of a single comment on a post.
type Comment struct {
	CommentID   string `json:"commentId"`
	PostID      string `json:"postId"`
	CommentorID string `json:"commentorId"`
	Comment     string `json:"comment"`
	Likes       int    `json:"likes"`
}

// CreateCommentRequest is the body of POST /api/comments. Likes is always
// submitted as 0.
type CreateCommentRequest struct {
	PostID      string `json:"postId"`
	Comment     string `json:"comment"`
	CommentorID string `json:"commentorId"`
	Likes       int    `json:"likes"`
}
