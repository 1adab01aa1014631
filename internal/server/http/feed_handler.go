// Package http exposes the feed API consumed by the client engine.
package http

import (
	"errors"
	"net/http"

	"snapfeed/internal/entity"
	"snapfeed/internal/server/repo"
	"snapfeed/pkg/logger"
	"snapfeed/pkg/models"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	storage repo.Storage
	logger  *logger.Logger
}

func NewFeedHandler(storage repo.Storage, logger *logger.Logger) *FeedHandler {
	return &FeedHandler{
		storage: storage,
		logger:  logger,
	}
}

func (h *FeedHandler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("/posts", h.ListPosts)
		api.POST("/posts", h.CreatePost)
		api.PUT("/posts/:id", h.UpdatePost)
		api.DELETE("/posts/:id", h.DeletePost)
		api.PUT("/posts/:id/like", h.LikePost)
		api.GET("/comments/post/:postId", h.ListComments)
		api.POST("/comments", h.CreateComment)
	}
}

func (h *FeedHandler) ListPosts(c *gin.Context) {
	posts, err := h.storage.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.UserID == "" || req.Post == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrMissingFields.Error()})
		return
	}
	if len(req.ImageBase64List) > entity.MaxImagesPerPost {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrTooManyFiles.Error()})
		return
	}
	if len(req.ImageBase64List) > 0 && req.VideoBase64 != nil && *req.VideoBase64 != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrConflictingMedia.Error()})
		return
	}

	post, err := h.storage.CreatePost(req)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *FeedHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.storage.UpdatePost(postID, req)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to update post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *FeedHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	if err := h.storage.DeletePost(postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to delete post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FeedHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")

	post, err := h.storage.LikePost(postID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to like post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *FeedHandler) ListComments(c *gin.Context) {
	postID := c.Param("postId")

	comments, err := h.storage.ListCommentsByPost(postID)
	if err != nil {
		h.logger.Error("Failed to list comments for post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list comments"})
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

func (h *FeedHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.PostID == "" || req.CommentorID == "" || req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrMissingFields.Error()})
		return
	}

	comment, err := h.storage.CreateComment(req)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.logger.Error("Failed to create comment: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}
	c.JSON(http.StatusCreated, comment)
}
