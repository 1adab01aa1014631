// Package persistent backs the dev feed server with postgres through gorm.
package persistent

import (
	"errors"

	"snapfeed/internal/server/repo"
	"snapfeed/pkg/models"

	"gorm.io/gorm"
)

type storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) (repo.Storage, error) {
	if err := db.AutoMigrate(&PostModel{}, &PostImageModel{}, &CommentModel{}); err != nil {
		return nil, err
	}
	return &storage{db: db}, nil
}

func (s *storage) ListPosts() ([]models.Post, error) {
	var postModels []PostModel
	err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("post_images.position ASC")
	}).Order("created_at ASC").Find(&postModels).Error
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, len(postModels))
	for i := range postModels {
		posts[i] = *toPostWire(&postModels[i])
	}
	return posts, nil
}

func (s *storage) CreatePost(req models.CreatePostRequest) (*models.Post, error) {
	postModel := &PostModel{
		UserID:      req.UserID,
		Title:       req.Post,
		Description: req.Description,
		Tags:        req.Tags,
		Likes:       req.Likes,
		VideoBase64: req.VideoBase64,
		Date:        req.Date,
	}
	for i, img := range req.ImageBase64List {
		postModel.Images = append(postModel.Images, PostImageModel{
			ImageBase64: img,
			Order:       i,
		})
	}

	if err := s.db.Create(postModel).Error; err != nil {
		return nil, err
	}
	return toPostWire(postModel), nil
}

func (s *storage) UpdatePost(postID string, req models.UpdatePostRequest) (*models.Post, error) {
	var postModel PostModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", postID).First(&postModel).Error; err != nil {
			return err
		}

		postModel.Title = req.Post
		postModel.Likes = req.Likes
		if err := tx.Save(&postModel).Error; err != nil {
			return err
		}

		if req.ImageBase64 != nil {
			if err := tx.Where("post_id = ?", postID).Delete(&PostImageModel{}).Error; err != nil {
				return err
			}
			image := PostImageModel{PostID: postID, ImageBase64: *req.ImageBase64}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
			postModel.Images = []PostImageModel{image}
			postModel.VideoBase64 = nil
			if err := tx.Model(&postModel).Update("video_base64", nil).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Images").Where("id = ?", postID).First(&postModel).Error
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return toPostWire(&postModel), nil
}

func (s *storage) DeletePost(postID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", postID).Delete(&PostModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		if err := tx.Where("post_id = ?", postID).Delete(&PostImageModel{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&CommentModel{}).Error
	})
}

func (s *storage) LikePost(postID string) (*models.Post, error) {
	var postModel PostModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&PostModel{}).Where("id = ?", postID).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		return tx.Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("post_images.position ASC")
		}).Where("id = ?", postID).First(&postModel).Error
	})
	if err != nil {
		return nil, translateErr(err)
	}
	return toPostWire(&postModel), nil
}

func (s *storage) ListCommentsByPost(postID string) ([]models.Comment, error) {
	var commentModels []CommentModel
	if err := s.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]models.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = *toCommentWire(&commentModels[i])
	}
	return comments, nil
}

func (s *storage) CreateComment(req models.CreateCommentRequest) (*models.Comment, error) {
	var count int64
	if err := s.db.Model(&PostModel{}).Where("id = ?", req.PostID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, repo.ErrNotFound
	}

	commentModel := &CommentModel{
		PostID:      req.PostID,
		CommentorID: req.CommentorID,
		Comment:     req.Comment,
		Likes:       req.Likes,
	}
	if err := s.db.Create(commentModel).Error; err != nil {
		return nil, err
	}
	return toCommentWire(commentModel), nil
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repo.ErrNotFound
	}
	return err
}
