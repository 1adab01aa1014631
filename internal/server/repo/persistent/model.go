package persistent

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID          string   `gorm:"type:uuid;primary_key"`
	UserID      string   `gorm:"not null;index"`
	Title       string   `gorm:"not null"`
	Description string   `gorm:"type:text"`
	Tags        []string `gorm:"serializer:json"`
	Likes       int      `gorm:"default:0"`
	VideoBase64 *string  `gorm:"type:text"`
	Date        string
	Images      []PostImageModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type PostImageModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	PostID      string `gorm:"type:uuid;not null;index"`
	ImageBase64 string `gorm:"type:text;not null"`
	Order       int    `gorm:"column:position;default:0"`
	CreatedAt   time.Time
}

func (PostImageModel) TableName() string {
	return "post_images"
}

func (pi *PostImageModel) BeforeCreate(tx *gorm.DB) error {
	if pi.ID == "" {
		pi.ID = uuid.New().String()
	}
	return nil
}

type CommentModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	PostID      string `gorm:"type:uuid;not null;index"`
	CommentorID string `gorm:"not null"`
	Comment     string `gorm:"type:text;not null"`
	Likes       int    `gorm:"default:0"`
	CreatedAt   time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
