package persistent

import "snapfeed/pkg/models"

func toPostWire(m *PostModel) *models.Post {
	if m == nil {
		return nil
	}

	post := &models.Post{
		PostID:      m.ID,
		UserID:      m.UserID,
		Post:        m.Title,
		Description: m.Description,
		Tags:        m.Tags,
		Likes:       m.Likes,
		VideoBase64: m.VideoBase64,
		Date:        m.Date,
	}

	if len(m.Images) > 0 {
		post.ImageBase64List = make([]string, len(m.Images))
		for i, img := range m.Images {
			post.ImageBase64List[i] = img.ImageBase64
		}
	}

	return post
}

func toCommentWire(m *CommentModel) *models.Comment {
	if m == nil {
		return nil
	}
	return &models.Comment{
		CommentID:   m.ID,
		PostID:      m.PostID,
		CommentorID: m.CommentorID,
		Comment:     m.Comment,
		Likes:       m.Likes,
	}
}
