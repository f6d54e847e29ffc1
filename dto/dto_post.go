package dto

import (
	"time"

	"posting-app/internal/models"
)

type PostRequest struct {
	Content string `json:"content"`
}

type PostResponse struct {
	Success bool        `json:"success"`
	Post    models.Post `json:"post"`
}

// PostDetail is a post with its owner expanded to public fields, as
// returned by GET /api/post/:id.
type PostDetail struct {
	ID        string     `json:"id"`
	User      PublicUser `json:"user"`
	Content   string     `json:"content"`
	Likes     []string   `json:"likes"`
	CreatedAt time.Time  `json:"createdAt"`
}

type PostDetailResponse struct {
	Success bool       `json:"success"`
	Post    PostDetail `json:"post"`
}

type LikeResponse struct {
	Success bool `json:"success"`
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}
