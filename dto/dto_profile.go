package dto

import "posting-app/internal/models"

// ProfileUser is the authenticated user's own record with the post
// references expanded to full posts, in creation order.
type ProfileUser struct {
	ID         string        `json:"id"`
	Username   string        `json:"username"`
	Email      string        `json:"email"`
	Name       string        `json:"name"`
	Age        int           `json:"age"`
	ProfilePic string        `json:"profilepic"`
	Posts      []models.Post `json:"posts"`
}

type ProfileResponse struct {
	Success bool        `json:"success"`
	User    ProfileUser `json:"user"`
}

type UploadResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	ProfilePic string `json:"profilepic"`
}
