package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/internal/models"
	"posting-app/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// GetProfile returns the user for the session email with the post
// references expanded to full posts, in creation order.
func GetProfile(ctx context.Context, db *mongo.Database, email string) (*models.User, []models.Post, error) {
	user, err := repository.FindUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// the record vanished after the token was issued
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, err
	}

	posts, err := repository.FindPostsByRefs(ctx, db, user.Posts)
	if err != nil {
		return nil, nil, err
	}
	return user, posts, nil
}
