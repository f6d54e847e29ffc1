package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/internal/models"
	"posting-app/internal/repository"
)

var (
	ErrEmptyContent = errors.New("content is required")
	// ErrPostNotFound also covers "not the owner" on update/delete, so a
	// non-owner can never learn that the post exists.
	ErrPostNotFound = errors.New("post not found")
)

func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// CreatePost inserts the post and appends its reference to the owner's
// posts list. The two writes hit independent collections with no
// transaction; if the reference write fails the inserted post is removed
// again so no orphan is left behind.
func CreatePost(ctx context.Context, db *mongo.Database, ownerID bson.ObjectID, content string) (*models.Post, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	post := models.Post{
		User:      ownerID,
		Content:   content,
		Likes:     []bson.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	id, err := repository.InsertPost(ctx, db, post)
	if err != nil {
		return nil, err
	}
	post.ID = id

	if err := repository.PushPost(ctx, db, ownerID, id); err != nil {
		_ = repository.DeletePostByID(ctx, db, id)
		return nil, fmt.Errorf("attach post to user: %w", err)
	}
	return &post, nil
}

// GetPost returns the post with its owner record.
func GetPost(ctx context.Context, db *mongo.Database, postID bson.ObjectID) (*models.Post, *models.User, error) {
	post, err := repository.FindPostByID(ctx, db, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, ErrPostNotFound
		}
		return nil, nil, err
	}

	owner, err := repository.FindUserByID(ctx, db, post.User)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil, err
	}
	return post, owner, nil
}

func UpdatePost(ctx context.Context, db *mongo.Database, postID, requesterID bson.ObjectID, content string) (*models.Post, error) {
	post, err := repository.UpdatePostByOwner(ctx, db, postID, requesterID, content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post (owner only) and then its reference from the
// owner's posts list. A failed reference removal is reported to the caller
// rather than hidden.
func DeletePost(ctx context.Context, db *mongo.Database, postID, requesterID bson.ObjectID) error {
	_, err := repository.DeletePostByOwner(ctx, db, postID, requesterID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return err
	}

	if err := repository.PullPost(ctx, db, requesterID, postID); err != nil {
		return fmt.Errorf("detach post from user: %w", err)
	}
	return nil
}
