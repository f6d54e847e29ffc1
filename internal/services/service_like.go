package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/internal/repository"
)

// ToggleMembership flips userID's membership in the liker list and reports
// the resulting state. Linear scan; the list holds one entry per user.
func ToggleMembership(likes []bson.ObjectID, userID bson.ObjectID) ([]bson.ObjectID, bool) {
	for i, id := range likes {
		if id == userID {
			return append(likes[:i:i], likes[i+1:]...), false
		}
	}
	return append(likes, userID), true
}

// ToggleLike flips userID's like on the post and returns the new count and
// membership state. The persist step uses $addToSet/$pull, so two racing
// toggles can never produce a duplicate entry.
func ToggleLike(ctx context.Context, db *mongo.Database, postID, userID bson.ObjectID) (likes int, isLiked bool, err error) {
	post, err := repository.FindPostByID(ctx, db, postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, ErrPostNotFound
		}
		return 0, false, err
	}

	newLikes, liked := ToggleMembership(post.Likes, userID)
	if liked {
		err = repository.AddLike(ctx, db, postID, userID)
	} else {
		err = repository.RemoveLike(ctx, db, postID, userID)
	}
	if err != nil {
		return 0, false, err
	}
	return len(newLikes), liked, nil
}
