package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"posting-app/internal/models"
)

// ErrDuplicate is returned when an insert hits a unique index (email or
// username already registered).
var ErrDuplicate = errors.New("duplicate key")

func usersCol(db *mongo.Database) *mongo.Collection {
	return db.Collection("users")
}

func isDup(err error) bool {
	var we mongo.WriteException
	return errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000
}

func FindUserByEmail(ctx context.Context, db *mongo.Database, email string) (*models.User, error) {
	var user models.User
	err := usersCol(db).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (*models.User, error) {
	var user models.User
	err := usersCol(db).FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func ExistsUserByEmail(ctx context.Context, db *mongo.Database, email string) (bool, error) {
	count, err := usersCol(db).CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func InsertUser(ctx context.Context, db *mongo.Database, user models.User) (bson.ObjectID, error) {
	res, err := usersCol(db).InsertOne(ctx, user)
	if err != nil {
		if isDup(err) {
			return bson.NilObjectID, ErrDuplicate
		}
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func SetProfilePic(ctx context.Context, db *mongo.Database, userID bson.ObjectID, filename string) error {
	_, err := usersCol(db).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"profilepic": filename}},
	)
	return err
}

// PushPost appends a post reference to the owner's posts list, keeping
// creation order.
func PushPost(ctx context.Context, db *mongo.Database, userID, postID bson.ObjectID) error {
	res, err := usersCol(db).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"posts": postID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// PullPost removes a post reference from the owner's posts list.
func PullPost(ctx context.Context, db *mongo.Database, userID, postID bson.ObjectID) error {
	_, err := usersCol(db).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"posts": postID}},
	)
	return err
}
