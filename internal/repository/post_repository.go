package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"posting-app/internal/models"
)

func postsCol(db *mongo.Database) *mongo.Collection {
	return db.Collection("posts")
}

func InsertPost(ctx context.Context, db *mongo.Database, post models.Post) (bson.ObjectID, error) {
	res, err := postsCol(db).InsertOne(ctx, post)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func FindPostByID(ctx context.Context, db *mongo.Database, id bson.ObjectID) (*models.Post, error) {
	var post models.Post
	err := postsCol(db).FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindPostsByRefs resolves a user's post references to full posts, in the
// order the references appear in. Missing posts are skipped.
func FindPostsByRefs(ctx context.Context, db *mongo.Database, refs []bson.ObjectID) ([]models.Post, error) {
	if len(refs) == 0 {
		return []models.Post{}, nil
	}

	cursor, err := postsCol(db).Find(ctx, bson.M{"_id": bson.M{"$in": refs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return OrderByRefs(refs, posts), nil
}

// OrderByRefs reorders posts to match the reference list ($in gives no
// ordering guarantee).
func OrderByRefs(refs []bson.ObjectID, posts []models.Post) []models.Post {
	byID := make(map[bson.ObjectID]models.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]models.Post, 0, len(refs))
	for _, ref := range refs {
		if p, ok := byID[ref]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// UpdatePostByOwner overwrites content only when postID exists and is owned
// by ownerID, returning the updated post. mongo.ErrNoDocuments covers both
// "no such post" and "not the owner" so neither case is distinguishable to
// the caller.
func UpdatePostByOwner(ctx context.Context, db *mongo.Database, postID, ownerID bson.ObjectID, content string) (*models.Post, error) {
	var post models.Post
	err := postsCol(db).FindOneAndUpdate(ctx,
		bson.M{"_id": postID, "user": ownerID},
		bson.M{"$set": bson.M{"content": content}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePostByOwner removes the post only when owned by ownerID; same
// collapsed not-found/not-owner signal as UpdatePostByOwner.
func DeletePostByOwner(ctx context.Context, db *mongo.Database, postID, ownerID bson.ObjectID) (*models.Post, error) {
	var post models.Post
	err := postsCol(db).FindOneAndDelete(ctx,
		bson.M{"_id": postID, "user": ownerID},
	).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func AddLike(ctx context.Context, db *mongo.Database, postID, userID bson.ObjectID) error {
	_, err := postsCol(db).UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$addToSet": bson.M{"likes": userID}},
	)
	return err
}

func RemoveLike(ctx context.Context, db *mongo.Database, postID, userID bson.ObjectID) error {
	_, err := postsCol(db).UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"likes": userID}},
	)
	return err
}

func DeletePostByID(ctx context.Context, db *mongo.Database, postID bson.ObjectID) error {
	_, err := postsCol(db).DeleteOne(ctx, bson.M{"_id": postID})
	return err
}
