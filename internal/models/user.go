package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultProfilePic is the placeholder reference used until a user uploads
// a picture of their own.
const DefaultProfilePic = "default.png"

type User struct {
	ID         bson.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Username   string          `bson:"username" json:"username"`
	Email      string          `bson:"email" json:"email"`
	Name       string          `bson:"name" json:"name"`
	Age        int             `bson:"age" json:"age"`
	Password   string          `bson:"password" json:"-"`
	ProfilePic string          `bson:"profilepic" json:"profilepic"`
	Posts      []bson.ObjectID `bson:"posts" json:"posts"`
}
