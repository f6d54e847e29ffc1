package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	User      bson.ObjectID   `bson:"user" json:"user"`
	Content   string          `bson:"content" json:"content"`
	Likes     []bson.ObjectID `bson:"likes" json:"likes"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
}
