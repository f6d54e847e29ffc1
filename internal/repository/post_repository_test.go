package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"posting-app/internal/models"
)

func TestOrderByRefs(t *testing.T) {
	a, b, c := bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()

	// store hands posts back in arbitrary order
	posts := []models.Post{
		{ID: c, Content: "third"},
		{ID: a, Content: "first"},
		{ID: b, Content: "second"},
	}

	ordered := OrderByRefs([]bson.ObjectID{a, b, c}, posts)
	if len(ordered) != 3 {
		t.Fatalf("len = %d", len(ordered))
	}
	for i, want := range []string{"first", "second", "third"} {
		if ordered[i].Content != want {
			t.Fatalf("ordered[%d] = %q, want %q", i, ordered[i].Content, want)
		}
	}
}

func TestOrderByRefsSkipsMissing(t *testing.T) {
	a, b := bson.NewObjectID(), bson.NewObjectID()

	ordered := OrderByRefs([]bson.ObjectID{a, b}, []models.Post{{ID: b, Content: "only"}})
	if len(ordered) != 1 || ordered[0].Content != "only" {
		t.Fatalf("unexpected result: %+v", ordered)
	}
}
