package services

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestToggleMembership(t *testing.T) {
	alice := bson.NewObjectID()
	bob := bson.NewObjectID()

	likes, liked := ToggleMembership(nil, alice)
	if !liked || len(likes) != 1 || likes[0] != alice {
		t.Fatalf("first toggle: likes=%v liked=%v", likes, liked)
	}

	likes, liked = ToggleMembership(likes, bob)
	if !liked || len(likes) != 2 {
		t.Fatalf("second user toggle: likes=%v liked=%v", likes, liked)
	}

	likes, liked = ToggleMembership(likes, alice)
	if liked || len(likes) != 1 || likes[0] != bob {
		t.Fatalf("untoggle: likes=%v liked=%v", likes, liked)
	}
}

func TestToggleMembershipInvolutive(t *testing.T) {
	uid := bson.NewObjectID()
	start := []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()}

	once, liked := ToggleMembership(start, uid)
	if !liked {
		t.Fatal("expected membership after first toggle")
	}
	twice, liked := ToggleMembership(once, uid)
	if liked {
		t.Fatal("expected no membership after second toggle")
	}
	if len(twice) != len(start) {
		t.Fatalf("double toggle changed the set: %v vs %v", twice, start)
	}
	for i := range start {
		if twice[i] != start[i] {
			t.Fatalf("double toggle changed the set: %v vs %v", twice, start)
		}
	}
}

func TestToggleMembershipNoDuplicates(t *testing.T) {
	uid := bson.NewObjectID()
	likes, _ := ToggleMembership(nil, uid)
	likes, _ = ToggleMembership(likes, uid)
	likes, _ = ToggleMembership(likes, uid)

	seen := 0
	for _, id := range likes {
		if id == uid {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("expected exactly one entry, found %d in %v", seen, likes)
	}
}
