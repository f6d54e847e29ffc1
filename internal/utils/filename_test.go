package utils

import (
	"strings"
	"testing"
)

func TestRandomFileName(t *testing.T) {
	name, err := RandomFileName(".png")
	if err != nil {
		t.Fatalf("RandomFileName: %v", err)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Fatalf("extension dropped: %q", name)
	}
	if len(name) != 24+len(".png") {
		t.Fatalf("unexpected length: %q", name)
	}

	other, err := RandomFileName(".png")
	if err != nil {
		t.Fatalf("RandomFileName: %v", err)
	}
	if name == other {
		t.Fatal("two generated names collided")
	}
}
