package services

import "testing"

func TestValidateContent(t *testing.T) {
	cases := []struct {
		content string
		ok      bool
	}{
		{"hello", true},
		{"  padded  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}
	for i, c := range cases {
		err := ValidateContent(c.content)
		if c.ok && err != nil {
			t.Fatalf("case %d expected ok, got err: %v", i, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("case %d expected error, got nil", i)
		}
	}
}
