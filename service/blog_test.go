package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":            "hello-world",
		"Go 1.22 Release Notes!": "go-1-22-release-notes",
		"  spaces  everywhere  ": "spaces-everywhere",
		"already-a-slug":         "already-a-slug",
	}

	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Errorf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
