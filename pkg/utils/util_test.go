package utils

import "testing"

func TestHashIDRoundTrip(t *testing.T) {
	const salt = "test-salt"

	for _, id := range []int64{1, 42, 1234567890123} {
		token := GenHashID(salt, id)
		if token == "" {
			t.Fatalf("empty token for id %d", id)
		}
		if got := ParseHashID(salt, token); got != id {
			t.Fatalf("round trip failed: id=%d token=%s got=%d", id, token, got)
		}
	}
}

func TestParseHashID_Invalid(t *testing.T) {
	if got := ParseHashID("test-salt", "not-a-real-token"); got != 0 {
		t.Fatalf("expected 0 for garbage token, got %d", got)
	}
}

func TestParseHashID_WrongSalt(t *testing.T) {
	token := GenHashID("salt-a", 99)
	if got := ParseHashID("salt-b", token); got == 99 {
		t.Fatal("token decoded with the wrong salt")
	}
}
