package socket

import (
	"fmt"
	"testing"
)

func newTestClient() *Client {
	return &Client{
		subs: map[string]struct{}{},
		seen: map[string]struct{}{},
	}
}

func TestShouldDeliver_RequiresSubscription(t *testing.T) {
	c := newTestClient()
	key := TargetKey("project", 7)

	if c.shouldDeliver(key, "ev-1") {
		t.Fatal("unsubscribed client must not receive events")
	}

	c.Subscribe(key)
	if !c.shouldDeliver(key, "ev-1") {
		t.Fatal("subscribed client must receive the event")
	}

	c.Unsubscribe(key)
	if c.shouldDeliver(key, "ev-2") {
		t.Fatal("unsubscribe must stop delivery")
	}
}

func TestShouldDeliver_DropsDuplicateEventIDs(t *testing.T) {
	c := newTestClient()
	key := TargetKey("snippet", 3)
	c.Subscribe(key)

	if !c.shouldDeliver(key, "ev-1") {
		t.Fatal("first delivery must pass")
	}
	if c.shouldDeliver(key, "ev-1") {
		t.Fatal("same event id must not deliver twice")
	}
}

func TestShouldDeliver_SeenSetIsBounded(t *testing.T) {
	c := newTestClient()
	key := TargetKey("project", 1)
	c.Subscribe(key)

	for i := 0; i < seenCap+10; i++ {
		if !c.shouldDeliver(key, fmt.Sprintf("ev-%d", i)) {
			t.Fatalf("fresh event %d must deliver", i)
		}
	}
	if len(c.seen) > seenCap {
		t.Fatalf("seen set grew to %d, cap is %d", len(c.seen), seenCap)
	}

	// the oldest ids were evicted and would deliver again
	if !c.shouldDeliver(key, "ev-0") {
		t.Fatal("evicted event id should be deliverable again")
	}
}

func TestTargetKey(t *testing.T) {
	if got := TargetKey("project", 42); got != "project:42" {
		t.Fatalf("unexpected key %q", got)
	}
}
