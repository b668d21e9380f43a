package relationship

import (
	"reflect"
	"testing"
	"time"
)

func TestComposeRequestID(t *testing.T) {
	at := time.Unix(1700000000, 0)

	id := ComposeRequestID("s1", "c1", at)
	if id != "s1-c1-1700000000" {
		t.Errorf("unexpected request id: %v", id)
	}

	// Ids are normalized before composition.
	id = ComposeRequestID("  S1 ", "C1", at)
	if id != "s1-c1-1700000000" {
		t.Errorf("unexpected normalized request id: %v", id)
	}
}

func TestParseRequestID(t *testing.T) {
	studentID, coachID, at, err := ParseRequestID("s1-c1-1700000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if studentID != "s1" || coachID != "c1" {
		t.Errorf("unexpected segments: %v, %v", studentID, coachID)
	}
	if at.Unix() != 1700000000 {
		t.Errorf("unexpected timestamp: %v", at)
	}

	for _, id := range []string{"", "s1-c1", "s1-c1-nope", "a-b-c-d"} {
		if _, _, _, err := ParseRequestID(id); err == nil {
			t.Errorf("expected error for id %q", id)
		}
	}
}

func TestAddIDIsIdempotent(t *testing.T) {
	list := AddID(nil, "c1")
	list = AddID(list, "c1")
	list = AddID(list, "C1 ")

	if !reflect.DeepEqual(list, []string{"c1"}) {
		t.Errorf("expected a single entry, got %v", list)
	}

	list = AddID(list, "c2")
	if !reflect.DeepEqual(list, []string{"c1", "c2"}) {
		t.Errorf("expected both entries, got %v", list)
	}
}

func TestRemoveIDIsCaseInsensitive(t *testing.T) {
	list := []string{"c1", "C2", "c3"}

	got := RemoveID(list, " c2")
	if !reflect.DeepEqual(got, []string{"c1", "c3"}) {
		t.Errorf("unexpected list after removal: %v", got)
	}

	// Removing an absent id leaves the list unchanged.
	got = RemoveID(got, "c9")
	if !reflect.DeepEqual(got, []string{"c1", "c3"}) {
		t.Errorf("unexpected list after no-op removal: %v", got)
	}
}

func TestContains(t *testing.T) {
	list := []string{"coach@club.org"}

	if !Contains(list, "Coach@Club.org ") {
		t.Error("expected normalized match")
	}
	if Contains(list, "other@club.org") {
		t.Error("unexpected match")
	}
}
