package media

import (
	"encoding/base64"
	"strings"
	"testing"

	"becomebetter/internal/apperrors"
)

func TestDecodePayload(t *testing.T) {
	raw := []byte("not actually a video")
	encoded := base64.StdEncoding.EncodeToString(raw)

	got, err := DecodePayload(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("unexpected payload: %q", got)
	}

	// Data URI prefixes are stripped.
	got, err = DecodePayload("data:video/mp4;base64," + encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(raw) {
		t.Errorf("unexpected payload: %q", got)
	}
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	for _, payload := range []string{"", "!!!not base64!!!"} {
		if _, err := DecodePayload(payload); err != apperrors.InvalidMediaPayload {
			t.Errorf("expected InvalidMediaPayload for %q, got %v", payload, err)
		}
	}
}

func TestObjectName(t *testing.T) {
	name := ObjectName("cover-drive.mp4")
	if !strings.HasSuffix(name, "-cover-drive.mp4") {
		t.Errorf("expected original filename suffix, got %v", name)
	}

	// Path segments are dropped, empty names get a placeholder.
	name = ObjectName("../../etc/passwd")
	if strings.Contains(name, "/") {
		t.Errorf("expected a flat object name, got %v", name)
	}
	if !strings.HasSuffix(ObjectName(""), "-upload") {
		t.Error("expected placeholder suffix for empty filename")
	}

	// Two uploads of the same filename get distinct blobs.
	if ObjectName("a.mp4") == ObjectName("a.mp4") {
		t.Error("expected distinct object names")
	}
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"clip.MP4":    "video/mp4",
		"note.m4a":    "audio/mp4",
		"marks.json":  "application/json",
		"whoknows.xy": "application/octet-stream",
	}
	for fileName, want := range cases {
		if got := ContentTypeFor(fileName); got != want {
			t.Errorf("ContentTypeFor(%q) = %v, want %v", fileName, got, want)
		}
	}
}
