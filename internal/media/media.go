// Package media holds the pure logic behind blob handling: transport payload
// decoding, object naming, and content type resolution. Does not need/use any
// Firebase connection.
package media

import (
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"becomebetter/internal/apperrors"

	"github.com/google/uuid"
)

// DecodePayload decodes a transport-encoded binary payload. Clients send
// either bare base64 or a data URI ("data:video/mp4;base64,....").
func DecodePayload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, ";base64,"); idx != -1 {
		payload = payload[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, apperrors.InvalidMediaPayload
	}
	if len(data) == 0 {
		return nil, apperrors.InvalidMediaPayload
	}

	return data, nil
}

// ObjectName builds a collision-free blob name from the caller-supplied
// filename. The original name is kept as a suffix so blobs stay recognizable
// in the bucket.
func ObjectName(fileName string) string {
	base := path.Base(strings.TrimSpace(fileName))
	if base == "." || base == "/" || base == "" {
		base = "upload"
	}
	return fmt.Sprintf("%s-%s", uuid.New().String(), base)
}

// ContentTypeFor maps a filename extension to the content type stored with
// the blob.
func ContentTypeFor(fileName string) string {
	switch strings.ToLower(path.Ext(fileName)) {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".m4a":
		return "audio/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".json":
		return "application/json"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
