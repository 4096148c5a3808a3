package repository

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Cursor is the opaque infinite-scroll position: base64 of
// "<created_at RFC3339Nano>:<product id>". It only makes sense under the
// default newest-first ordering.
func EncodeCursor(createdAt time.Time, id uuid.UUID) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + ":" + id.String()

	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func DecodeCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("decoding cursor: %w", err)
	}

	i := strings.LastIndexByte(string(raw), ':')
	if i < 0 {
		return time.Time{}, uuid.Nil, fmt.Errorf("malformed cursor")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, string(raw[:i]))
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("parsing cursor timestamp: %w", err)
	}

	id, err := uuid.Parse(string(raw[i+1:]))
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("parsing cursor id: %w", err)
	}

	return createdAt, id, nil
}
