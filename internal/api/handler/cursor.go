package handler

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hirewire/jobboard-be/internal/api/storage"
)

// DecodeJobPostCursor parses an opaque list cursor. The wire form is
// base64("<created_at unix nanos>|<job_post_id>"); an empty string means
// first page.
func DecodeJobPostCursor(cursorStr string) (*storage.JobPostCursor, error) {
	if cursorStr == "" {
		return nil, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(cursorStr)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	parts := strings.Split(string(decoded), "|")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid cursor format")
	}

	createdAt, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp in cursor: %w", err)
	}

	return &storage.JobPostCursor{
		CreatedAt: time.Unix(0, createdAt),
		JobPostID: parts[1],
	}, nil
}

// EncodeJobPostCursor builds the opaque cursor for the row after which the
// next page starts.
func EncodeJobPostCursor(cursor *storage.JobPostCursor) (string, error) {
	cs := fmt.Sprintf("%d|%s", cursor.CreatedAt.UnixNano(), cursor.JobPostID)
	return base64.StdEncoding.EncodeToString([]byte(cs)), nil
}
