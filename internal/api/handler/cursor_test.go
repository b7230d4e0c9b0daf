package handler

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/jobboard-be/internal/api/storage"
)

func TestDecodeJobPostCursor(t *testing.T) {
	tests := []struct {
		name      string
		cursor    string
		wantNil   bool
		wantErr   bool
		errString string
	}{
		{
			name:    "empty cursor means first page",
			cursor:  "",
			wantNil: true,
		},
		{
			name:      "not base64",
			cursor:    "!!!not-base64!!!",
			wantErr:   true,
			errString: "invalid cursor encoding",
		},
		{
			name:      "missing separator",
			cursor:    base64.StdEncoding.EncodeToString([]byte("1700000000000000000")),
			wantErr:   true,
			errString: "invalid cursor format",
		},
		{
			name:      "too many parts",
			cursor:    base64.StdEncoding.EncodeToString([]byte("1|2|3")),
			wantErr:   true,
			errString: "invalid cursor format",
		},
		{
			name:      "non-numeric timestamp",
			cursor:    base64.StdEncoding.EncodeToString([]byte("soon|some-id")),
			wantErr:   true,
			errString: "invalid timestamp in cursor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor, err := DecodeJobPostCursor(tt.cursor)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
				assert.Nil(t, cursor)
				return
			}

			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, cursor)
			}
		})
	}
}

func TestJobPostCursor_RoundTrip(t *testing.T) {
	original := &storage.JobPostCursor{
		CreatedAt: time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC),
		JobPostID: "7f8c1a2e-0000-0000-0000-00000000000a",
	}

	encoded, err := EncodeJobPostCursor(original)
	require.NoError(t, err)

	decoded, err := DecodeJobPostCursor(encoded)
	require.NoError(t, err)
	require.NotNil(t, decoded)

	assert.True(t, decoded.CreatedAt.Equal(original.CreatedAt))
	assert.Equal(t, original.JobPostID, decoded.JobPostID)
}
