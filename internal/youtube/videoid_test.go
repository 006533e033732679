package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch with params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"v param elsewhere", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?si=abc", "dQw4w9WgXcQ", true},
		{"shorts", "https://www.youtube.com/shorts/a_b-c1D2e3F", "a_b-c1D2e3F", true},
		{"mobile", "https://m.youtube.com/watch?v=-_AbCdEfGhI", "-_AbCdEfGhI", true},
		{"no id", "https://example.com", "", false},
		{"too short", "https://youtu.be/abc", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestExtractVideoID_FirstPatternWins(t *testing.T) {
	// embed/ より前にある、パス区切り直後の11文字が優先される
	id, ok := ExtractVideoID("https://youtube.com/abcdefghijk/embed/dQw4w9WgXcQ")
	assert.True(t, ok)
	assert.Equal(t, "abcdefghijk", id)
}
