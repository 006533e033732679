package youtube

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{"empty", nil, ""},
		{"single", []Segment{{Text: "Hello"}}, "Hello"},
		{"two", []Segment{{Text: "Hello"}, {Text: "world"}}, "Hello world"},
		{"keeps inner spacing", []Segment{{Text: "a b"}, {Text: "c"}, {Text: "d"}}, "a b c d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinSegments(tt.segments))
		})
	}
}

func TestParseTranscriptXML(t *testing.T) {
	t.Run("legacy format", func(t *testing.T) {
		data := `<transcript>` +
			`<text start="0" dur="1.5">it&amp;#39;s here</text>` +
			`<text start="1.5" dur="1">   </text>` +
			`<text start="2.5" dur="0.5">Tom &amp;amp; Jerry</text>` +
			`</transcript>`

		segments, err := parseTranscriptXML([]byte(data))
		require.NoError(t, err)
		require.Len(t, segments, 2)

		assert.Equal(t, "it's here", segments[0].Text)
		assert.Equal(t, 1500*time.Millisecond, segments[0].Duration)
		assert.Equal(t, "Tom & Jerry", segments[1].Text)
		assert.Equal(t, 2500*time.Millisecond, segments[1].Start)
	})

	t.Run("format 3", func(t *testing.T) {
		data := `<timedtext format="3"><body>` +
			`<p t="100" d="900"><s>Hel</s><s>lo</s></p>` +
			`<p t="1000" d="500"></p>` +
			`<p t="1500" d="700">world</p>` +
			`</body></timedtext>`

		segments, err := parseTranscriptXML([]byte(data))
		require.NoError(t, err)
		require.Len(t, segments, 2)

		assert.Equal(t, Segment{Start: 100 * time.Millisecond, Duration: 900 * time.Millisecond, Text: "Hello"}, segments[0])
		assert.Equal(t, "world", segments[1].Text)
		assert.Equal(t, 2200*time.Millisecond, segments[1].End())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := parseTranscriptXML([]byte("not xml"))
		assert.Error(t, err)
	})
}

func TestTranscriptFormats(t *testing.T) {
	transcript := &Transcript{
		VideoID:      "dQw4w9WgXcQ",
		LanguageCode: "en",
		Segments: []Segment{
			{Start: 0, Duration: 1500 * time.Millisecond, Text: "Hello"},
			{Start: 61*time.Minute + 2*time.Second, Duration: 250 * time.Millisecond, Text: "world"},
		},
	}

	assert.Equal(t,
		"1\n00:00:00,000 --> 00:00:01,500\nHello\n\n2\n01:01:02,000 --> 01:01:02,250\nworld",
		transcript.FormatAsSRT())
	assert.Equal(t,
		"WEBVTT\n\n1\n00:00:00.000 --> 00:00:01.500\nHello\n\n2\n01:01:02.000 --> 01:01:02.250\nworld",
		transcript.FormatAsVTT())

	out, err := transcript.FormatAsJSON()
	require.NoError(t, err)
	assert.Contains(t, out, `"language_code": "en"`)
}
