package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytkeypoints/internal/youtube"
)

func TestFormatTranscript(t *testing.T) {
	transcript := &youtube.Transcript{
		VideoID:      "dQw4w9WgXcQ",
		LanguageCode: "en",
		Segments: []youtube.Segment{
			{Start: 0, Duration: time.Second, Text: "Hello"},
			{Start: time.Second, Duration: time.Second, Text: "world"},
		},
	}

	out, err := formatTranscript(transcript, "text")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", out)

	out, err = formatTranscript(transcript, "srt")
	require.NoError(t, err)
	assert.Contains(t, out, "00:00:01,000 --> 00:00:02,000")

	_, err = formatTranscript(transcript, "xml")
	assert.Error(t, err)
}

func TestVideoIDArg(t *testing.T) {
	id, err := videoIDArg("https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", id)

	_, err = videoIDArg("https://example.com")
	assert.Error(t, err)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"languages", "transcript", "keypoints"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
