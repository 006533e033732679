package youtube

import (
	"context"
	"encoding/xml"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// YouTube字幕のXML構造
// format=3 は <timedtext><body><p t d>、旧形式は <transcript><text start dur>
type xmlTranscript struct {
	XMLName    xml.Name
	Paragraphs []xmlParagraph `xml:"body>p"`
	Texts      []xmlText      `xml:"text"`
}

type xmlParagraph struct {
	Start    int64        `xml:"t,attr"` // ミリ秒
	Duration int64        `xml:"d,attr"` // ミリ秒
	Segments []xmlSegment `xml:"s"`
	Text     string       `xml:",chardata"`
}

type xmlSegment struct {
	Text string `xml:",chardata"`
}

type xmlText struct {
	Start    float64 `xml:"start,attr"` // 秒
	Duration float64 `xml:"dur,attr"`   // 秒
	Text     string  `xml:",chardata"`
}

// fetchSegments は字幕トラックのURLから字幕セグメントを取得
func (c *Client) fetchSegments(ctx context.Context, url string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build caption request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "caption request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read caption response")
	}

	return parseTranscriptXML(body)
}

// parseTranscriptXML はXMLをパースしてセグメント列を返す
func parseTranscriptXML(data []byte) ([]Segment, error) {
	var transcript xmlTranscript
	if err := xml.Unmarshal(data, &transcript); err != nil {
		return nil, errors.Wrap(err, "XML parse failed")
	}

	segments := make([]Segment, 0, len(transcript.Paragraphs)+len(transcript.Texts))
	for _, p := range transcript.Paragraphs {
		text := p.Text
		if len(p.Segments) > 0 {
			var sb strings.Builder
			for _, s := range p.Segments {
				sb.WriteString(s.Text)
			}
			text = sb.String()
		}
		segments = appendSegment(segments,
			time.Duration(p.Start)*time.Millisecond,
			time.Duration(p.Duration)*time.Millisecond,
			text,
		)
	}
	for _, t := range transcript.Texts {
		segments = appendSegment(segments,
			time.Duration(t.Start*float64(time.Second)),
			time.Duration(t.Duration*float64(time.Second)),
			t.Text,
		)
	}

	return segments, nil
}

// appendSegment は空でないエントリだけを追加する
// 旧形式は "&amp;#39;" のように二重にエスケープされていることがある
func appendSegment(segments []Segment, start, duration time.Duration, text string) []Segment {
	text = html.UnescapeString(html.UnescapeString(text))
	if strings.TrimSpace(text) == "" {
		return segments
	}
	return append(segments, Segment{
		Start:    start,
		Duration: duration,
		Text:     text,
	})
}
