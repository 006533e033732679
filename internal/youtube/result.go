package youtube

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Segment は字幕の1エントリ
type Segment struct {
	Start    time.Duration `json:"start"`
	Duration time.Duration `json:"duration"`
	Text     string        `json:"text"`
}

// End は終了時刻を返す
func (s *Segment) End() time.Duration {
	return s.Start + s.Duration
}

// Transcript は字幕取得結果
// LanguageCode は実際に取得したトラックの言語（フォールバック時は要求と異なる）
type Transcript struct {
	VideoID      string    `json:"video_id"`
	LanguageCode string    `json:"language_code"`
	Segments     []Segment `json:"segments"`
}

// Text はセグメントを順番に半角スペース1つで連結する
func (t *Transcript) Text() string {
	return JoinSegments(t.Segments)
}

// JoinSegments はセグメントのテキストを半角スペース区切りで連結する
func JoinSegments(segments []Segment) string {
	var sb strings.Builder
	for i, s := range segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// FormatAsJSON は字幕をJSON形式で出力
func (t *Transcript) FormatAsJSON() (string, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal JSON")
	}
	return string(data), nil
}

// FormatAsSRT は字幕をSRT形式で出力
func (t *Transcript) FormatAsSRT() string {
	var sb strings.Builder
	for i, s := range t.Segments {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n", i+1,
			formatTimestamp(s.Start, ','), formatTimestamp(s.End(), ','), s.Text)
	}
	return strings.TrimSpace(sb.String())
}

// FormatAsVTT は字幕をWebVTT形式で出力
func (t *Transcript) FormatAsVTT() string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for i, s := range t.Segments {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n", i+1,
			formatTimestamp(s.Start, '.'), formatTimestamp(s.End(), '.'), s.Text)
	}
	return strings.TrimSpace(sb.String())
}

// formatTimestamp は HH:MM:SS<sep>mmm 形式のタイムスタンプを生成
// SRTは ','、WebVTTは '.' を区切りに使う
func formatTimestamp(d time.Duration, sep byte) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	ms := int(d.Milliseconds()) % 1000
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", h, m, s, sep, ms)
}
