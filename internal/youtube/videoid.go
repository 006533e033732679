package youtube

import "regexp"

// videoIDPatterns は動画IDの抽出パターン（先頭から順に試す）
//
// 先頭のパターンが一般的なURLのほとんどを拾うため、残りは取りこぼし用。
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11}).*`),
	regexp.MustCompile(`(?:embed/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:watch\?v=)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:youtu\.be/)([0-9A-Za-z_-]{11})`),
}

// ExtractVideoID はURLから11文字の動画IDを抽出する
// どのパターンにも一致しない場合は false を返す
func ExtractVideoID(url string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); len(m) > 1 {
			return m[1], true
		}
	}
	return "", false
}
