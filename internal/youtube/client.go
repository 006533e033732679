package youtube

import (
	"context"
	"net/http"
	"time"

	ytdl "github.com/kkdai/youtube/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrUnavailable は字幕情報を取得できなかったことを表す
// 動画が非公開・字幕なし・通信失敗などの区別はしない
var ErrUnavailable = errors.New("transcript unavailable")

// errNoCaptions は字幕トラックが1つもない場合のエラー
var errNoCaptions = errors.New("no captions available")

// DefaultTimeout は字幕取得のデフォルトタイムアウト
const DefaultTimeout = 60 * time.Second

// videoGetter は動画メタ情報の取得元（*ytdl.Client が満たす）
type videoGetter interface {
	GetVideoContext(ctx context.Context, url string) (*ytdl.Video, error)
}

// Client は字幕一覧・字幕本文を取得するクライアント
type Client struct {
	videos     videoGetter
	httpClient *http.Client
	log        logrus.FieldLogger
}

// Option は Client の設定オプション
type Option func(*Client)

// WithLogger はロガーを設定する
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithHTTPClient は字幕本文の取得に使うHTTPクライアントを設定する
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// withVideoGetter は動画メタ情報の取得元を差し替える（テスト用）
func withVideoGetter(v videoGetter) Option {
	return func(c *Client) {
		c.videos = v
	}
}

// NewClient は新しいクライアントを作成
// timeout が0以下の場合は DefaultTimeout を使う
func NewClient(timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := &http.Client{Timeout: timeout}

	c := &Client{
		videos:     &ytdl.Client{HTTPClient: hc},
		httpClient: hc,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Language は字幕トラック1件分の言語情報
type Language struct {
	LanguageCode   string `json:"language_code"`
	Language       string `json:"language"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

// captionTrack は字幕トラックの情報
type captionTrack struct {
	LanguageCode   string
	Name           string
	BaseURL        string
	IsGenerated    bool
	IsTranslatable bool
}

// captionTracks は動画の字幕トラック一覧を取得
func (c *Client) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	video, err := c.videos.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, errors.Wrapf(err, "get video %s", videoID)
	}

	tracks := make([]captionTrack, len(video.CaptionTracks))
	for i, track := range video.CaptionTracks {
		tracks[i] = captionTrack{
			LanguageCode:   track.LanguageCode,
			Name:           track.Name.SimpleText,
			BaseURL:        track.BaseURL,
			IsGenerated:    track.Kind == "asr",
			IsTranslatable: track.IsTranslatable,
		}
	}
	return tracks, nil
}

// ListLanguages は利用可能な字幕言語の一覧を返す
func (c *Client) ListLanguages(ctx context.Context, videoID string) ([]Language, error) {
	tracks, err := c.captionTracks(ctx, videoID)
	if err == nil && len(tracks) == 0 {
		err = errNoCaptions
	}
	if err != nil {
		c.log.WithError(err).WithField("video_id", videoID).Warn("Could not list caption languages")
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}

	languages := make([]Language, len(tracks))
	for i, t := range tracks {
		languages[i] = Language{
			LanguageCode:   t.LanguageCode,
			Language:       t.Name,
			IsGenerated:    t.IsGenerated,
			IsTranslatable: t.IsTranslatable,
		}
	}
	return languages, nil
}

// GetTranscript は指定言語の字幕を取得する
//
// 指定言語での取得に失敗した場合は、言語を指定せず（最初のトラックで）
// 1回だけ再試行する。どちらも失敗した場合は ErrUnavailable を返す。
// 再試行時は返る字幕の言語が指定と異なることがある。
func (c *Client) GetTranscript(ctx context.Context, videoID, languageCode string) (*Transcript, error) {
	log := c.log.WithFields(logrus.Fields{
		"video_id":      videoID,
		"language_code": languageCode,
	})

	transcript, err := c.fetchTranscript(ctx, videoID, languageCode)
	if err == nil {
		return transcript, nil
	}
	log.WithError(err).Info("Requested language failed, retrying with default track")

	transcript, err = c.fetchTranscript(ctx, videoID, "")
	if err != nil {
		log.WithError(err).Warn("Could not fetch transcript")
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	return transcript, nil
}

// fetchTranscript は字幕を1回取得する。languageCode が空なら最初のトラックを使う
func (c *Client) fetchTranscript(ctx context.Context, videoID, languageCode string) (*Transcript, error) {
	tracks, err := c.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := findTrack(tracks, languageCode)
	if err != nil {
		return nil, err
	}

	segments, err := c.fetchSegments(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Transcript{
		VideoID:      videoID,
		LanguageCode: track.LanguageCode,
		Segments:     segments,
	}, nil
}

// findTrack は指定言語の字幕トラックを検索
// 言語が空の場合は最初のトラックを返す
func findTrack(tracks []captionTrack, languageCode string) (*captionTrack, error) {
	if len(tracks) == 0 {
		return nil, errNoCaptions
	}
	if languageCode == "" {
		return &tracks[0], nil
	}
	for i := range tracks {
		if tracks[i].LanguageCode == languageCode {
			return &tracks[i], nil
		}
	}
	return nil, errors.Errorf("no captions in language %q", languageCode)
}
