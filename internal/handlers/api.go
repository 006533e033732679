package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ytkeypoints/internal/keypoints"
	"ytkeypoints/internal/youtube"
)

// DefaultLanguageCode は language_code キーが無いときの字幕言語
const DefaultLanguageCode = "en"

// TranscriptService は動画の字幕を取得する
type TranscriptService interface {
	ListLanguages(ctx context.Context, videoID string) ([]youtube.Language, error)
	GetTranscript(ctx context.Context, videoID, languageCode string) (*youtube.Transcript, error)
}

// Summarizer は字幕テキストから要点を生成する
type Summarizer interface {
	Summarize(ctx context.Context, transcript, model string) (string, error)
}

// APIHandler はJSON APIのハンドラー
type APIHandler struct {
	transcripts TranscriptService
	summarizer  Summarizer
	log         logrus.FieldLogger
}

// NewAPIHandler は新しいAPIHandlerを作成
func NewAPIHandler(transcripts TranscriptService, summarizer Summarizer, log logrus.FieldLogger) *APIHandler {
	return &APIHandler{
		transcripts: transcripts,
		summarizer:  summarizer,
		log:         log,
	}
}

// optionalString はキーの有無を区別して文字列を受け取る。
// null は空文字として扱う。
type optionalString struct {
	Value string
	Set   bool
}

func (s *optionalString) UnmarshalJSON(data []byte) error {
	s.Set = true
	if string(data) == "null" {
		s.Value = ""
		return nil
	}
	return json.Unmarshal(data, &s.Value)
}

// or はキーが無いときに def を返す
func (s optionalString) or(def string) string {
	if !s.Set {
		return def
	}
	return s.Value
}

// VideoRequest は /api/languages と /api/transcript のリクエスト
type VideoRequest struct {
	URL             string         `json:"url" validate:"required"`
	RawLanguageCode optionalString `json:"language_code"`

	// LanguageCode は normalize 後の値。キーが無ければ "en"、空文字はそのまま
	LanguageCode string `json:"-"`
}

func (r *VideoRequest) normalize() {
	r.URL = strings.TrimSpace(r.URL)
	r.LanguageCode = r.RawLanguageCode.or(DefaultLanguageCode)
}

// KeyPointsRequest は /api/keypoints のリクエスト
type KeyPointsRequest struct {
	Transcript string         `json:"transcript" validate:"required"`
	RawModel   optionalString `json:"model"`

	// Model はキーが無いときだけ既定モデルになる。空文字や null は検証で弾く
	Model string `json:"-" validate:"keypoints_model"`
}

func (r *KeyPointsRequest) normalize() {
	r.Transcript = strings.TrimSpace(r.Transcript)
	r.Model = r.RawModel.or(keypoints.DefaultModel)
}

// LanguagesResponse は字幕言語一覧のレスポンス
type LanguagesResponse struct {
	VideoID   string             `json:"video_id"`
	Languages []youtube.Language `json:"languages"`
	Success   bool               `json:"success"`
}

// TranscriptResponse は字幕テキストのレスポンス
type TranscriptResponse struct {
	VideoID      string `json:"video_id"`
	Transcript   string `json:"transcript"`
	LanguageCode string `json:"language_code"`
	Success      bool   `json:"success"`
}

// KeyPointsResponse は要点のレスポンス
type KeyPointsResponse struct {
	KeyPoints string `json:"key_points"`
	Model     string `json:"model"`
	Success   bool   `json:"success"`
}

// videoID はリクエストのURLから動画IDを取り出す
func videoID(op string, req *VideoRequest) (string, error) {
	id, ok := youtube.ExtractVideoID(req.URL)
	if !ok {
		return "", InvalidInput(op, nil, "Invalid YouTube URL")
	}
	return id, nil
}

// Languages は動画の字幕言語一覧を取得
// POST /api/languages
func (h *APIHandler) Languages(c echo.Context) error {
	const op = "handlers.Languages"

	var req VideoRequest
	if err := bindRequest(c, op, &req); err != nil {
		return err
	}
	id, err := videoID(op, &req)
	if err != nil {
		return err
	}

	languages, err := h.transcripts.ListLanguages(c.Request().Context(), id)
	if errors.Is(err, youtube.ErrUnavailable) {
		return NotFound(op, err, "Could not retrieve available languages. Video may not have subtitles or may be private.")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LanguagesResponse{
		VideoID:   id,
		Languages: languages,
		Success:   true,
	})
}

// Transcript は字幕を1つの文字列として取得
// POST /api/transcript
func (h *APIHandler) Transcript(c echo.Context) error {
	const op = "handlers.Transcript"

	var req VideoRequest
	if err := bindRequest(c, op, &req); err != nil {
		return err
	}
	id, err := videoID(op, &req)
	if err != nil {
		return err
	}

	transcript, err := h.transcripts.GetTranscript(c.Request().Context(), id, req.LanguageCode)
	if errors.Is(err, youtube.ErrUnavailable) {
		return NotFound(op, err, "Could not retrieve transcript. Video may not have subtitles in the selected language or may be private.")
	}
	if err != nil {
		return err
	}

	// フォールバック時は実際の言語が異なるが、レスポンスは要求した言語コードを返す
	if transcript.LanguageCode != req.LanguageCode {
		h.log.WithFields(logrus.Fields{
			"request_id":         c.Response().Header().Get(echo.HeaderXRequestID),
			"video_id":           id,
			"requested_language": req.LanguageCode,
			"served_language":    transcript.LanguageCode,
		}).Info("Served transcript in a different language")
	}
	return c.JSON(http.StatusOK, TranscriptResponse{
		VideoID:      id,
		Transcript:   transcript.Text(),
		LanguageCode: req.LanguageCode,
		Success:      true,
	})
}

// KeyPoints は字幕テキストから要点を生成
// POST /api/keypoints
func (h *APIHandler) KeyPoints(c echo.Context) error {
	const op = "handlers.KeyPoints"

	var req KeyPointsRequest
	if err := bindRequest(c, op, &req); err != nil {
		return err
	}

	points, err := h.summarizer.Summarize(c.Request().Context(), req.Transcript, req.Model)
	switch {
	case errors.Is(err, keypoints.ErrInvalidModel):
		return InvalidInput(op, err, "Invalid model selected")
	case errors.Is(err, keypoints.ErrUnavailable):
		return Internal(op, err, "Could not generate key points. The AI service may be temporarily unavailable.")
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, KeyPointsResponse{
		KeyPoints: points,
		Model:     req.Model,
		Success:   true,
	})
}

// Health はヘルスチェック
// GET /api/health
func (h *APIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
