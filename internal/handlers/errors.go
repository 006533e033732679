package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// AppError はHTTPステータスとクライアント向けメッセージを持つエラー
type AppError struct {
	Code    int
	Message string
	Op      string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// InvalidInput は400エラーを作成
func InvalidInput(op string, err error, message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Op: op, Err: err}
}

// NotFound は404エラーを作成
func NotFound(op string, err error, message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Op: op, Err: err}
}

// Internal は500エラーを作成
func Internal(op string, err error, message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Op: op, Err: err}
}

// ErrorResponse はエラー時のレスポンス
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler は AppError をそのステータスとメッセージで返す。
// それ以外は想定外のエラーとしてエラー文字列付きの500を返す
func ErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "An error occurred: " + err.Error()

		var appErr *AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code, message = appErr.Code, appErr.Message
		case errors.As(err, &httpErr):
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		}

		entry := log.WithFields(logrus.Fields{
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			"method":     c.Request().Method,
			"path":       c.Path(),
			"status":     code,
		}).WithError(err)
		if code >= http.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Info("Request rejected")
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, ErrorResponse{Error: message})
		}
		if writeErr != nil {
			log.WithError(writeErr).Error("Failed to write error response")
		}
	}
}
