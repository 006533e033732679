package handlers

import (

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// MaxBodySize はリクエストボディの上限
const MaxBodySize = "64M"

// NewServer はミドルウェアとルートを登録したechoインスタンスを作成
func NewServer(api *APIHandler, log logrus.FieldLogger, debug bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = debug
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
			}).Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	// 字幕全文が /api/keypoints にそのまま送られる
	e.Use(middleware.BodyLimit(MaxBodySize))

	e.GET("/", Home)

	g := e.Group("/api")
	g.GET("/health", api.Health)
	g.POST("/languages", api.Languages)
	g.POST("/transcript", api.Transcript)
	g.POST("/keypoints", api.KeyPoints)

	return e
}
