package handlers

import (
	"ytkeypoints/internal/keypoints"
	"ytkeypoints/web/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Home はトップページを表示
// GET /
func Home(c echo.Context) error {
	return render(c, components.Index(keypoints.Models()))
}

// render はtemplコンポーネントをHTMLとして書き出す
func render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response())
}
