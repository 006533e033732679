package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"ytkeypoints/internal/keypoints"
)

// Validator は validator/v10 を echo.Validator として使うためのアダプター
type Validator struct {
	validate *validator.Validate
}

// NewValidator は keypoints_model ルールを登録した Validator を作成
func NewValidator() *Validator {
	v := validator.New()
	// タグ名が空のときだけエラーになる
	_ = v.RegisterValidation("keypoints_model", func(fl validator.FieldLevel) bool {
		return keypoints.IsAllowedModel(fl.Field().String())
	})
	return &Validator{validate: v}
}

// Validate は構造体のタグを検証
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// request はJSONリクエストボディが実装する
type request interface {
	normalize()
}

// validationMessages はフィールドごとの検証エラーメッセージ
var validationMessages = map[string]string{
	"URL":        "URL is required",
	"Transcript": "Transcript is required",
	"Model":      "Invalid model selected",
}

// bindRequest はリクエストボディをデコード、正規化、検証する
func bindRequest(c echo.Context, op string, req request) error {
	if err := c.Bind(req); err != nil {
		return InvalidInput(op, err, "Invalid JSON body")
	}
	req.normalize()
	if err := c.Validate(req); err != nil {
		return InvalidInput(op, err, validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := validationMessages[verrs[0].Field()]; ok {
			return msg
		}
	}
	return "Invalid request"
}
