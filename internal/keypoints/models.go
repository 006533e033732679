package keypoints

// Summarize が受け付けるモデル
const (
	ModelLlama4Scout      = "meta-llama/llama-4-scout-17b-16e-instruct"
	ModelLlama33Versatile = "llama-3.3-70b-versatile"

	DefaultModel = ModelLlama4Scout
)

var allowedModels = map[string]bool{
	ModelLlama4Scout:      true,
	ModelLlama33Versatile: true,
}

// IsAllowedModel はモデルが許可リストにあるかを返す
func IsAllowedModel(model string) bool {
	return allowedModels[model]
}

// Models は許可されたモデルの一覧（既定モデルが先頭）
func Models() []string {
	return []string{ModelLlama4Scout, ModelLlama33Versatile}
}
