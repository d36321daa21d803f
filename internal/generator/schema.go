package generator

import "google.golang.org/genai"

// JSON レスポンスのキー
const (
	fieldTitle              = "title"
	fieldVisualPrompt       = "visualPrompt"
	fieldContentPrompt      = "contentPrompt"
	fieldContentPlan        = "contentPlan"
	fieldDesignSuggestions  = "designSuggestions"
	fieldBloomTaxonomyLevel = "bloomTaxonomyLevel"
)

var contentFields = []string{
	fieldTitle,
	fieldVisualPrompt,
	fieldContentPrompt,
	fieldContentPlan,
	fieldDesignSuggestions,
	fieldBloomTaxonomyLevel,
}

// バックエンドのスキーマ上で必須なのはこの 3 項目のみ
var requiredContentFields = []string{
	fieldTitle,
	fieldContentPlan,
	fieldDesignSuggestions,
}

// ContentSchema は Step 1 の応答を制約する JSON スキーマを返します。
func ContentSchema() *genai.Schema {
	props := make(map[string]*genai.Schema, len(contentFields))
	for _, f := range contentFields {
		props[f] = &genai.Schema{Type: genai.TypeString}
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         append([]string(nil), requiredContentFields...),
		PropertyOrdering: append([]string(nil), contentFields...),
	}
}
