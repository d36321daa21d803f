package generator

import (
	"encoding/json"
	"strings"

	"edu-prompt-web/internal/domain"
)

// contentPayload はモデルが返す JSON の形です。省略された任意項目は空文字になります。
type contentPayload struct {
	Title              string `json:"title"`
	VisualPrompt       string `json:"visualPrompt"`
	ContentPrompt      string `json:"contentPrompt"`
	ContentPlan        string `json:"contentPlan"`
	DesignSuggestions  string `json:"designSuggestions"`
	BloomTaxonomyLevel string `json:"bloomTaxonomyLevel"`
}

// DecodeContent はモデルのテキスト出力を結果モデルへ変換します。
// 部分的なデータへのフォールバックは行わず、解析できない場合や必須項目が空の場合はエラーを返します。
func DecodeContent(text string) (domain.LessonResult, error) {
	raw := stripCodeFence(text)
	if raw == "" {
		return domain.LessonResult{}, newRequestError(ErrEmptyResponse)
	}

	var p contentPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.LessonResult{}, newParseError(err)
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{fieldTitle, p.Title},
		{fieldContentPlan, p.ContentPlan},
		{fieldDesignSuggestions, p.DesignSuggestions},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.LessonResult{}, newIncompleteError(missing)
	}

	return domain.LessonResult{
		Title:              strings.TrimSpace(p.Title),
		VisualPrompt:       strings.TrimSpace(p.VisualPrompt),
		ContentPrompt:      strings.TrimSpace(p.ContentPrompt),
		ContentPlan:        strings.TrimSpace(p.ContentPlan),
		DesignSuggestions:  strings.TrimSpace(p.DesignSuggestions),
		BloomTaxonomyLevel: strings.TrimSpace(p.BloomTaxonomyLevel),
	}, nil
}

// stripCodeFence は ```json ... ``` で囲まれた出力から本体を取り出します。
func stripCodeFence(s string) string {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.TrimPrefix(raw, "```")
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[i+1:]
	} else {
		return ""
	}
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}
