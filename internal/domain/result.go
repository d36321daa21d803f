package domain

import "strings"

// LessonResult は 1 回の生成リクエストから得られる結果モデルです。
// テキスト生成が成功した場合にのみ構築され、保存はされません。
type LessonResult struct {
	Title              string `json:"title"`
	VisualPrompt       string `json:"visualPrompt"`
	ContentPrompt      string `json:"contentPrompt"`
	ContentPlan        string `json:"contentPlan"`
	DesignSuggestions  string `json:"designSuggestions"`
	BloomTaxonomyLevel string `json:"bloomTaxonomyLevel"`
	// PreviewImageURL は data URI です。画像生成に失敗した場合は空のままです。
	PreviewImageURL string `json:"previewImageUrl,omitempty"`
}

// HasPreview はプレビュー画像があるかを返します。
func (r LessonResult) HasPreview() bool {
	return r.PreviewImageURL != ""
}

// Suggestions は改行区切りのデザイン提案を空行を除いて分割します。
func (r LessonResult) Suggestions() []string {
	var out []string
	for _, line := range strings.Split(r.DesignSuggestions, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// BloomLabel は bloomTaxonomyLevel の先頭語 (バッジ表示用) を返します。
func (r LessonResult) BloomLabel() string {
	fields := strings.Fields(r.BloomTaxonomyLevel)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], ":,.")
}
