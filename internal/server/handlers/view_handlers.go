package handlers

import (
	"html/template"
	"net/http"

	"edu-prompt-web/internal/domain"
)

const indexPage = "index.html"

// formOptions はフォームの選択肢を表示順で保持します。
type formOptions struct {
	GraphicTypes []domain.GraphicType
	Difficulties []domain.Difficulty
	Languages    []domain.OutputLanguage
	Styles       []domain.StylePreset
	Grades       []string
}

func newFormOptions() formOptions {
	return formOptions{
		GraphicTypes: domain.GraphicTypes,
		Difficulties: domain.Difficulties,
		Languages:    domain.OutputLanguages,
		Styles:       domain.StylePresets,
		Grades:       domain.GradeLevels(),
	}
}

// resultView は結果表示用に生成結果を整形したものです。
type resultView struct {
	domain.LessonResult
	ContentPlanHTML template.HTML
	// PreviewSrc は data: URI を img 要素にそのまま渡すため template.URL で保持します。
	PreviewSrc template.URL
}

// indexPageData はテンプレート「index.html」に渡すデータ構造体
type indexPageData struct {
	Form       domain.LessonRequest
	Options    formOptions
	Validation *domain.ValidationError
	Error      string
	Result     *resultView
}

// Invalid は指定フィールドが検証エラーになっているかを返します。
func (d indexPageData) Invalid(field string) bool {
	return d.Validation != nil && d.Validation.Has(field)
}

func newIndexPageData(form domain.LessonRequest) indexPageData {
	return indexPageData{
		Form:    form,
		Options: newFormOptions(),
	}
}

// Index は初期状態 (結果なし) のフォーム画面を表示します。
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, indexPage, "Lesson Designer", newIndexPageData(domain.DefaultLessonRequest()))
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
