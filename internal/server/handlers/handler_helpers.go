package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"edu-prompt-web/internal/generator"
)

const fallbackErrorMessage = "Something went wrong, please try again."

// render は HTML テンプレートをレンダリングし、レスポンスを書き込みます。
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, pageName string, title string, data any) {
	ctx := r.Context()
	tmpl, ok := h.templateCache[pageName]
	if !ok {
		slog.ErrorContext(ctx, "Template not found in cache", "page", pageName)
		http.Error(w, "template is not defined", http.StatusInternalServerError)
		return
	}

	renderData := struct {
		Title string
		Data  any
	}{
		Title: title + titleSuffix,
		Data:  data,
	}

	var buf bytes.Buffer
	// レイアウトファイルをベースに実行します
	if err := tmpl.ExecuteTemplate(&buf, layoutTemplate, renderData); err != nil {
		slog.ErrorContext(ctx, "Failed to render template", "page", pageName, "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "Failed to write response", "error", err)
	}
}

// renderMarkdown はモデルが返した Markdown を HTML に変換します。
// goldmark は既定で生の HTML を出力しないため、結果はそのままテンプレートに埋め込めます。
func (h *Handler) renderMarkdown(ctx context.Context, src string) template.HTML {
	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(src), &buf); err != nil {
		slog.WarnContext(ctx, "Failed to convert markdown, falling back to plain text", "error", err)
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}

// userMessage は画面に表示するエラー文言を返します。
func userMessage(err error) string {
	var genErr *generator.GenerationError
	if errors.As(err, &genErr) && genErr.Message != "" {
		return genErr.Message
	}
	return fallbackErrorMessage
}

// statusFor は生成エラーを HTTP ステータスに対応付けます。
func statusFor(err error) int {
	if _, ok := generator.KindOf(err); ok {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode JSON response", "error", err)
	}
}
