package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"edu-prompt-web/internal/domain"
	"edu-prompt-web/internal/generator"
)

const maxRequestBytes = 64 << 10

// apiError は JSON API のエラー本文です。
type apiError struct {
	Kind    string              `json:"kind"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

type apiErrorResponse struct {
	Error apiError `json:"error"`
}

// HandleSubmit はフォーム送信を受け取り、教材を生成して結果またはエラーを表示します。
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := r.ParseForm(); err != nil {
		slog.WarnContext(ctx, "Failed to parse form", "error", err)
		http.Error(w, "failed to parse request", http.StatusBadRequest)
		return
	}

	req := lessonRequestFromForm(r).Normalize()
	data := newIndexPageData(req)

	if err := req.Validate(); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			data.Validation = vErr
		} else {
			data.Error = err.Error()
		}
		slog.InfoContext(ctx, "Rejected invalid lesson request", "error", err)
		h.render(w, r, http.StatusBadRequest, indexPage, "Lesson Designer", data)
		return
	}

	result, err := h.executor.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.InfoContext(ctx, "Client went away before generation finished")
			return
		}
		data.Error = userMessage(err)
		h.render(w, r, statusFor(err), indexPage, "Lesson Designer", data)
		return
	}

	data.Result = h.newResultView(ctx, result)
	h.render(w, r, http.StatusOK, indexPage, result.Title, data)
}

// HandleAPIGenerate は JSON の LessonRequest を受け取り、LessonResult を JSON で返します。
// 省略された列挙値はフォームと同じ初期値で補います。
func (h *Handler) HandleAPIGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req := domain.DefaultLessonRequest()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		slog.WarnContext(ctx, "Failed to decode JSON request", "error", err)
		writeJSON(w, r, http.StatusBadRequest, apiErrorResponse{Error: apiError{
			Kind:    "invalid_json",
			Message: "request body must be a JSON object",
		}})
		return
	}

	req = req.Normalize()
	if err := req.Validate(); err != nil {
		body := apiError{Kind: "validation", Message: err.Error()}
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			body.Fields = vErr.Fields
		}
		writeJSON(w, r, http.StatusBadRequest, apiErrorResponse{Error: body})
		return
	}

	result, err := h.executor.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.InfoContext(ctx, "Client went away before generation finished")
			return
		}
		kind := "internal"
		if k, ok := generator.KindOf(err); ok {
			kind = string(k)
		}
		writeJSON(w, r, statusFor(err), apiErrorResponse{Error: apiError{
			Kind:    kind,
			Message: userMessage(err),
		}})
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

// lessonRequestFromForm はフォーム値を LessonRequest に詰めます。空の列挙値は初期値のままにします。
func lessonRequestFromForm(r *http.Request) domain.LessonRequest {
	req := domain.DefaultLessonRequest()
	req.Topic = r.PostFormValue("topic")
	req.Subject = r.PostFormValue("subject")
	req.LearningObjectives = r.PostFormValue("learningObjectives")

	if v := r.PostFormValue("gradeLevel"); v != "" {
		req.GradeLevel = v
	}
	if v := r.PostFormValue("stylePreference"); v != "" {
		req.StylePreference = domain.StylePreset(v)
	}
	if v := r.PostFormValue("graphicType"); v != "" {
		req.GraphicType = domain.GraphicType(v)
	}
	if v := r.PostFormValue("outputLanguage"); v != "" {
		req.OutputLanguage = domain.OutputLanguage(v)
	}
	if v := r.PostFormValue("difficulty"); v != "" {
		req.Difficulty = domain.Difficulty(v)
	}
	return req
}

func (h *Handler) newResultView(ctx context.Context, result *domain.LessonResult) *resultView {
	view := &resultView{
		LessonResult:    *result,
		ContentPlanHTML: h.renderMarkdown(ctx, result.ContentPlan),
	}
	if result.HasPreview() {
		view.PreviewSrc = template.URL(result.PreviewImageURL)
	}
	return view
}
