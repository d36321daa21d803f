package generator

import (
	"errors"
	"fmt"
)

// ErrorKind はテキスト生成 (Step 1) の失敗分類です。
type ErrorKind string

const (
	// KindContentRequest は通信エラーや空レスポンスなど、呼び出し自体の失敗です。
	KindContentRequest ErrorKind = "content_request"
	// KindContentParse はレスポンスが JSON として解釈できない場合です。
	KindContentParse ErrorKind = "content_parse"
	// KindContentIncomplete は JSON だが必須項目が欠けている場合です。
	KindContentIncomplete ErrorKind = "content_incomplete"
)

var (
	ErrEmptyResponse = errors.New("model returned an empty response")
	ErrNoCandidates  = errors.New("model returned no candidates")
	ErrNoInlineImage = errors.New("no inline image data in response")
)

// GenerationError はテキスト生成の失敗を表します。Message は画面にそのまま表示できる文言です。
type GenerationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func newRequestError(err error) *GenerationError {
	return &GenerationError{
		Kind:    KindContentRequest,
		Message: "The AI service could not generate the lesson content. Please try again.",
		Err:     err,
	}
}

func newParseError(err error) *GenerationError {
	return &GenerationError{
		Kind:    KindContentParse,
		Message: "The AI service returned content in an unexpected format. Please try again.",
		Err:     err,
	}
}

func newIncompleteError(missing []string) *GenerationError {
	return &GenerationError{
		Kind:    KindContentIncomplete,
		Message: "The AI service returned incomplete lesson content. Please try again.",
		Err:     fmt.Errorf("missing required fields: %v", missing),
	}
}

// KindOf は err が GenerationError であればその分類を返します。
func KindOf(err error) (ErrorKind, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind, true
	}
	return "", false
}
