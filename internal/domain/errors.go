package domain

import "strings"

// FieldError は 1 項目分の入力エラーです。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError はフォーム入力の検証エラーです。バックエンドへは送信されません。
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "invalid lesson request: " + strings.Join(msgs, "; ")
}

// Has は指定項目にエラーがあるかを返します。テンプレートから使用します。
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
