package domain

const CategoryContentFailure = "content-failure"

// NotificationRequest は Slack 等の通知コンポーネントで共有されるデータ構造です。
// 失敗した生成リクエストのメタデータを通知先に伝えるために使用します。
type NotificationRequest struct {
	// GenerationID は 1 回の生成を識別する ID です。ログとの突き合わせに使用します。
	GenerationID string `json:"generation_id"`

	// Category は通知の種別です。(例: "content-failure")
	Category string `json:"category"`

	// Topic と Subject はリクエストされた授業テーマです。
	Topic   string `json:"topic"`
	Subject string `json:"subject"`

	// GraphicType は要求された教材の種類です。
	GraphicType GraphicType `json:"graphic_type"`

	// ErrorKind は失敗の分類です。(例: "content_parse")
	ErrorKind string `json:"error_kind"`
}
