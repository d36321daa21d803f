package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"edu-prompt-web/internal/domain"
	"edu-prompt-web/internal/generator"
	"edu-prompt-web/internal/metrics"
)

// notifyError はテキスト生成の失敗を通知します。通知自体の失敗はリクエストの結果に影響させません。
func (p *LessonPipeline) notifyError(ctx context.Context, generationID string, lesson domain.LessonRequest, opErr error) {
	if p.notifier == nil {
		return
	}
	// クライアント切断による中断は報告対象外
	if errors.Is(opErr, context.Canceled) {
		return
	}

	req := domain.NotificationRequest{
		GenerationID: generationID,
		Category:     domain.CategoryContentFailure,
		Topic:        lesson.Topic,
		Subject:      lesson.Subject,
		GraphicType:  lesson.GraphicType,
	}
	if kind, ok := generator.KindOf(opErr); ok {
		req.ErrorKind = string(kind)
	}

	if err := p.notifier.NotifyError(context.WithoutCancel(ctx), opErr, req); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		slog.ErrorContext(ctx, "Failed to send error notification", "generation_id", generationID, "error", err)
	}
}
