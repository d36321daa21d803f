package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"edu-prompt-web/internal/adapters"
	"edu-prompt-web/internal/domain"
	"edu-prompt-web/internal/generator"
	"edu-prompt-web/internal/metrics"

	"github.com/google/uuid"
)

const statusSuccess = "success"

// LessonGenerator は教材生成のオーケストレーターが満たすインターフェースです。
type LessonGenerator interface {
	Generate(ctx context.Context, req domain.LessonRequest) (*domain.LessonResult, error)
	PreviewEnabled() bool
}

// LessonPipeline は 1 回の生成リクエストにログ、メトリクス、エラー通知を付加します。
// 成功・失敗の判定はオーケストレーターの結果をそのまま返します。
type LessonPipeline struct {
	generator LessonGenerator
	notifier  adapters.ErrorNotifier
}

func NewLessonPipeline(gen LessonGenerator, notifier adapters.ErrorNotifier) (*LessonPipeline, error) {
	if gen == nil {
		return nil, fmt.Errorf("lesson generator is required")
	}
	return &LessonPipeline{
		generator: gen,
		notifier:  notifier,
	}, nil
}

// Execute は生成を実行し、結果または画面表示可能なエラーを返します。
func (p *LessonPipeline) Execute(ctx context.Context, req domain.LessonRequest) (*domain.LessonResult, error) {
	generationID := uuid.NewString()
	graphicType := string(req.GraphicType)
	start := time.Now()

	slog.InfoContext(ctx, "Lesson generation started",
		"generation_id", generationID,
		"graphic_type", graphicType,
		"difficulty", req.Difficulty,
		"language", req.OutputLanguage,
	)

	result, err := p.generator.Generate(ctx, req)
	elapsed := time.Since(start)
	metrics.GenerationDuration.WithLabelValues(graphicType).Observe(elapsed.Seconds())

	if err != nil {
		metrics.GenerationTotal.WithLabelValues(graphicType, failureStatus(err)).Inc()
		slog.ErrorContext(ctx, "Lesson generation failed",
			"generation_id", generationID,
			"graphic_type", graphicType,
			"elapsed", elapsed,
			"error", err,
		)
		p.notifyError(ctx, generationID, req, err)
		return nil, err
	}

	metrics.GenerationTotal.WithLabelValues(graphicType, statusSuccess).Inc()
	metrics.PreviewTotal.WithLabelValues(p.previewResult(result)).Inc()

	slog.InfoContext(ctx, "Lesson generation finished",
		"generation_id", generationID,
		"graphic_type", graphicType,
		"title", result.Title,
		"has_preview", result.HasPreview(),
		"elapsed", elapsed,
	)
	return result, nil
}

func (p *LessonPipeline) previewResult(result *domain.LessonResult) string {
	switch {
	case !p.generator.PreviewEnabled():
		return metrics.PreviewDisabled
	case result.HasPreview():
		return metrics.PreviewAttached
	default:
		return metrics.PreviewMissing
	}
}

// failureStatus はメトリクス用の失敗ラベルを返します。
func failureStatus(err error) string {
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}
	if kind, ok := generator.KindOf(err); ok {
		return string(kind)
	}
	return "error"
}
