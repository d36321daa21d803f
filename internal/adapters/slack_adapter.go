package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"edu-prompt-web/internal/domain"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-notifier/pkg/factory"
	"github.com/shouni/go-notifier/pkg/slack"
)

// --- インターフェース定義 ---

type ErrorNotifier interface {
	NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error
}

// --- 具象アダプター ---

type SlackAdapter struct {
	webhookURL  string
	slackClient *slack.Client
}

// NewSlackAdapter は Slack 通知アダプターを生成します。webhookURL が空の場合は通知をスキップするアダプターを返します。
func NewSlackAdapter(httpClient httpkit.ClientInterface, webhookURL string) (*SlackAdapter, error) {
	if webhookURL == "" {
		return &SlackAdapter{}, nil
	}
	client, err := factory.GetSlackClient(httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Slack client: %w", err)
	}

	return &SlackAdapter{
		webhookURL:  webhookURL,
		slackClient: client,
	}, nil
}

// Enabled は通知が有効かを返します。
func (a *SlackAdapter) Enabled() bool {
	return a != nil && a.slackClient != nil
}

// NotifyError は教材構成の生成に失敗したリクエストの概要を Slack に送信します。
func (a *SlackAdapter) NotifyError(ctx context.Context, errDetail error, req domain.NotificationRequest) error {
	if !a.Enabled() {
		slog.DebugContext(ctx, "Slack client is not configured, skipping error report", "generation_id", req.GenerationID)
		return nil
	}

	title := "❌ Lesson generation failed"
	content := buildErrorContent(errDetail, req)

	if err := a.slackClient.SendTextWithHeader(ctx, title, content); err != nil {
		return fmt.Errorf("failed to post error report to Slack: %w", err)
	}

	slog.InfoContext(ctx, "Sent error report to Slack", "generation_id", req.GenerationID)
	return nil
}

// buildErrorContent は Slack の mrkdwn 形式でエラー本文を組み立てます。
func buildErrorContent(errDetail error, req domain.NotificationRequest) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*Generation ID:* `%s`\n", req.GenerationID))
	sb.WriteString(fmt.Sprintf("*Topic:* `%s` (%s)\n", req.Topic, req.Subject))
	sb.WriteString(fmt.Sprintf("*Graphic type:* `%s`\n", req.GraphicType))
	if req.ErrorKind != "" {
		sb.WriteString(fmt.Sprintf("*Kind:* `%s`\n", req.ErrorKind))
	}

	// エラー詳細はコードブロックで囲む
	sb.WriteString("\n*Error:*\n")
	sb.WriteString(fmt.Sprintf("```\n%v\n```\n", errDetail))

	if req.Category != "" {
		sb.WriteString(fmt.Sprintf("\n📍 *Category:* `%s`", req.Category))
	}
	return sb.String()
}
