package adapters

import (
	"context"
	"fmt"

	"edu-prompt-web/internal/config"

	"google.golang.org/genai"
)

// NewGeminiClient は Gemini API (Google AI バックエンド) 用のクライアントを初期化します。
// API キーは起動時に読み込んだ設定から渡し、呼び出しごとに環境変数を参照することはありません。
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*genai.Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}
