package builder

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"edu-prompt-web/internal/adapters"
	"edu-prompt-web/internal/config"
	"edu-prompt-web/internal/generator"
	"edu-prompt-web/internal/pipeline"
	"edu-prompt-web/web"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"google.golang.org/genai"
)

// AppContext はアプリケーションの依存関係を保持します。
type AppContext struct {
	Config        *config.Config
	HTTPClient    httpkit.ClientInterface
	GeminiClient  *genai.Client
	Generator     *generator.Generator
	SlackNotifier *adapters.SlackAdapter
	Pipeline      *pipeline.LessonPipeline
	Templates     fs.FS
}

// BuildAppContext は外部サービスとの接続を確立し、依存関係を組み立てます。
func BuildAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	// 1. 基盤クライアントの初期化
	httpClient := httpkit.New(config.DefaultHTTPTimeout)

	geminiClient, err := adapters.NewGeminiClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	// 2. オーケストレーターの構築
	gen, err := generator.New(geminiClient.Models, generator.Options{
		ContentModel:   cfg.GeminiModel,
		ImageModel:     cfg.ImageModel,
		AspectRatio:    cfg.AspectRatio,
		DisablePreview: !cfg.PreviewEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson generator: %w", err)
	}

	// 3. アダプターの初期化
	slack, err := adapters.NewSlackAdapter(httpClient, cfg.SlackWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Slack adapter: %w", err)
	}
	if !slack.Enabled() {
		slog.Info("SLACK_WEBHOOK_URL is not set, error reports are disabled")
	}

	// 4. パイプラインの構築
	lessonPipeline, err := pipeline.NewLessonPipeline(gen, slack)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson pipeline: %w", err)
	}

	return &AppContext{
		Config:        cfg,
		HTTPClient:    httpClient,
		GeminiClient:  geminiClient,
		Generator:     gen,
		SlackNotifier: slack,
		Pipeline:      lessonPipeline,
		Templates:     templateFS(cfg.TemplateDir),
	}, nil
}

// templateFS は TEMPLATE_DIR が指定されていればそのディレクトリを、なければ埋め込みテンプレートを返します。
func templateFS(dir string) fs.FS {
	if dir == "" {
		return web.Templates()
	}
	return os.DirFS(dir)
}
