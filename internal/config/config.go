package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultModel      = "gemini-3-pro-preview"
	DefaultImageModel = "gemini-2.5-flash-image"
	// DefaultAspectRatio はプレビュー画像の縦長レイアウト (A4 配布物に近い比率)
	DefaultAspectRatio = "3:4"
	// DefaultHTTPTimeout は Slack などの外部通知用クライアントのタイムアウト
	DefaultHTTPTimeout = 30 * time.Second
	// DefaultWriteTimeout は Gemini の 2 回の往復 (テキスト + 画像) を考慮したレスポンス書き込み期限
	DefaultWriteTimeout    = 3 * time.Minute
	DefaultShutdownTimeout = 15 * time.Second
)

// Config は環境変数から読み込まれたアプリケーションの全設定を保持します。
type Config struct {
	ServiceURL      string
	Port            string
	GeminiAPIKey    string
	GeminiModel     string // 教材構成 (JSON) 生成用モデル
	ImageModel      string // プレビュー画像生成用モデル
	PreviewEnabled  bool
	AspectRatio     string
	TemplateDir     string // 空の場合は埋め込みテンプレートを使用
	SlackWebhookURL string
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LoadConfig は環境変数から設定を読み込み、Config 構造体を生成します。
func LoadConfig() *Config {
	return &Config{
		ServiceURL:      getEnv("SERVICE_URL", "http://localhost:8080"),
		Port:            getEnv("PORT", "8080"),
		GeminiAPIKey:    strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:     getEnv("GEMINI_MODEL", DefaultModel),
		ImageModel:      getEnv("IMAGE_MODEL", DefaultImageModel),
		PreviewEnabled:  getEnvBool("PREVIEW_IMAGE_ENABLED", true),
		AspectRatio:     getEnv("PREVIEW_ASPECT_RATIO", DefaultAspectRatio),
		TemplateDir:     getEnv("TEMPLATE_DIR", ""),
		SlackWebhookURL: getEnv("SLACK_WEBHOOK_URL", ""),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", DefaultWriteTimeout),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
