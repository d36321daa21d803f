package config

import (
	"fmt"
	"strings"

	"github.com/shouni/netarmor/securenet"
)

// --- バリデーション ---

// ValidateEssentialConfig はアプリケーション実行に不可欠な設定を検証します。
func ValidateEssentialConfig(cfg *Config) error {
	if !IsSecureURL(cfg.ServiceURL) {
		return fmt.Errorf("security error: SERVICE_URL ('%s') must be HTTPS in production", cfg.ServiceURL)
	}

	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("configuration error: GEMINI_API_KEY is not set")
	}

	if strings.TrimSpace(cfg.GeminiModel) == "" {
		return fmt.Errorf("configuration error: GEMINI_MODEL is empty")
	}

	if cfg.PreviewEnabled && strings.TrimSpace(cfg.ImageModel) == "" {
		return fmt.Errorf("configuration error: IMAGE_MODEL is empty while preview images are enabled")
	}

	return nil
}

// IsSecureURL は指定された URL が HTTPS または localhost であるか判定します。
func IsSecureURL(rawURL string) bool {
	return securenet.IsSecureServiceURL(rawURL)
}
