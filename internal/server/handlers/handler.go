package handlers

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"path"

	"edu-prompt-web/internal/config"
	"edu-prompt-web/internal/domain"

	"github.com/yuin/goldmark"
)

const (
	layoutTemplate = "layout.html"
	titleSuffix    = " - EduPrompt Architect"
)

// LessonExecutor は 1 件の教材生成を実行するパイプラインです。
type LessonExecutor interface {
	Execute(ctx context.Context, req domain.LessonRequest) (*domain.LessonResult, error)
}

type Handler struct {
	cfg           *config.Config
	templateCache map[string]*template.Template
	executor      LessonExecutor
	markdown      goldmark.Markdown
}

// NewHandler はテンプレートをコンパイルし、新しいハンドラーを初期化します。
// templates には layout.html とページテンプレートが直下に置かれている必要があります。
func NewHandler(cfg *config.Config, templates fs.FS, executor LessonExecutor) (*Handler, error) {
	if executor == nil {
		return nil, fmt.Errorf("lesson executor is required")
	}
	if _, err := fs.Stat(templates, layoutTemplate); err != nil {
		return nil, fmt.Errorf("layout template not found: %w", err)
	}

	pagePaths, err := fs.Glob(templates, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list page templates: %w", err)
	}

	cache := make(map[string]*template.Template)
	for _, pagePath := range pagePaths {
		pageName := path.Base(pagePath)
		if pageName == layoutTemplate {
			continue
		}

		tmpl, err := template.New(pageName).ParseFS(templates, layoutTemplate, pagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", pageName, err)
		}
		cache[pageName] = tmpl
	}

	return &Handler{
		cfg:           cfg,
		templateCache: cache,
		executor:      executor,
		markdown:      goldmark.New(),
	}, nil
}
