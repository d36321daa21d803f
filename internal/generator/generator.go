// Package generator は入力モデルから Gemini への 2 段階の呼び出し (教材構成 JSON とプレビュー画像) を行い、
// 結果モデルを組み立てます。
package generator

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"edu-prompt-web/internal/domain"

	"google.golang.org/genai"
)

const defaultImageMIMEType = "image/png"

// ContentGenerator は Gemini の GenerateContent 呼び出しを抽象化します。
// *genai.Models がそのまま満たします。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Options は Generator の動作設定です。
type Options struct {
	ContentModel   string
	ImageModel     string
	AspectRatio    string
	DisablePreview bool
	// Temperature が nil の場合はモデルの既定値を使用します。
	Temperature *float32
}

// Generator は教材生成のオーケストレーターです。状態を持たず、並行して呼び出せます。
type Generator struct {
	models ContentGenerator
	opts   Options
}

// New は Generator を生成します。
func New(models ContentGenerator, opts Options) (*Generator, error) {
	if models == nil {
		return nil, fmt.Errorf("content generator is required")
	}
	if strings.TrimSpace(opts.ContentModel) == "" {
		return nil, fmt.Errorf("content model is required")
	}
	if !opts.DisablePreview && strings.TrimSpace(opts.ImageModel) == "" {
		return nil, fmt.Errorf("image model is required when preview is enabled")
	}
	return &Generator{models: models, opts: opts}, nil
}

// PreviewEnabled はプレビュー画像生成を行う設定かを返します。
func (g *Generator) PreviewEnabled() bool {
	return !g.opts.DisablePreview
}

// Generate は教材構成を生成し、可能であればプレビュー画像を付加して返します。
// テキスト生成の失敗は *GenerationError として返し、画像生成の失敗はログに記録して握りつぶします。
func (g *Generator) Generate(ctx context.Context, req domain.LessonRequest) (*domain.LessonResult, error) {
	// Step 1: 必須。失敗したらリクエスト全体を打ち切る
	result, err := g.generateContent(ctx, req)
	if err != nil {
		return nil, err
	}

	if g.opts.DisablePreview {
		return &result, nil
	}

	// Step 2: 任意。失敗しても Step 1 の結果はそのまま返す
	previewURL, err := g.generatePreview(ctx, req)
	if err != nil {
		slog.WarnContext(ctx, "Preview image generation failed, returning result without preview",
			"graphic_type", req.GraphicType,
			"model", g.opts.ImageModel,
			"error", err,
		)
		return &result, nil
	}
	result.PreviewImageURL = previewURL
	return &result, nil
}

// generateContent はスキーマ制約付きの JSON 生成を行い、結果モデルにデコードします。
func (g *Generator) generateContent(ctx context.Context, req domain.LessonRequest) (domain.LessonResult, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(BuildSystemInstruction(req), genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    ContentSchema(),
		Temperature:       g.opts.Temperature,
	}

	resp, err := g.models.GenerateContent(ctx, g.opts.ContentModel, genai.Text(BuildContentPrompt(req)), config)
	if err != nil {
		return domain.LessonResult{}, newRequestError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return domain.LessonResult{}, newRequestError(ErrNoCandidates)
	}

	return DecodeContent(resp.Text())
}

// generatePreview はプレビュー画像を生成し、最初のインライン画像を data URI として返します。
func (g *Generator) generatePreview(ctx context.Context, req domain.LessonRequest) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(BuildImagePrompt(req), genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: g.opts.AspectRatio},
	}

	resp, err := g.models.GenerateContent(ctx, g.opts.ImageModel, contents, config)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	return firstInlineImage(resp)
}

// firstInlineImage はレスポンスの先頭候補からバイナリ画像を持つ最初のパートを探します。
func firstInlineImage(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return "", ErrNoInlineImage
	}
	for _, part := range cand.Content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		return dataURI(part.InlineData.MIMEType, part.InlineData.Data), nil
	}
	return "", ErrNoInlineImage
}

func dataURI(mimeType string, data []byte) string {
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = defaultImageMIMEType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
