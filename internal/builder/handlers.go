package builder

import (
	"fmt"

	"edu-prompt-web/internal/server/handlers"
)

// AppHandlers は生成されたすべての HTTP ハンドラーを保持する構造体です。
// server パッケージはこの構造体を受け取ってルーティングを行います。
type AppHandlers struct {
	Web *handlers.Handler
}

// BuildHandlers は各ハンドラーの依存関係をすべて組み立て、AppHandlers 構造体を返します。
func BuildHandlers(appCtx *AppContext) (*AppHandlers, error) {
	webHandler, err := handlers.NewHandler(appCtx.Config, appCtx.Templates, appCtx.Pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize web handler: %w", err)
	}

	return &AppHandlers{
		Web: webHandler,
	}, nil
}
