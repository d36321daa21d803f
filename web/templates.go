// Package web は HTML テンプレートをバイナリに埋め込みます。
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embedded embed.FS

// Templates は埋め込みテンプレートを templates/ 直下をルートとして返します。
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// 埋め込みパスはビルド時に確定しているため到達しない
		panic(err)
	}
	return sub
}
