// Package web встраивает шаблоны и статику в бинарник.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// Templates — корень с layouts/, pages/ и admin/.
func Templates() fs.FS {
	sub, _ := fs.Sub(files, "templates")
	return sub
}

// Static раздаётся по /static/.
func Static() fs.FS {
	sub, _ := fs.Sub(files, "static")
	return sub
}
