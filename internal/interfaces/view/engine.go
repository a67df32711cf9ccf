// Package view merender halaman HTML admin. Engine memenuhi interface Views
// milik Fiber sehingga handler cukup memanggil c.Render(nama, data).
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var files embed.FS

// Engine mesin template di atas html/template dengan template ter-embed.
type Engine struct {
	tpl *template.Template
}

// New membuat engine; template diparse saat Fiber memanggil Load.
func New() *Engine { return &Engine{} }

// Load memparse semua template ter-embed. Dipanggil Fiber saat inisialisasi aplikasi.
func (e *Engine) Load() error {
	tpl, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	e.tpl = tpl
	return nil
}

// Render menulis template bernama name (tanpa ekstensi) dengan binding ke w.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, _ ...string) error {
	if e.tpl == nil {
		if err := e.Load(); err != nil {
			return err
		}
	}
	return e.tpl.ExecuteTemplate(w, name+".html", binding)
}
