package document

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"nathanbeddoewebdev/twui/internal/theme"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html {{.Attrs}}>
<head>
<meta charset="utf-8">
<title>twui theme preview</title>
{{- range .Styles}}
<style id="{{.ID}}">
{{.CSS}}
</style>
{{- end}}
<style>
body { margin: 0; padding: 2rem; font-family: system-ui, sans-serif; background: var(--twui-color-bg); color: var(--twui-color-fg); }
.panel { padding: 1.25rem; border-radius: var(--twui-radius); background: var(--twui-color-panel-solid); }
.scale { display: grid; grid-template-columns: repeat(12, 1fr); gap: 0.25rem; margin: 0.75rem 0 1.25rem; }
.scale div { aspect-ratio: 1; border-radius: var(--twui-radius); }
</style>
</head>
<body>
<section class="panel" aria-label="Theme preview">
<h3>Accent</h3>
<div class="scale">{{range .Steps}}<div style="background: var(--accent-{{.}})"></div>{{end}}</div>
<h3>Gray</h3>
<div class="scale">{{range .Steps}}<div style="background: var(--gray-{{.}})"></div>{{end}}</div>
</section>
</body>
</html>
`))

type pageStyle struct {
	ID  string
	CSS template.CSS
}

type pageData struct {
	Attrs  template.HTMLAttr
	Styles []pageStyle
	Steps  []int
}

// Render writes the document as a standalone HTML preview page.
func (d *Document) Render(w io.Writer) error {
	data := pageData{
		Attrs: rootAttrs(d.RootAttributes()),
		Steps: make([]int, theme.ScaleSteps),
	}
	for i := range data.Steps {
		data.Steps[i] = i + 1
	}
	for _, s := range d.Styles() {
		data.Styles = append(data.Styles, pageStyle{ID: s.ID(), CSS: template.CSS(escapeStyleText(s.Text()))})
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("document: render failed: %w", err)
	}
	return nil
}

// WriteFile renders the document to path, creating parent directories.
func (d *Document) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("document: failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("document: failed to write %s: %w", path, err)
	}
	return nil
}

// escapeStyleText keeps style text from closing its element. "<\/" is the
// same text to a CSS parser.
func escapeStyleText(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func rootAttrs(attrs []theme.Attribute) template.HTMLAttr {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = fmt.Sprintf(`data-%s="%s"`, html.EscapeString(a.Name), html.EscapeString(a.Value))
	}
	return template.HTMLAttr(strings.Join(parts, " "))
}
