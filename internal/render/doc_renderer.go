package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// DocRenderer is the built-in renderer. It picks a strategy by file
// extension: markdown goes through goldmark, HTML files pass through
// (wrapped into a full document when they are fragments), everything else
// becomes an escaped source view. Hosts with a real code-to-HTML renderer
// substitute their own Renderer instead.
type DocRenderer struct {
	md goldmark.Markdown
}

func NewDocRenderer() *DocRenderer {
	return &DocRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
	}
}

func (d *DocRenderer) Render(_ context.Context, path, content string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("file event without a path")
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty file %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		var buf bytes.Buffer
		if err := d.md.Convert([]byte(content), &buf); err != nil {
			return "", fmt.Errorf("markdown %s: %w", path, err)
		}
		return wrapDocument(path, buf.String()), nil
	case ".html", ".htm":
		if strings.Contains(strings.ToLower(content), "<html") {
			return content, nil
		}
		return wrapDocument(path, content), nil
	default:
		body := fmt.Sprintf("<pre><code>%s</code></pre>", html.EscapeString(content))
		return wrapDocument(path, body), nil
	}
}

// wrapDocument produces a standalone document so the preview iframe never
// has to re-parse a fragment in place.
func wrapDocument(path, body string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>body{font-family:system-ui,sans-serif;margin:2rem;line-height:1.5}pre{background:#f4f4f4;padding:1rem;overflow:auto}</style>
</head>
<body>
%s
</body>
</html>`, html.EscapeString(path), body)
}
