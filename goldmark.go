package md2html

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// goldmarkEngine renders CommonMark with GFM extensions. Raw HTML is passed
// through, matching the native engine which never escapes.
var goldmarkEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe(), html.WithXHTML()),
)

func convertGoldmark(src []byte) ([]string, error) {
	var buf bytes.Buffer
	if err := goldmarkEngine.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("goldmark: %w", err)
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
