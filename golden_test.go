package md2html

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGoldenTestdata(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.md"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no markdown files under testdata")
	}
	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			want, err := os.ReadFile(goldenPath(path))
			if err != nil {
				t.Fatalf("read golden for %s: %v (run go run ./cmd/gen-golden)", path, err)
			}
			var out bytes.Buffer
			if err := Render(RenderRequest{Reader: bytes.NewReader(src), Writer: &out}); err != nil {
				t.Fatalf("render %s: %v", path, err)
			}
			if diff := cmp.Diff(string(want), out.String()); diff != "" {
				t.Fatalf("golden mismatch %s (-want +got):\n%s", path, diff)
			}
		})
	}
}

func goldenPath(mdPath string) string {
	return strings.TrimSuffix(mdPath, ".md") + ".html.golden"
}
