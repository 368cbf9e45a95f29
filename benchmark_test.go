package md2html

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"pkt.systems/md2html/internal/inline"
)

func mustReadSample(b *testing.B, path string) []byte {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return data
}

func BenchmarkRenderSample(b *testing.B) {
	data := mustReadSample(b, "testdata/sample.md")
	b.ReportAllocs()
	reader := bytes.NewReader(data)
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		_ = Render(RenderRequest{
			Reader: reader,
			Writer: io.Discard,
		})
	}
}

func BenchmarkConvertLinesLarge(b *testing.B) {
	data := mustReadSample(b, "testdata/sample.md")
	lines := splitLines(strings.Repeat(string(data)+"\n", 200))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ConvertLines(lines)
	}
}

func BenchmarkInlineApply(b *testing.B) {
	line := "Version **2.0** ships __today__ with [[build-2.0]] and ((Cascading code))"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = inline.Apply(line)
	}
}
