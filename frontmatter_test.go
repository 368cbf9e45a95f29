package md2html

import (
	"strings"
	"testing"
)

func TestRenderOmitsFrontMatterAtStart(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		src      string
		contains []string
		omits    []string
	}{
		{
			name:     "yaml",
			src:      "---\ntitle: Post\ndate: 2026-02-09\n---\n\n# Hello\n\nBody.\n",
			contains: []string{"<h1>Hello</h1>", "Body."},
			omits:    []string{"title: Post", "2026-02-09"},
		},
		{
			name:     "toml",
			src:      "+++\ntitle = \"Post\"\n+++\n\n# Hello\n",
			contains: []string{"<h1>Hello</h1>"},
			omits:    []string{"title = \"Post\""},
		},
		{
			name:     "json",
			src:      ";;;\n{\"title\": \"Post\"}\n;;;\n\n# Hello\n",
			contains: []string{"<h1>Hello</h1>"},
			omits:    []string{"\"title\": \"Post\""},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := renderString(t, tc.src, WithFrontMatter(true))
			for _, want := range tc.contains {
				if !strings.Contains(out, want) {
					t.Fatalf("missing %q in output: %q", want, out)
				}
			}
			for _, bad := range tc.omits {
				if strings.Contains(out, bad) {
					t.Fatalf("unexpected %q in output: %q", bad, out)
				}
			}
		})
	}
}

func TestRenderKeepsFrontMatterByDefault(t *testing.T) {
	t.Parallel()
	out := renderString(t, "---\ntitle: Post\n---\n")
	if !strings.Contains(out, "title: Post") {
		t.Fatalf("front matter stripped without WithFrontMatter: %q", out)
	}
}

func TestRenderFrontMatterIsOnlyCheckedAtStart(t *testing.T) {
	t.Parallel()
	src := "# Intro\n\n+++\ntitle = \"Keep me\"\n+++\n\nTail\n"
	out := renderString(t, src, WithFrontMatter(true))
	for _, want := range []string{"<h1>Intro</h1>", "title = \"Keep me\"", "Tail"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

func TestRenderUnclosedFrontMatterIsNotStripped(t *testing.T) {
	t.Parallel()
	src := "---\ntitle: Post\n\n# Hello\n"
	out := renderString(t, src, WithFrontMatter(true))
	for _, want := range []string{"title: Post", "<h1>Hello</h1>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

func TestRenderStartDelimiterWithoutMetadataIsNotStripped(t *testing.T) {
	t.Parallel()
	src := "---\n# Keep\n---\n\nTail\n"
	out := renderString(t, src, WithFrontMatter(true))
	for _, want := range []string{"<h1>Keep</h1>", "Tail"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output: %q", want, out)
		}
	}
}

func TestSplitFrontMatterReturnsMetadata(t *testing.T) {
	t.Parallel()
	meta, body, err := SplitFrontMatter([]byte("---\ntitle: Post\ndraft: true\n---\n# Body\n"))
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta["title"] != "Post" || meta["draft"] != true {
		t.Fatalf("unexpected metadata %#v", meta)
	}
	if strings.TrimSpace(string(body)) != "# Body" {
		t.Fatalf("unexpected body %q", string(body))
	}

	meta, body, err = SplitFrontMatter([]byte("# Plain\n"))
	if err != nil || meta != nil || string(body) != "# Plain\n" {
		t.Fatalf("plain input changed: meta=%v body=%q err=%v", meta, body, err)
	}
}
