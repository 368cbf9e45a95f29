package md2html

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// SplitFrontMatter separates a leading front matter block from the Markdown
// body. Front matter is only recognized at the very start of src, delimited
// by `---` (YAML), `+++` (TOML) or `;;;` (JSON), and only when the block
// looks like metadata and is closed. Otherwise meta is nil and body is src.
func SplitFrontMatter(src []byte) (meta map[string]any, body []byte, err error) {
	src = trimBOM(src)
	if !hasFrontMatter(src) {
		return nil, src, nil
	}
	meta = map[string]any{}
	body, err = frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("front matter: %w", err)
	}
	return meta, body, nil
}

func hasFrontMatter(src []byte) bool {
	openLine, next, ok := nextLine(src, 0)
	if !ok {
		return false
	}
	delim, ok := parseOpeningFrontMatterDelimiter(openLine)
	if !ok {
		return false
	}
	second, next, ok := nextLine(src, next)
	if !ok || !frontMatterMetadataLikely(second) {
		return false
	}
	for {
		line, after, ok := nextLine(src, next)
		if !ok {
			return false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return true
		}
		next = after
	}
}

// nextLine returns the line starting at start without its line ending, and
// the offset of the following line.
func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return bytes.TrimSuffix(src[start:], []byte("\r")), len(src), true
	}
	end := start + i
	return bytes.TrimSuffix(src[start:end], []byte("\r")), end + 1, true
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(line)
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}
