// Package inline implements the text-level rewrites applied to list items and
// paragraph lines.
//
// Each Transform takes a line in and returns a line out. Transforms are
// independent and run in a fixed order; every pass scans the output of the
// previous one exactly once.
package inline

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Transform rewrites a single line of text.
type Transform func(string) string

// Bold replaces **x** with <b>x</b>.
func Bold(s string) string {
	return replaceSpans(s, "**", "**", func(inner string) string {
		return "<b>" + inner + "</b>"
	})
}

// Emphasis replaces __x__ with <em>x</em>.
func Emphasis(s string) string {
	return replaceSpans(s, "__", "__", func(inner string) string {
		return "<em>" + inner + "</em>"
	})
}

// ContentHash replaces [[x]] with the lowercase hex MD5 digest of x.
func ContentHash(s string) string {
	return replaceSpans(s, "[[", "]]", Digest)
}

// StripC replaces ((x)) with x minus every 'c' and 'C'.
func StripC(s string) string {
	return replaceSpans(s, "((", "))", stripCase)
}

// Digest returns the MD5 digest of the UTF-8 bytes of s as 32 lowercase hex
// characters.
func Digest(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

var cRemover = strings.NewReplacer("c", "", "C", "")

func stripCase(s string) string {
	if !strings.ContainsAny(s, "cC") {
		return s
	}
	return cRemover.Replace(s)
}

var defaultChain = []Transform{Bold, Emphasis, ContentHash, StripC}

// Default returns the standard chain: bold, emphasis, content hash, strip.
func Default() []Transform {
	out := make([]Transform, len(defaultChain))
	copy(out, defaultChain)
	return out
}

// Apply runs the transforms over s left to right. With no transforms the
// default chain is used.
func Apply(s string, transforms ...Transform) string {
	if len(transforms) == 0 {
		transforms = defaultChain
	}
	for _, t := range transforms {
		if t != nil {
			s = t(s)
		}
	}
	return s
}

// replaceSpans rewrites every leftmost, shortest open...close span. An opener
// with no closer after it ends the scan and is left as is.
func replaceSpans(s, open, close string, fn func(string) string) string {
	start := strings.Index(s, open)
	if start < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	rest := s
	for start >= 0 {
		body := rest[start+len(open):]
		end := strings.Index(body, close)
		if end < 0 {
			break
		}
		b.WriteString(rest[:start])
		b.WriteString(fn(body[:end]))
		rest = body[end+len(close):]
		start = strings.Index(rest, open)
	}
	b.WriteString(rest)
	return b.String()
}
