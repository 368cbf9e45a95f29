package md2html

import (
	"fmt"
	"strings"
)

// Engine selects the converter used for a document.
type Engine uint8

const (
	// EngineNative is the line converter: headings, `-`/`*` lists, paragraphs
	// and the inline transforms.
	EngineNative Engine = iota
	// EngineGoldmark renders CommonMark through goldmark.
	EngineGoldmark
)

func (e Engine) String() string {
	switch e {
	case EngineGoldmark:
		return "goldmark"
	default:
		return "native"
	}
}

// ParseEngine returns the engine with the given name.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return EngineNative, nil
	case "goldmark", "commonmark":
		return EngineGoldmark, nil
	default:
		return EngineNative, fmt.Errorf("unknown engine %q (expected native|goldmark)", name)
	}
}

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	frontMatter bool
	engine      Engine
}

// WithFrontMatter enables stripping of a leading front matter block.
func WithFrontMatter(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.frontMatter = enabled
	}
}

// WithEngine selects the converter.
func WithEngine(engine Engine) RenderOption {
	return func(cfg *renderConfig) {
		cfg.engine = engine
	}
}

func buildConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
