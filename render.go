package md2html

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

var sinkPool = sync.Pool{
	New: func() any {
		return &documentSink{}
	},
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []RenderOption
}

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader  io.Reader
	Sink    Sink
	Options []RenderOption
}

// Render converts Markdown from Reader and writes the HTML document to
// Writer. Nothing is written unless the whole input converts.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	sink := sinkPool.Get().(*documentSink)
	sink.reset(req.Writer)
	err := Parse(ParseRequest{
		Reader:  req.Reader,
		Sink:    sink,
		Options: req.Options,
	})
	sink.reset(nil)
	sinkPool.Put(sink)
	return err
}

// Parse reads all Markdown from Reader, converts it and hands each HTML
// fragment to Sink before flushing it.
func Parse(req ParseRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("parse: reader is nil")
	}
	if req.Sink == nil {
		return fmt.Errorf("parse: sink is nil")
	}
	cfg := buildConfig(req.Options)
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("parse: read: %w", err)
	}
	frags, err := convert(src, cfg)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	for _, frag := range frags {
		if err := req.Sink.WriteFragment(frag); err != nil {
			return fmt.Errorf("parse: %w", err)
		}
	}
	return req.Sink.Flush()
}

// ConvertString converts a Markdown document held in memory.
func ConvertString(src string, opts ...RenderOption) (string, error) {
	var b strings.Builder
	err := Render(RenderRequest{
		Reader:  strings.NewReader(src),
		Writer:  &b,
		Options: opts,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func convert(src []byte, cfg renderConfig) ([]string, error) {
	if err := ValidateInput(src); err != nil {
		return nil, err
	}
	src = trimBOM(src)
	if cfg.frontMatter {
		var err error
		if _, src, err = SplitFrontMatter(src); err != nil {
			return nil, err
		}
	}
	switch cfg.engine {
	case EngineGoldmark:
		return convertGoldmark(src)
	default:
		return ConvertLines(splitLines(string(src))), nil
	}
}
