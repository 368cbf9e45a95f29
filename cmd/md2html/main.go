package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/md2html"
	"pkt.systems/version"
)

const (
	defaultWidth = 80
	stdoutPath   = "-"
)

func init() {
	version.SetDefaultModule("pkt.systems/md2html")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		engineName  string
		frontMatter bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("md2html", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&engineName, "engine", "e", "native", "Converter engine: native|goldmark")
	flags.BoolVarP(&frontMatter, "front-matter", "f", false, "Strip leading YAML/TOML/JSON front matter")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")
	flags.Usage = func() {
		printUsage(stderr, flags)
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}

	positional := flags.Args()
	if len(positional) != 2 {
		flags.Usage()
		return 1
	}
	inputPath, outputPath := positional[0], positional[1]

	engine, err := md2html.ParseEngine(engineName)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --engine: %v\n", err)
		return 2
	}
	opts := []md2html.RenderOption{
		md2html.WithEngine(engine),
		md2html.WithFrontMatter(frontMatter),
	}

	var render func(io.Writer) error
	if isURL(inputPath) {
		render = func(w io.Writer) error {
			return md2html.HTTPRender(context.Background(), md2html.HTTPRenderRequest{
				URL:     inputPath,
				Writer:  w,
				Options: opts,
			})
		}
	} else {
		path := normalizePath(inputPath)
		if !isRegularFile(path) {
			fmt.Fprintf(stderr, "Missing %s\n", inputPath)
			return 1
		}
		render = func(w io.Writer) error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			return md2html.Render(md2html.RenderRequest{
				Reader:  f,
				Writer:  w,
				Options: opts,
			})
		}
	}

	if err := writeOutput(outputPath, stdout, render); err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	width := terminalWidth(w, defaultWidth)
	fmt.Fprintln(w, version.Module(), version.Current())
	fmt.Fprintln(w, "Usage: md2html [flags] <input_file.md> <output_file.html>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, wordwrap.String("Converts headings, `- ` and `* ` lists, paragraphs, "+
		"**bold**, __emphasis__, [[md5]] and ((strip c)) spans to HTML. "+
		"The input may also be an http(s) URL; use - as output for stdout.", width))
	fmt.Fprintln(w, "\nFlags:")
	fmt.Fprint(w, flags.FlagUsagesWrapped(width))
}

// writeOutput renders into a temp file next to path and renames it into
// place, so a failed conversion never leaves a partial file behind.
func writeOutput(path string, stdout io.Writer, render func(io.Writer) error) error {
	if strings.TrimSpace(path) == stdoutPath {
		return render(stdout)
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(clean)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := render(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, clean)
}

func isURL(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
