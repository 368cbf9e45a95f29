// Package md2html converts a small line-oriented Markdown dialect to HTML.
//
// The converter makes a single pass over the input lines. Each line is
// classified as a heading, a list item, a blank line or paragraph text, and
// the matching HTML fragments are emitted while at most one block (a list or
// a paragraph) is kept open. Every open block is closed at end of input.
//
// Supported syntax:
//   - `# ` through `###### ` headings
//   - `- ` unordered and `* ` ordered list items
//   - paragraphs, with consecutive lines joined by <br/>
//   - **bold**, __emphasis__, [[md5 of text]], ((text without c or C))
//
// Example:
//
//	err := md2html.Render(md2html.RenderRequest{
//		Reader: strings.NewReader("# Hello\n\nMarkdown in, **HTML** out.\n"),
//		Writer: os.Stdout,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// The whole input is read and converted before anything is written, so a
// failed conversion leaves the writer untouched. WithEngine(EngineGoldmark)
// switches to a CommonMark renderer for richer documents.
package md2html
