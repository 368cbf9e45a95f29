package md2html

import (
	"strconv"

	"pkt.systems/md2html/internal/inline"
)

const lineBreak = "<br/>"

// blockState tracks the open blocks between lines. A list and a paragraph
// are never open at the same time.
type blockState struct {
	list      ListKind
	paragraph bool
	out       []string
}

func (b *blockState) emit(frag string) {
	b.out = append(b.out, frag)
}

func (b *blockState) closeParagraph() {
	if b.paragraph {
		b.emit("</p>")
		b.paragraph = false
	}
}

func (b *blockState) closeList() {
	switch b.list {
	case ListUnordered:
		b.emit("</ul>")
	case ListOrdered:
		b.emit("</ol>")
	}
	b.list = ListNone
}

func (b *blockState) closeAll() {
	b.closeParagraph()
	b.closeList()
}

func (b *blockState) openList(kind ListKind) {
	if b.list == kind {
		return
	}
	b.closeAll()
	if kind == ListOrdered {
		b.emit("<ol>")
	} else {
		b.emit("<ul>")
	}
	b.list = kind
}

// openParagraph starts a paragraph, or emits a line break when one is
// already open.
func (b *blockState) openParagraph() {
	b.closeList()
	if b.paragraph {
		b.emit(lineBreak)
		return
	}
	b.emit("<p>")
	b.paragraph = true
}

func (b *blockState) handle(line Line) {
	switch line.Kind {
	case LineHeading:
		b.closeAll()
		level := strconv.Itoa(line.Level)
		b.emit("<h" + level + ">" + line.Text + "</h" + level + ">")
	case LineListItem:
		b.openList(line.List)
		b.emit("<li>" + inline.Apply(line.Text) + "</li>")
	case LineBlank:
		b.closeAll()
	default:
		b.openParagraph()
		b.emit(inline.Apply(line.Text))
	}
}

// ConvertLines converts Markdown lines to HTML fragments, one fragment per
// output line. Every block opened along the way is closed in the result.
func ConvertLines(lines []string) []string {
	state := blockState{out: make([]string, 0, len(lines)+4)}
	for _, raw := range lines {
		state.handle(Classify(raw))
	}
	state.closeAll()
	return state.out
}
