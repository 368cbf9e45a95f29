package md2html

import (
	"bytes"
	"io"
)

// Sink receives HTML fragments from Parse, in document order.
type Sink interface {
	WriteFragment(string) error
	Flush() error
}

// documentSink buffers every fragment and writes the complete document on
// Flush, one fragment per line.
type documentSink struct {
	w   io.Writer
	buf bytes.Buffer
}

func (d *documentSink) reset(w io.Writer) {
	d.w = w
	d.buf.Reset()
}

func (d *documentSink) WriteFragment(frag string) error {
	d.buf.WriteString(frag)
	d.buf.WriteByte('\n')
	return nil
}

func (d *documentSink) Flush() error {
	if d.buf.Len() == 0 {
		return nil
	}
	_, err := d.w.Write(d.buf.Bytes())
	d.buf.Reset()
	return err
}
