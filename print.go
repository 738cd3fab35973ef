package table2md

import (
	"io"
	"os"
)

// PrintOption configures [Table.Print].
type PrintOption func(*printConfig)

type printConfig struct {
	w     io.Writer
	end   string
	flush bool
}

// WithWriter sets the sink. Default: os.Stdout.
func WithWriter(w io.Writer) PrintOption {
	return func(c *printConfig) { c.w = w }
}

// WithEnd sets text written after the table. Default: "", since the rendered
// table already ends with a newline.
func WithEnd(end string) PrintOption {
	return func(c *printConfig) { c.end = end }
}

// WithFlush flushes the sink after writing when it has a Flush method, like a
// *bufio.Writer. Default: false.
func WithFlush(flush bool) PrintOption {
	return func(c *printConfig) { c.flush = flush }
}

// Print validates the table and writes it. Nothing is written when validation
// fails.
func (t *Table) Print(opts ...PrintOption) error {
	cfg := printConfig{w: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := io.WriteString(cfg.w, t.String()+cfg.end); err != nil {
		return err
	}
	if cfg.flush {
		return flush(cfg.w)
	}
	return nil
}

func flush(w io.Writer) error {
	switch f := w.(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case interface{ Flush() }:
		f.Flush()
	}
	return nil
}
