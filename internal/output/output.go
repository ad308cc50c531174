// Package output provides context-aware primary output for gat.
// Stdout carries data (paths, reports); diagnostics go through the log
// package. Styled variants degrade to plain text when color is off.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type ctxKey struct{}

// Printer writes primary output, optionally with color.
type Printer struct {
	w     io.Writer
	color bool
}

// New creates a Printer writing to w. color enables styled rendering.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns an uncolored Printer on os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Successf writes a success message line, green when color is enabled.
func (p *Printer) Successf(format string, a ...any) {
	p.styledf(successStyle, format, a...)
}

// Errorf writes an error message line, red when color is enabled.
func (p *Printer) Errorf(format string, a ...any) {
	p.styledf(errorStyle, format, a...)
}

func (p *Printer) styledf(style lipgloss.Style, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if p.color {
		msg = style.Render(msg)
	}
	fmt.Fprintln(p.w, msg)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
