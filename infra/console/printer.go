// Package console prints hero notifications as plain text lines.
package console

import (
	"fmt"
	"io"

	"github.com/kilianp07/superheroes/core/events"
)

// Printer writes the message of each notification on its own line.
type Printer struct {
	out io.Writer
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Notify prints n.Message. Write errors are ignored.
func (p *Printer) Notify(n events.Notification) {
	_, _ = fmt.Fprintln(p.out, n.Message)
}

// Println writes a free-form line such as a hero description.
func (p *Printer) Println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}
