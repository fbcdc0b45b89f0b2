// Package gcode emits a toolpath plan as a modal, line-numbered program.
//
// The dialect is fixed: numbered N lines starting at 100 stepping by 10,
// block boundaries rounded up to the next multiple of 1000, `;` comment
// lines, G73 peck-drilling cycles, and G42/G40 cutter radius compensation.
// Emission is a pure serialization of the Plan; identical plans produce
// byte-identical programs.
package gcode

import (
	"fmt"
	"io"
)

// Program writes numbered program lines and comments to an underlying
// writer, tracking the line-number sequence. The first write error is
// latched and all further output is dropped; check Err when done.
type Program struct {
	w   io.Writer
	seq int
	err error
}

// NewProgram starts a program at sequence number 100.
func NewProgram(w io.Writer) *Program {
	return &Program{w: w, seq: 100}
}

// Line emits a numbered program line.
func (p *Program) Line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "N%d %s\n", p.seq, fmt.Sprintf(format, args...))
	p.seq += 10
}

// Comment emits an unnumbered comment line.
func (p *Program) Comment(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "; %s\n", fmt.Sprintf(format, args...))
}

// NewBlock rounds the sequence number up to the next multiple of 1000,
// marking a logical block boundary.
func (p *Program) NewBlock() {
	p.seq = (p.seq + 999) / 1000 * 1000
}

// Err returns the first write error, if any.
func (p *Program) Err() error {
	return p.err
}
