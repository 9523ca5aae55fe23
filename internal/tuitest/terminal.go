package tuitest

import (
	"bytes"
	"io"
)

// reply pairs a terminal query with the answer a real terminal would give.
type reply struct {
	query  []byte
	answer []byte
}

// replies covers the probes bubbletea and lipgloss send on startup: cursor
// position, primary device attributes and the fg/bg colour queries in both
// BEL and ST terminated forms.
var replies = []reply{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b[c"), []byte("\x1b[?62;22c")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:1a1a/0b0b/1414\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:1a1a/0b0b/1414\x1b\\")},
}

const (
	responderMaxBuffer = 256
	responderTail      = 64
)

// terminalResponder answers terminal queries found in the program output so
// that the program does not stall waiting on a real terminal.
type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, responderMaxBuffer)}
}

func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerNext() {
	}
	// Sequences may span reads, so keep a tail.
	if len(tr.buf) > responderMaxBuffer {
		tr.buf = tr.buf[len(tr.buf)-responderTail:]
	}
}

// answerNext replies to the earliest pending query and reports whether it
// found one.
func (tr *terminalResponder) answerNext() bool {
	first, at := -1, -1
	for i, r := range replies {
		idx := bytes.Index(tr.buf, r.query)
		if idx >= 0 && (at < 0 || idx < at) {
			first, at = i, idx
		}
	}
	if first < 0 {
		return false
	}
	r := replies[first]
	tr.buf = tr.buf[at+len(r.query):]
	_, _ = tr.w.Write(r.answer)
	return true
}
