package domain

import (
	"bufio"
	"io"
)

const lineChunkSize = 256

// lineReader reads a file one terminated line at a time and hands out the
// unread remainder untouched.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, lineChunkSize)}
}

// ReadLine returns the next line including its '\n'. When the input ends
// before a terminator it returns what was read together with io.EOF.
func (l *lineReader) ReadLine() ([]byte, error) {
	return l.r.ReadBytes('\n')
}

// Rest returns everything after the last line read.
func (l *lineReader) Rest() io.Reader {
	return l.r
}
