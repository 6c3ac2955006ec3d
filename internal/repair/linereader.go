package repair

import (
	"bufio"
	"io"
)

// lineReader yields JSONL lines one at a time. Lines longer than
// maxLen are skipped rather than aborting the whole file, and the
// buffer starts small and grows on demand.
type lineReader struct {
	r      *bufio.Reader
	maxLen int
	buf    []byte
}

func newLineReader(r io.Reader, maxLen int) *lineReader {
	return &lineReader{
		r:      bufio.NewReaderSize(r, initialLineBufSize),
		maxLen: maxLen,
		buf:    make([]byte, 0, initialLineBufSize),
	}
}

// next returns the next non-empty line without its trailing
// newline, or ("", false) at EOF or on a read failure. Blank and
// oversized lines are silently skipped.
func (lr *lineReader) next() (string, bool) {
	for {
		line, err := lr.fill()
		if err != nil {
			return "", false
		}
		if line != "" {
			return line, true
		}
	}
}

// fill assembles one full line from the reader's chunks. It
// returns "" for blank lines and for lines that grew past maxLen,
// and a non-nil error only at EOF or on a read failure.
func (lr *lineReader) fill() (string, error) {
	lr.buf = lr.buf[:0]
	skipping := false

	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			if err == io.EOF && len(lr.buf) > 0 {
				break
			}
			return "", err
		}

		if skipping {
			if !isPrefix {
				return "", nil
			}
			continue
		}

		lr.buf = append(lr.buf, chunk...)
		if len(lr.buf) > lr.maxLen {
			lr.buf = lr.buf[:0]
			if !isPrefix {
				return "", nil
			}
			skipping = true
			continue
		}

		if !isPrefix {
			break
		}
	}

	return string(lr.buf), nil
}
