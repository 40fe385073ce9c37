package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedDump indicates structural corruption in the dump stream. The
// reader makes no attempt to resynchronize after it: once the framing is
// broken every subsequent offset is unknowable, so the whole run aborts.
var ErrMalformedDump = errors.New("malformed dump")

// Reader decodes the dump stream's record framing into a forward-only
// sequence of records. It is a two-phase reader: line-oriented header
// accumulation up to a blank line, then an exact fixed-length payload read.
// Payload bytes that happen to contain newlines are never misread as
// structure.
type Reader struct {
	br     *bufio.Reader
	offset int64
}

// NewReader returns a Reader consuming the given stream, which must be
// positioned at the start of a record.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Next returns the next record in the stream, or io.EOF at a clean end of
// stream. Any other error wraps ErrMalformedDump.
func (r *Reader) Next() (*Record, error) {
	// Skip separator blank lines left over from the previous record.
	var line string
	for {
		var err error
		line, err = r.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		if line != "" {
			break
		}
	}

	rec := newRecord()
	start := r.offset - int64(len(line)) - 1

	// Phase one: accumulate Key: Value header lines until the blank
	// terminator. Unknown header names are retained, not acted on.
	for {
		key, value, err := splitHeader(line)
		if err != nil {
			return nil, fmt.Errorf("%w: at offset %d: %s", ErrMalformedDump, start, err)
		}
		rec.Headers.Set(key, value)

		line, err = r.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: header block at offset %d not terminated before end of stream", ErrMalformedDump, start)
			}
			return nil, err
		}
		if line == "" {
			break
		}
	}

	// Phase two: exact fixed-length payload read, if one was declared.
	if lenStr, ok := rec.Headers.Get(ContentLengthHeader); ok {
		length, err := strconv.Atoi(lenStr)
		if err != nil || length < 0 {
			return nil, fmt.Errorf("%w: invalid %s %q at offset %d", ErrMalformedDump, ContentLengthHeader, lenStr, start)
		}
		rec.Payload = make([]byte, length)
		if _, err := io.ReadFull(r.br, rec.Payload); err != nil {
			return nil, fmt.Errorf("%w: payload of %d bytes declared at offset %d reads past end of stream", ErrMalformedDump, length, start)
		}
		r.offset += int64(length)
	}

	return rec, nil
}

// readLine consumes one line and returns it without the trailing newline.
// A final line with no newline before end of stream is still a line.
func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	r.offset += int64(len(line))
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return line, nil
		}
		return "", err
	}
	return line[:len(line)-1], nil
}

func splitHeader(line string) (key, value string, err error) {
	sep := strings.Index(line, ": ")
	if sep <= 0 {
		return "", "", fmt.Errorf("header line %q has no separator", line)
	}
	return line[:sep], line[sep+2:], nil
}
