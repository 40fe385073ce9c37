package dump

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is a dump file on disk, mapped into memory for the duration of the
// audit. The mapping is read straight through once; no seeking.
type File struct {
	Path string

	data mmap.MMap
}

// Open maps the dump file at path and validates its preamble.
func Open(path string) (*File, error) {
	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %w: empty file, not an svnadmin dump", path, ErrMalformedDump)
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := checkPreamble(data); err != nil {
		data.Unmap()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &File{Path: path, data: data}, nil
}

// Records returns a fresh Reader positioned at the start of the dump.
func (f *File) Records() *Reader {
	return NewReader(bytes.NewReader(f.data))
}

// Size returns the mapped dump size in bytes.
func (f *File) Size() int64 {
	return int64(len(f.data))
}

// Close releases the mapping. Records readers obtained earlier must not be
// used afterward.
func (f *File) Close() error {
	return f.data.Unmap()
}

// checkPreamble tests that the mapped bytes look like an svnadmin dump.
// Also rejects CRLF line endings on the first line: the OS adds these when
// svnadmin output is redirected through a Windows console, which invalidates
// every declared byte count in the file.
func checkPreamble(data []byte) error {
	if !bytes.HasPrefix(data, []byte(VersionHeader+":")) {
		return fmt.Errorf("%w: missing %s preamble, not an svnadmin dump file?", ErrMalformedDump, VersionHeader)
	}

	bound := len(VersionHeader) * 2
	if bound > len(data) {
		bound = len(data)
	}
	lf := bytes.IndexByte(data[:bound], '\n')
	if lf < len(VersionHeader) {
		return fmt.Errorf("%w: unrecognized preamble, not an svnadmin dump file?", ErrMalformedDump)
	}
	if cr := bytes.IndexByte(data[:lf], '\r'); cr != -1 {
		return fmt.Errorf("%w: windows line-ending translations detected, use `svnadmin dump -F` rather than redirecting output", ErrMalformedDump)
	}

	return nil
}
