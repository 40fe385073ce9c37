package dump

import (
	"fmt"
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
)

// Record is one parsed unit from the dump stream: an ordered mapping of
// header names to string values, plus an optional opaque payload whose byte
// length was declared by the Content-length header. Records are delimited by
// header-block termination and declared payload length only, never by
// scanning payload content.
type Record struct {
	Headers *orderedmap.OrderedMap[string, string]
	Payload []byte
}

func newRecord() *Record {
	return &Record{Headers: orderedmap.NewOrderedMap[string, string]()}
}

// Header returns the value of the named header and whether it was present.
func (r *Record) Header(key string) (string, bool) {
	return r.Headers.Get(key)
}

// Has reports whether the named header is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Headers.Get(key)
	return ok
}

// Int returns the named header parsed as an integer.
func (r *Record) Int(key string) (int, error) {
	value, ok := r.Headers.Get(key)
	if !ok {
		return 0, fmt.Errorf("missing header: %s", key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("header %s: %w", key, err)
	}
	return n, nil
}

// IsRevision reports whether the record declares a new revision.
func (r *Record) IsRevision() bool {
	return r.Has(RevisionNumberHeader)
}
