package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevisionSet_AddAndContains(t *testing.T) {
	s := NewRevisionSet()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(1))

	assert.True(t, s.Add(1))
	assert.True(t, s.Add(5))
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(3))
	assert.Equal(t, 2, s.Len())
}

func TestRevisionSet_AddIsIdempotent(t *testing.T) {
	s := NewRevisionSet()
	assert.True(t, s.Add(7))
	assert.False(t, s.Add(7), "second insertion of the same revision should report false")
	assert.Equal(t, 1, s.Len())
}

func TestRevisionSet_ValuesAscending(t *testing.T) {
	s := NewRevisionSet()
	for _, rev := range []Revision{9, 1, 5, 3, 1, 9} {
		s.Add(rev)
	}

	assert.Equal(t, []Revision{1, 3, 5, 9}, s.Values())
}

func TestRevisionSet_EmptyValues(t *testing.T) {
	s := NewRevisionSet()
	assert.Empty(t, s.Values())
}

func TestAnomaly_String(t *testing.T) {
	t.Run("with revision", func(t *testing.T) {
		a := Anomaly{Kind: DuplicateRevision, Revision: 42, Detail: "declared twice"}
		assert.Equal(t, "duplicate-revision (r42): declared twice", a.String())
	})

	t.Run("without revision", func(t *testing.T) {
		a := Anomaly{Kind: AmbiguousTrailer, Detail: "revision portion not an integer"}
		assert.Equal(t, "ambiguous-trailer: revision portion not an integer", a.String())
	})
}
