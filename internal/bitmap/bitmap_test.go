package bitmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Basics(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())

	s.Add(3)
	s.Add(1)
	s.Add(3)
	assert.Equal(t, 2, s.Cardinality())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(2))
	assert.Equal(t, []int{1, 3}, slices.Collect(s.All()))

	s.Remove(1)
	assert.Equal(t, []int{3}, slices.Collect(s.All()))

	s.Clear()
	assert.True(t, s.IsEmpty())
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, slices.Collect(Range(4).All()))
	assert.True(t, Range(0).IsEmpty())

	s := New()
	s.AddRange(5, 5)
	assert.True(t, s.IsEmpty())
}

func TestSet_CloneAndAnd(t *testing.T) {
	a := Range(6)
	b := New()
	b.Add(1)
	b.Add(4)
	b.Add(9)

	c := a.Clone()
	c.And(b)
	assert.Equal(t, []int{1, 4}, slices.Collect(c.All()))
	assert.Equal(t, 6, a.Cardinality())

	assert.True(t, Range(3).Equals(Range(3)))
	assert.False(t, Range(3).Equals(Range(4)))
}

func TestSet_AllStopsEarly(t *testing.T) {
	n := 0
	for range Range(100).All() {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}
