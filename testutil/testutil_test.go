package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quickspot/record"
)

func TestRNG_Deterministic(t *testing.T) {
	a := People(NewRNG(7), 20)
	b := People(NewRNG(7), 20)
	assert.Equal(t, a, b)

	rng := NewRNG(7)
	first := rng.Intn(1000)
	rng.Reset()
	assert.Equal(t, first, rng.Intn(1000))
	assert.Equal(t, int64(7), rng.Seed())
}

func TestFixtures(t *testing.T) {
	recs, err := record.Collect(Fruit())
	require.NoError(t, err)
	assert.Equal(t, []string{"Apple Pie", "Apple", "Banana", "Green Apple", "Pineapple", "Banana Bread"}, Names(recs))
	assert.True(t, Contains(recs, recs[2]))
	assert.False(t, Contains(recs[:2], recs[2]))

	var ds record.Dataset
	require.NoError(t, ds.UnmarshalJSON(JSON(People(NewRNG(1), 3))))
	assert.Equal(t, 3, ds.Len())
}
