// Package testutil provides fixtures for tests and benchmarks.
//
// It is intended for use in tests only.
//
//	store, _ := quickspot.New(testutil.Fruit())
//	rng := testutil.NewRNG(42)
//	people := testutil.People(rng, 1000)
package testutil
