package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/quickspot/codec"
	"github.com/hupe1980/quickspot/record"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Pick returns a pseudo-random element of choices.
func (r *RNG) Pick(choices []string) string {
	return choices[r.Intn(len(choices))]
}

var (
	firstNames = []string{"Ada", "Grace", "Alan", "Barbara", "Edsger", "Margaret", "Donald", "Frances", "Ken", "Radia", "Linus", "Hedy"}
	lastNames  = []string{"Lovelace", "Hopper", "Turing", "Liskov", "Dijkstra", "Hamilton", "Knuth", "Allen", "Thompson", "Perlman", "Torvalds", "Lamarr"}
	roles      = []string{"engineer", "admiral", "mathematician", "researcher", "architect", "inventor"}
	cities     = []string{"London", "New York", "Zürich", "São Paulo", "Kraków", "Tokyo", "Berlin"}
	tags       = []string{"compilers", "networks", "kernels", "databases", "graphics", "security", "theory"}
)

// Fruit returns a small fixed dataset with a "name" key field and a
// "category" field.
func Fruit() []map[string]any {
	return []map[string]any{
		{"name": "Apple Pie", "category": "dessert"},
		{"name": "Apple", "category": "fruit"},
		{"name": "Banana", "category": "fruit"},
		{"name": "Green Apple", "category": "fruit"},
		{"name": "Pineapple", "category": "fruit"},
		{"name": "Banana Bread", "category": "dessert"},
	}
}

// People returns n pseudo-random person records with a nested address and a
// tag list.
func People(rng *RNG, n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		out[i] = map[string]any{
			"id":   i,
			"name": rng.Pick(firstNames) + " " + rng.Pick(lastNames),
			"role": rng.Pick(roles),
			"address": map[string]any{
				"city": rng.Pick(cities),
			},
			"tags": []any{rng.Pick(tags), rng.Pick(tags)},
		}
	}
	return out
}

// JSON encodes v with the default codec and panics on failure.
func JSON(v any) []byte {
	return codec.MustMarshal(nil, v)
}

// Texts returns the raw text of field for each record, in order.
func Texts(recs []*record.Record, field string) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Text(field)
	}
	return out
}

// Names is Texts for the "name" field.
func Names(recs []*record.Record) []string {
	return Texts(recs, "name")
}

// Contains reports whether recs holds r, compared by identity.
func Contains(recs []*record.Record, r *record.Record) bool {
	for _, x := range recs {
		if x == r {
			return true
		}
	}
	return false
}

// Words splits s on single spaces, like the partial matcher does.
func Words(s string) []string {
	return strings.Split(s, " ")
}
