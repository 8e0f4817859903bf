package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lower", "Apple Pie", "apple pie"},
		{"ampersand", "Fish & Chips", "fish and chips"},
		{"punctuation", "Rock 'n' Roll!", "rock n roll"},
		{"hyphen joins", "e-mail", "email"},
		{"spaced hyphen collapses", "a - b", "a b"},
		{"trim", "   padded   ", "padded"},
		{"tabs are dropped", "a\tb", "ab"},
		{"digits", "Route 66", "route 66"},
		{"non ascii dropped", "Café", "caf"},
		{"empty", "", ""},
		{"only punctuation", "?!.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Simplify.Normalize(tt.in))
		})
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "cafe creme", Fold.Normalize("Café Crème"))
	assert.Equal(t, "naive", Fold.Normalize("naïve"))
	assert.Equal(t, "fish and chips", Fold.Normalize("Fish & Chips"))
}

func TestChain(t *testing.T) {
	upper := Func(strings.ToUpper)
	n := Chain(Simplify, upper)
	assert.Equal(t, "HELLO WORLD", n.Normalize("Hello,   World"))
	assert.Equal(t, "abc", Chain().Normalize("abc"))
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "simplify", "fold", "identity", "none"} {
		n, ok := ByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, n)
	}

	_, ok := ByName("soundex")
	assert.False(t, ok)
}

func TestSimplifyIdempotent(t *testing.T) {
	in := "  The Quick, Brown & Lazy Fox!  "
	once := Simplify.Normalize(in)
	assert.Equal(t, once, Simplify.Normalize(once))
}
