package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMatchKeyword tests the length-based matching rule.
func TestMatchKeyword(t *testing.T) {
	tests := []struct {
		name     string
		keyword  string
		text     string
		expected bool
	}{
		{"short keyword as word", "ai", "an ai assistant", true},
		{"short keyword inside word", "ai", "try again later", false},
		{"short keyword inside mainframe", "ai", "legacy mainframe", false},
		{"short keyword at start", "api", "api gateway", true},
		{"short keyword at end", "api", "rest api", true},
		{"short keyword with punctuation", "api", "fastapi-based (api)", true},
		{"short keyword glued to word", "api", "fastapi-based", false},
		{"long keyword as substring", "commerce", "e-commerce checkout", true},
		{"long keyword missing", "stripe", "paypal checkout", false},
		{"empty keyword", "", "anything", false},
		{"empty text", "ml", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchKeyword(tt.keyword, tt.text))
		})
	}
}

// TestContainsWord tests regex-like word boundaries.
func TestContainsWord(t *testing.T) {
	assert.True(t, ContainsWord("uses react and redux", "react"))
	assert.False(t, ContainsWord("uses reactive streams", "react"))
	assert.True(t, ContainsWord("second go at go", "go"))
	assert.False(t, ContainsWord("google golang", "go"))
	assert.True(t, ContainsWord("built with next.js today", "next.js"))
	assert.True(t, ContainsWord("snake_case_api", "snake_case_api"))
	assert.False(t, ContainsWord("my_api", "api"))
	assert.True(t, ContainsWord("café ml", "ml"))
}

// TestTitle tests word title casing.
func TestTitle(t *testing.T) {
	tests := map[string]string{
		"fastapi":        "Fastapi",
		"next.js":        "Next.Js",
		"react-native":   "React-Native",
		"github actions": "Github Actions",
		"web3":           "Web3",
		"3d printing":    "3D Printing",
		"MONGODB":        "Mongodb",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Title(in), in)
	}
}

// TestCapitalize tests first-letter capitalization.
func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Javascript", Capitalize("javascript"))
	assert.Equal(t, "Numpy", Capitalize("NumPy"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "@types", Capitalize("@TYPES"))
}

// TestRound1 tests one-decimal rounding.
func TestRound1(t *testing.T) {
	assert.Equal(t, 6.6, Round1(6.6000000001))
	assert.Equal(t, 2.2, Round1(2.25))
	assert.Equal(t, 7.0, Round1(7))
	assert.Equal(t, 33.3, Round1(100.0/3))
}

// TestHead tests slice truncation.
func TestHead(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Head([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1}, Head([]int{1}, 5))
	assert.Empty(t, Head([]int{1}, -1))
}

// TestCounter tests accumulation and stable ordering.
func TestCounter(t *testing.T) {
	c := NewCounter()
	c.Add("b", 1.3)
	c.Add("a", 2.0)
	c.Add("c", 2.0)
	c.Add("b", 0.7)

	assert.Equal(t, 3, c.Len())
	assert.InDelta(t, 2.0, c.Get("b"), 1e-9)
	assert.Equal(t, 0.0, c.Get("missing"))

	// b, a and c all hold 2.0; insertion order breaks the tie.
	assert.Equal(t, []string{"b", "a", "c"}, Keys(c.MostCommon(-1)))
	assert.Equal(t, []string{"b", "a"}, Keys(c.MostCommon(2)))

	c.Add("c", 0.1)
	assert.Equal(t, []string{"c", "b", "a"}, Keys(c.MostCommon(3)))
	assert.Equal(t, []string{"b", "a", "c"}, Keys(c.Entries()))
}
