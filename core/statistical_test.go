package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingRanker struct {
	panics bool
}

func (f failingRanker) Name() string { return "failing" }

func (f failingRanker) Rank(string, int) ([]ScoredKeyword, error) {
	if f.panics {
		panic("boom")
	}
	return nil, errors.New("ranker unavailable")
}

const yakeSample = "Kubernetes operator for Postgres clusters. The Kubernetes operator automates failover " +
	"and backups for Postgres. Deploy the operator with Helm and watch Postgres clusters heal.\n" +
	"Backups are stored in object storage."

// TestStatisticalExtractFallback tests that a failing ranker falls back to word frequency.
func TestStatisticalExtractFallback(t *testing.T) {
	tests := []struct {
		name    string
		primary KeywordRanker
	}{
		{"error", failingRanker{}},
		{"panic", failingRanker{panics: true}},
		{"none", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, logs := observer.New(zapcore.WarnLevel)
			s := NewStatisticalExtractor(zap.New(obs), tt.primary)

			kws := s.Extract("rust rust zig go go go", 5)
			require.Len(t, kws, 2)
			assert.Equal(t, ScoredKeyword{Keyword: "rust", Score: 0, Source: "frequency"}, kws[0])
			assert.Equal(t, ScoredKeyword{Keyword: "zig", Score: 0.5, Source: "frequency"}, kws[1])
			if tt.primary != nil {
				assert.Equal(t, 1, logs.FilterMessage("Keyword ranker failed, using fallback").Len())
			}
		})
	}
}

// TestStatisticalExtractEmpty tests blank input.
func TestStatisticalExtractEmpty(t *testing.T) {
	s := NewStatisticalExtractor(nil, NewYakeRanker())
	assert.Empty(t, s.Extract("", 10))
	assert.Empty(t, s.Extract(" \n\t", 10))
}

// TestYakeRank tests ranking properties of the default ranker.
func TestYakeRank(t *testing.T) {
	y := NewYakeRanker()
	kws, err := y.Rank(yakeSample, 10)
	require.NoError(t, err)
	require.NotEmpty(t, kws)
	assert.LessOrEqual(t, len(kws), 10)

	for i, kw := range kws {
		assert.Equal(t, "yake", kw.Source)
		words := strings.Fields(strings.ToLower(kw.Keyword))
		assert.False(t, y.isStop(words[0]), kw.Keyword)
		assert.False(t, y.isStop(words[len(words)-1]), kw.Keyword)
		assert.LessOrEqual(t, len(words), y.MaxNgram)
		if i > 0 {
			assert.GreaterOrEqual(t, kw.Score, kws[i-1].Score)
		}
	}

	again, err := y.Rank(yakeSample, 10)
	require.NoError(t, err)
	assert.Equal(t, kws, again)

	defaults := NewStatisticalExtractor(nil, y).Extract(yakeSample, 0)
	assert.LessOrEqual(t, len(defaults), defaultStatisticalKeywords)
}

// TestYakeRankWithoutWords tests input without word tokens.
func TestYakeRankWithoutWords(t *testing.T) {
	kws, err := NewYakeRanker().Rank("... !!! ???", 5)
	require.NoError(t, err)
	assert.Empty(t, kws)
}

// TestFilterTechnical tests the score threshold and technical heuristics.
func TestFilterTechnical(t *testing.T) {
	kws := []ScoredKeyword{
		{Keyword: "Kubernetes", Score: 0.1},
		{Keyword: "object storage", Score: 0.2},
		{Keyword: "hello", Score: 0.1},
		{Keyword: "api gateway", Score: 0.5},
		{Keyword: "database", Score: 0.05},
	}
	out := FilterTechnical(kws, 0.3)
	assert.Equal(t, []string{"Kubernetes", "object storage", "database"}, []string{out[0].Keyword, out[1].Keyword, out[2].Keyword})
	assert.Len(t, out, 3)
}

// TestMergeWithPatterns tests ordering and case-insensitive duplicates.
func TestMergeWithPatterns(t *testing.T) {
	stat := []ScoredKeyword{{Keyword: "python"}, {Keyword: "Kubernetes operator"}}
	patterns := []string{"Python", "Docker"}

	assert.Equal(t, []string{"Python", "Docker", "Kubernetes operator"}, MergeWithPatterns(stat, patterns, false))
	assert.Equal(t, []string{"python", "Kubernetes operator", "Docker"}, MergeWithPatterns(stat, patterns, true))
	assert.Equal(t, []string{}, MergeWithPatterns(nil, nil, false))
}

// TestSimilarity tests the normalized edit distance.
func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("", ""))
	assert.Equal(t, 1.0, similarity("postgres", "postgres"))
	assert.InDelta(t, 1-3.0/7, similarity("kitten", "sitting"), 1e-9)
	assert.InDelta(t, 0.0, similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 1-2.0/6, similarity("gopher", "golfer"), 1e-9)
}

// TestIsAcronym tests acronym detection.
func TestIsAcronym(t *testing.T) {
	tests := []struct {
		tok      string
		expected bool
	}{
		{"API", true},
		{"K8S", true},
		{"A", false},
		{"Api", false},
		{"42", false},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			assert.Equal(t, tt.expected, isAcronym(tt.tok))
		})
	}
}
