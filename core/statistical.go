package core

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agext/levenshtein"
	"go.uber.org/zap"

	"github.com/huangsam/hiresignal/core/algo"
	"github.com/huangsam/hiresignal/core/keywords"
)

const (
	defaultStatisticalKeywords = 30
	defaultMaxNgram            = 3
	defaultDedupLimit          = 0.9
)

var (
	sentenceSplit = regexp.MustCompile(`[.!?]+\s+|\n+`)
	yakeToken     = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}_+#'-]*|[^\p{L}\p{N}\s]+`)
	frequencyWord = regexp.MustCompile(`\b[a-z]{3,}\b`)
)

// ErrNoRanker is returned when a StatisticalExtractor has no ranker to run.
var ErrNoRanker = errors.New("no keyword ranker configured")

// ScoredKeyword is a statistically ranked keyword. Lower scores are more relevant.
type ScoredKeyword struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
	Source  string  `json:"source"`
}

// KeywordRanker ranks the keywords of a text, most relevant first.
type KeywordRanker interface {
	Name() string
	Rank(text string, n int) ([]ScoredKeyword, error)
}

// StatisticalExtractor runs a primary ranker and falls back to a simpler one
// when the primary fails. Failures are logged, never returned.
type StatisticalExtractor struct {
	log      *zap.Logger
	primary  KeywordRanker
	fallback KeywordRanker
}

// NewStatisticalExtractor returns an extractor over primary with a frequency
// fallback. A nil primary leaves only the fallback.
func NewStatisticalExtractor(log *zap.Logger, primary KeywordRanker) *StatisticalExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatisticalExtractor{log: log, primary: primary, fallback: FrequencyRanker{}}
}

// Extract returns at most n ranked keywords of text; n <= 0 uses the default.
func (s *StatisticalExtractor) Extract(text string, n int) []ScoredKeyword {
	if strings.TrimSpace(text) == "" {
		return []ScoredKeyword{}
	}
	if n <= 0 {
		n = defaultStatisticalKeywords
	}
	if s.primary != nil {
		kws, err := safeRank(s.primary, text, n)
		if err == nil {
			s.log.Debug("Ranked keywords", zap.String("ranker", s.primary.Name()), zap.Int("count", len(kws)))
			return kws
		}
		s.log.Warn("Keyword ranker failed, using fallback", zap.String("ranker", s.primary.Name()), zap.Error(err))
	}
	kws, err := safeRank(s.fallback, text, n)
	if err != nil {
		s.log.Warn("Fallback keyword ranker failed", zap.Error(err))
		return []ScoredKeyword{}
	}
	return kws
}

func safeRank(r KeywordRanker, text string, n int) (kws []ScoredKeyword, err error) {
	if r == nil {
		return nil, ErrNoRanker
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s ranker panicked: %v", r.Name(), p)
		}
	}()
	return r.Rank(text, n)
}

// FilterTechnical keeps keywords scoring at most threshold that look
// technical: a known technical term, a multi-word phrase or a capitalized name.
func FilterTechnical(kws []ScoredKeyword, threshold float64) []ScoredKeyword {
	out := []ScoredKeyword{}
	for _, kw := range kws {
		if kw.Score > threshold {
			continue
		}
		lower := strings.ToLower(kw.Keyword)
		technical := algo.ContainsAny(lower, keywords.TechnicalTerms...)
		compound := strings.Contains(kw.Keyword, " ")
		capitalized := strings.IndexFunc(kw.Keyword, unicode.IsUpper) >= 0
		if technical || compound || capitalized {
			out = append(out, kw)
		}
	}
	return out
}

// MergeWithPatterns merges statistical and pattern keywords without case-insensitive
// duplicates. Pattern keywords come first unless preferStatistical is set.
func MergeWithPatterns(statistical []ScoredKeyword, patterns []string, preferStatistical bool) []string {
	stat := make([]string, len(statistical))
	for i, kw := range statistical {
		stat[i] = kw.Keyword
	}
	first, second := patterns, stat
	if preferStatistical {
		first, second = stat, patterns
	}
	seen := make(map[string]struct{}, len(first)+len(second))
	merged := []string{}
	for _, group := range [][]string{first, second} {
		for _, kw := range group {
			key := strings.ToLower(kw)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, kw)
		}
	}
	return merged
}

// FrequencyRanker scores lowercase words of three or more letters by how
// often they occur: 1 - freq/maxFreq.
type FrequencyRanker struct{}

// Name returns the source tag of this ranker.
func (FrequencyRanker) Name() string { return "frequency" }

// Rank returns the n most frequent words.
func (FrequencyRanker) Rank(text string, n int) ([]ScoredKeyword, error) {
	counts := algo.NewCounter()
	for _, w := range frequencyWord.FindAllString(strings.ToLower(text), -1) {
		counts.Add(w, 1)
	}
	top := counts.MostCommon(n)
	out := make([]ScoredKeyword, 0, len(top))
	if len(top) == 0 {
		return out, nil
	}
	maxFreq := top[0].Value
	for _, e := range top {
		out = append(out, ScoredKeyword{Keyword: e.Key, Score: 1 - e.Value/maxFreq, Source: "frequency"})
	}
	return out, nil
}

// YakeRanker is an unsupervised single-document ranker in the style of YAKE.
// It scores terms by casing, position, frequency, context spread and sentence
// spread, and ranks n-grams of up to MaxNgram terms that neither start nor end
// with a stopword.
type YakeRanker struct {
	MaxNgram   int
	DedupLimit float64
	stopwords  keywords.Set
}

// NewYakeRanker returns a ranker for n-grams of up to three terms.
func NewYakeRanker() *YakeRanker {
	return &YakeRanker{MaxNgram: defaultMaxNgram, DedupLimit: defaultDedupLimit, stopwords: keywords.Stopwords}
}

// Name returns the source tag of this ranker.
func (y *YakeRanker) Name() string { return "yake" }

type yakeTerm struct {
	tf        float64
	upper     float64
	acronym   float64
	sentences []int
	left      map[string]int
	right     map[string]int
	stop      bool
	score     float64
}

type yakeCandidate struct {
	surface string
	terms   []string
	tf      float64
	score   float64
}

// Rank returns the n best keywords of text.
func (y *YakeRanker) Rank(text string, n int) ([]ScoredKeyword, error) {
	terms := make(map[string]*yakeTerm)
	var vocabulary []*yakeTerm
	term := func(key string) *yakeTerm {
		t, ok := terms[key]
		if !ok {
			t = &yakeTerm{left: map[string]int{}, right: map[string]int{}, stop: y.isStop(key)}
			terms[key] = t
			vocabulary = append(vocabulary, t)
		}
		return t
	}

	var chunks [][]string
	sentences := 0
	for _, sentence := range sentenceSplit.Split(text, -1) {
		tokens := yakeToken.FindAllString(sentence, -1)
		if len(tokens) == 0 {
			continue
		}
		var chunk []string
		position := 0
		for _, tok := range tokens {
			if !isWordToken(tok) {
				if len(chunk) > 0 {
					chunks = append(chunks, chunk)
				}
				chunk = nil
				continue
			}
			key := strings.ToLower(tok)
			t := term(key)
			t.tf++
			t.sentences = append(t.sentences, sentences)
			switch {
			case isAcronym(tok):
				t.acronym++
			case position > 0 && startsUpper(tok):
				t.upper++
			}
			if len(chunk) > 0 {
				prev := strings.ToLower(chunk[len(chunk)-1])
				t.left[prev]++
				term(prev).right[key]++
			}
			chunk = append(chunk, tok)
			position++
		}
		if len(chunk) > 0 {
			chunks = append(chunks, chunk)
		}
		sentences++
	}
	if len(terms) == 0 {
		return []ScoredKeyword{}, nil
	}
	scoreTerms(vocabulary, sentences)

	index := make(map[string]*yakeCandidate)
	var candidates []*yakeCandidate
	for _, chunk := range chunks {
		for i := range chunk {
			for size := 1; size <= y.MaxNgram && i+size <= len(chunk); size++ {
				words := chunk[i : i+size]
				keys := make([]string, len(words))
				for k, w := range words {
					keys[k] = strings.ToLower(w)
				}
				if terms[keys[0]].stop || terms[keys[len(keys)-1]].stop {
					continue
				}
				id := strings.Join(keys, " ")
				c, ok := index[id]
				if !ok {
					c = &yakeCandidate{surface: strings.Join(words, " "), terms: keys}
					index[id] = c
					candidates = append(candidates, c)
				}
				c.tf++
			}
		}
	}

	for _, c := range candidates {
		prod, sum := 1.0, 0.0
		for _, k := range c.terms {
			t := terms[k]
			if t.stop {
				continue
			}
			prod *= t.score
			sum += t.score
		}
		c.score = prod / (c.tf * (1 + sum))
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score < candidates[j].score
	})

	out := []ScoredKeyword{}
	for _, c := range candidates {
		if len(out) >= n {
			break
		}
		duplicate := false
		for _, kept := range out {
			if similarity(strings.ToLower(kept.Keyword), strings.Join(c.terms, " ")) > y.DedupLimit {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, ScoredKeyword{Keyword: c.surface, Score: c.score, Source: "yake"})
		}
	}
	return out, nil
}

// scoreTerms computes the relevance of every term, in first-seen order so that
// floating point sums are reproducible.
func scoreTerms(terms []*yakeTerm, sentences int) {
	var tfs []float64
	maxTF := 0.0
	for _, t := range terms {
		maxTF = math.Max(maxTF, t.tf)
		if !t.stop {
			tfs = append(tfs, t.tf)
		}
	}
	mean, std := meanStd(tfs)
	for _, t := range terms {
		casing := math.Max(t.upper, t.acronym) / (1 + math.Log(t.tf))
		position := math.Log(math.Log(3 + median(t.sentences)))
		frequency := t.tf / (mean + std)
		relatedness := 1 + (spread(t.left)+spread(t.right))*t.tf/maxTF
		different := float64(len(unique(t.sentences))) / float64(max(sentences, 1))
		t.score = position * relatedness / (casing + frequency/relatedness + different/relatedness)
	}
}

func (y *YakeRanker) isStop(word string) bool {
	if y.stopwords.Has(word) || utf8.RuneCountInString(word) < 3 {
		return true
	}
	return strings.IndexFunc(word, unicode.IsLetter) < 0
}

func isWordToken(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isAcronym(tok string) bool {
	letters := 0
	for _, r := range tok {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			letters++
		}
	}
	return letters > 1
}

func startsUpper(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsUpper(r)
}

// spread is the number of distinct neighbors over all co-occurrences.
func spread(neighbors map[string]int) float64 {
	total := 0
	for _, c := range neighbors {
		total += c
	}
	if total == 0 {
		return 0
	}
	return float64(len(neighbors)) / float64(total)
}

func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 1, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(variance / float64(len(values)))
}

func median(values []int) float64 {
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func unique(values []int) map[int]struct{} {
	set := make(map[int]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// similarity is one minus the normalized Levenshtein distance of a and b.
func similarity(a, b string) float64 {
	return levenshtein.Similarity(a, b, nil)
}
