package core

import (
	"math"
	"testing"

	"github.com/huangsam/hiresignal/schema"
)

// FuzzCalculateScores checks the score bounds for arbitrary metrics.
func FuzzCalculateScores(f *testing.F) {
	f.Add(0, 0.0, 0)
	f.Add(15, 50.0, 3)
	f.Add(1000, 100.0, 999)
	f.Add(-5, -10.0, -1)

	s := NewScoringEngine()
	f.Fuzz(func(t *testing.T, stars int, docPct float64, days int) {
		if math.IsNaN(docPct) || math.Abs(docPct) > 1e6 {
			return
		}
		m := &schema.Metrics{TotalStars: stars, DocumentationPercentage: docPct, DaysSinceLastCommit: days}
		scores := s.CalculateScores(m, nil)
		if scores.Overall < 6.0 {
			t.Fatalf("overall %v below floor for %+v", scores.Overall, m)
		}
		if scores.DocsScore > 10 || scores.Consistency > 10 {
			t.Fatalf("component above 10: %+v", scores)
		}
		if scores.Depth == "" {
			t.Fatal("missing depth label")
		}
	})
}
