package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombinedScoreWeights(t *testing.T) {
	got := CombinedScore(0.8, 0.5)
	assert.InDelta(t, 0.71, got, 0.001)
}

func TestRankHybridOrdersByCombinedScore(t *testing.T) {
	matches := []Match{
		{Text: "lexical heavy", VectorScore: 0.2, LexicalScore: 0.9},
		{Text: "vector heavy", VectorScore: 0.9, LexicalScore: 0.1},
		{Text: "middling", VectorScore: 0.5, LexicalScore: 0.5},
	}

	ranked := rankHybrid(matches, 10)

	assert.Len(t, ranked, 3)
	assert.Equal(t, "vector heavy", ranked[0].Text)
	assert.Equal(t, "middling", ranked[1].Text)
	assert.Equal(t, "lexical heavy", ranked[2].Text)
	for _, m := range ranked {
		assert.InDelta(t, CombinedScore(m.VectorScore, m.LexicalScore), m.CombinedScore, 1e-9)
	}
}

func TestRankHybridVectorTiebreak(t *testing.T) {
	// 0.7*0.5 + 0.3*0.9 == 0.7*0.8 + 0.3*0.2 == 0.62
	matches := []Match{
		{Text: "low vector", VectorScore: 0.5, LexicalScore: 0.9},
		{Text: "high vector", VectorScore: 0.8, LexicalScore: 0.2},
	}
	ranked := rankHybrid(matches, 2)

	assert.Equal(t, "high vector", ranked[0].Text)
	assert.Equal(t, "low vector", ranked[1].Text)
}

func TestRankHybridTruncatesToLimit(t *testing.T) {
	matches := make([]Match, 8)
	for i := range matches {
		matches[i].VectorScore = float64(i) / 10
	}

	ranked := rankHybrid(matches, 3)

	assert.Len(t, ranked, 3)
	assert.Equal(t, 0.7, ranked[0].VectorScore)
}

func TestRankHybridEmpty(t *testing.T) {
	assert.Empty(t, rankHybrid(nil, 5))
}
