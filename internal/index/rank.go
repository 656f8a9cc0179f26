package index

import "sort"

// Hybrid ranking weights: vector similarity dominates, lexical relevance
// nudges.
const (
	vectorWeight  = 0.7
	lexicalWeight = 0.3
)

// CombinedScore blends a vector and a lexical score. A modality that
// produced no match contributes 0.
func CombinedScore(vectorScore, lexicalScore float64) float64 {
	return vectorWeight*vectorScore + lexicalWeight*lexicalScore
}

// rankHybrid fills in combined scores, orders matches by combined score
// descending with ties broken by vector score, and truncates to limit.
func rankHybrid(matches []Match, limit int) []Match {
	for i := range matches {
		matches[i].CombinedScore = CombinedScore(matches[i].VectorScore, matches[i].LexicalScore)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].CombinedScore != matches[j].CombinedScore {
			return matches[i].CombinedScore > matches[j].CombinedScore
		}
		return matches[i].VectorScore > matches[j].VectorScore
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
