package ocr

// WeightedConfidence computes the length-weighted mean of per-word
// confidences. Longer words carry more weight (harder to misread), with
// weight = max(1, len/3). Returns 0 for an empty word list.
func WeightedConfidence(words []WordConfidence) float32 {
	if len(words) == 0 {
		return 0.0
	}

	var weightedSum, totalWeight float64
	for _, wc := range words {
		weight := float64(len(wc.Word)) / 3.0
		if weight < 1.0 {
			weight = 1.0
		}
		weightedSum += float64(wc.Confidence) * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0.0
	}
	return float32(weightedSum / totalWeight)
}
