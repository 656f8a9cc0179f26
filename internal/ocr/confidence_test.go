package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedConfidence(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, float32(0.0), WeightedConfidence(nil))
	})

	t.Run("single word", func(t *testing.T) {
		got := WeightedConfidence([]WordConfidence{{Word: "note", Confidence: 0.8}})
		assert.InDelta(t, 0.8, got, 0.0001)
	})

	t.Run("longer words weigh more", func(t *testing.T) {
		// "a" -> weight 1.0, "elephant" -> weight 8/3 ~= 2.67
		// (0.90*1.0 + 0.50*2.67) / 3.67 ~= 0.59
		got := WeightedConfidence([]WordConfidence{
			{Word: "a", Confidence: 0.90},
			{Word: "elephant", Confidence: 0.50},
		})
		assert.InDelta(t, 0.59, got, 0.01)
	})

	t.Run("uniform confidence is preserved", func(t *testing.T) {
		got := WeightedConfidence([]WordConfidence{
			{Word: "short", Confidence: 0.7},
			{Word: "considerably longer word", Confidence: 0.7},
		})
		assert.InDelta(t, 0.7, got, 0.0001)
	})
}
