package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortTextSingleChunk(t *testing.T) {
	c := New(Config{ChunkSize: 800, ChunkOverlap: 100, MinChunkSize: 100})

	t.Run("empty text", func(t *testing.T) {
		chunks := c.Chunk("")
		require.Len(t, chunks, 1)
		assert.Equal(t, 0, chunks[0].Index)
		assert.Equal(t, "", chunks[0].Text)
		assert.Equal(t, 0, chunks[0].CharStart)
		assert.Equal(t, 0, chunks[0].CharEnd)
	})

	t.Run("below minimum", func(t *testing.T) {
		text := "A short note."
		chunks := c.Chunk(text)
		require.Len(t, chunks, 1)
		assert.Equal(t, text, chunks[0].Text)
		assert.Equal(t, len(text), chunks[0].CharEnd)
	})
}

func TestOrdinalsContiguous(t *testing.T) {
	c := New(Config{ChunkSize: 120, ChunkOverlap: 20, MinChunkSize: 10})

	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("This is a reasonably sized paragraph used for chunk ordering checks.\n\n")
	}

	chunks := c.Chunk(b.String())
	require.Greater(t, len(chunks), 1)
	for i, ch := range chunks {
		assert.Equal(t, i, ch.Index, "ordinals must be 0..n-1 without gaps")
	}
}

func TestOverlapSeedsNextChunk(t *testing.T) {
	c := New(Config{ChunkSize: 20, ChunkOverlap: 5, MinChunkSize: 5})

	chunks := c.Chunk("Paragraph one.\n\nParagraph two that is long enough to overflow.")
	require.GreaterOrEqual(t, len(chunks), 2)

	first := chunks[0].Text
	require.GreaterOrEqual(t, len(first), 5)
	overlap := strings.TrimSpace(first[len(first)-5:])
	assert.True(t, strings.HasPrefix(chunks[1].Text, overlap),
		"second chunk %q must begin with trailing overlap %q of the first", chunks[1].Text, overlap)
}

func TestParagraphBoundariesRespected(t *testing.T) {
	c := New(Config{ChunkSize: 60, ChunkOverlap: 0, MinChunkSize: 10})

	chunks := c.Chunk("First paragraph here.\n\nSecond paragraph here.\n\nThird paragraph that finally tips the running buffer over the limit.")
	require.GreaterOrEqual(t, len(chunks), 2)

	// paragraphs that fit together stay joined by a blank line
	assert.Contains(t, chunks[0].Text, "First paragraph here.")
	assert.Contains(t, chunks[0].Text, "Second paragraph here.")
}

func TestSentenceEndNewlineBoundary(t *testing.T) {
	c := New(Config{ChunkSize: 1000, ChunkOverlap: 0, MinChunkSize: 10})

	chunks := c.Chunk("Sentence one ends here.\nNext line is its own paragraph because of the period-newline boundary, and this text is long enough to chunk.")
	require.Len(t, chunks, 1)
	// the period stays with its sentence
	assert.Contains(t, chunks[0].Text, "Sentence one ends here.")
}

func TestOversizedParagraphBecomesOwnChunk(t *testing.T) {
	c := New(Config{ChunkSize: 50, ChunkOverlap: 10, MinChunkSize: 10})

	long := strings.Repeat("word ", 30) // one paragraph, ~150 chars
	chunks := c.Chunk(strings.TrimSpace(long))
	require.Len(t, chunks, 1)
	assert.Greater(t, len(chunks[0].Text), 50, "an unsplittable paragraph is kept whole")
}

func TestChunkSentencesVariant(t *testing.T) {
	c := New(Config{ChunkSize: 60, ChunkOverlap: 10, MinChunkSize: 10})

	text := "One sentence here. Another sentence there. A third one now! And a fourth, somewhat longer sentence to push past the limit? Finally a fifth."
	paragraph := c.Chunk(text)
	sentence := c.ChunkSentences(text)

	assert.GreaterOrEqual(t, len(sentence), len(paragraph),
		"sentence granularity yields at least as many chunks")
	for i, ch := range sentence {
		assert.Equal(t, i, ch.Index)
		assert.NotEmpty(t, ch.Text)
	}
}

func TestOffsetsNonDecreasing(t *testing.T) {
	c := New(Config{ChunkSize: 80, ChunkOverlap: 15, MinChunkSize: 10})

	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("A paragraph that carries some position information onward.\n\n")
	}
	chunks := c.Chunk(b.String())
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		assert.GreaterOrEqual(t, chunks[i].CharStart, chunks[i-1].CharStart,
			"approximate offsets still move forward")
	}
	for _, ch := range chunks {
		assert.Equal(t, ch.CharStart+len(ch.Text), ch.CharEnd)
	}
}
