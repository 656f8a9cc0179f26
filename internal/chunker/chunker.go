// Package chunker splits document text into retrieval-sized chunks while
// preserving semantic boundaries.
package chunker

import (
	"regexp"
	"strings"
)

// Defaults for chunking parameters.
const (
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 100
	DefaultMinChunkSize = 100
)

// Chunk is a draft chunk before embedding and persistence. Character offsets
// are approximate: overlap reuse makes exact reverse-mapping to the source
// ambiguous.
type Chunk struct {
	Index     int
	Text      string
	CharStart int
	CharEnd   int
}

// Config holds chunking parameters.
type Config struct {
	ChunkSize    int // target size per chunk, characters
	ChunkOverlap int // carried between consecutive chunks for continuity
	MinChunkSize int // below this, the whole text is one chunk
}

// Chunker accumulates paragraphs greedily into chunks of roughly ChunkSize
// characters, seeding each new chunk with the tail of the previous one.
type Chunker struct {
	cfg Config
}

// New applies defaults and returns a Chunker.
func New(cfg Config) *Chunker {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 {
		cfg.ChunkOverlap = DefaultChunkOverlap
	}
	if cfg.MinChunkSize <= 0 {
		cfg.MinChunkSize = DefaultMinChunkSize
	}
	if cfg.ChunkOverlap >= cfg.ChunkSize {
		cfg.ChunkOverlap = cfg.ChunkSize / 4
	}
	return &Chunker{cfg: cfg}
}

type span struct {
	text  string
	start int
}

// paragraph boundaries: blank line, or sentence end followed by a newline
var reParagraphSep = regexp.MustCompile(`\n{2,}|\.\n`)

// Chunk splits text into ordered chunks. Text shorter than MinChunkSize is
// returned as a single chunk (ordinal 0), even when empty.
func (c *Chunker) Chunk(text string) []Chunk {
	if len(text) < c.cfg.MinChunkSize {
		return []Chunk{{Index: 0, Text: text, CharStart: 0, CharEnd: len(text)}}
	}
	return c.accumulate(splitParagraphs(text))
}

// ChunkSentences is the sentence-granularity variant: same greedy
// accumulate-with-overlap loop over sentences instead of paragraphs. More,
// smaller chunks for callers needing tighter precision.
func (c *Chunker) ChunkSentences(text string) []Chunk {
	if len(text) < c.cfg.MinChunkSize {
		return []Chunk{{Index: 0, Text: text, CharStart: 0, CharEnd: len(text)}}
	}
	return c.accumulate(splitSentences(text))
}

// accumulate greedily packs spans into chunks of at most ChunkSize
// characters, flushing when the next span would overflow and seeding the
// next buffer with the flushed chunk's trailing overlap.
func (c *Chunker) accumulate(spans []span) []Chunk {
	var chunks []Chunk
	var buf string
	bufStart := 0
	index := 0

	flush := func() {
		trimmed := strings.TrimSpace(buf)
		chunks = append(chunks, Chunk{
			Index:     index,
			Text:      trimmed,
			CharStart: bufStart,
			CharEnd:   bufStart + len(trimmed),
		})
		index++
	}

	for _, s := range spans {
		candidate := s.text
		if buf != "" {
			candidate = buf + "\n\n" + s.text
		}

		if len(candidate) <= c.cfg.ChunkSize {
			if buf == "" {
				bufStart = s.start
			}
			buf = candidate
			continue
		}

		if buf == "" {
			// A single oversized span becomes its own oversized chunk.
			buf = s.text
			bufStart = s.start
			continue
		}

		flush()

		if c.cfg.ChunkOverlap > 0 {
			seed := tail(strings.TrimSpace(buf), c.cfg.ChunkOverlap)
			buf = seed + "\n\n" + s.text
			bufStart = s.start - len(seed)
			if bufStart < 0 {
				bufStart = 0
			}
		} else {
			buf = s.text
			bufStart = s.start
		}
	}

	if buf != "" {
		flush()
	}
	if chunks == nil {
		chunks = []Chunk{{Index: 0, Text: "", CharStart: 0, CharEnd: 0}}
	}
	return chunks
}

// splitParagraphs returns non-empty paragraphs with their approximate start
// offsets. A sentence-end separator keeps its period with the paragraph.
func splitParagraphs(text string) []span {
	var spans []span
	prev := 0

	appendPart := func(start, end int) {
		part := text[start:end]
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			return
		}
		offset := start + strings.Index(part, trimmed[:1])
		spans = append(spans, span{text: trimmed, start: offset})
	}

	for _, loc := range reParagraphSep.FindAllStringIndex(text, -1) {
		end := loc[0]
		if text[loc[0]] == '.' {
			end = loc[0] + 1 // keep the period with its paragraph
		}
		appendPart(prev, end)
		prev = loc[1]
	}
	appendPart(prev, len(text))
	return spans
}

// splitSentences splits on sentence-ending punctuation followed by
// whitespace, keeping the punctuation.
func splitSentences(text string) []span {
	var spans []span
	prev := 0

	appendPart := func(start, end int) {
		trimmed := strings.TrimSpace(text[start:end])
		if trimmed == "" {
			return
		}
		spans = append(spans, span{text: trimmed, start: start})
	}

	for i := 0; i < len(text)-1; i++ {
		ch := text[i]
		if (ch == '.' || ch == '!' || ch == '?') && isSpace(text[i+1]) {
			appendPart(prev, i+1)
			prev = i + 1
		}
	}
	appendPart(prev, len(text))
	return spans
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
