package ocr

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTSV = `level	page_num	block_num	par_num	line_num	word_num	left	top	width	height	conf	text
1	1	0	0	0	0	0	0	640	480	-1
5	1	1	1	1	1	10	10	50	20	91	Study
5	1	1	1	1	2	70	10	60	20	88	notes
5	1	1	1	2	1	10	40	80	20	75	chapter
5	1	2	1	1	1	10	80	40	20	60	two
5	1	2	1	1	2	60	80	10	20	-1
`

func TestParseTSV(t *testing.T) {
	words, text := parseTSV(sampleTSV)

	require.Len(t, words, 4)
	assert.Equal(t, "Study", words[0].Word)
	assert.InDelta(t, 0.91, words[0].Confidence, 0.0001)

	// lines grouped by (block, line) in order
	assert.Equal(t, "Study notes\nchapter\ntwo", text)
}

func TestParseTSVEmptyOutput(t *testing.T) {
	words, text := parseTSV("level	page_num	block_num	par_num	line_num	word_num	left	top	width	height	conf	text\n")
	assert.Empty(t, words)
	assert.Empty(t, text)
}

type fakeRunner struct {
	stdout string
	err    error
}

func (f fakeRunner) Run(_ context.Context, _ *slog.Logger, _ string, _ ...string) ([]byte, []byte, error) {
	return []byte(f.stdout), nil, f.err
}

func TestTesseractExtract(t *testing.T) {
	prov := NewTesseract(TesseractConfig{PSM: 6}, nil).WithRunner(fakeRunner{stdout: sampleTSV})

	res, err := prov.Extract(context.Background(), []byte("fake-png"))
	require.NoError(t, err)

	assert.Equal(t, "tesseract", res.Provider)
	assert.True(t, strings.HasPrefix(res.Text, "Study notes"))
	assert.Len(t, res.WordConfidences, 4)
	assert.Greater(t, res.Confidence, float32(0.0))
	assert.LessOrEqual(t, res.Confidence, float32(1.0))
}

func TestTesseractExtractEmptyPage(t *testing.T) {
	prov := NewTesseract(TesseractConfig{}, nil).WithRunner(fakeRunner{stdout: "level\tconf\ttext\n"})

	res, err := prov.Extract(context.Background(), []byte("fake-png"))
	require.NoError(t, err)

	// empty extraction is a valid low-confidence result, not an error
	assert.Empty(t, res.Text)
	assert.Equal(t, float32(0.0), res.Confidence)
}
