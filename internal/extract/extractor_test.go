package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/ocr"
)

func buildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	_, err = w.Write(doc.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractText(t *testing.T) {
	e := NewExtractor(nil, nil)

	res, err := e.Extract(context.Background(), []byte("plain lecture notes"), constants.TEXT, ocr.Options{})

	require.NoError(t, err)
	assert.Equal(t, "plain lecture notes", res.Text)
	assert.Equal(t, constants.ProviderDirect, res.Provider)
	assert.InDelta(t, 1.0, res.Confidence, 1e-6)
	assert.Equal(t, constants.TEXT, res.SourceFormat)
}

func TestExtractDOCX(t *testing.T) {
	e := NewExtractor(nil, nil)
	content := buildDOCX(t, []string{"First paragraph.", "Second paragraph."})

	res, err := e.Extract(context.Background(), content, constants.DOCX, ocr.Options{})

	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", res.Text)
	assert.Equal(t, constants.ProviderDirect, res.Provider)
}

func TestExtractDOCXMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	e := NewExtractor(nil, nil)
	_, err = e.Extract(context.Background(), buf.Bytes(), constants.DOCX, ocr.Options{})

	assert.Error(t, err)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := NewExtractor(nil, nil)

	_, err := e.Extract(context.Background(), []byte("x"), constants.SourceFormat("EPUB"), ocr.Options{})

	assert.Error(t, err)
}

func TestExtractImageWithoutEngine(t *testing.T) {
	e := NewExtractor(nil, nil)

	_, err := e.Extract(context.Background(), []byte{0x89}, constants.IMAGE, ocr.Options{})

	assert.Error(t, err)
}

func TestNormalizeWhitespace(t *testing.T) {
	in := "line one  \n\n\n\nline two\t\n"
	assert.Equal(t, "line one\n\nline two", normalizeWhitespace(in))
}
