package constants

import "strings"

// SourceFormat classifies where a document's text comes from.
type SourceFormat string

const (
	IMAGE SourceFormat = "IMAGE"
	PDF   SourceFormat = "PDF"
	DOCX  SourceFormat = "DOCX"
	TEXT  SourceFormat = "TEXT"
)

// SourceFormats holds the allowed values for the document source_format field.
var SourceFormats = []string{string(IMAGE), string(PDF), string(DOCX), string(TEXT)}

var extToFormat = map[string]SourceFormat{
	"jpg":  IMAGE,
	"jpeg": IMAGE,
	"png":  IMAGE,
	"tiff": IMAGE,
	"bmp":  IMAGE,
	"pdf":  PDF,
	"doc":  DOCX,
	"docx": DOCX,
	"txt":  TEXT,
	"md":   TEXT,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat returns the source format for a file extension, or "" when
// the extension is not supported.
func MapExtToFormat(ext string) SourceFormat {
	return extToFormat[NormalizeExt(ext)]
}
