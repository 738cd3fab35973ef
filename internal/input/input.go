// Package input decodes JSON, YAML, CSV and TSV documents into tables.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bjaus/table2md"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrUnsupportedShape  = errors.New("unsupported document shape")
)

// Format is an input document format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
	TSV  Format = "tsv"
)

var formats = []Format{JSON, YAML, CSV, TSV}

var extensions = map[string]Format{
	".json": JSON,
	".yaml": YAML,
	".yml":  YAML,
	".csv":  CSV,
	".tsv":  TSV,
	".tab":  TSV,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported input formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return f, ok
}

// Decode reads one document from r.
//
// JSON and YAML documents must be a sequence of sequences (the first being
// the header) or a sequence of mappings (the first mapping's keys, in document
// order, being the header). CSV and TSV records become rows as is; ragged
// records are kept so that validation can report them.
//
// An empty document decodes to an empty table.
func Decode(r io.Reader, f Format) (*table2md.Table, error) {
	switch f {
	case JSON:
		return decodeJSON(r)
	case YAML:
		return decodeYAML(r)
	case CSV:
		return decodeCSV(r, ',')
	case TSV:
		return decodeCSV(r, '\t')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func decodeCSV(r io.Reader, comma rune) (*table2md.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	if comma == '\t' {
		cr.LazyQuotes = true
	}
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", csvName(comma), err)
	}
	// The records are ours alone, so the table may own them.
	return table2md.New(records), nil
}

func csvName(comma rune) Format {
	if comma == '\t' {
		return TSV
	}
	return CSV
}
