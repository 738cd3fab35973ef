package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bjaus/table2md"
)

// decodeJSON walks the document token by token so object keys keep their
// document order, which decoding into a map[string]any would lose.
func decodeJSON(r io.Reader) (*table2md.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return table2md.New(nil), nil
	}
	if err != nil {
		return nil, jsonError(err)
	}
	if tok != json.Delim('[') {
		return nil, fmt.Errorf("%w: top level is a %s, want an array", ErrUnsupportedShape, tokenName(tok))
	}

	var (
		rows  [][]string
		maps  []table2md.OrderedMap
		shape json.Delim
	)
	for i := 0; dec.More(); i++ {
		tok, err := dec.Token()
		if err != nil {
			return nil, jsonError(err)
		}
		if i == 0 {
			d, ok := tok.(json.Delim)
			if !ok || (d != '[' && d != '{') {
				return nil, fmt.Errorf("%w: item 0 is a %s, want an array or object", ErrUnsupportedShape, tokenName(tok))
			}
			shape = d
		}
		if tok != shape {
			return nil, fmt.Errorf("%w: item %d is a %s, want %s", ErrUnsupportedShape, i, tokenName(tok), tokenName(shape))
		}
		if shape == '[' {
			row, err := jsonArray(dec)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
			continue
		}
		m, err := jsonObject(dec)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding %s: trailing data after top-level array", JSON)
	}

	if shape == '{' {
		return table2md.FromMappings(maps...)
	}
	// The rows were built here and are not shared.
	return table2md.New(rows), nil
}

// jsonArray reads the cells of an array whose opening bracket was consumed.
func jsonArray(dec *json.Decoder) ([]string, error) {
	row := []string{}
	for dec.More() {
		cell, err := jsonCell(dec)
		if err != nil {
			return nil, err
		}
		row = append(row, cell)
	}
	return row, expectDelim(dec, ']')
}

// jsonObject reads the pairs of an object whose opening brace was consumed.
func jsonObject(dec *json.Decoder) (table2md.OrderedMap, error) {
	var m table2md.OrderedMap
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, jsonError(err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decoding %s: object key is %v", JSON, tok)
		}
		value, err := jsonCell(dec)
		if err != nil {
			return nil, err
		}
		m = append(m, table2md.KeyValue{Key: key, Value: value})
	}
	return m, expectDelim(dec, '}')
}

// jsonCell returns a value's cell text. Strings are unquoted, null is an
// empty cell, numbers keep their source text, and nested arrays or objects
// are written as compact JSON.
func jsonCell(dec *json.Decoder) (string, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return "", jsonError(err)
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", jsonError(err)
		}
		return s, nil
	case 'n':
		return "", nil
	case '[', '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", jsonError(err)
		}
		return buf.String(), nil
	default:
		return string(raw), nil
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return jsonError(err)
	}
	if tok != want {
		return fmt.Errorf("decoding %s: got %v, want %v", JSON, tok, want)
	}
	return nil
}

// jsonError wraps a decoder error. Running out of input inside the document
// is reported as io.ErrUnexpectedEOF rather than a clean end.
func jsonError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("decoding %s: %w", JSON, err)
}

func tokenName(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "array"
		}
		if t == '{' {
			return "object"
		}
		return fmt.Sprintf("%q", rune(t))
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
