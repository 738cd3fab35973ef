package table2md

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

const tagName = "table2md"

type structField struct {
	name  string
	index []int
}

// FromStructs builds a table from struct values (or pointers to them).
//
// The header lists the exported fields of the first item's type. A field tag
// `table2md:"name"` renames its column and `table2md:"-"` drops it. Each item
// contributes the text of its own fields, so items of different struct types
// may produce a ragged table; as with [FromRecords], only [Table.Validate]
// reports that. An item implementing [Rower] contributes its Row instead, and
// a first item implementing [Headed] supplies the header.
func FromStructs[T any](items ...T) (*Table, error) {
	var data [][]string
	for i, item := range items {
		v := reflect.ValueOf(item)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil, fmt.Errorf("%w: item %d is a nil %T", ErrNotStruct, i, item)
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil, fmt.Errorf("%w: item %d is %T", ErrNotStruct, i, item)
		}
		fields := structFields(v.Type())
		if len(data) == 0 {
			data = append(data, structHeader(item, fields))
		}
		if r, ok := any(item).(Rower); ok {
			data = append(data, slices.Clone(r.Row()))
			continue
		}
		row := make([]string, len(fields))
		for j, f := range fields {
			fv, err := v.FieldByIndexErr(f.index)
			if err != nil {
				// Promoted through a nil embedded pointer.
				continue
			}
			row[j] = valueString(fv)
		}
		data = append(data, row)
	}
	return New(data), nil
}

func structHeader(item any, fields []structField) []string {
	if h, ok := item.(Headed); ok {
		return slices.Clone(h.Header())
	}
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = f.name
	}
	return header
}

func structFields(t reflect.Type) []structField {
	var fields []structField
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || (f.Anonymous && isStruct(f.Type)) {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup(tagName); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, structField{name: name, index: f.Index})
	}
	return fields
}

// isStruct reports whether an embedded field's promoted fields are listed
// in its place.
func isStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// valueString formats a field value. Fields promoted through an unexported
// embedded struct cannot be converted back to interfaces, so fmt prints the
// reflect.Value directly.
func valueString(v reflect.Value) string {
	if v.CanInterface() {
		return cellString(v.Interface())
	}
	return fmt.Sprint(v)
}
