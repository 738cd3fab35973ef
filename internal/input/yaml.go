package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/table2md"
	"gopkg.in/yaml.v3"
)

// decodeYAML decodes into yaml.Node so mapping keys keep their document
// order, which a map[string]any would not.
func decodeYAML(r io.Reader) (*table2md.Table, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return table2md.New(nil), nil
		}
		return nil, fmt.Errorf("decoding %s: %w", YAML, err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	root = resolveAlias(root)
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: top level is a %s, want a sequence", ErrUnsupportedShape, kindName(root.Kind))
	}
	if len(root.Content) == 0 {
		return table2md.New(nil), nil
	}

	switch first := resolveAlias(root.Content[0]); first.Kind {
	case yaml.SequenceNode:
		return sequenceRows(root.Content)
	case yaml.MappingNode:
		return mappingRows(root.Content)
	default:
		return nil, fmt.Errorf("%w: item 0 is a %s, want a sequence or mapping", ErrUnsupportedShape, kindName(first.Kind))
	}
}

func sequenceRows(items []*yaml.Node) (*table2md.Table, error) {
	rows := make([][]string, len(items))
	for i, item := range items {
		item = resolveAlias(item)
		if item.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: item %d is a %s, want a sequence", ErrUnsupportedShape, i, kindName(item.Kind))
		}
		row := make([]string, len(item.Content))
		for j, cell := range item.Content {
			s, err := nodeString(cell)
			if err != nil {
				return nil, err
			}
			row[j] = s
		}
		rows[i] = row
	}
	return table2md.FromRows(rows...), nil
}

func mappingRows(items []*yaml.Node) (*table2md.Table, error) {
	maps := make([]table2md.OrderedMap, len(items))
	for i, item := range items {
		item = resolveAlias(item)
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: item %d is a %s, want a mapping", ErrUnsupportedShape, i, kindName(item.Kind))
		}
		m := make(table2md.OrderedMap, 0, len(item.Content)/2)
		for j := 0; j+1 < len(item.Content); j += 2 {
			key, err := nodeString(item.Content[j])
			if err != nil {
				return nil, err
			}
			value, err := nodeString(item.Content[j+1])
			if err != nil {
				return nil, err
			}
			m = append(m, table2md.KeyValue{Key: key, Value: value})
		}
		maps[i] = m
	}
	return table2md.FromMappings(maps...)
}

// nodeString returns a scalar's source text. Null is an empty cell, and
// nested collections are written inline in flow style.
func nodeString(n *yaml.Node) (string, error) {
	n = resolveAlias(n)
	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == "!!null" {
			return "", nil
		}
		return n.Value, nil
	}
	flow := *n
	setFlow(&flow)
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return "", fmt.Errorf("encoding nested value: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// setFlow marks n and its children for flow style. It copies the children
// so the decoded document is left untouched.
func setFlow(n *yaml.Node) {
	n.Style |= yaml.FlowStyle
	n.HeadComment, n.LineComment, n.FootComment = "", "", ""
	content := make([]*yaml.Node, len(n.Content))
	for i, c := range n.Content {
		cp := *c
		setFlow(&cp)
		content[i] = &cp
	}
	n.Content = content
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty node"
	}
}
