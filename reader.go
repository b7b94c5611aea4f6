package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Read decodes a program from r. A program is a YAML (or JSON) sequence of
// top-level expressions; a stream of several documents is read as one
// program, in order. Sequences become forms, quoted or plain strings become
// symbols, and every number is a float64.
func Read(r io.Reader) ([]Expr, error) {
	decoder := yaml.NewDecoder(r)

	prog := []Expr{}
	for {
		var doc yaml.Node
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return prog, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}

		root := documentRoot(&doc)
		if root == nil || isNullNode(root) {
			continue
		}
		if root.Kind != yaml.SequenceNode {
			return nil, nodeError(root, "a program must be a sequence of expressions")
		}

		rd := newNodeReader(root)
		for _, child := range root.Content {
			expr, err := rd.read(child)
			if err != nil {
				return nil, err
			}
			prog = append(prog, expr)
		}
	}
}

func ReadString(s string) ([]Expr, error) {
	return Read(strings.NewReader(s))
}

// ReadFile reads the program stored at path.
func ReadFile(path string) ([]Expr, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read: open %s: %w", path, err)
	}
	defer file.Close()

	prog, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return prog, nil
}

// ReadExpr decodes exactly one expression, e.g. `["+", 1, 2]`.
func ReadExpr(s string) (Expr, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	root := documentRoot(&doc)
	if root == nil {
		return nil, fmt.Errorf("read: empty expression")
	}
	return newNodeReader(root).read(root)
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind != yaml.DocumentNode {
		return doc
	}
	if len(doc.Content) == 0 {
		return nil
	}
	return doc.Content[0]
}

func isNullNode(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}

func nodeError(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("read: line %d, column %d: %s", n.Line, n.Column, fmt.Sprintf(format, args...))
}

const (
	// aliasRatio caps how many nodes a document may expand to, as a multiple
	// of the nodes actually written in it.
	aliasRatio = 100
	// minNodeBudget keeps small documents with a few aliases readable.
	minNodeBudget = 10000
)

// nodeReader converts yaml nodes to expressions. active holds the aliased
// nodes currently being expanded so a self-referencing anchor is rejected
// instead of recursing forever; budget bounds the total expansion so nested
// anchors cannot grow a small document exponentially.
type nodeReader struct {
	active   map[*yaml.Node]bool
	expanded int
	budget   int
}

func newNodeReader(root *yaml.Node) *nodeReader {
	budget := aliasRatio * countNodes(root)
	if budget < minNodeBudget {
		budget = minNodeBudget
	}
	return &nodeReader{active: make(map[*yaml.Node]bool), budget: budget}
}

// countNodes counts the nodes as written, without following aliases.
func countNodes(n *yaml.Node) int {
	count := 1
	for _, child := range n.Content {
		count += countNodes(child)
	}
	return count
}

func (rd *nodeReader) read(n *yaml.Node) (Expr, error) {
	rd.expanded++
	if rd.expanded > rd.budget {
		return nil, nodeError(n, "document expands to more than %d nodes through aliases", rd.budget)
	}

	switch n.Kind {
	case yaml.ScalarNode:
		return readScalar(n)
	case yaml.SequenceNode:
		list := make(List, len(n.Content))
		for i, child := range n.Content {
			expr, err := rd.read(child)
			if err != nil {
				return nil, err
			}
			list[i] = expr
		}
		return list, nil
	case yaml.AliasNode:
		if rd.active[n.Alias] {
			return nil, nodeError(n, "alias *%s refers to itself", n.Value)
		}
		rd.active[n.Alias] = true
		defer delete(rd.active, n.Alias)
		return rd.read(n.Alias)
	case yaml.MappingNode:
		return nil, nodeError(n, "mappings are not expressions")
	default:
		return nil, nodeError(n, "unexpected yaml node")
	}
}

func readScalar(n *yaml.Node) (Expr, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, nodeError(n, "invalid boolean %q", n.Value)
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, nodeError(n, "invalid number %q", n.Value)
		}
		return f, nil
	case "!!str":
		if n.Value == "" {
			return nil, nodeError(n, "empty symbol")
		}
		return Symbol(n.Value), nil
	default:
		return nil, nodeError(n, "unsupported scalar %s %q", tag, n.Value)
	}
}
