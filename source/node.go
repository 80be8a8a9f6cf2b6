package source

import (
	"fmt"

	"github.com/signadot/dyndecode/dyn"
	"gopkg.in/yaml.v3"
)

// FromNode converts a parsed yaml.v3 node into a dynamic value. Aliases
// are resolved and "<<" merge keys are applied; document nodes are
// unwrapped.
func FromNode(n *yaml.Node, opts ...Option) (any, error) {
	o := newOpts(opts)
	v, err := fromNode(n)
	if err != nil {
		return nil, err
	}
	return o.normalize(v)
}

func fromNode(n *yaml.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		res := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case yaml.MappingNode:
		m := dyn.NewOrderedMap()
		if err := mergeMapping(m, n); err != nil {
			return nil, err
		}
		return m, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unexpected node kind %d", n.Line, n.Kind)
}

func mergeMapping(m *dyn.OrderedMap, n *yaml.Node) error {
	if len(n.Content)%2 != 0 {
		return fmt.Errorf("line %d: odd mapping content", n.Line)
	}
	for i := 0; i < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		if kn.Tag == "!!merge" {
			if err := merge(m, vn); err != nil {
				return err
			}
			continue
		}
		k, err := fromNode(kn)
		if err != nil {
			return err
		}
		if !dyn.Hashable(k) {
			return fmt.Errorf("line %d: unhashable mapping key", kn.Line)
		}
		v, err := fromNode(vn)
		if err != nil {
			return err
		}
		m.Set(k, v)
	}
	return nil
}

// merge applies the mappings of a merge key value to m. Keys already in m
// win.
func merge(m *dyn.OrderedMap, vn *yaml.Node) error {
	if vn.Kind == yaml.AliasNode {
		vn = vn.Alias
	}
	var srcs []*yaml.Node
	switch vn.Kind {
	case yaml.MappingNode:
		srcs = []*yaml.Node{vn}
	case yaml.SequenceNode:
		for _, c := range vn.Content {
			if c.Kind == yaml.AliasNode {
				c = c.Alias
			}
			srcs = append(srcs, c)
		}
	default:
		return fmt.Errorf("line %d: merge value must be a mapping", vn.Line)
	}
	for _, src := range srcs {
		if src.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
		}
		tmp := dyn.NewOrderedMap()
		if err := mergeMapping(tmp, src); err != nil {
			return err
		}
		for k, v := range tmp.All() {
			if _, ok := m.Get(k); !ok {
				m.Set(k, v)
			}
		}
	}
	return nil
}
