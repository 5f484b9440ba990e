// Package conftree exposes a YAML document as a tree of named nodes addressed by
// dotted paths, the shape the runmode resolver reads its raw section from.
// conftree 包将 YAML 文档表示为可通过点分路径寻址的节点树。
package conftree

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is one key of the configuration tree. Sequence items are named by index.
// Node 是配置树中的一个键，序列元素以下标命名。
type Node struct {
	Name     string
	Value    string
	Children []*Node
}

// Parse builds a tree from a YAML document. An empty document yields an empty root.
// Parse 从 YAML 文档构建配置树，空文档返回空根节点。
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	root := &Node{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return root, nil
	}
	if err := fill(root, doc.Content[0], "", map[*yaml.Node]bool{}); err != nil {
		return nil, err
	}
	return root, nil
}

// fill copies src into dst, found at the dotted path. expanding holds the
// aliases being expanded above dst.
func fill(dst *Node, src *yaml.Node, path string, expanding map[*yaml.Node]bool) error {
	switch src.Kind {
	case yaml.AliasNode:
		if expanding[src.Alias] {
			return fmt.Errorf("%s: alias *%s at line %d refers to itself", path, src.Value, src.Line)
		}
		expanding[src.Alias] = true
		defer delete(expanding, src.Alias)
		return fill(dst, src.Alias, path, expanding)
	case yaml.ScalarNode:
		if src.Tag != "!!null" {
			dst.Value = src.Value
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(src.Content); i += 2 {
			child := &Node{Name: src.Content[i].Value}
			if err := fill(child, src.Content[i+1], join(path, child.Name), expanding); err != nil {
				return err
			}
			dst.Children = append(dst.Children, child)
		}
	case yaml.SequenceNode:
		for i, item := range src.Content {
			child := &Node{Name: strconv.Itoa(i)}
			if err := fill(child, item, join(path, child.Name), expanding); err != nil {
				return err
			}
			dst.Children = append(dst.Children, child)
		}
	default:
		return fmt.Errorf("unsupported YAML node kind %d at line %d", src.Kind, src.Line)
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

// Child returns the direct child called name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Get resolves a dotted path such as "dpdkintel.inputs" below n.
// Get 解析 n 之下的点分路径，例如 "dpdkintel.inputs"。
func (n *Node) Get(path string) *Node {
	cur := n
	for _, part := range strings.Split(path, ".") {
		cur = cur.Child(part)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// GetValue returns the scalar at path. ok is false when the key is absent or empty.
// GetValue 返回路径上的标量值；键不存在或为空时 ok 为 false。
func (n *Node) GetValue(path string) (string, bool) {
	node := n.Get(path)
	if node == nil || node.Value == "" {
		return "", false
	}
	return node.Value, true
}

// ChildValue returns the scalar value of the direct child name.
func (n *Node) ChildValue(name string) (string, bool) {
	c := n.Child(name)
	if c == nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// LookupKeyValue returns the first child that carries key with the given value,
// e.g. the item of "inputs" whose "interface" is "0".
// LookupKeyValue 返回第一个包含指定键值的子节点，例如 interface 为 "0" 的输入项。
func (n *Node) LookupKeyValue(key, value string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if v, ok := c.ChildValue(key); ok && v == value {
			return c
		}
	}
	return nil
}
