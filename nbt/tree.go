// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbt

import "io"

// Node is a materialized NBT value: a tree node for documents small enough,
// or convenient enough, to hold in memory whole rather than walk with an
// Observer. Decode and Encode are the tree-shaped convenience layer the
// parser itself does not need and does not depend on.
type Node struct {
	Tag    Tag
	Name   string
	Value  Value
	Length int32

	// ElemTag is TagList's declared element tag.
	ElemTag Tag

	// Children holds TagCompound's members.
	Children []*Node

	// Elements holds TagList's, TAG_Byte_Array's, TAG_Int_Array's, or
	// TAG_Long_Array's members — compound holds named members in
	// Children, every other container holds positional members here.
	Elements []*Node
}

// Decode reads one complete NBT document from r and returns its root
// compound as a Node tree.
func Decode(r io.Reader) (*Node, error) {
	b := &treeBuilder{}
	if err := Parse(r, b); err != nil {
		return nil, err
	}
	return b.root, nil
}

// Encode writes root, which must be a TAG_Compound node, as a complete NBT
// document to w.
func Encode(w io.Writer, root *Node) error {
	wr := NewWriter(w)
	_ = wr.Tag(TagCompound)
	_ = wr.Name(root.Name)
	writeCompoundBody(wr, root)
	return wr.Err()
}

func writeCompoundBody(wr *Writer, n *Node) {
	for _, c := range n.Children {
		_ = wr.Tag(c.Tag)
		_ = wr.Name(c.Name)
		writeBody(wr, c)
	}
	_ = wr.Tag(TagEnd)
}

func writeBody(wr *Writer, n *Node) {
	switch n.Tag {
	case TagCompound:
		writeCompoundBody(wr, n)
	case TagList:
		_ = wr.Tag(n.ElemTag)
		_ = wr.Length(int32(len(n.Elements)))
		for _, e := range n.Elements {
			writeElemBody(wr, n.ElemTag, e)
		}
	case TagByteArray, TagIntArray, TagLongArray:
		_ = wr.Length(int32(len(n.Elements)))
		for _, e := range n.Elements {
			_ = wr.Value(e.Value)
		}
	default:
		_ = wr.Value(n.Value)
	}
}

func writeElemBody(wr *Writer, elemTag Tag, e *Node) {
	switch elemTag {
	case TagCompound:
		writeCompoundBody(wr, e)
	case TagList:
		_ = wr.Tag(e.ElemTag)
		_ = wr.Length(int32(len(e.Elements)))
		for _, ee := range e.Elements {
			writeElemBody(wr, e.ElemTag, ee)
		}
	default:
		_ = wr.Value(e.Value)
	}
}

// treeBuilder is an Observer that materializes the event stream into a
// Node tree, grounded on landru27-nbt's recursive NBT struct — the
// closed-form tree this package's SAX parser deliberately avoids
// building itself.
type treeBuilder struct {
	root            *Node
	stack           []*Node
	pendingTag      Tag
	pendingName     string
	awaitingElemTag bool
	err             error
}

func (b *treeBuilder) newNode() *Node {
	if len(b.stack) > 0 && b.stack[len(b.stack)-1].Tag == TagList {
		// a list element: unnamed, typed by the list's element tag.
		return &Node{Tag: b.stack[len(b.stack)-1].ElemTag}
	}
	return &Node{Tag: b.pendingTag, Name: b.pendingName}
}

func (b *treeBuilder) attach(n *Node) {
	if len(b.stack) == 0 {
		b.root = n
		return
	}
	parent := b.stack[len(b.stack)-1]
	if parent.Tag == TagCompound {
		parent.Children = append(parent.Children, n)
	} else {
		parent.Elements = append(parent.Elements, n)
	}
}

func (b *treeBuilder) push(n *Node) {
	b.attach(n)
	b.stack = append(b.stack, n)
}

func (b *treeBuilder) pop() { b.stack = b.stack[:len(b.stack)-1] }

func (b *treeBuilder) Begin(int64) error { return nil }
func (b *treeBuilder) End(int64) error   { return nil }
func (b *treeBuilder) Error(err error, _ int64) { b.err = err }

func (b *treeBuilder) Tag(t Tag, _ int64) error {
	if b.awaitingElemTag {
		b.stack[len(b.stack)-1].ElemTag = t
		b.awaitingElemTag = false
		return nil
	}
	b.pendingTag = t
	return nil
}

func (b *treeBuilder) Name(s string, _ int64) error {
	b.pendingName = s
	return nil
}

func (b *treeBuilder) Length(n int32, _ int64) error {
	if len(b.stack) > 0 {
		b.stack[len(b.stack)-1].Length = n
	}
	return nil
}

func (b *treeBuilder) BeginCompound(int64) error {
	b.push(b.newNode())
	return nil
}
func (b *treeBuilder) EndCompound(int64) error { b.pop(); return nil }

func (b *treeBuilder) BeginList(int64) error {
	b.push(b.newNode())
	b.awaitingElemTag = true
	return nil
}
func (b *treeBuilder) EndList(int64) error { b.pop(); return nil }

func (b *treeBuilder) BeginByteArray(int64) error {
	b.push(b.newNode())
	return nil
}
func (b *treeBuilder) EndByteArray(int64) error { b.pop(); return nil }

func (b *treeBuilder) BeginIntArray(int64) error {
	b.push(b.newNode())
	return nil
}
func (b *treeBuilder) EndIntArray(int64) error { b.pop(); return nil }

func (b *treeBuilder) BeginLongArray(int64) error {
	b.push(b.newNode())
	return nil
}
func (b *treeBuilder) EndLongArray(int64) error { b.pop(); return nil }

func (b *treeBuilder) Value(v Value, _ int64) error {
	n := &Node{Value: v}
	if len(b.stack) > 0 {
		switch b.stack[len(b.stack)-1].Tag {
		case TagList:
			n.Tag = b.stack[len(b.stack)-1].ElemTag
			b.attach(n)
			return nil
		case TagByteArray, TagIntArray, TagLongArray:
			n.Tag = kindToTag(v.Kind)
			b.attach(n)
			return nil
		}
	}
	n.Tag = b.pendingTag
	n.Name = b.pendingName
	b.attach(n)
	return nil
}

func kindToTag(k ValueKind) Tag {
	switch k {
	case KindByte:
		return TagByte
	case KindInt:
		return TagInt
	case KindLong:
		return TagLong
	default:
		return TagByte
	}
}
