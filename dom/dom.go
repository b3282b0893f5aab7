// Package dom is a minimal document model: enough tree for scripts to find
// elements by id, read and replace their text, and remove them. It is the
// host-object surface the interpreter sees; the interpreter itself only knows
// the object.Attributes capability.
package dom

import "strings"

// Node is one element of a document tree. Text lives directly on the element
// that carries it; there are no separate text nodes.
type Node struct {
	kind     string
	id       string
	text     string
	parent   *Node
	children []*Node
}

// NewElement returns a detached element of the given kind ("p", "script",
// ...) with an optional id attribute.
func NewElement(kind, id string) *Node {
	return &Node{kind: kind, id: id}
}

// Kind returns the element kind, e.g. "div".
func (n *Node) Kind() string { return n.kind }

// ID returns the element's id attribute, possibly empty.
func (n *Node) ID() string { return n.id }

// Text returns the element's text content.
func (n *Node) Text() string { return n.text }

// SetText replaces the element's text content.
func (n *Node) SetText(text string) { n.text = text }

// AppendChild attaches child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) *Node {
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Children returns the node's children in document order.
func (n *Node) Children() []*Node { return n.children }

// Remove detaches the node from its parent. Removing a detached node is a
// no-op.
func (n *Node) Remove() {
	parent := n.parent
	if parent == nil {
		return
	}
	for pos, child := range parent.children {
		if child == n {
			parent.children = append(parent.children[:pos], parent.children[pos+1:]...)
			break
		}
	}
	n.parent = nil
}

// Document is a tree of elements rooted at an implicit body.
type Document struct {
	root *Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{root: NewElement("body", "")}
}

// Root returns the document's root element.
func (d *Document) Root() *Node { return d.root }

// GetElementByID returns the first element in document order whose id
// attribute matches, or nil if there is none.
func (d *Document) GetElementByID(id string) *Node {
	return findByID(d.root, id)
}

func findByID(n *Node, id string) *Node {
	if n.id != "" && n.id == id {
		return n
	}
	for _, child := range n.children {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// ScriptContent collects the text of every script element in document order,
// joined by newlines. This is the source the page hands to the interpreter.
func (d *Document) ScriptContent() string {
	var scripts []string
	walk(d.root, func(n *Node) {
		if n.kind == "script" {
			scripts = append(scripts, n.text)
		}
	})
	return strings.Join(scripts, "\n")
}

func walk(n *Node, visit func(*Node)) {
	visit(n)
	for _, child := range n.children {
		walk(child, visit)
	}
}
