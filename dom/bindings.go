package dom

import (
	"context"
	"fmt"

	"github.com/momiji-web/momiji/object"
)

// DocumentObject exposes a Document to scripts. It resolves exactly one
// member, getElementById, through the object.Attributes capability.
type DocumentObject struct {
	doc *Document
}

// NewDocumentObject wraps a document for injection as the "document" global.
func NewDocumentObject(doc *Document) *DocumentObject {
	return &DocumentObject{doc: doc}
}

func (d *DocumentObject) Type() object.Type      { return object.HOST }
func (d *DocumentObject) Inspect() string        { return "document" }
func (d *DocumentObject) Interface() interface{} { return d.doc }

func (d *DocumentObject) Equals(other object.Object) bool {
	o, ok := other.(*DocumentObject)
	return ok && o.doc == d.doc
}

func (d *DocumentObject) GetAttr(name string) (object.Object, bool) {
	switch name {
	case "getElementById":
		return object.NewBuiltin("getElementById", d.getElementByID), true
	}
	return nil, false
}

// getElementByID resolves an element by id. A missing element yields
// undefined rather than an error, so scripts can probe for optional nodes.
func (d *DocumentObject) getElementByID(ctx context.Context, args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("type error: getElementById() takes exactly one argument (%d given)", len(args))
	}
	id, ok := args[0].(*object.String)
	if !ok {
		return nil, fmt.Errorf("type error: getElementById() expected a string (%s given)", args[0].Type())
	}
	element := d.doc.GetElementByID(id.Value())
	if element == nil {
		return object.UndefinedValue, nil
	}
	return NewElementObject(element), nil
}

// ElementObject exposes a single element to scripts: the id and innerText
// attributes, and the setText and remove methods.
type ElementObject struct {
	node *Node
}

// NewElementObject wraps an element for use as a script value.
func NewElementObject(node *Node) *ElementObject {
	return &ElementObject{node: node}
}

func (e *ElementObject) Type() object.Type      { return object.HOST }
func (e *ElementObject) Inspect() string        { return fmt.Sprintf("element<%s>", e.node.Kind()) }
func (e *ElementObject) Interface() interface{} { return e.node }

func (e *ElementObject) Equals(other object.Object) bool {
	o, ok := other.(*ElementObject)
	return ok && o.node == e.node
}

func (e *ElementObject) GetAttr(name string) (object.Object, bool) {
	switch name {
	case "id":
		return object.NewString(e.node.ID()), true
	case "innerText":
		return object.NewString(e.node.Text()), true
	case "setText":
		return object.NewBuiltin("setText", e.setText), true
	case "remove":
		return object.NewBuiltin("remove", e.remove), true
	}
	return nil, false
}

func (e *ElementObject) setText(ctx context.Context, args ...object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("type error: setText() takes exactly one argument (%d given)", len(args))
	}
	switch value := args[0].(type) {
	case *object.String:
		e.node.SetText(value.Value())
	case *object.Number:
		e.node.SetText(value.Inspect())
	default:
		return nil, fmt.Errorf("type error: setText() expected a string or number (%s given)", args[0].Type())
	}
	return object.UndefinedValue, nil
}

func (e *ElementObject) remove(ctx context.Context, args ...object.Object) (object.Object, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("type error: remove() takes no arguments (%d given)", len(args))
	}
	e.node.Remove()
	return object.UndefinedValue, nil
}
