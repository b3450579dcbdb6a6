package sedml

import (
	"encoding/xml"

	"github.com/GodYY/gutils/assert"
	"github.com/pkg/errors"
)

// ListOf is the listOfX wrapper element. It owns an ordered sequence of
// items of one schema type; items keep document order.
type ListOf[T Element] struct {
	elementBase
	name     string
	itemCode TypeCode
	items    []T
}

func newListOf[T Element](ns Namespaces, name string, itemCode TypeCode) *ListOf[T] {
	l := &ListOf[T]{
		name:     name,
		itemCode: itemCode,
	}
	l.elementBase = newElementBase(l, ns)
	return l
}

func (l *ListOf[T]) TypeCode() TypeCode     { return TypeListOf }
func (l *ListOf[T]) ItemTypeCode() TypeCode { return l.itemCode }
func (l *ListOf[T]) ElementName() string    { return l.name }

func (l *ListOf[T]) Len() int { return len(l.items) }

// Get returns the item at index i, or the zero T when i is out of range.
func (l *ListOf[T]) Get(i int) T {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero
	}
	return l.items[i]
}

// GetByID returns the first item whose id is id, in insertion order.
func (l *ListOf[T]) GetByID(id string) T {
	if i := l.indexOf(id); i >= 0 {
		return l.items[i]
	}
	var zero T
	return zero
}

func (l *ListOf[T]) indexOf(id string) int {
	if id == "" {
		return -1
	}

	for i, item := range l.items {
		if item.ID() == id {
			return i
		}
	}
	return -1
}

// Items returns the items in order. The slice is a copy, the items are not.
func (l *ListOf[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Append adds a copy of item; the caller keeps item.
func (l *ListOf[T]) Append(item T) error {
	if err := l.checkItem(item); err != nil {
		return err
	}
	if !item.HasRequiredAttributes() {
		return errors.WithMessagef(ErrInvalidObject, "%s lacks required attributes", item.ElementName())
	}

	l.push(item.copyElement().(T))
	return nil
}

// AppendAndOwn adds item itself; the list takes ownership. An item that
// already has a parent must be removed from it, or cloned, first.
func (l *ListOf[T]) AppendAndOwn(item T) error {
	if err := l.checkOwnable(item); err != nil {
		return err
	}

	l.push(item)
	return nil
}

// Insert places item, owned by the list, at index i. An index equal to the
// length appends.
func (l *ListOf[T]) Insert(i int, item T) error {
	if err := l.checkOwnable(item); err != nil {
		return err
	}
	if i < 0 || i > len(l.items) {
		return errors.WithMessagef(ErrOperationFailed, "insert index %d out of range [0,%d]", i, len(l.items))
	}

	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
	setParent(item, l)
	return nil
}

// Remove detaches and returns the item at index i, or the zero T when i is
// out of range.
func (l *ListOf[T]) Remove(i int) T {
	var zero T
	if i < 0 || i >= len(l.items) {
		return zero
	}

	item := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	item.base().parent = nil
	return item
}

// RemoveByID detaches and returns the first item with the given id.
func (l *ListOf[T]) RemoveByID(id string) T {
	if i := l.indexOf(id); i >= 0 {
		return l.Remove(i)
	}
	var zero T
	return zero
}

func (l *ListOf[T]) Clear() {
	for _, item := range l.items {
		item.base().parent = nil
	}
	l.items = nil
}

func (l *ListOf[T]) checkItem(item T) error {
	if isNil(item) {
		return errors.WithMessage(ErrOperationFailed, "nil item")
	}
	if item.Level() != l.Level() {
		return errors.WithMessagef(ErrLevelMismatch, "item level %d, list level %d", item.Level(), l.Level())
	}
	if item.Version() != l.Version() {
		return errors.WithMessagef(ErrVersionMismatch, "item version %d, list version %d", item.Version(), l.Version())
	}
	return nil
}

func (l *ListOf[T]) checkOwnable(item T) error {
	if err := l.checkItem(item); err != nil {
		return err
	}
	if item.Parent() != nil {
		return errors.WithMessagef(ErrOperationFailed, "%s is already owned by <%s>", item.ElementName(), item.Parent().ElementName())
	}
	return nil
}

func (l *ListOf[T]) push(item T) {
	if debug {
		assert.Assert(item.Parent() == nil || item.Parent() == Element(l), "item already has a parent")
	}

	setParent(item, l)
	l.items = append(l.items, item)
}

func (l *ListOf[T]) clone() *ListOf[T] {
	c := &ListOf[T]{
		name:     l.name,
		itemCode: l.itemCode,
		items:    make([]T, 0, len(l.items)),
	}
	c.elementBase = l.elementBase.clone(c)

	for _, item := range l.items {
		c.items = append(c.items, item.copyElement().(T))
	}

	connectToChild(c)
	return c
}

func (l *ListOf[T]) copyElement() Element { return l.clone() }

func (l *ListOf[T]) attributes() []attribute { return l.elementBase.attributes() }

func (l *ListOf[T]) children() []child {
	return append(l.elementBase.children(), child{
		isSet: func() bool { return len(l.items) > 0 },
		elements: func() []Element {
			els := make([]Element, len(l.items))
			for i, item := range l.items {
				els[i] = item
			}
			return els
		},
		decode: l.decodeItem,
		encode: func(e *Encoder) error {
			for i, item := range l.items {
				if err := e.encodeElement(item); err != nil {
					return errors.WithMessagef(err, "encode %s item %d", l.name, i)
				}
			}
			return nil
		},
	})
}

// decodeItem creates the item named by start through the type registry and
// keeps it if it belongs in this list.
func (l *ListOf[T]) decodeItem(d *Decoder, start xml.StartElement) error {
	item, ok := NewElement(start.Name.Local, l.Namespaces()).(T)
	if !ok {
		d.logUnknownElement(l, start)
		return d.Skip()
	}

	if err := d.decodeElement(item, start); err != nil {
		return err
	}

	l.push(item)
	return nil
}
