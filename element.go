package sedml

import (
	"encoding/xml"
	"reflect"

	"github.com/GodYY/gutils/assert"
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// Element is implemented by every SED-ML element type. Attribute and child
// layouts are declared by the unexported attributes and children tables,
// which drive reading, writing and validation generically.
type Element interface {
	TypeCode() TypeCode
	ElementName() string
	Namespaces() Namespaces
	Level() uint
	Version() uint

	MetaID() string
	SetMetaID(string) error
	IsSetMetaID() bool
	UnsetMetaID()

	ID() string
	SetID(string) error
	IsSetID() bool
	UnsetID()

	Name() string
	SetName(string) error
	IsSetName() bool
	UnsetName()

	Notes() *etree.Element
	SetNotes(*etree.Element) error
	IsSetNotes() bool
	UnsetNotes()

	Annotation() *etree.Element
	SetAnnotation(*etree.Element) error
	IsSetAnnotation() bool
	UnsetAnnotation()

	Parent() Element

	HasRequiredAttributes() bool
	HasRequiredElements() bool

	base() *elementBase
	attributes() []attribute
	children() []child
	copyElement() Element
}

// child describes one child slot of an element. An empty name accepts any
// element the decode function is willing to take (list items).
type child struct {
	name     string
	space    string // "" means the element's own SED-ML namespace
	required bool
	repeated bool
	isSet    func() bool
	elements func() []Element
	decode   func(d *Decoder, start xml.StartElement) error
	encode   func(e *Encoder) error
}

type elementBase struct {
	self       Element
	ns         Namespaces
	parent     Element
	metaID     string
	id         string
	name       string
	notes      *etree.Element
	annotation *etree.Element
}

func newElementBase(self Element, ns Namespaces) elementBase {
	assert.Assert(self != nil, "self nil")
	assert.AssertF(ns.valid(), "invalid namespaces %s", ns)

	return elementBase{
		self: self,
		ns:   ns,
	}
}

// clone returns a copy of b owned by self, with no parent.
func (b *elementBase) clone(self Element) elementBase {
	assert.Assert(b != nil, "clone of nil element")

	c := *b
	c.self = self
	c.parent = nil
	c.notes = copyXML(b.notes)
	c.annotation = copyXML(b.annotation)
	return c
}

func (b *elementBase) base() *elementBase { return b }

func (b *elementBase) Namespaces() Namespaces { return b.ns }
func (b *elementBase) Level() uint            { return b.ns.level }
func (b *elementBase) Version() uint          { return b.ns.version }

func (b *elementBase) MetaID() string { return b.metaID }

func (b *elementBase) SetMetaID(metaID string) error {
	if !isValidXMLID(metaID) {
		return errInvalidValue("metaid", metaID)
	}
	b.metaID = metaID
	return nil
}

func (b *elementBase) IsSetMetaID() bool { return b.metaID != "" }
func (b *elementBase) UnsetMetaID()      { b.metaID = "" }

func (b *elementBase) ID() string { return b.id }

// SetID sets the id of elements whose schema declares one.
func (b *elementBase) SetID(id string) error {
	if findAttribute(b.self.attributes(), "id") == nil {
		return errors.WithMessagef(ErrUnexpectedAttribute, "%s has no id", b.self.ElementName())
	}
	if err := checkSId(id); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *elementBase) IsSetID() bool { return b.id != "" }
func (b *elementBase) UnsetID()      { b.id = "" }

func (b *elementBase) Name() string { return b.name }

func (b *elementBase) SetName(name string) error {
	if findAttribute(b.self.attributes(), "name") == nil {
		return errors.WithMessagef(ErrUnexpectedAttribute, "%s has no name", b.self.ElementName())
	}
	b.name = name
	return nil
}

func (b *elementBase) IsSetName() bool { return b.name != "" }
func (b *elementBase) UnsetName()      { b.name = "" }

func (b *elementBase) Notes() *etree.Element { return b.notes }

// SetNotes stores a copy of notes, which must be a <notes> element.
func (b *elementBase) SetNotes(notes *etree.Element) error {
	if notes == nil || notes.Tag != "notes" {
		return errors.WithMessage(ErrInvalidObject, "notes must be a <notes> element")
	}
	b.notes = notes.Copy()
	return nil
}

func (b *elementBase) IsSetNotes() bool { return b.notes != nil }
func (b *elementBase) UnsetNotes()      { b.notes = nil }

func (b *elementBase) Annotation() *etree.Element { return b.annotation }

// SetAnnotation stores a copy of annotation, which must be an <annotation>
// element.
func (b *elementBase) SetAnnotation(annotation *etree.Element) error {
	if annotation == nil || annotation.Tag != "annotation" {
		return errors.WithMessage(ErrInvalidObject, "annotation must be an <annotation> element")
	}
	b.annotation = annotation.Copy()
	return nil
}

func (b *elementBase) IsSetAnnotation() bool { return b.annotation != nil }
func (b *elementBase) UnsetAnnotation()      { b.annotation = nil }

func (b *elementBase) Parent() Element { return b.parent }

// Document returns the document the element is attached to, if any.
func (b *elementBase) Document() *Document { return DocumentOf(b.self) }

// DocumentOf follows parent links from el to the owning document.
func DocumentOf(el Element) *Document {
	for !isNil(el) {
		if doc, ok := el.(*Document); ok {
			return doc
		}
		el = el.Parent()
	}
	return nil
}

func (b *elementBase) HasRequiredAttributes() bool { return hasRequiredAttributes(b.self) }
func (b *elementBase) HasRequiredElements() bool   { return hasRequiredElements(b.self) }

func (b *elementBase) attributes() []attribute {
	return []attribute{stringAttr("metaid", &b.metaID, false)}
}

func (b *elementBase) idAttr(required bool) attribute { return sidAttr("id", &b.id, required) }
func (b *elementBase) nameAttr() attribute            { return stringAttr("name", &b.name, false) }

func (b *elementBase) children() []child {
	return []child{
		xmlChild("notes", &b.notes),
		xmlChild("annotation", &b.annotation),
	}
}

// ExpectedAttributes returns the attribute names declared for el, base
// attributes first.
func ExpectedAttributes(el Element) []string {
	attrs := el.attributes()
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.name)
	}
	return names
}

func hasRequiredAttributes(el Element) bool {
	for _, a := range el.attributes() {
		if a.required && !a.isSet() {
			return false
		}
	}
	return true
}

func hasRequiredElements(el Element) bool {
	for _, c := range el.children() {
		if c.required && !c.isSet() {
			return false
		}
	}
	return true
}

// connectToChild points every owned child of el, recursively, back at its
// owner.
func connectToChild(el Element) {
	for _, c := range el.children() {
		if c.elements == nil {
			continue
		}
		for _, ch := range c.elements() {
			ch.base().parent = el
			connectToChild(ch)
		}
	}
}

func setParent(child, parent Element) {
	if !isNil(child) {
		child.base().parent = parent
	}
}

// detach clears the parent of an element its owner is letting go of.
func detach(child Element) {
	if !isNil(child) {
		child.base().parent = nil
	}
}

// Walk visits el and its descendants depth first in document order. It
// stops descending below an element for which fn returns false.
func Walk(el Element, fn func(Element) bool) {
	if isNil(el) || !fn(el) {
		return
	}

	for _, c := range el.children() {
		if c.elements == nil {
			continue
		}
		for _, ch := range c.elements() {
			Walk(ch, fn)
		}
	}
}

// CloneElement returns a deep copy of el with no parent.
func CloneElement(el Element) Element {
	if isNil(el) {
		return nil
	}
	return el.copyElement()
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func copyXML(el *etree.Element) *etree.Element {
	if el == nil {
		return nil
	}
	return el.Copy()
}

func elementChild[T Element](owner Element, name string, slot *T, create func(Namespaces) T, required bool) child {
	return child{
		name:     name,
		required: required,
		isSet:    func() bool { return !isNil(*slot) },
		elements: func() []Element {
			if isNil(*slot) {
				return nil
			}
			return []Element{*slot}
		},
		decode: func(d *Decoder, start xml.StartElement) error {
			c := create(owner.Namespaces())
			if err := d.decodeElement(c, start); err != nil {
				return err
			}
			setParent(c, owner)
			*slot = c
			return nil
		},
		encode: func(e *Encoder) error {
			if isNil(*slot) {
				return nil
			}
			return e.encodeElement(*slot)
		},
	}
}

func listChild[T Element](l *ListOf[T], required bool) child {
	return child{
		name:     l.ElementName(),
		required: required,
		isSet:    func() bool { return l.Len() > 0 },
		elements: func() []Element { return []Element{l} },
		decode: func(d *Decoder, start xml.StartElement) error {
			return d.decodeElement(l, start)
		},
		encode: func(e *Encoder) error {
			if l.Len() == 0 {
				return nil
			}
			return e.encodeElement(l)
		},
	}
}

func xmlChild(name string, slot **etree.Element) child {
	return child{
		name:  name,
		isSet: func() bool { return *slot != nil },
		decode: func(d *Decoder, start xml.StartElement) error {
			el, err := d.decodeXML(start)
			if err != nil {
				return err
			}
			*slot = el
			return nil
		},
		encode: func(e *Encoder) error {
			if *slot == nil {
				return nil
			}
			return e.encodeXML(*slot)
		},
	}
}

func mathChild(owner Element, slot **Math, required bool) child {
	return child{
		name:     "math",
		space:    MathMLNamespace,
		required: required,
		isSet:    func() bool { return *slot != nil },
		decode: func(d *Decoder, start xml.StartElement) error {
			el, err := d.decodeXML(start)
			if err != nil {
				return err
			}

			m, err := NewMath(el)
			if err != nil {
				d.logElement(owner, ViolationInvalidMath, "", err.Error())
				return nil
			}

			*slot = m
			return nil
		},
		encode: func(e *Encoder) error {
			if *slot == nil {
				return nil
			}
			return e.encodeXML((*slot).root)
		},
	}
}

func findChild(children []child, name string) *child {
	var wildcard *child
	for i := range children {
		switch children[i].name {
		case name:
			return &children[i]
		case "":
			wildcard = &children[i]
		}
	}
	return wildcard
}
