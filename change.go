package sedml

import (
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// Change is a modification applied to a model before simulation.
type Change interface {
	Element
	Target() string
	SetTarget(string)
	IsSetTarget() bool
	UnsetTarget()
	isChange()
}

type changeBase struct {
	elementBase
	target string
}

func (c *changeBase) isChange() {}

// Target is an XPath expression selecting what the change applies to.
func (c *changeBase) Target() string          { return c.target }
func (c *changeBase) SetTarget(target string) { c.target = target }
func (c *changeBase) IsSetTarget() bool       { return c.target != "" }
func (c *changeBase) UnsetTarget()            { c.target = "" }

func (c *changeBase) attributes() []attribute {
	return append(c.elementBase.attributes(),
		c.idAttr(false),
		c.nameAttr(),
		stringAttr("target", &c.target, true),
	)
}

type ChangeAttribute struct {
	changeBase
	newValue string
}

func NewChangeAttribute(ns Namespaces) *ChangeAttribute {
	c := &ChangeAttribute{}
	c.elementBase = newElementBase(c, ns)
	return c
}

func (c *ChangeAttribute) TypeCode() TypeCode  { return TypeChangeAttribute }
func (c *ChangeAttribute) ElementName() string { return "changeAttribute" }

func (c *ChangeAttribute) NewValue() string     { return c.newValue }
func (c *ChangeAttribute) SetNewValue(v string) { c.newValue = v }
func (c *ChangeAttribute) IsSetNewValue() bool  { return c.newValue != "" }
func (c *ChangeAttribute) UnsetNewValue()       { c.newValue = "" }
func (c *ChangeAttribute) copyElement() Element { return c.Clone() }

func (c *ChangeAttribute) Clone() *ChangeAttribute {
	n := *c
	n.elementBase = c.elementBase.clone(&n)
	return &n
}

func (c *ChangeAttribute) attributes() []attribute {
	return append(c.changeBase.attributes(), stringAttr("newValue", &c.newValue, true))
}

// newXMLBase holds the <newXML> payload shared by addXML and changeXML.
type newXMLBase struct {
	changeBase
	newXML *etree.Element
}

// NewXML returns the <newXML> wrapper element, or nil.
func (c *newXMLBase) NewXML() *etree.Element { return c.newXML }

// SetNewXML stores copies of content inside a fresh <newXML> wrapper.
func (c *newXMLBase) SetNewXML(content ...*etree.Element) error {
	if len(content) == 0 {
		return errors.WithMessage(ErrInvalidObject, "newXML needs content")
	}

	wrapper := etree.NewElement("newXML")
	for _, el := range content {
		if el == nil {
			return errors.WithMessage(ErrInvalidObject, "nil newXML content")
		}
		wrapper.AddChild(el.Copy())
	}

	c.newXML = wrapper
	return nil
}

// SetNewXMLString parses s as an XML fragment and stores it as newXML.
func (c *newXMLBase) SetNewXMLString(s string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString("<newXML>" + s + "</newXML>"); err != nil {
		return errors.WithMessagef(ErrInvalidObject, "parse newXML: %v", err)
	}

	content := doc.Root().ChildElements()
	return c.SetNewXML(content...)
}

func (c *newXMLBase) IsSetNewXML() bool { return c.newXML != nil }
func (c *newXMLBase) UnsetNewXML()      { c.newXML = nil }

func (c *newXMLBase) children() []child {
	ch := xmlChild("newXML", &c.newXML)
	ch.required = true
	return append(c.elementBase.children(), ch)
}

type AddXML struct {
	newXMLBase
}

func NewAddXML(ns Namespaces) *AddXML {
	c := &AddXML{}
	c.elementBase = newElementBase(c, ns)
	return c
}

func (c *AddXML) TypeCode() TypeCode   { return TypeAddXML }
func (c *AddXML) ElementName() string  { return "addXML" }
func (c *AddXML) copyElement() Element { return c.Clone() }

func (c *AddXML) Clone() *AddXML {
	n := *c
	n.elementBase = c.elementBase.clone(&n)
	n.newXML = copyXML(c.newXML)
	return &n
}

type ChangeXML struct {
	newXMLBase
}

func NewChangeXML(ns Namespaces) *ChangeXML {
	c := &ChangeXML{}
	c.elementBase = newElementBase(c, ns)
	return c
}

func (c *ChangeXML) TypeCode() TypeCode   { return TypeChangeXML }
func (c *ChangeXML) ElementName() string  { return "changeXML" }
func (c *ChangeXML) copyElement() Element { return c.Clone() }

func (c *ChangeXML) Clone() *ChangeXML {
	n := *c
	n.elementBase = c.elementBase.clone(&n)
	n.newXML = copyXML(c.newXML)
	return &n
}

type RemoveXML struct {
	changeBase
}

func NewRemoveXML(ns Namespaces) *RemoveXML {
	c := &RemoveXML{}
	c.elementBase = newElementBase(c, ns)
	return c
}

func (c *RemoveXML) TypeCode() TypeCode   { return TypeRemoveXML }
func (c *RemoveXML) ElementName() string  { return "removeXML" }
func (c *RemoveXML) copyElement() Element { return c.Clone() }

func (c *RemoveXML) Clone() *RemoveXML {
	n := *c
	n.elementBase = c.elementBase.clone(&n)
	return &n
}

// ComputeChange sets its target to the value of a math expression over
// variables and parameters.
type ComputeChange struct {
	changeBase
	symbol string
	calculation
}

func NewComputeChange(ns Namespaces) *ComputeChange {
	c := &ComputeChange{}
	c.elementBase = newElementBase(c, ns)
	c.calculation = newCalculation(ns)
	connectToChild(c)
	return c
}

func (c *ComputeChange) TypeCode() TypeCode   { return TypeComputeChange }
func (c *ComputeChange) ElementName() string  { return "computeChange" }
func (c *ComputeChange) copyElement() Element { return c.Clone() }

func (c *ComputeChange) Symbol() string     { return c.symbol }
func (c *ComputeChange) SetSymbol(s string) { c.symbol = s }
func (c *ComputeChange) IsSetSymbol() bool  { return c.symbol != "" }
func (c *ComputeChange) UnsetSymbol()       { c.symbol = "" }

func (c *ComputeChange) Clone() *ComputeChange {
	n := *c
	n.elementBase = c.elementBase.clone(&n)
	n.calculation = c.calculation.clone()
	connectToChild(&n)
	return &n
}

func (c *ComputeChange) attributes() []attribute {
	return append(c.changeBase.attributes(), stringAttr("symbol", &c.symbol, false))
}

func (c *ComputeChange) children() []child {
	return append(c.elementBase.children(), c.calculation.children(c.self, true)...)
}
