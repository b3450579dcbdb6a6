package sedml

import (
	"math"

	"github.com/pkg/errors"
)

// Variable binds an identifier used in math to a model element, either
// through an XPath target or a symbol, resolved in a task or model.
type Variable struct {
	elementBase
	symbol         string
	target         string
	taskReference  string
	modelReference string
}

func NewVariable(ns Namespaces) *Variable {
	v := &Variable{}
	v.elementBase = newElementBase(v, ns)
	return v
}

func (v *Variable) TypeCode() TypeCode   { return TypeVariable }
func (v *Variable) ElementName() string  { return "variable" }
func (v *Variable) copyElement() Element { return v.Clone() }

func (v *Variable) Symbol() string     { return v.symbol }
func (v *Variable) SetSymbol(s string) { v.symbol = s }
func (v *Variable) IsSetSymbol() bool  { return v.symbol != "" }
func (v *Variable) UnsetSymbol()       { v.symbol = "" }

func (v *Variable) Target() string     { return v.target }
func (v *Variable) SetTarget(t string) { v.target = t }
func (v *Variable) IsSetTarget() bool  { return v.target != "" }
func (v *Variable) UnsetTarget()       { v.target = "" }

func (v *Variable) TaskReference() string { return v.taskReference }

func (v *Variable) SetTaskReference(ref string) error {
	return setSIdRef(&v.taskReference, "taskReference", ref)
}

func (v *Variable) IsSetTaskReference() bool { return v.taskReference != "" }
func (v *Variable) UnsetTaskReference()      { v.taskReference = "" }

func (v *Variable) ModelReference() string { return v.modelReference }

func (v *Variable) SetModelReference(ref string) error {
	return setSIdRef(&v.modelReference, "modelReference", ref)
}

func (v *Variable) IsSetModelReference() bool { return v.modelReference != "" }
func (v *Variable) UnsetModelReference()      { v.modelReference = "" }

func (v *Variable) Clone() *Variable {
	c := *v
	c.elementBase = v.elementBase.clone(&c)
	return &c
}

func (v *Variable) attributes() []attribute {
	return append(v.elementBase.attributes(),
		v.idAttr(true),
		v.nameAttr(),
		stringAttr("symbol", &v.symbol, false),
		stringAttr("target", &v.target, false),
		sidRefAttr("taskReference", &v.taskReference, false),
		sidRefAttr("modelReference", &v.modelReference, false),
	)
}

// Parameter is a named constant usable in math.
type Parameter struct {
	elementBase
	value optional[float64]
}

func NewParameter(ns Namespaces) *Parameter {
	p := &Parameter{}
	p.elementBase = newElementBase(p, ns)
	return p
}

func (p *Parameter) TypeCode() TypeCode   { return TypeParameter }
func (p *Parameter) ElementName() string  { return "parameter" }
func (p *Parameter) copyElement() Element { return p.Clone() }

// Value returns NaN when the value is unset.
func (p *Parameter) Value() float64     { return p.value.getOr(math.NaN()) }
func (p *Parameter) SetValue(v float64) { p.value.set(v) }
func (p *Parameter) IsSetValue() bool   { return p.value.isSet() }
func (p *Parameter) UnsetValue()        { p.value.unset() }

func (p *Parameter) Clone() *Parameter {
	c := *p
	c.elementBase = p.elementBase.clone(&c)
	return &c
}

func (p *Parameter) attributes() []attribute {
	return append(p.elementBase.attributes(),
		p.idAttr(true),
		p.nameAttr(),
		doubleAttr("value", &p.value, true),
	)
}

// calculation is the math expression with its variables and parameters,
// shared by computeChange, setValue, functionalRange and dataGenerator.
type calculation struct {
	math       *Math
	variables  *ListOf[*Variable]
	parameters *ListOf[*Parameter]
}

func newCalculation(ns Namespaces) calculation {
	return calculation{
		variables:  newListOf[*Variable](ns, "listOfVariables", TypeVariable),
		parameters: newListOf[*Parameter](ns, "listOfParameters", TypeParameter),
	}
}

func (c *calculation) clone() calculation {
	return calculation{
		math:       c.math.Clone(),
		variables:  c.variables.clone(),
		parameters: c.parameters.clone(),
	}
}

func (c *calculation) calc() *calculation { return c }

// Math returns the expression, or nil when unset.
func (c *calculation) Math() *Math { return c.math }

// SetMath stores a copy of m.
func (c *calculation) SetMath(m *Math) error {
	if m == nil {
		return errors.WithMessage(ErrInvalidObject, "nil math")
	}
	c.math = m.Clone()
	return nil
}

func (c *calculation) IsSetMath() bool { return c.math != nil }
func (c *calculation) UnsetMath()      { c.math = nil }

func (c *calculation) Variables() *ListOf[*Variable]          { return c.variables }
func (c *calculation) NumVariables() int                      { return c.variables.Len() }
func (c *calculation) GetVariable(i int) *Variable            { return c.variables.Get(i) }
func (c *calculation) GetVariableByID(id string) *Variable    { return c.variables.GetByID(id) }
func (c *calculation) AddVariable(v *Variable) error          { return c.variables.Append(v) }
func (c *calculation) RemoveVariable(i int) *Variable         { return c.variables.Remove(i) }
func (c *calculation) RemoveVariableByID(id string) *Variable { return c.variables.RemoveByID(id) }

func (c *calculation) CreateVariable() *Variable {
	v := NewVariable(c.variables.Namespaces())
	c.variables.push(v)
	return v
}

func (c *calculation) Parameters() *ListOf[*Parameter]          { return c.parameters }
func (c *calculation) NumParameters() int                       { return c.parameters.Len() }
func (c *calculation) GetParameter(i int) *Parameter            { return c.parameters.Get(i) }
func (c *calculation) GetParameterByID(id string) *Parameter    { return c.parameters.GetByID(id) }
func (c *calculation) AddParameter(p *Parameter) error          { return c.parameters.Append(p) }
func (c *calculation) RemoveParameter(i int) *Parameter         { return c.parameters.Remove(i) }
func (c *calculation) RemoveParameterByID(id string) *Parameter { return c.parameters.RemoveByID(id) }

func (c *calculation) CreateParameter() *Parameter {
	p := NewParameter(c.parameters.Namespaces())
	c.parameters.push(p)
	return p
}

func (c *calculation) children(owner Element, mathRequired bool) []child {
	return []child{
		listChild(c.variables, false),
		listChild(c.parameters, false),
		mathChild(owner, &c.math, mathRequired),
	}
}
