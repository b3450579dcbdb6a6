package sedml

import (
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Range produces the values a repeated task iterates over.
type Range interface {
	Element
	isRange()
}

type rangeBase struct {
	elementBase
}

func (r *rangeBase) isRange() {}

func (r *rangeBase) attributes() []attribute {
	return append(r.elementBase.attributes(), r.idAttr(true), r.nameAttr())
}

// UniformRange yields numberOfPoints+1 values from start to end, spaced
// linearly or logarithmically.
type UniformRange struct {
	rangeBase
	start          optional[float64]
	end            optional[float64]
	numberOfPoints optional[int]
	typ            string
}

func NewUniformRange(ns Namespaces) *UniformRange {
	r := &UniformRange{}
	r.elementBase = newElementBase(r, ns)
	return r
}

func (r *UniformRange) TypeCode() TypeCode   { return TypeUniformRange }
func (r *UniformRange) ElementName() string  { return "uniformRange" }
func (r *UniformRange) copyElement() Element { return r.Clone() }

func (r *UniformRange) Start() float64     { return r.start.getOr(math.NaN()) }
func (r *UniformRange) SetStart(v float64) { r.start.set(v) }
func (r *UniformRange) IsSetStart() bool   { return r.start.isSet() }
func (r *UniformRange) UnsetStart()        { r.start.unset() }

func (r *UniformRange) End() float64     { return r.end.getOr(math.NaN()) }
func (r *UniformRange) SetEnd(v float64) { r.end.set(v) }
func (r *UniformRange) IsSetEnd() bool   { return r.end.isSet() }
func (r *UniformRange) UnsetEnd()        { r.end.unset() }

func (r *UniformRange) NumberOfPoints() int       { return r.numberOfPoints.getOr(IntUnset) }
func (r *UniformRange) SetNumberOfPoints(n int)   { r.numberOfPoints.set(n) }
func (r *UniformRange) IsSetNumberOfPoints() bool { return r.numberOfPoints.isSet() }
func (r *UniformRange) UnsetNumberOfPoints()      { r.numberOfPoints.unset() }

// Type is "linear" or "log".
func (r *UniformRange) Type() string     { return r.typ }
func (r *UniformRange) SetType(t string) { r.typ = t }
func (r *UniformRange) IsSetType() bool  { return r.typ != "" }
func (r *UniformRange) UnsetType()       { r.typ = "" }

// MaxRangePoints bounds the numberOfPoints a UniformRange expands to.
const MaxRangePoints = 1 << 20

// Values returns the points of the range, or nil when it is incomplete or
// numberOfPoints is outside [0, MaxRangePoints].
func (r *UniformRange) Values() []float64 {
	if !r.start.isSet() || !r.end.isSet() || !r.numberOfPoints.isSet() {
		return nil
	}
	if r.numberOfPoints.v < 0 || r.numberOfPoints.v > MaxRangePoints {
		return nil
	}

	n := r.numberOfPoints.v
	start, end := r.start.v, r.end.v
	values := make([]float64, n+1)
	for i := range values {
		if n == 0 {
			values[i] = start
			continue
		}

		frac := float64(i) / float64(n)
		if strings.EqualFold(r.typ, "log") && start > 0 && end > 0 {
			values[i] = math.Exp(math.Log(start) + frac*(math.Log(end)-math.Log(start)))
		} else {
			values[i] = start + frac*(end-start)
		}
	}
	return values
}

func (r *UniformRange) Clone() *UniformRange {
	c := *r
	c.elementBase = r.elementBase.clone(&c)
	return &c
}

func (r *UniformRange) attributes() []attribute {
	return append(r.rangeBase.attributes(),
		doubleAttr("start", &r.start, true),
		doubleAttr("end", &r.end, true),
		intAttr("numberOfPoints", &r.numberOfPoints, true),
		stringAttr("type", &r.typ, true),
	)
}

// VectorRange yields an explicit list of values, each written as a <value>
// child.
type VectorRange struct {
	rangeBase
	values []float64
}

func NewVectorRange(ns Namespaces) *VectorRange {
	r := &VectorRange{}
	r.elementBase = newElementBase(r, ns)
	return r
}

func (r *VectorRange) TypeCode() TypeCode   { return TypeVectorRange }
func (r *VectorRange) ElementName() string  { return "vectorRange" }
func (r *VectorRange) copyElement() Element { return r.Clone() }

func (r *VectorRange) Values() []float64     { return append([]float64(nil), r.values...) }
func (r *VectorRange) SetValues(v []float64) { r.values = append([]float64(nil), v...) }
func (r *VectorRange) AddValue(v float64)    { r.values = append(r.values, v) }
func (r *VectorRange) NumValues() int        { return len(r.values) }
func (r *VectorRange) IsSetValues() bool     { return len(r.values) > 0 }
func (r *VectorRange) UnsetValues()          { r.values = nil }

func (r *VectorRange) Clone() *VectorRange {
	c := *r
	c.elementBase = r.elementBase.clone(&c)
	c.values = append([]float64(nil), r.values...)
	return &c
}

func (r *VectorRange) children() []child {
	return append(r.elementBase.children(), child{
		name:     "value",
		repeated: true,
		isSet:    r.IsSetValues,
		decode: func(d *Decoder, start xml.StartElement) error {
			var raw string
			if err := d.DecodeElement(&raw, &start); err != nil {
				return err
			}

			v, ok := parseDouble(raw)
			if !ok {
				d.logElement(r.self, ViolationNotDouble, "", fmt.Sprintf("<value> %q is not a double", raw))
				return nil
			}

			r.values = append(r.values, v)
			return nil
		},
		encode: func(e *Encoder) error {
			for _, v := range r.values {
				start := xml.StartElement{Name: xml.Name{Local: "value"}}
				if err := e.EncodeElement(formatDouble(v), start); err != nil {
					return errors.WithMessage(err, "encode <value>")
				}
			}
			return nil
		},
	})
}

// FunctionalRange computes each value from math over another range.
type FunctionalRange struct {
	rangeBase
	rangeRef string
	calculation
}

func NewFunctionalRange(ns Namespaces) *FunctionalRange {
	r := &FunctionalRange{}
	r.elementBase = newElementBase(r, ns)
	r.calculation = newCalculation(ns)
	connectToChild(r)
	return r
}

func (r *FunctionalRange) TypeCode() TypeCode   { return TypeFunctionalRange }
func (r *FunctionalRange) ElementName() string  { return "functionalRange" }
func (r *FunctionalRange) copyElement() Element { return r.Clone() }

// Range is the id of the range this one is computed from.
func (r *FunctionalRange) Range() string { return r.rangeRef }

func (r *FunctionalRange) SetRange(ref string) error {
	return setSIdRef(&r.rangeRef, "range", ref)
}

func (r *FunctionalRange) IsSetRange() bool { return r.rangeRef != "" }
func (r *FunctionalRange) UnsetRange()      { r.rangeRef = "" }

func (r *FunctionalRange) Clone() *FunctionalRange {
	c := *r
	c.elementBase = r.elementBase.clone(&c)
	c.calculation = r.calculation.clone()
	connectToChild(&c)
	return &c
}

func (r *FunctionalRange) attributes() []attribute {
	return append(r.rangeBase.attributes(), sidRefAttr("range", &r.rangeRef, true))
}

func (r *FunctionalRange) children() []child {
	return append(r.elementBase.children(), r.calculation.children(r, true)...)
}
