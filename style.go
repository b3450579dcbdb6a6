package sedml

import (
	"math"

	"github.com/pkg/errors"
)

// Style groups line, marker and fill settings for curves and surfaces. A
// style may inherit from a base style.
type Style struct {
	elementBase
	baseStyle string
	line      *Line
	marker    *Marker
	fill      *Fill
}

func NewStyle(ns Namespaces) *Style {
	s := &Style{}
	s.elementBase = newElementBase(s, ns)
	return s
}

func (s *Style) TypeCode() TypeCode   { return TypeStyle }
func (s *Style) ElementName() string  { return "style" }
func (s *Style) copyElement() Element { return s.Clone() }

func (s *Style) BaseStyle() string { return s.baseStyle }

func (s *Style) SetBaseStyle(ref string) error {
	return setSIdRef(&s.baseStyle, "baseStyle", ref)
}

func (s *Style) IsSetBaseStyle() bool { return s.baseStyle != "" }
func (s *Style) UnsetBaseStyle()      { s.baseStyle = "" }

func (s *Style) Line() *Line       { return s.line }
func (s *Style) IsSetLine() bool   { return s.line != nil }
func (s *Style) Marker() *Marker   { return s.marker }
func (s *Style) IsSetMarker() bool { return s.marker != nil }
func (s *Style) Fill() *Fill       { return s.fill }
func (s *Style) IsSetFill() bool   { return s.fill != nil }

func (s *Style) UnsetLine() {
	detach(s.line)
	s.line = nil
}

func (s *Style) UnsetMarker() {
	detach(s.marker)
	s.marker = nil
}

func (s *Style) UnsetFill() {
	detach(s.fill)
	s.fill = nil
}

// SetLine stores a copy of l.
func (s *Style) SetLine(l *Line) error {
	if err := s.checkChild(l); err != nil {
		return err
	}
	s.UnsetLine()
	s.line = l.Clone()
	setParent(s.line, s)
	return nil
}

func (s *Style) SetMarker(m *Marker) error {
	if err := s.checkChild(m); err != nil {
		return err
	}
	s.UnsetMarker()
	s.marker = m.Clone()
	setParent(s.marker, s)
	return nil
}

func (s *Style) SetFill(f *Fill) error {
	if err := s.checkChild(f); err != nil {
		return err
	}
	s.UnsetFill()
	s.fill = f.Clone()
	setParent(s.fill, s)
	return nil
}

func (s *Style) CreateLine() *Line {
	s.UnsetLine()
	s.line = NewLine(s.ns)
	setParent(s.line, s)
	return s.line
}

func (s *Style) CreateMarker() *Marker {
	s.UnsetMarker()
	s.marker = NewMarker(s.ns)
	setParent(s.marker, s)
	return s.marker
}

func (s *Style) CreateFill() *Fill {
	s.UnsetFill()
	s.fill = NewFill(s.ns)
	setParent(s.fill, s)
	return s.fill
}

func (s *Style) checkChild(el Element) error {
	if isNil(el) {
		return errors.WithMessage(ErrOperationFailed, "nil style component")
	}
	if el.Level() != s.Level() {
		return errors.WithMessagef(ErrLevelMismatch, "%s level %d", el.ElementName(), el.Level())
	}
	if el.Version() != s.Version() {
		return errors.WithMessagef(ErrVersionMismatch, "%s version %d", el.ElementName(), el.Version())
	}
	return nil
}

func (s *Style) Clone() *Style {
	c := *s
	c.elementBase = s.elementBase.clone(&c)
	if s.line != nil {
		c.line = s.line.Clone()
	}
	if s.marker != nil {
		c.marker = s.marker.Clone()
	}
	if s.fill != nil {
		c.fill = s.fill.Clone()
	}
	connectToChild(&c)
	return &c
}

func (s *Style) attributes() []attribute {
	return append(s.elementBase.attributes(),
		s.idAttr(true),
		s.nameAttr(),
		sidRefAttr("baseStyle", &s.baseStyle, false),
	)
}

func (s *Style) children() []child {
	return append(s.elementBase.children(),
		elementChild(s, "line", &s.line, NewLine, false),
		elementChild(s, "marker", &s.marker, NewMarker, false),
		elementChild(s, "fill", &s.fill, NewFill, false),
	)
}

// Line is the stroke of a curve or of a marker outline.
type Line struct {
	elementBase
	typ       LineType
	color     string
	thickness optional[float64]
}

func NewLine(ns Namespaces) *Line {
	l := &Line{}
	l.elementBase = newElementBase(l, ns)
	return l
}

func (l *Line) TypeCode() TypeCode   { return TypeLine }
func (l *Line) ElementName() string  { return "line" }
func (l *Line) copyElement() Element { return l.Clone() }

// Type returns LineTypeInvalid when unset.
func (l *Line) Type() LineType     { return l.typ }
func (l *Line) SetType(t LineType) { l.typ = t }
func (l *Line) IsSetType() bool    { return l.typ.IsValid() }
func (l *Line) UnsetType()         { l.typ = LineTypeInvalid }

// SetTypeString sets the type from its XML name. Unknown names fail with
// ErrInvalidAttributeValue and leave the type unset.
func (l *Line) SetTypeString(s string) error {
	l.typ = LineTypeFromString(s)
	if !l.typ.IsValid() {
		return errInvalidEnum("LineType", s)
	}
	return nil
}

// Color is a hex RGB or RGBA string.
func (l *Line) Color() string     { return l.color }
func (l *Line) SetColor(c string) { l.color = c }
func (l *Line) IsSetColor() bool  { return l.color != "" }
func (l *Line) UnsetColor()       { l.color = "" }

func (l *Line) Thickness() float64     { return l.thickness.getOr(math.NaN()) }
func (l *Line) SetThickness(t float64) { l.thickness.set(t) }
func (l *Line) IsSetThickness() bool   { return l.thickness.isSet() }
func (l *Line) UnsetThickness()        { l.thickness.unset() }

func (l *Line) Clone() *Line {
	c := *l
	c.elementBase = l.elementBase.clone(&c)
	return &c
}

func (l *Line) attributes() []attribute {
	return append(l.elementBase.attributes(),
		enumAttr("type", &l.typ, LineTypeFromString, false),
		stringAttr("color", &l.color, false),
		doubleAttr("thickness", &l.thickness, false),
	)
}

type Marker struct {
	elementBase
	typ           MarkerType
	size          optional[float64]
	fill          string
	lineColor     string
	lineThickness optional[float64]
}

func NewMarker(ns Namespaces) *Marker {
	m := &Marker{}
	m.elementBase = newElementBase(m, ns)
	return m
}

func (m *Marker) TypeCode() TypeCode   { return TypeMarker }
func (m *Marker) ElementName() string  { return "marker" }
func (m *Marker) copyElement() Element { return m.Clone() }

func (m *Marker) Type() MarkerType     { return m.typ }
func (m *Marker) SetType(t MarkerType) { m.typ = t }
func (m *Marker) IsSetType() bool      { return m.typ.IsValid() }
func (m *Marker) UnsetType()           { m.typ = MarkerTypeInvalid }

func (m *Marker) SetTypeString(s string) error {
	m.typ = MarkerTypeFromString(s)
	if !m.typ.IsValid() {
		return errInvalidEnum("MarkerType", s)
	}
	return nil
}

func (m *Marker) Size() float64     { return m.size.getOr(math.NaN()) }
func (m *Marker) SetSize(s float64) { m.size.set(s) }
func (m *Marker) IsSetSize() bool   { return m.size.isSet() }
func (m *Marker) UnsetSize()        { m.size.unset() }

// Fill is the marker's fill color.
func (m *Marker) Fill() string     { return m.fill }
func (m *Marker) SetFill(c string) { m.fill = c }
func (m *Marker) IsSetFill() bool  { return m.fill != "" }
func (m *Marker) UnsetFill()       { m.fill = "" }

func (m *Marker) LineColor() string     { return m.lineColor }
func (m *Marker) SetLineColor(c string) { m.lineColor = c }
func (m *Marker) IsSetLineColor() bool  { return m.lineColor != "" }
func (m *Marker) UnsetLineColor()       { m.lineColor = "" }

func (m *Marker) LineThickness() float64     { return m.lineThickness.getOr(math.NaN()) }
func (m *Marker) SetLineThickness(t float64) { m.lineThickness.set(t) }
func (m *Marker) IsSetLineThickness() bool   { return m.lineThickness.isSet() }
func (m *Marker) UnsetLineThickness()        { m.lineThickness.unset() }

func (m *Marker) Clone() *Marker {
	c := *m
	c.elementBase = m.elementBase.clone(&c)
	return &c
}

func (m *Marker) attributes() []attribute {
	return append(m.elementBase.attributes(),
		enumAttr("type", &m.typ, MarkerTypeFromString, false),
		doubleAttr("size", &m.size, false),
		stringAttr("fill", &m.fill, false),
		stringAttr("lineColor", &m.lineColor, false),
		doubleAttr("lineThickness", &m.lineThickness, false),
	)
}

type Fill struct {
	elementBase
	color string
}

func NewFill(ns Namespaces) *Fill {
	f := &Fill{}
	f.elementBase = newElementBase(f, ns)
	return f
}

func (f *Fill) TypeCode() TypeCode   { return TypeFill }
func (f *Fill) ElementName() string  { return "fill" }
func (f *Fill) copyElement() Element { return f.Clone() }

func (f *Fill) Color() string     { return f.color }
func (f *Fill) SetColor(c string) { f.color = c }
func (f *Fill) IsSetColor() bool  { return f.color != "" }
func (f *Fill) UnsetColor()       { f.color = "" }

func (f *Fill) Clone() *Fill {
	c := *f
	c.elementBase = f.elementBase.clone(&c)
	return &c
}

func (f *Fill) attributes() []attribute {
	return append(f.elementBase.attributes(), stringAttr("color", &f.color, false))
}
