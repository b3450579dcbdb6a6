package sedml

import "math"

// Output presents data generator results as a report or a plot.
type Output interface {
	Element
	isOutput()
}

type outputBase struct {
	elementBase
}

func (o *outputBase) isOutput() {}

func (o *outputBase) attributes() []attribute {
	return append(o.elementBase.attributes(), o.idAttr(true), o.nameAttr())
}

type Report struct {
	outputBase
	dataSets *ListOf[*DataSet]
}

func NewReport(ns Namespaces) *Report {
	r := &Report{}
	r.elementBase = newElementBase(r, ns)
	r.dataSets = newListOf[*DataSet](ns, "listOfDataSets", TypeDataSet)
	setParent(r.dataSets, r)
	return r
}

func (r *Report) TypeCode() TypeCode   { return TypeReport }
func (r *Report) ElementName() string  { return "report" }
func (r *Report) copyElement() Element { return r.Clone() }

func (r *Report) DataSets() *ListOf[*DataSet]          { return r.dataSets }
func (r *Report) NumDataSets() int                     { return r.dataSets.Len() }
func (r *Report) GetDataSet(i int) *DataSet            { return r.dataSets.Get(i) }
func (r *Report) GetDataSetByID(id string) *DataSet    { return r.dataSets.GetByID(id) }
func (r *Report) AddDataSet(ds *DataSet) error         { return r.dataSets.Append(ds) }
func (r *Report) RemoveDataSet(i int) *DataSet         { return r.dataSets.Remove(i) }
func (r *Report) RemoveDataSetByID(id string) *DataSet { return r.dataSets.RemoveByID(id) }

func (r *Report) CreateDataSet() *DataSet {
	ds := NewDataSet(r.ns)
	r.dataSets.push(ds)
	return ds
}

func (r *Report) Clone() *Report {
	c := *r
	c.elementBase = r.elementBase.clone(&c)
	c.dataSets = r.dataSets.clone()
	connectToChild(&c)
	return &c
}

func (r *Report) children() []child {
	return append(r.elementBase.children(), listChild(r.dataSets, false))
}

// plotBase carries the presentation attributes shared by 2D and 3D plots.
type plotBase struct {
	outputBase
	legend optional[bool]
	height optional[float64]
	width  optional[float64]
}

func (p *plotBase) Legend() bool      { return p.legend.getOr(false) }
func (p *plotBase) SetLegend(l bool)  { p.legend.set(l) }
func (p *plotBase) IsSetLegend() bool { return p.legend.isSet() }
func (p *plotBase) UnsetLegend()      { p.legend.unset() }

func (p *plotBase) Height() float64     { return p.height.getOr(math.NaN()) }
func (p *plotBase) SetHeight(h float64) { p.height.set(h) }
func (p *plotBase) IsSetHeight() bool   { return p.height.isSet() }
func (p *plotBase) UnsetHeight()        { p.height.unset() }

func (p *plotBase) Width() float64     { return p.width.getOr(math.NaN()) }
func (p *plotBase) SetWidth(w float64) { p.width.set(w) }
func (p *plotBase) IsSetWidth() bool   { return p.width.isSet() }
func (p *plotBase) UnsetWidth()        { p.width.unset() }

func (p *plotBase) attributes() []attribute {
	return append(p.outputBase.attributes(),
		boolAttr("legend", &p.legend, false),
		doubleAttr("height", &p.height, false),
		doubleAttr("width", &p.width, false),
	)
}

type Plot2D struct {
	plotBase
	curves *ListOf[*Curve]
}

func NewPlot2D(ns Namespaces) *Plot2D {
	p := &Plot2D{}
	p.elementBase = newElementBase(p, ns)
	p.curves = newListOf[*Curve](ns, "listOfCurves", TypeCurve)
	setParent(p.curves, p)
	return p
}

func (p *Plot2D) TypeCode() TypeCode   { return TypePlot2D }
func (p *Plot2D) ElementName() string  { return "plot2D" }
func (p *Plot2D) copyElement() Element { return p.Clone() }

func (p *Plot2D) Curves() *ListOf[*Curve]          { return p.curves }
func (p *Plot2D) NumCurves() int                   { return p.curves.Len() }
func (p *Plot2D) GetCurve(i int) *Curve            { return p.curves.Get(i) }
func (p *Plot2D) GetCurveByID(id string) *Curve    { return p.curves.GetByID(id) }
func (p *Plot2D) AddCurve(c *Curve) error          { return p.curves.Append(c) }
func (p *Plot2D) RemoveCurve(i int) *Curve         { return p.curves.Remove(i) }
func (p *Plot2D) RemoveCurveByID(id string) *Curve { return p.curves.RemoveByID(id) }

func (p *Plot2D) CreateCurve() *Curve {
	c := NewCurve(p.ns)
	p.curves.push(c)
	return c
}

func (p *Plot2D) Clone() *Plot2D {
	c := *p
	c.elementBase = p.elementBase.clone(&c)
	c.curves = p.curves.clone()
	connectToChild(&c)
	return &c
}

func (p *Plot2D) children() []child {
	return append(p.elementBase.children(), listChild(p.curves, false))
}

type Plot3D struct {
	plotBase
	surfaces *ListOf[*Surface]
}

func NewPlot3D(ns Namespaces) *Plot3D {
	p := &Plot3D{}
	p.elementBase = newElementBase(p, ns)
	p.surfaces = newListOf[*Surface](ns, "listOfSurfaces", TypeSurface)
	setParent(p.surfaces, p)
	return p
}

func (p *Plot3D) TypeCode() TypeCode   { return TypePlot3D }
func (p *Plot3D) ElementName() string  { return "plot3D" }
func (p *Plot3D) copyElement() Element { return p.Clone() }

func (p *Plot3D) Surfaces() *ListOf[*Surface]          { return p.surfaces }
func (p *Plot3D) NumSurfaces() int                     { return p.surfaces.Len() }
func (p *Plot3D) GetSurface(i int) *Surface            { return p.surfaces.Get(i) }
func (p *Plot3D) GetSurfaceByID(id string) *Surface    { return p.surfaces.GetByID(id) }
func (p *Plot3D) AddSurface(s *Surface) error          { return p.surfaces.Append(s) }
func (p *Plot3D) RemoveSurface(i int) *Surface         { return p.surfaces.Remove(i) }
func (p *Plot3D) RemoveSurfaceByID(id string) *Surface { return p.surfaces.RemoveByID(id) }

func (p *Plot3D) CreateSurface() *Surface {
	s := NewSurface(p.ns)
	p.surfaces.push(s)
	return s
}

func (p *Plot3D) Clone() *Plot3D {
	c := *p
	c.elementBase = p.elementBase.clone(&c)
	c.surfaces = p.surfaces.clone()
	connectToChild(&c)
	return &c
}

func (p *Plot3D) children() []child {
	return append(p.elementBase.children(), listChild(p.surfaces, false))
}

// DataSet is one column of a report.
type DataSet struct {
	elementBase
	label         string
	dataReference string
}

func NewDataSet(ns Namespaces) *DataSet {
	ds := &DataSet{}
	ds.elementBase = newElementBase(ds, ns)
	return ds
}

func (ds *DataSet) TypeCode() TypeCode   { return TypeDataSet }
func (ds *DataSet) ElementName() string  { return "dataSet" }
func (ds *DataSet) copyElement() Element { return ds.Clone() }

func (ds *DataSet) Label() string     { return ds.label }
func (ds *DataSet) SetLabel(l string) { ds.label = l }
func (ds *DataSet) IsSetLabel() bool  { return ds.label != "" }
func (ds *DataSet) UnsetLabel()       { ds.label = "" }

// DataReference is the id of the data generator supplying the column.
func (ds *DataSet) DataReference() string { return ds.dataReference }

func (ds *DataSet) SetDataReference(ref string) error {
	return setSIdRef(&ds.dataReference, "dataReference", ref)
}

func (ds *DataSet) IsSetDataReference() bool { return ds.dataReference != "" }
func (ds *DataSet) UnsetDataReference()      { ds.dataReference = "" }

func (ds *DataSet) Clone() *DataSet {
	c := *ds
	c.elementBase = ds.elementBase.clone(&c)
	return &c
}

func (ds *DataSet) attributes() []attribute {
	return append(ds.elementBase.attributes(),
		ds.idAttr(true),
		stringAttr("label", &ds.label, true),
		ds.nameAttr(),
		sidRefAttr("dataReference", &ds.dataReference, true),
	)
}

// Curve plots one data generator against another.
type Curve struct {
	elementBase
	logX           optional[bool]
	logY           optional[bool]
	xDataReference string
	yDataReference string
	typ            CurveType
	order          optional[int]
	style          string
}

func NewCurve(ns Namespaces) *Curve {
	c := &Curve{}
	c.elementBase = newElementBase(c, ns)
	return c
}

func (c *Curve) TypeCode() TypeCode   { return TypeCurve }
func (c *Curve) ElementName() string  { return "curve" }
func (c *Curve) copyElement() Element { return c.Clone() }

func (c *Curve) LogX() bool      { return c.logX.getOr(false) }
func (c *Curve) SetLogX(l bool)  { c.logX.set(l) }
func (c *Curve) IsSetLogX() bool { return c.logX.isSet() }
func (c *Curve) UnsetLogX()      { c.logX.unset() }

func (c *Curve) LogY() bool      { return c.logY.getOr(false) }
func (c *Curve) SetLogY(l bool)  { c.logY.set(l) }
func (c *Curve) IsSetLogY() bool { return c.logY.isSet() }
func (c *Curve) UnsetLogY()      { c.logY.unset() }

func (c *Curve) XDataReference() string { return c.xDataReference }

func (c *Curve) SetXDataReference(ref string) error {
	return setSIdRef(&c.xDataReference, "xDataReference", ref)
}

func (c *Curve) IsSetXDataReference() bool { return c.xDataReference != "" }
func (c *Curve) UnsetXDataReference()      { c.xDataReference = "" }

func (c *Curve) YDataReference() string { return c.yDataReference }

func (c *Curve) SetYDataReference(ref string) error {
	return setSIdRef(&c.yDataReference, "yDataReference", ref)
}

func (c *Curve) IsSetYDataReference() bool { return c.yDataReference != "" }
func (c *Curve) UnsetYDataReference()      { c.yDataReference = "" }

// Type returns CurveTypeInvalid when unset.
func (c *Curve) Type() CurveType     { return c.typ }
func (c *Curve) SetType(t CurveType) { c.typ = t }
func (c *Curve) IsSetType() bool     { return c.typ.IsValid() }
func (c *Curve) UnsetType()          { c.typ = CurveTypeInvalid }

// SetTypeString sets the type from its XML name. Unknown names leave the
// type unset.
func (c *Curve) SetTypeString(s string) error {
	c.typ = CurveTypeFromString(s)
	if !c.typ.IsValid() {
		return errInvalidEnum("CurveType", s)
	}
	return nil
}

func (c *Curve) Order() int       { return c.order.getOr(IntUnset) }
func (c *Curve) SetOrder(o int)   { c.order.set(o) }
func (c *Curve) IsSetOrder() bool { return c.order.isSet() }
func (c *Curve) UnsetOrder()      { c.order.unset() }

// Style is the id of the style applied to the curve.
func (c *Curve) Style() string { return c.style }

func (c *Curve) SetStyle(ref string) error {
	return setSIdRef(&c.style, "style", ref)
}

func (c *Curve) IsSetStyle() bool { return c.style != "" }
func (c *Curve) UnsetStyle()      { c.style = "" }

func (c *Curve) Clone() *Curve {
	n := *c
	n.elementBase = c.elementBase.clone(&n)
	return &n
}

func (c *Curve) attributes() []attribute {
	return c.curveAttributes(true)
}

// curveAttributes lists the curve attributes. Surfaces declare their own
// type attribute and leave the curve's out.
func (c *Curve) curveAttributes(withType bool) []attribute {
	attrs := append(c.elementBase.attributes(),
		c.idAttr(false),
		c.nameAttr(),
		boolAttr("logX", &c.logX, false),
		boolAttr("logY", &c.logY, false),
		sidRefAttr("xDataReference", &c.xDataReference, true),
		sidRefAttr("yDataReference", &c.yDataReference, true),
	)
	if withType {
		attrs = append(attrs, enumAttr("type", &c.typ, CurveTypeFromString, false))
	}
	return append(attrs,
		intAttr("order", &c.order, false),
		sidRefAttr("style", &c.style, false),
	)
}

// Surface plots a third data generator over the x and y data of a curve.
type Surface struct {
	Curve
	zDataReference string
	logZ           optional[bool]
	typ            SurfaceType
}

func NewSurface(ns Namespaces) *Surface {
	s := &Surface{}
	s.elementBase = newElementBase(s, ns)
	return s
}

func (s *Surface) TypeCode() TypeCode   { return TypeSurface }
func (s *Surface) ElementName() string  { return "surface" }
func (s *Surface) copyElement() Element { return s.Clone() }

func (s *Surface) ZDataReference() string { return s.zDataReference }

func (s *Surface) SetZDataReference(ref string) error {
	return setSIdRef(&s.zDataReference, "zDataReference", ref)
}

func (s *Surface) IsSetZDataReference() bool { return s.zDataReference != "" }
func (s *Surface) UnsetZDataReference()      { s.zDataReference = "" }

func (s *Surface) LogZ() bool      { return s.logZ.getOr(false) }
func (s *Surface) SetLogZ(l bool)  { s.logZ.set(l) }
func (s *Surface) IsSetLogZ() bool { return s.logZ.isSet() }
func (s *Surface) UnsetLogZ()      { s.logZ.unset() }

// Type returns SurfaceTypeInvalid when unset.
func (s *Surface) Type() SurfaceType     { return s.typ }
func (s *Surface) SetType(t SurfaceType) { s.typ = t }
func (s *Surface) IsSetType() bool       { return s.typ.IsValid() }
func (s *Surface) UnsetType()            { s.typ = SurfaceTypeInvalid }

func (s *Surface) SetTypeString(str string) error {
	s.typ = SurfaceTypeFromString(str)
	if !s.typ.IsValid() {
		return errInvalidEnum("SurfaceType", str)
	}
	return nil
}

func (s *Surface) Clone() *Surface {
	c := *s
	c.elementBase = s.elementBase.clone(&c)
	return &c
}

func (s *Surface) attributes() []attribute {
	return append(s.Curve.curveAttributes(false),
		sidRefAttr("zDataReference", &s.zDataReference, true),
		boolAttr("logZ", &s.logZ, false),
		enumAttr("type", &s.typ, SurfaceTypeFromString, false),
	)
}
