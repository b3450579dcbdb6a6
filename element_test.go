package sedml

import (
	"bytes"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const v4URI = "http://sed-ml.org/sed-ml/level1/version4"

func writeCompact(t *testing.T, el Element) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, WriteElement(&buf, el, WithoutDeclaration(), WithIndent("")))
	return buf.String()
}

func TestDataSetRequiredAttributesAndOrder(t *testing.T) {
	ds := NewDataSet(DefaultNamespaces())
	ds.SetLabel("ds1")
	require.NoError(t, ds.SetDataReference("dg1"))

	assert.False(t, ds.HasRequiredAttributes())

	require.NoError(t, ds.SetID("d1"))
	assert.True(t, ds.HasRequiredAttributes())

	assert.Equal(t,
		`<dataSet xmlns="`+v4URI+`" id="d1" label="ds1" dataReference="dg1"></dataSet>`,
		writeCompact(t, ds))

	require.NoError(t, ds.SetName("Time"))
	assert.Equal(t,
		`<dataSet xmlns="`+v4URI+`" id="d1" label="ds1" name="Time" dataReference="dg1"></dataSet>`,
		writeCompact(t, ds))
}

func TestSimpleRepeatedTaskRequiredAttributes(t *testing.T) {
	task := NewSimpleRepeatedTask(DefaultNamespaces())
	assert.False(t, task.HasRequiredAttributes())
	assert.Equal(t, IntUnset, task.NumRepeats())

	task.SetResetModel(true)
	task.SetNumRepeats(3)

	assert.True(t, task.HasRequiredAttributes())
	assert.Equal(t, 3, task.NumRepeats())
	assert.True(t, task.ResetModel())
	assert.Equal(t, TypeSimpleRepeatedTask, task.TypeCode())
	assert.Equal(t, "simpleRepeatedTask", task.ElementName())
}

func TestLineInvalidTypeString(t *testing.T) {
	line := NewLine(DefaultNamespaces())

	err := line.SetTypeString("not-a-real-type")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAttributeValue))
	assert.False(t, line.IsSetType())
	assert.Equal(t, LineTypeInvalid, line.Type())

	require.NoError(t, line.SetTypeString("dashDot"))
	assert.Equal(t, LineTypeDashDot, line.Type())
	assert.Equal(t, "dashDot", line.Type().String())
}

func TestUnsetThenGet(t *testing.T) {
	ns := DefaultNamespaces()

	p := NewParameter(ns)
	p.SetValue(2.5)
	assert.Equal(t, 2.5, p.Value())
	p.UnsetValue()
	assert.False(t, p.IsSetValue())
	assert.True(t, math.IsNaN(p.Value()))

	st := NewSubTask(ns)
	st.SetOrder(0)
	assert.True(t, st.IsSetOrder())
	st.UnsetOrder()
	assert.Equal(t, IntUnset, st.Order())

	c := NewCurve(ns)
	c.SetLogX(true)
	c.UnsetLogX()
	assert.False(t, c.IsSetLogX())
	assert.False(t, c.LogX())

	m := NewModel(ns)
	m.SetSource("a.xml")
	m.UnsetSource()
	assert.Equal(t, "", m.Source())
	assert.False(t, m.IsSetSource())
}

func TestSetIDValidation(t *testing.T) {
	ns := DefaultNamespaces()

	m := NewModel(ns)
	err := m.SetID("1model")
	assert.True(t, errors.Is(err, ErrInvalidAttributeValue))
	assert.False(t, m.IsSetID())

	alg := NewAlgorithm(ns)
	err = alg.SetID("alg")
	assert.True(t, errors.Is(err, ErrUnexpectedAttribute))

	err = m.SetMetaID("_meta.1")
	assert.NoError(t, err)
	assert.Equal(t, "_meta.1", m.MetaID())
}

func TestReferenceSetters(t *testing.T) {
	task := NewTask(DefaultNamespaces())

	err := task.SetModelReference("not a ref")
	assert.True(t, errors.Is(err, ErrInvalidAttributeValue))
	assert.False(t, task.IsSetModelReference())

	require.NoError(t, task.SetModelReference("model1"))
	assert.Equal(t, "model1", task.ModelReference())
}

func TestConcatenateRequiresVersion4(t *testing.T) {
	v3 := NewRepeatedTask(NewNamespaces(1, 3))
	err := v3.SetConcatenate(true)
	assert.True(t, errors.Is(err, ErrUnexpectedAttribute))
	assert.False(t, v3.IsSetConcatenate())
	assert.NotContains(t, ExpectedAttributes(v3), "concatenate")

	v4 := NewRepeatedTask(NewNamespaces(1, 4))
	require.NoError(t, v4.SetConcatenate(true))
	assert.True(t, v4.Concatenate())
	assert.Contains(t, ExpectedAttributes(v4), "concatenate")
}

func TestExpectedAttributes(t *testing.T) {
	ns := DefaultNamespaces()

	assert.Equal(t, []string{"metaid", "id", "label", "name", "dataReference"}, ExpectedAttributes(NewDataSet(ns)))
	assert.Equal(t,
		[]string{"metaid", "id", "name", "logX", "logY", "xDataReference", "yDataReference", "order", "style", "zDataReference", "logZ", "type"},
		ExpectedAttributes(NewSurface(ns)))
	assert.Equal(t,
		[]string{"metaid", "id", "name", "modelReference", "simulationReference", "resetModel", "numRepeats"},
		ExpectedAttributes(NewSimpleRepeatedTask(ns)))
}

func TestNumberOfStepsName(t *testing.T) {
	v3 := NewUniformTimeCourse(NewNamespaces(1, 3))
	assert.Contains(t, ExpectedAttributes(v3), "numberOfPoints")
	assert.NotContains(t, ExpectedAttributes(v3), "numberOfSteps")

	v4 := NewUniformTimeCourse(NewNamespaces(1, 4))
	assert.Contains(t, ExpectedAttributes(v4), "numberOfSteps")

	v4.SetNumberOfPoints(7)
	assert.Equal(t, 7, v4.NumberOfSteps())
}

func TestRegistry(t *testing.T) {
	ns := DefaultNamespaces()

	el := NewElement("dataSet", ns)
	require.NotNil(t, el)
	assert.IsType(t, &DataSet{}, el)
	assert.Equal(t, TypeDataSet, el.TypeCode())

	assert.Nil(t, NewElement("noSuchElement", ns))
	assert.Equal(t, TypePlot2D, TypeCodeOf("plot2D"))
	assert.Equal(t, TypeUnknown, TypeCodeOf("noSuchElement"))
	assert.Equal(t, "plot2D", TypePlot2D.String())
	assert.Equal(t, "listOf", TypeListOf.String())

	for name, meta := range typeName2META {
		el := meta.creator(ns)
		assert.Equal(t, name, el.ElementName())
		assert.Equal(t, meta.typ, el.TypeCode())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	ns := DefaultNamespaces()

	rt := NewRepeatedTask(ns)
	require.NoError(t, rt.SetID("rt"))
	rt.SetResetModel(false)
	r := rt.CreateVectorRange()
	require.NoError(t, r.SetID("r"))
	r.SetValues([]float64{1, 2, 3})
	st := rt.CreateSubTask()
	require.NoError(t, st.SetTask("task1"))

	c := rt.Clone()
	assert.Equal(t, writeCompact(t, rt), writeCompact(t, c))
	assert.Nil(t, c.Parent())

	c.GetRange(0).(*VectorRange).AddValue(4)
	require.NoError(t, c.GetSubTask(0).SetTask("task2"))

	assert.Equal(t, []float64{1, 2, 3}, r.Values())
	assert.Equal(t, "task1", st.Task())

	assert.Same(t, c.SubTasks(), c.GetSubTask(0).Parent())
	assert.Same(t, Element(c), c.SubTasks().Parent())

	assert.Equal(t, writeCompact(t, c), writeCompact(t, c.Clone()))
}

func TestCloneKeepsNotes(t *testing.T) {
	m := NewModel(DefaultNamespaces())
	require.Error(t, m.SetNotes(nil))

	notes, err := ParseMath(`<math xmlns="http://www.w3.org/1998/Math/MathML"><ci>x</ci></math>`)
	require.NoError(t, err)
	require.Error(t, m.SetNotes(notes.Element()))

	doc := parseXML(t, `<notes><p xmlns="http://www.w3.org/1999/xhtml">model notes</p></notes>`)
	require.NoError(t, m.SetNotes(doc))

	c := m.Clone()
	require.True(t, c.IsSetNotes())
	assert.NotSame(t, m.Notes(), c.Notes())
	assert.Equal(t, "model notes", c.Notes().FindElement("p").Text())
}

func TestStyleChildren(t *testing.T) {
	ns := DefaultNamespaces()

	s := NewStyle(ns)
	require.NoError(t, s.SetID("style1"))
	s.CreateLine().SetType(LineTypeSolid)

	marker := NewMarker(ns)
	marker.SetType(MarkerTypeCircle)
	require.NoError(t, s.SetMarker(marker))
	assert.NotSame(t, marker, s.Marker())
	assert.Same(t, Element(s), s.Marker().Parent())

	assert.True(t, errors.Is(s.SetFill(NewFill(NewNamespaces(1, 3))), ErrVersionMismatch))
	assert.True(t, errors.Is(s.SetFill(nil), ErrOperationFailed))

	assert.Equal(t,
		`<style xmlns="`+v4URI+`" id="style1"><line type="solid"></line><marker type="circle"></marker></style>`,
		writeCompact(t, s))
}

func TestErrorCodeSplit(t *testing.T) {
	code := ElementErrorCode(TypeDataSet, ViolationMissingAttribute)

	tc, v, ok := code.Split()
	require.True(t, ok)
	assert.Equal(t, TypeDataSet, tc)
	assert.Equal(t, ViolationMissingAttribute, v)

	_, _, ok = ErrXMLSyntax.Split()
	assert.False(t, ok)
}

func TestNamespaces(t *testing.T) {
	assert.Equal(t, "http://sed-ml.org/", NewNamespaces(1, 1).URI())
	assert.Equal(t, v4URI, DefaultNamespaces().URI())

	ns, ok := NamespacesFromURI("http://sed-ml.org/sed-ml/level1/version3")
	require.True(t, ok)
	assert.Equal(t, uint(3), ns.Version())

	_, ok = NamespacesFromURI("http://sed-ml.org/sed-ml/level1/version9")
	assert.False(t, ok)

	assert.Panics(t, func() { NewNamespaces(2, 1) })
}

func TestReplacedChildIsDetached(t *testing.T) {
	ns := DefaultNamespaces()

	s := NewStyle(ns)
	first := s.CreateLine()
	second := s.CreateLine()
	assert.Nil(t, first.Parent())
	assert.Same(t, Element(s), second.Parent())

	require.NoError(t, s.SetLine(NewLine(ns)))
	assert.Nil(t, second.Parent())

	marker := s.CreateMarker()
	s.UnsetMarker()
	assert.Nil(t, marker.Parent())

	fill := s.CreateFill()
	require.NoError(t, s.SetFill(NewFill(ns)))
	assert.Nil(t, fill.Parent())

	sim := NewSteadyState(ns)
	alg := sim.CreateAlgorithm()
	require.NoError(t, sim.SetAlgorithm(NewAlgorithm(ns)))
	assert.Nil(t, alg.Parent())
	assert.Same(t, Element(sim), sim.Algorithm().Parent())
}

func TestChangesByID(t *testing.T) {
	ns := DefaultNamespaces()

	m := NewModel(ns)
	ca := m.CreateChangeAttribute()
	require.NoError(t, ca.SetID("c1"))
	m.CreateRemoveXML()

	assert.Same(t, Change(ca), m.GetChangeByID("c1"))
	assert.Nil(t, m.GetChangeByID("c2"))
	assert.Same(t, Change(ca), m.RemoveChangeByID("c1"))
	assert.Equal(t, 1, m.NumChanges())
	assert.Nil(t, ca.Parent())

	sv := NewSetValue(ns)
	assert.True(t, errors.Is(sv.SetID("sv1"), ErrUnexpectedAttribute))
}

func TestDocumentOf(t *testing.T) {
	doc := NewDocument(DefaultNamespaces())
	rt := doc.CreateRepeatedTask()
	st := rt.CreateSubTask()

	assert.Same(t, doc, DocumentOf(st))
	assert.Same(t, doc, DocumentOf(doc))
	assert.Nil(t, DocumentOf(NewSubTask(doc.Namespaces())))
	assert.Nil(t, DocumentOf(nil))
}

func TestUniformRangeValuesLimit(t *testing.T) {
	r := NewUniformRange(DefaultNamespaces())
	r.SetStart(0)
	r.SetEnd(1)

	r.SetNumberOfPoints(2147483646)
	assert.Nil(t, r.Values())

	r.SetNumberOfPoints(-1)
	assert.Nil(t, r.Values())

	r.SetNumberOfPoints(4)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, r.Values())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "severity(9)", Severity(9).String())
	assert.Equal(t, "severity(-1)", Severity(-1).String())
	assert.NotPanics(t, func() { _ = (&Diagnostic{Severity: 9}).Error() })
}
