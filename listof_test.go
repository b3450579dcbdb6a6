package sedml

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, ns Namespaces, id string) *Model {
	t.Helper()

	m := NewModel(ns)
	require.NoError(t, m.SetID(id))
	m.SetLanguage("urn:sedml:language:sbml")
	m.SetSource(id + ".xml")
	return m
}

func TestListAppendCopies(t *testing.T) {
	doc := NewDocument(DefaultNamespaces())
	m := newModel(t, doc.Namespaces(), "m1")

	require.NoError(t, doc.AddModel(m))
	require.Equal(t, 1, doc.NumModels())

	added := doc.GetModel(0)
	assert.NotSame(t, m, added)
	assert.Nil(t, m.Parent())
	assert.Same(t, doc.Models(), added.Parent())

	m.SetSource("other.xml")
	assert.Equal(t, "m1.xml", added.Source())
}

func TestListAppendRejects(t *testing.T) {
	doc := NewDocument(DefaultNamespaces())

	incomplete := NewModel(doc.Namespaces())
	err := doc.AddModel(incomplete)
	assert.True(t, errors.Is(err, ErrInvalidObject))

	err = doc.AddModel(nil)
	assert.True(t, errors.Is(err, ErrOperationFailed))

	err = doc.AddModel(newModel(t, NewNamespaces(1, 2), "m"))
	assert.True(t, errors.Is(err, ErrVersionMismatch))

	err = doc.AddSimulation(nil)
	assert.True(t, errors.Is(err, ErrOperationFailed))

	assert.Equal(t, 0, doc.NumModels())
}

func TestListAppendAndOwn(t *testing.T) {
	doc := NewDocument(DefaultNamespaces())

	m := NewModel(doc.Namespaces())
	require.NoError(t, doc.Models().AppendAndOwn(m))
	assert.Same(t, m, doc.GetModel(0))
	assert.Same(t, doc.Models(), m.Parent())
	assert.Same(t, doc, m.Document())
}

func TestListAppendAndOwnRejectsOwnedItem(t *testing.T) {
	ns := DefaultNamespaces()
	doc := NewDocument(ns)
	other := NewDocument(ns)

	m := newModel(t, ns, "m")
	require.NoError(t, doc.Models().AppendAndOwn(m))

	err := doc.Models().AppendAndOwn(m)
	assert.True(t, errors.Is(err, ErrOperationFailed))
	assert.Equal(t, 1, doc.NumModels())

	err = other.Models().AppendAndOwn(m)
	assert.True(t, errors.Is(err, ErrOperationFailed))
	err = other.Models().Insert(0, m)
	assert.True(t, errors.Is(err, ErrOperationFailed))
	assert.Equal(t, 0, other.NumModels())
	assert.Same(t, doc, m.Document())

	require.NoError(t, other.AddModel(m), "Append copies, so an owned item is fine")
	assert.Equal(t, 1, other.NumModels())
	assert.NotSame(t, m, other.GetModel(0))

	removed := doc.RemoveModel(0)
	require.NoError(t, other.Models().AppendAndOwn(removed))
	assert.Same(t, other, removed.Document())
}

func TestListInsertAndRemove(t *testing.T) {
	ns := DefaultNamespaces()
	doc := NewDocument(ns)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, doc.AddModel(newModel(t, ns, id)))
	}

	require.NoError(t, doc.Models().Insert(1, newModel(t, ns, "x")))
	require.NoError(t, doc.Models().Insert(doc.NumModels(), newModel(t, ns, "z")))
	assert.True(t, errors.Is(doc.Models().Insert(9, newModel(t, ns, "y")), ErrOperationFailed))

	ids := func() []string {
		var out []string
		for _, m := range doc.Models().Items() {
			out = append(out, m.ID())
		}
		return out
	}
	assert.Equal(t, []string{"a", "x", "b", "c", "z"}, ids())

	removed := doc.RemoveModel(1)
	require.NotNil(t, removed)
	assert.Equal(t, "x", removed.ID())
	assert.Nil(t, removed.Parent())

	removed = doc.RemoveModelByID("c")
	require.NotNil(t, removed)
	assert.Nil(t, removed.Parent())
	assert.Equal(t, []string{"a", "b", "z"}, ids())

	assert.Nil(t, doc.RemoveModel(7))
	assert.Nil(t, doc.RemoveModel(-1))
	assert.Nil(t, doc.RemoveModelByID("missing"))
	assert.Nil(t, doc.GetModel(3))
	assert.Nil(t, doc.GetModelByID(""))

	doc.Models().Clear()
	assert.Equal(t, 0, doc.NumModels())
}

func TestListGetByIDReturnsFirst(t *testing.T) {
	ns := DefaultNamespaces()
	doc := NewDocument(ns)

	first := newModel(t, ns, "dup")
	second := newModel(t, ns, "dup")
	second.SetSource("second.xml")
	require.NoError(t, doc.AddModel(first))
	require.NoError(t, doc.AddModel(second))

	assert.Equal(t, "dup.xml", doc.GetModelByID("dup").Source())

	doc.RemoveModelByID("dup")
	assert.Equal(t, "second.xml", doc.GetModelByID("dup").Source())
}

func TestListHeterogeneousItems(t *testing.T) {
	doc := NewDocument(DefaultNamespaces())

	assert.Equal(t, TypeListOf, doc.Tasks().TypeCode())
	assert.Equal(t, TypeAbstractTask, doc.Tasks().ItemTypeCode())
	assert.Equal(t, TypeModel, doc.Models().ItemTypeCode())
	assert.Equal(t, "listOfTasks", doc.Tasks().ElementName())

	doc.CreateTask()
	doc.CreateRepeatedTask()
	doc.CreateSimpleRepeatedTask()

	codes := []TypeCode{}
	for _, task := range doc.Tasks().Items() {
		codes = append(codes, task.TypeCode())
	}
	assert.Equal(t, []TypeCode{TypeTask, TypeRepeatedTask, TypeSimpleRepeatedTask}, codes)

	uniform := NewUniformTimeCourse(doc.Namespaces())
	require.NoError(t, uniform.SetID("s"))
	uniform.SetInitialTime(0)
	uniform.SetOutputStartTime(0)
	uniform.SetOutputEndTime(1)
	uniform.SetNumberOfSteps(10)
	require.NoError(t, doc.AddSimulation(uniform))
	assert.IsType(t, &UniformTimeCourse{}, doc.GetSimulationByID("s"))
}

func TestListClone(t *testing.T) {
	ns := DefaultNamespaces()
	doc := NewDocument(ns)
	require.NoError(t, doc.AddModel(newModel(t, ns, "m1")))

	c := doc.Clone()
	require.Equal(t, 1, c.NumModels())
	assert.NotSame(t, doc.GetModel(0), c.GetModel(0))
	assert.Same(t, c.Models(), c.GetModel(0).Parent())
	assert.Same(t, c, c.GetModel(0).Document())

	c.GetModel(0).SetSource("changed.xml")
	assert.Equal(t, "m1.xml", doc.GetModel(0).Source())
}
