package sedml

import "github.com/pkg/errors"

// Model references a model source and the changes to apply before use.
type Model struct {
	elementBase
	language string
	source   string
	changes  *ListOf[Change]
}

func NewModel(ns Namespaces) *Model {
	m := &Model{}
	m.elementBase = newElementBase(m, ns)
	m.changes = newListOf[Change](ns, "listOfChanges", TypeChange)
	setParent(m.changes, m)
	return m
}

func (m *Model) TypeCode() TypeCode  { return TypeModel }
func (m *Model) ElementName() string { return "model" }

func (m *Model) Language() string        { return m.language }
func (m *Model) SetLanguage(lang string) { m.language = lang }
func (m *Model) IsSetLanguage() bool     { return m.language != "" }
func (m *Model) UnsetLanguage()          { m.language = "" }

func (m *Model) Source() string          { return m.source }
func (m *Model) SetSource(source string) { m.source = source }
func (m *Model) IsSetSource() bool       { return m.source != "" }
func (m *Model) UnsetSource()            { m.source = "" }

func (m *Model) Changes() *ListOf[Change] { return m.changes }
func (m *Model) NumChanges() int          { return m.changes.Len() }
func (m *Model) GetChange(i int) Change   { return m.changes.Get(i) }

// GetChangeByID returns the first change with the given id.
func (m *Model) GetChangeByID(id string) Change { return m.changes.GetByID(id) }

func (m *Model) RemoveChange(i int) Change {
	return m.changes.Remove(i)
}

func (m *Model) RemoveChangeByID(id string) Change {
	return m.changes.RemoveByID(id)
}

// AddChange appends a copy of c.
func (m *Model) AddChange(c Change) error {
	if isNil(c) {
		return errors.WithMessage(ErrOperationFailed, "nil change")
	}
	return m.changes.Append(c)
}

func (m *Model) CreateChangeAttribute() *ChangeAttribute {
	c := NewChangeAttribute(m.ns)
	m.changes.push(c)
	return c
}

func (m *Model) CreateAddXML() *AddXML {
	c := NewAddXML(m.ns)
	m.changes.push(c)
	return c
}

func (m *Model) CreateChangeXML() *ChangeXML {
	c := NewChangeXML(m.ns)
	m.changes.push(c)
	return c
}

func (m *Model) CreateRemoveXML() *RemoveXML {
	c := NewRemoveXML(m.ns)
	m.changes.push(c)
	return c
}

func (m *Model) CreateComputeChange() *ComputeChange {
	c := NewComputeChange(m.ns)
	m.changes.push(c)
	return c
}

func (m *Model) Clone() *Model {
	c := *m
	c.elementBase = m.elementBase.clone(&c)
	c.changes = m.changes.clone()
	connectToChild(&c)
	return &c
}

func (m *Model) copyElement() Element { return m.Clone() }

func (m *Model) attributes() []attribute {
	return append(m.elementBase.attributes(),
		m.idAttr(true),
		m.nameAttr(),
		stringAttr("language", &m.language, true),
		stringAttr("source", &m.source, true),
	)
}

func (m *Model) children() []child {
	return append(m.elementBase.children(), listChild(m.changes, false))
}
