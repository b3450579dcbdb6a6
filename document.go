package sedml

import "github.com/pkg/errors"

// Document is the <sedML> root. It owns the top-level lists and the error
// log filled while the document is read or checked.
type Document struct {
	elementBase
	level          optional[int]
	version        optional[int]
	models         *ListOf[*Model]
	simulations    *ListOf[Simulation]
	tasks          *ListOf[AbstractTask]
	dataGenerators *ListOf[*DataGenerator]
	outputs        *ListOf[Output]
	styles         *ListOf[*Style]
	errorLog       *ErrorLog
}

func NewDocument(ns Namespaces) *Document {
	doc := &Document{errorLog: NewErrorLog()}
	doc.elementBase = newElementBase(doc, ns)
	doc.level = some(int(ns.Level()))
	doc.version = some(int(ns.Version()))
	doc.models = newListOf[*Model](ns, "listOfModels", TypeModel)
	doc.simulations = newListOf[Simulation](ns, "listOfSimulations", TypeSimulation)
	doc.tasks = newListOf[AbstractTask](ns, "listOfTasks", TypeAbstractTask)
	doc.dataGenerators = newListOf[*DataGenerator](ns, "listOfDataGenerators", TypeDataGenerator)
	doc.outputs = newListOf[Output](ns, "listOfOutputs", TypeOutput)
	doc.styles = newListOf[*Style](ns, "listOfStyles", TypeStyle)
	connectToChild(doc)
	return doc
}

func (doc *Document) TypeCode() TypeCode   { return TypeDocument }
func (doc *Document) ElementName() string  { return "sedML" }
func (doc *Document) copyElement() Element { return doc.Clone() }

func (doc *Document) ErrorLog() *ErrorLog { return doc.errorLog }

// NumErrors counts the logged diagnostics of error severity or worse.
func (doc *Document) NumErrors() int { return doc.errorLog.NumFailures(SeverityError) }

func (doc *Document) Models() *ListOf[*Model]          { return doc.models }
func (doc *Document) NumModels() int                   { return doc.models.Len() }
func (doc *Document) GetModel(i int) *Model            { return doc.models.Get(i) }
func (doc *Document) GetModelByID(id string) *Model    { return doc.models.GetByID(id) }
func (doc *Document) AddModel(m *Model) error          { return doc.models.Append(m) }
func (doc *Document) RemoveModel(i int) *Model         { return doc.models.Remove(i) }
func (doc *Document) RemoveModelByID(id string) *Model { return doc.models.RemoveByID(id) }

func (doc *Document) CreateModel() *Model {
	m := NewModel(doc.ns)
	doc.models.push(m)
	return m
}

func (doc *Document) Simulations() *ListOf[Simulation]          { return doc.simulations }
func (doc *Document) NumSimulations() int                       { return doc.simulations.Len() }
func (doc *Document) GetSimulation(i int) Simulation            { return doc.simulations.Get(i) }
func (doc *Document) GetSimulationByID(id string) Simulation    { return doc.simulations.GetByID(id) }
func (doc *Document) RemoveSimulation(i int) Simulation         { return doc.simulations.Remove(i) }
func (doc *Document) RemoveSimulationByID(id string) Simulation { return doc.simulations.RemoveByID(id) }

func (doc *Document) AddSimulation(s Simulation) error {
	if isNil(s) {
		return errors.WithMessage(ErrOperationFailed, "nil simulation")
	}
	return doc.simulations.Append(s)
}

func (doc *Document) CreateUniformTimeCourse() *UniformTimeCourse {
	s := NewUniformTimeCourse(doc.ns)
	doc.simulations.push(s)
	return s
}

func (doc *Document) CreateOneStep() *OneStep {
	s := NewOneStep(doc.ns)
	doc.simulations.push(s)
	return s
}

func (doc *Document) CreateSteadyState() *SteadyState {
	s := NewSteadyState(doc.ns)
	doc.simulations.push(s)
	return s
}

func (doc *Document) Tasks() *ListOf[AbstractTask]          { return doc.tasks }
func (doc *Document) NumTasks() int                         { return doc.tasks.Len() }
func (doc *Document) GetTask(i int) AbstractTask            { return doc.tasks.Get(i) }
func (doc *Document) GetTaskByID(id string) AbstractTask    { return doc.tasks.GetByID(id) }
func (doc *Document) RemoveTask(i int) AbstractTask         { return doc.tasks.Remove(i) }
func (doc *Document) RemoveTaskByID(id string) AbstractTask { return doc.tasks.RemoveByID(id) }

func (doc *Document) AddTask(t AbstractTask) error {
	if isNil(t) {
		return errors.WithMessage(ErrOperationFailed, "nil task")
	}
	return doc.tasks.Append(t)
}

func (doc *Document) CreateTask() *Task {
	t := NewTask(doc.ns)
	doc.tasks.push(t)
	return t
}

func (doc *Document) CreateRepeatedTask() *RepeatedTask {
	t := NewRepeatedTask(doc.ns)
	doc.tasks.push(t)
	return t
}

func (doc *Document) CreateSimpleRepeatedTask() *SimpleRepeatedTask {
	t := NewSimpleRepeatedTask(doc.ns)
	doc.tasks.push(t)
	return t
}

func (doc *Document) DataGenerators() *ListOf[*DataGenerator]          { return doc.dataGenerators }
func (doc *Document) NumDataGenerators() int                           { return doc.dataGenerators.Len() }
func (doc *Document) GetDataGenerator(i int) *DataGenerator            { return doc.dataGenerators.Get(i) }
func (doc *Document) GetDataGeneratorByID(id string) *DataGenerator    { return doc.dataGenerators.GetByID(id) }
func (doc *Document) AddDataGenerator(g *DataGenerator) error          { return doc.dataGenerators.Append(g) }
func (doc *Document) RemoveDataGenerator(i int) *DataGenerator         { return doc.dataGenerators.Remove(i) }
func (doc *Document) RemoveDataGeneratorByID(id string) *DataGenerator { return doc.dataGenerators.RemoveByID(id) }

func (doc *Document) CreateDataGenerator() *DataGenerator {
	g := NewDataGenerator(doc.ns)
	doc.dataGenerators.push(g)
	return g
}

func (doc *Document) Outputs() *ListOf[Output]          { return doc.outputs }
func (doc *Document) NumOutputs() int                   { return doc.outputs.Len() }
func (doc *Document) GetOutput(i int) Output            { return doc.outputs.Get(i) }
func (doc *Document) GetOutputByID(id string) Output    { return doc.outputs.GetByID(id) }
func (doc *Document) RemoveOutput(i int) Output         { return doc.outputs.Remove(i) }
func (doc *Document) RemoveOutputByID(id string) Output { return doc.outputs.RemoveByID(id) }

func (doc *Document) AddOutput(o Output) error {
	if isNil(o) {
		return errors.WithMessage(ErrOperationFailed, "nil output")
	}
	return doc.outputs.Append(o)
}

func (doc *Document) CreateReport() *Report {
	r := NewReport(doc.ns)
	doc.outputs.push(r)
	return r
}

func (doc *Document) CreatePlot2D() *Plot2D {
	p := NewPlot2D(doc.ns)
	doc.outputs.push(p)
	return p
}

func (doc *Document) CreatePlot3D() *Plot3D {
	p := NewPlot3D(doc.ns)
	doc.outputs.push(p)
	return p
}

func (doc *Document) Styles() *ListOf[*Style]          { return doc.styles }
func (doc *Document) NumStyles() int                   { return doc.styles.Len() }
func (doc *Document) GetStyle(i int) *Style            { return doc.styles.Get(i) }
func (doc *Document) GetStyleByID(id string) *Style    { return doc.styles.GetByID(id) }
func (doc *Document) AddStyle(s *Style) error          { return doc.styles.Append(s) }
func (doc *Document) RemoveStyle(i int) *Style         { return doc.styles.Remove(i) }
func (doc *Document) RemoveStyleByID(id string) *Style { return doc.styles.RemoveByID(id) }

func (doc *Document) CreateStyle() *Style {
	s := NewStyle(doc.ns)
	doc.styles.push(s)
	return s
}

// ElementByID returns the first element in document order whose id is id.
func (doc *Document) ElementByID(id string) Element {
	if id == "" {
		return nil
	}

	var found Element
	Walk(doc, func(el Element) bool {
		if found != nil {
			return false
		}
		if el.TypeCode() != TypeListOf && el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// Clone copies the element tree. The copy starts with an empty error log.
func (doc *Document) Clone() *Document {
	c := *doc
	c.elementBase = doc.elementBase.clone(&c)
	c.models = doc.models.clone()
	c.simulations = doc.simulations.clone()
	c.tasks = doc.tasks.clone()
	c.dataGenerators = doc.dataGenerators.clone()
	c.outputs = doc.outputs.clone()
	c.styles = doc.styles.clone()
	c.errorLog = NewErrorLog()
	connectToChild(&c)
	return &c
}

func (doc *Document) attributes() []attribute {
	return append(doc.elementBase.attributes(),
		intAttr("level", &doc.level, true),
		intAttr("version", &doc.version, true),
	)
}

func (doc *Document) children() []child {
	return append(doc.elementBase.children(),
		listChild(doc.models, false),
		listChild(doc.simulations, false),
		listChild(doc.tasks, false),
		listChild(doc.dataGenerators, false),
		listChild(doc.outputs, false),
		listChild(doc.styles, false),
	)
}
