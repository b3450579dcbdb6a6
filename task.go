package sedml

import (
	"github.com/pkg/errors"
)

// AbstractTask is anything a data generator variable or subtask can
// reference as a task.
type AbstractTask interface {
	Element
	isAbstractTask()
}

type taskBase struct {
	elementBase
}

func (t *taskBase) isAbstractTask() {}

func (t *taskBase) attributes() []attribute {
	return append(t.elementBase.attributes(), t.idAttr(false), t.nameAttr())
}

// Task runs a simulation on a model.
type Task struct {
	taskBase
	modelReference      string
	simulationReference string
}

func NewTask(ns Namespaces) *Task {
	t := &Task{}
	t.elementBase = newElementBase(t, ns)
	return t
}

func (t *Task) TypeCode() TypeCode   { return TypeTask }
func (t *Task) ElementName() string  { return "task" }
func (t *Task) copyElement() Element { return t.Clone() }

func (t *Task) ModelReference() string { return t.modelReference }

func (t *Task) SetModelReference(ref string) error {
	return setSIdRef(&t.modelReference, "modelReference", ref)
}

func (t *Task) IsSetModelReference() bool { return t.modelReference != "" }
func (t *Task) UnsetModelReference()      { t.modelReference = "" }

func (t *Task) SimulationReference() string { return t.simulationReference }

func (t *Task) SetSimulationReference(ref string) error {
	return setSIdRef(&t.simulationReference, "simulationReference", ref)
}

func (t *Task) IsSetSimulationReference() bool { return t.simulationReference != "" }
func (t *Task) UnsetSimulationReference()      { t.simulationReference = "" }

func (t *Task) Clone() *Task {
	c := *t
	c.elementBase = t.elementBase.clone(&c)
	return &c
}

func (t *Task) attributes() []attribute {
	return append(t.taskBase.attributes(),
		sidRefAttr("modelReference", &t.modelReference, false),
		sidRefAttr("simulationReference", &t.simulationReference, false),
	)
}

// SimpleRepeatedTask runs a task a fixed number of times.
type SimpleRepeatedTask struct {
	Task
	resetModel optional[bool]
	numRepeats optional[int]
}

func NewSimpleRepeatedTask(ns Namespaces) *SimpleRepeatedTask {
	t := &SimpleRepeatedTask{}
	t.elementBase = newElementBase(t, ns)
	return t
}

func (t *SimpleRepeatedTask) TypeCode() TypeCode   { return TypeSimpleRepeatedTask }
func (t *SimpleRepeatedTask) ElementName() string  { return "simpleRepeatedTask" }
func (t *SimpleRepeatedTask) copyElement() Element { return t.Clone() }

// ResetModel returns false when unset.
func (t *SimpleRepeatedTask) ResetModel() bool      { return t.resetModel.getOr(false) }
func (t *SimpleRepeatedTask) SetResetModel(r bool)  { t.resetModel.set(r) }
func (t *SimpleRepeatedTask) IsSetResetModel() bool { return t.resetModel.isSet() }
func (t *SimpleRepeatedTask) UnsetResetModel()      { t.resetModel.unset() }
func (t *SimpleRepeatedTask) NumRepeats() int       { return t.numRepeats.getOr(IntUnset) }
func (t *SimpleRepeatedTask) SetNumRepeats(n int)   { t.numRepeats.set(n) }
func (t *SimpleRepeatedTask) IsSetNumRepeats() bool { return t.numRepeats.isSet() }
func (t *SimpleRepeatedTask) UnsetNumRepeats()      { t.numRepeats.unset() }

func (t *SimpleRepeatedTask) Clone() *SimpleRepeatedTask {
	c := *t
	c.elementBase = t.elementBase.clone(&c)
	return &c
}

func (t *SimpleRepeatedTask) attributes() []attribute {
	return append(t.Task.attributes(),
		boolAttr("resetModel", &t.resetModel, true),
		intAttr("numRepeats", &t.numRepeats, true),
	)
}

// RepeatedTask repeats its subtasks once per value of its master range,
// applying its changes before each repeat.
type RepeatedTask struct {
	taskBase
	rangeRef    string
	resetModel  optional[bool]
	concatenate optional[bool]
	ranges      *ListOf[Range]
	changes     *ListOf[*SetValue]
	subTasks    *ListOf[*SubTask]
}

func NewRepeatedTask(ns Namespaces) *RepeatedTask {
	t := &RepeatedTask{}
	t.elementBase = newElementBase(t, ns)
	t.ranges = newListOf[Range](ns, "listOfRanges", TypeRange)
	t.changes = newListOf[*SetValue](ns, "listOfChanges", TypeSetValue)
	t.subTasks = newListOf[*SubTask](ns, "listOfSubTasks", TypeSubTask)
	connectToChild(t)
	return t
}

func (t *RepeatedTask) TypeCode() TypeCode   { return TypeRepeatedTask }
func (t *RepeatedTask) ElementName() string  { return "repeatedTask" }
func (t *RepeatedTask) copyElement() Element { return t.Clone() }

// Range is the id of the master range.
func (t *RepeatedTask) Range() string { return t.rangeRef }

func (t *RepeatedTask) SetRange(ref string) error {
	return setSIdRef(&t.rangeRef, "range", ref)
}

func (t *RepeatedTask) IsSetRange() bool { return t.rangeRef != "" }
func (t *RepeatedTask) UnsetRange()      { t.rangeRef = "" }

func (t *RepeatedTask) ResetModel() bool      { return t.resetModel.getOr(false) }
func (t *RepeatedTask) SetResetModel(r bool)  { t.resetModel.set(r) }
func (t *RepeatedTask) IsSetResetModel() bool { return t.resetModel.isSet() }
func (t *RepeatedTask) UnsetResetModel()      { t.resetModel.unset() }

func (t *RepeatedTask) Concatenate() bool      { return t.concatenate.getOr(false) }
func (t *RepeatedTask) IsSetConcatenate() bool { return t.concatenate.isSet() }
func (t *RepeatedTask) UnsetConcatenate()      { t.concatenate.unset() }

// SetConcatenate fails with ErrUnexpectedAttribute before version 4.
func (t *RepeatedTask) SetConcatenate(c bool) error {
	if !t.ns.atLeast(4) {
		return errors.WithMessagef(ErrUnexpectedAttribute, "concatenate requires version 4, have %s", t.ns)
	}
	t.concatenate.set(c)
	return nil
}

func (t *RepeatedTask) Ranges() *ListOf[Range]               { return t.ranges }
func (t *RepeatedTask) NumRanges() int                       { return t.ranges.Len() }
func (t *RepeatedTask) GetRange(i int) Range                 { return t.ranges.Get(i) }
func (t *RepeatedTask) GetRangeByID(id string) Range         { return t.ranges.GetByID(id) }
func (t *RepeatedTask) RemoveRange(i int) Range              { return t.ranges.Remove(i) }
func (t *RepeatedTask) RemoveRangeByID(id string) Range      { return t.ranges.RemoveByID(id) }
func (t *RepeatedTask) Changes() *ListOf[*SetValue]          { return t.changes }
func (t *RepeatedTask) NumChanges() int                      { return t.changes.Len() }
func (t *RepeatedTask) GetChange(i int) *SetValue            { return t.changes.Get(i) }
func (t *RepeatedTask) RemoveChange(i int) *SetValue         { return t.changes.Remove(i) }
func (t *RepeatedTask) SubTasks() *ListOf[*SubTask]          { return t.subTasks }
func (t *RepeatedTask) NumSubTasks() int                     { return t.subTasks.Len() }
func (t *RepeatedTask) GetSubTask(i int) *SubTask            { return t.subTasks.Get(i) }
func (t *RepeatedTask) GetSubTaskByID(id string) *SubTask    { return t.subTasks.GetByID(id) }
func (t *RepeatedTask) RemoveSubTask(i int) *SubTask         { return t.subTasks.Remove(i) }
func (t *RepeatedTask) RemoveSubTaskByID(id string) *SubTask { return t.subTasks.RemoveByID(id) }

func (t *RepeatedTask) AddRange(r Range) error {
	if isNil(r) {
		return errors.WithMessage(ErrOperationFailed, "nil range")
	}
	return t.ranges.Append(r)
}

func (t *RepeatedTask) AddChange(sv *SetValue) error { return t.changes.Append(sv) }
func (t *RepeatedTask) AddSubTask(st *SubTask) error { return t.subTasks.Append(st) }

func (t *RepeatedTask) CreateUniformRange() *UniformRange {
	r := NewUniformRange(t.ns)
	t.ranges.push(r)
	return r
}

func (t *RepeatedTask) CreateVectorRange() *VectorRange {
	r := NewVectorRange(t.ns)
	t.ranges.push(r)
	return r
}

func (t *RepeatedTask) CreateFunctionalRange() *FunctionalRange {
	r := NewFunctionalRange(t.ns)
	t.ranges.push(r)
	return r
}

func (t *RepeatedTask) CreateChange() *SetValue {
	sv := NewSetValue(t.ns)
	t.changes.push(sv)
	return sv
}

func (t *RepeatedTask) CreateSubTask() *SubTask {
	st := NewSubTask(t.ns)
	t.subTasks.push(st)
	return st
}

func (t *RepeatedTask) Clone() *RepeatedTask {
	c := *t
	c.elementBase = t.elementBase.clone(&c)
	c.ranges = t.ranges.clone()
	c.changes = t.changes.clone()
	c.subTasks = t.subTasks.clone()
	connectToChild(&c)
	return &c
}

func (t *RepeatedTask) attributes() []attribute {
	attrs := append(t.taskBase.attributes(),
		sidRefAttr("range", &t.rangeRef, false),
		boolAttr("resetModel", &t.resetModel, true),
	)
	if t.ns.atLeast(4) {
		attrs = append(attrs, boolAttr("concatenate", &t.concatenate, false))
	}
	return attrs
}

func (t *RepeatedTask) children() []child {
	return append(t.elementBase.children(),
		listChild(t.ranges, true),
		listChild(t.changes, false),
		listChild(t.subTasks, true),
	)
}

// SubTask is one task run inside a repeated task, ordered by Order.
type SubTask struct {
	elementBase
	task  string
	order optional[int]
}

func NewSubTask(ns Namespaces) *SubTask {
	st := &SubTask{}
	st.elementBase = newElementBase(st, ns)
	return st
}

func (st *SubTask) TypeCode() TypeCode   { return TypeSubTask }
func (st *SubTask) ElementName() string  { return "subTask" }
func (st *SubTask) copyElement() Element { return st.Clone() }

func (st *SubTask) Task() string { return st.task }

func (st *SubTask) SetTask(ref string) error {
	return setSIdRef(&st.task, "task", ref)
}

func (st *SubTask) IsSetTask() bool { return st.task != "" }
func (st *SubTask) UnsetTask()      { st.task = "" }

func (st *SubTask) Order() int       { return st.order.getOr(IntUnset) }
func (st *SubTask) SetOrder(o int)   { st.order.set(o) }
func (st *SubTask) IsSetOrder() bool { return st.order.isSet() }
func (st *SubTask) UnsetOrder()      { st.order.unset() }

func (st *SubTask) Clone() *SubTask {
	c := *st
	c.elementBase = st.elementBase.clone(&c)
	return &c
}

func (st *SubTask) attributes() []attribute {
	return append(st.elementBase.attributes(),
		st.idAttr(false),
		st.nameAttr(),
		sidRefAttr("task", &st.task, true),
		intAttr("order", &st.order, false),
	)
}

// SetValue sets a model variable to the value of a math expression, usually
// over the current range value, before each repeat of a repeated task.
type SetValue struct {
	elementBase
	modelReference string
	symbol         string
	target         string
	rangeRef       string
	calculation
}

func NewSetValue(ns Namespaces) *SetValue {
	sv := &SetValue{}
	sv.elementBase = newElementBase(sv, ns)
	sv.calculation = newCalculation(ns)
	connectToChild(sv)
	return sv
}

func (sv *SetValue) TypeCode() TypeCode   { return TypeSetValue }
func (sv *SetValue) ElementName() string  { return "setValue" }
func (sv *SetValue) copyElement() Element { return sv.Clone() }

func (sv *SetValue) ModelReference() string { return sv.modelReference }

func (sv *SetValue) SetModelReference(ref string) error {
	return setSIdRef(&sv.modelReference, "modelReference", ref)
}

func (sv *SetValue) IsSetModelReference() bool { return sv.modelReference != "" }
func (sv *SetValue) UnsetModelReference()      { sv.modelReference = "" }

func (sv *SetValue) Symbol() string     { return sv.symbol }
func (sv *SetValue) SetSymbol(s string) { sv.symbol = s }
func (sv *SetValue) IsSetSymbol() bool  { return sv.symbol != "" }
func (sv *SetValue) UnsetSymbol()       { sv.symbol = "" }

func (sv *SetValue) Target() string     { return sv.target }
func (sv *SetValue) SetTarget(t string) { sv.target = t }
func (sv *SetValue) IsSetTarget() bool  { return sv.target != "" }
func (sv *SetValue) UnsetTarget()       { sv.target = "" }

func (sv *SetValue) Range() string { return sv.rangeRef }

func (sv *SetValue) SetRange(ref string) error {
	return setSIdRef(&sv.rangeRef, "range", ref)
}

func (sv *SetValue) IsSetRange() bool { return sv.rangeRef != "" }
func (sv *SetValue) UnsetRange()      { sv.rangeRef = "" }

func (sv *SetValue) Clone() *SetValue {
	c := *sv
	c.elementBase = sv.elementBase.clone(&c)
	c.calculation = sv.calculation.clone()
	connectToChild(&c)
	return &c
}

func (sv *SetValue) attributes() []attribute {
	return append(sv.elementBase.attributes(),
		sidRefAttr("modelReference", &sv.modelReference, true),
		stringAttr("symbol", &sv.symbol, false),
		stringAttr("target", &sv.target, false),
		sidRefAttr("range", &sv.rangeRef, false),
	)
}

func (sv *SetValue) children() []child {
	return append(sv.elementBase.children(), sv.calculation.children(sv, true)...)
}
