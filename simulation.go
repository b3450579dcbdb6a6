package sedml

import (
	"math"

	"github.com/pkg/errors"
)

// Simulation describes how a model is simulated.
type Simulation interface {
	Element
	Algorithm() *Algorithm
	SetAlgorithm(*Algorithm) error
	IsSetAlgorithm() bool
	UnsetAlgorithm()
	CreateAlgorithm() *Algorithm
	isSimulation()
}

type simulationBase struct {
	elementBase
	algorithm *Algorithm
}

func (s *simulationBase) isSimulation() {}

func (s *simulationBase) Algorithm() *Algorithm { return s.algorithm }

// SetAlgorithm stores a copy of a.
func (s *simulationBase) SetAlgorithm(a *Algorithm) error {
	if a == nil {
		return errors.WithMessage(ErrOperationFailed, "nil algorithm")
	}
	if a.Level() != s.Level() {
		return errors.WithMessagef(ErrLevelMismatch, "algorithm level %d", a.Level())
	}
	if a.Version() != s.Version() {
		return errors.WithMessagef(ErrVersionMismatch, "algorithm version %d", a.Version())
	}

	s.UnsetAlgorithm()
	s.algorithm = a.Clone()
	setParent(s.algorithm, s.self)
	return nil
}

func (s *simulationBase) IsSetAlgorithm() bool { return s.algorithm != nil }

func (s *simulationBase) UnsetAlgorithm() {
	if s.algorithm != nil {
		s.algorithm.parent = nil
		s.algorithm = nil
	}
}

// CreateAlgorithm replaces the algorithm with a new, empty one.
func (s *simulationBase) CreateAlgorithm() *Algorithm {
	s.UnsetAlgorithm()
	s.algorithm = NewAlgorithm(s.ns)
	setParent(s.algorithm, s.self)
	return s.algorithm
}

func (s *simulationBase) cloneBase(self Element) simulationBase {
	c := *s
	c.elementBase = s.elementBase.clone(self)
	if s.algorithm != nil {
		c.algorithm = s.algorithm.Clone()
	}
	return c
}

func (s *simulationBase) attributes() []attribute {
	return append(s.elementBase.attributes(), s.idAttr(true), s.nameAttr())
}

func (s *simulationBase) children() []child {
	return append(s.elementBase.children(),
		elementChild(s.self, "algorithm", &s.algorithm, NewAlgorithm, false))
}

// UniformTimeCourse is a time course with equally spaced output points.
type UniformTimeCourse struct {
	simulationBase
	initialTime     optional[float64]
	outputStartTime optional[float64]
	outputEndTime   optional[float64]
	numberOfSteps   optional[int]
}

func NewUniformTimeCourse(ns Namespaces) *UniformTimeCourse {
	s := &UniformTimeCourse{}
	s.elementBase = newElementBase(s, ns)
	return s
}

func (s *UniformTimeCourse) TypeCode() TypeCode   { return TypeUniformTimeCourse }
func (s *UniformTimeCourse) ElementName() string  { return "uniformTimeCourse" }
func (s *UniformTimeCourse) copyElement() Element { return s.Clone() }

func (s *UniformTimeCourse) InitialTime() float64     { return s.initialTime.getOr(math.NaN()) }
func (s *UniformTimeCourse) SetInitialTime(t float64) { s.initialTime.set(t) }
func (s *UniformTimeCourse) IsSetInitialTime() bool   { return s.initialTime.isSet() }
func (s *UniformTimeCourse) UnsetInitialTime()        { s.initialTime.unset() }

func (s *UniformTimeCourse) OutputStartTime() float64     { return s.outputStartTime.getOr(math.NaN()) }
func (s *UniformTimeCourse) SetOutputStartTime(t float64) { s.outputStartTime.set(t) }
func (s *UniformTimeCourse) IsSetOutputStartTime() bool   { return s.outputStartTime.isSet() }
func (s *UniformTimeCourse) UnsetOutputStartTime()        { s.outputStartTime.unset() }

func (s *UniformTimeCourse) OutputEndTime() float64     { return s.outputEndTime.getOr(math.NaN()) }
func (s *UniformTimeCourse) SetOutputEndTime(t float64) { s.outputEndTime.set(t) }
func (s *UniformTimeCourse) IsSetOutputEndTime() bool   { return s.outputEndTime.isSet() }
func (s *UniformTimeCourse) UnsetOutputEndTime()        { s.outputEndTime.unset() }

// NumberOfSteps is written as numberOfSteps from version 4 on and as
// numberOfPoints before. It returns IntUnset when unset.
func (s *UniformTimeCourse) NumberOfSteps() int       { return s.numberOfSteps.getOr(IntUnset) }
func (s *UniformTimeCourse) SetNumberOfSteps(n int)   { s.numberOfSteps.set(n) }
func (s *UniformTimeCourse) IsSetNumberOfSteps() bool { return s.numberOfSteps.isSet() }
func (s *UniformTimeCourse) UnsetNumberOfSteps()      { s.numberOfSteps.unset() }

// NumberOfPoints is the same value as NumberOfSteps under its older name.
func (s *UniformTimeCourse) NumberOfPoints() int     { return s.NumberOfSteps() }
func (s *UniformTimeCourse) SetNumberOfPoints(n int) { s.SetNumberOfSteps(n) }

func (s *UniformTimeCourse) numberOfStepsName() string {
	if s.ns.atLeast(4) {
		return "numberOfSteps"
	}
	return "numberOfPoints"
}

func (s *UniformTimeCourse) Clone() *UniformTimeCourse {
	c := *s
	c.simulationBase = s.cloneBase(&c)
	connectToChild(&c)
	return &c
}

func (s *UniformTimeCourse) attributes() []attribute {
	return append(s.simulationBase.attributes(),
		doubleAttr("initialTime", &s.initialTime, true),
		doubleAttr("outputStartTime", &s.outputStartTime, true),
		doubleAttr("outputEndTime", &s.outputEndTime, true),
		intAttr(s.numberOfStepsName(), &s.numberOfSteps, true),
	)
}

// OneStep advances the simulation by a single step.
type OneStep struct {
	simulationBase
	step optional[float64]
}

func NewOneStep(ns Namespaces) *OneStep {
	s := &OneStep{}
	s.elementBase = newElementBase(s, ns)
	return s
}

func (s *OneStep) TypeCode() TypeCode   { return TypeOneStep }
func (s *OneStep) ElementName() string  { return "oneStep" }
func (s *OneStep) copyElement() Element { return s.Clone() }

func (s *OneStep) Step() float64     { return s.step.getOr(math.NaN()) }
func (s *OneStep) SetStep(v float64) { s.step.set(v) }
func (s *OneStep) IsSetStep() bool   { return s.step.isSet() }
func (s *OneStep) UnsetStep()        { s.step.unset() }

func (s *OneStep) Clone() *OneStep {
	c := *s
	c.simulationBase = s.cloneBase(&c)
	connectToChild(&c)
	return &c
}

func (s *OneStep) attributes() []attribute {
	return append(s.simulationBase.attributes(), doubleAttr("step", &s.step, true))
}

// SteadyState runs the model to its steady state.
type SteadyState struct {
	simulationBase
}

func NewSteadyState(ns Namespaces) *SteadyState {
	s := &SteadyState{}
	s.elementBase = newElementBase(s, ns)
	return s
}

func (s *SteadyState) TypeCode() TypeCode   { return TypeSteadyState }
func (s *SteadyState) ElementName() string  { return "steadyState" }
func (s *SteadyState) copyElement() Element { return s.Clone() }

func (s *SteadyState) Clone() *SteadyState {
	c := *s
	c.simulationBase = s.cloneBase(&c)
	connectToChild(&c)
	return &c
}

// Algorithm names a KiSAO algorithm and its parameters.
type Algorithm struct {
	elementBase
	kisaoID    string
	parameters *ListOf[*AlgorithmParameter]
}

func NewAlgorithm(ns Namespaces) *Algorithm {
	a := &Algorithm{}
	a.elementBase = newElementBase(a, ns)
	a.parameters = newListOf[*AlgorithmParameter](ns, "listOfAlgorithmParameters", TypeAlgorithmParameter)
	setParent(a.parameters, a)
	return a
}

func (a *Algorithm) TypeCode() TypeCode   { return TypeAlgorithm }
func (a *Algorithm) ElementName() string  { return "algorithm" }
func (a *Algorithm) copyElement() Element { return a.Clone() }

func (a *Algorithm) KisaoID() string      { return a.kisaoID }
func (a *Algorithm) SetKisaoID(id string) { a.kisaoID = id }
func (a *Algorithm) IsSetKisaoID() bool   { return a.kisaoID != "" }
func (a *Algorithm) UnsetKisaoID()        { a.kisaoID = "" }

func (a *Algorithm) AlgorithmParameters() *ListOf[*AlgorithmParameter] { return a.parameters }
func (a *Algorithm) NumAlgorithmParameters() int                       { return a.parameters.Len() }
func (a *Algorithm) GetAlgorithmParameter(i int) *AlgorithmParameter   { return a.parameters.Get(i) }
func (a *Algorithm) RemoveAlgorithmParameter(i int) *AlgorithmParameter {
	return a.parameters.Remove(i)
}

func (a *Algorithm) AddAlgorithmParameter(p *AlgorithmParameter) error {
	return a.parameters.Append(p)
}

func (a *Algorithm) CreateAlgorithmParameter() *AlgorithmParameter {
	p := NewAlgorithmParameter(a.ns)
	a.parameters.push(p)
	return p
}

func (a *Algorithm) Clone() *Algorithm {
	c := *a
	c.elementBase = a.elementBase.clone(&c)
	c.parameters = a.parameters.clone()
	connectToChild(&c)
	return &c
}

func (a *Algorithm) attributes() []attribute {
	return append(a.elementBase.attributes(), stringAttr("kisaoID", &a.kisaoID, true))
}

func (a *Algorithm) children() []child {
	return append(a.elementBase.children(), listChild(a.parameters, false))
}

type AlgorithmParameter struct {
	elementBase
	kisaoID string
	value   string
}

func NewAlgorithmParameter(ns Namespaces) *AlgorithmParameter {
	p := &AlgorithmParameter{}
	p.elementBase = newElementBase(p, ns)
	return p
}

func (p *AlgorithmParameter) TypeCode() TypeCode   { return TypeAlgorithmParameter }
func (p *AlgorithmParameter) ElementName() string  { return "algorithmParameter" }
func (p *AlgorithmParameter) copyElement() Element { return p.Clone() }

func (p *AlgorithmParameter) KisaoID() string      { return p.kisaoID }
func (p *AlgorithmParameter) SetKisaoID(id string) { p.kisaoID = id }
func (p *AlgorithmParameter) IsSetKisaoID() bool   { return p.kisaoID != "" }
func (p *AlgorithmParameter) UnsetKisaoID()        { p.kisaoID = "" }

func (p *AlgorithmParameter) Value() string     { return p.value }
func (p *AlgorithmParameter) SetValue(v string) { p.value = v }
func (p *AlgorithmParameter) IsSetValue() bool  { return p.value != "" }
func (p *AlgorithmParameter) UnsetValue()       { p.value = "" }

func (p *AlgorithmParameter) Clone() *AlgorithmParameter {
	c := *p
	c.elementBase = p.elementBase.clone(&c)
	return &c
}

func (p *AlgorithmParameter) attributes() []attribute {
	return append(p.elementBase.attributes(),
		stringAttr("kisaoID", &p.kisaoID, true),
		stringAttr("value", &p.value, true),
	)
}
