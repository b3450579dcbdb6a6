package sedml

import (
	"fmt"

	"github.com/GodYY/gutils/assert"
)

// TypeCode identifies the concrete schema type of an element.
type TypeCode int16

const (
	TypeUnknown TypeCode = iota
	TypeDocument
	TypeListOf
	TypeModel
	TypeChangeAttribute
	TypeAddXML
	TypeChangeXML
	TypeRemoveXML
	TypeComputeChange
	TypeVariable
	TypeParameter
	TypeUniformTimeCourse
	TypeOneStep
	TypeSteadyState
	TypeAlgorithm
	TypeAlgorithmParameter
	TypeTask
	TypeRepeatedTask
	TypeSimpleRepeatedTask
	TypeSubTask
	TypeSetValue
	TypeUniformRange
	TypeVectorRange
	TypeFunctionalRange
	TypeDataGenerator
	TypeReport
	TypePlot2D
	TypePlot3D
	TypeDataSet
	TypeCurve
	TypeSurface
	TypeStyle
	TypeLine
	TypeMarker
	TypeFill

	// abstract types, reported as the item type of heterogeneous lists.
	TypeChange
	TypeSimulation
	TypeAbstractTask
	TypeRange
	TypeOutput
)

// Type metadata.
type typeMETA struct {
	// element name.
	name string

	// type code.
	typ TypeCode

	// function creating a default element.
	creator func(Namespaces) Element
}

var typeName2META = map[string]*typeMETA{}
var typeCode2META = map[TypeCode]*typeMETA{}

func (t TypeCode) String() string {
	switch t {
	case TypeListOf:
		return "listOf"
	case TypeDocument:
		return "sedML"
	case TypeChange:
		return "change"
	case TypeSimulation:
		return "simulation"
	case TypeAbstractTask:
		return "abstractTask"
	case TypeRange:
		return "range"
	case TypeOutput:
		return "output"
	}

	if meta := typeCode2META[t]; meta != nil {
		return meta.name
	}

	return fmt.Sprintf("TypeCode(%d)", int16(t))
}

func registerType(typ TypeCode, name string, creator func(Namespaces) Element) {
	assert.NotEqual(name, "", "empty element name")
	assert.AssertF(creator != nil, "element \"%s\" creator nil", name)
	assert.AssertF(typeName2META[name] == nil, "element \"%s\" registered", name)
	assert.AssertF(typeCode2META[typ] == nil, "type code %d registered", typ)

	meta := &typeMETA{
		name:    name,
		typ:     typ,
		creator: creator,
	}

	typeName2META[name] = meta
	typeCode2META[typ] = meta
}

// NewElement creates a default element for a registered element name, or
// returns nil if the name is unknown.
func NewElement(name string, ns Namespaces) Element {
	meta := typeName2META[name]
	if meta == nil {
		return nil
	}
	return meta.creator(ns)
}

// TypeCodeOf returns the type code registered for an element name.
func TypeCodeOf(name string) TypeCode {
	if meta := typeName2META[name]; meta != nil {
		return meta.typ
	}
	return TypeUnknown
}

func init() {
	registerType(TypeModel, "model", func(ns Namespaces) Element { return NewModel(ns) })
	registerType(TypeChangeAttribute, "changeAttribute", func(ns Namespaces) Element { return NewChangeAttribute(ns) })
	registerType(TypeAddXML, "addXML", func(ns Namespaces) Element { return NewAddXML(ns) })
	registerType(TypeChangeXML, "changeXML", func(ns Namespaces) Element { return NewChangeXML(ns) })
	registerType(TypeRemoveXML, "removeXML", func(ns Namespaces) Element { return NewRemoveXML(ns) })
	registerType(TypeComputeChange, "computeChange", func(ns Namespaces) Element { return NewComputeChange(ns) })
	registerType(TypeVariable, "variable", func(ns Namespaces) Element { return NewVariable(ns) })
	registerType(TypeParameter, "parameter", func(ns Namespaces) Element { return NewParameter(ns) })
	registerType(TypeUniformTimeCourse, "uniformTimeCourse", func(ns Namespaces) Element { return NewUniformTimeCourse(ns) })
	registerType(TypeOneStep, "oneStep", func(ns Namespaces) Element { return NewOneStep(ns) })
	registerType(TypeSteadyState, "steadyState", func(ns Namespaces) Element { return NewSteadyState(ns) })
	registerType(TypeAlgorithm, "algorithm", func(ns Namespaces) Element { return NewAlgorithm(ns) })
	registerType(TypeAlgorithmParameter, "algorithmParameter", func(ns Namespaces) Element { return NewAlgorithmParameter(ns) })
	registerType(TypeTask, "task", func(ns Namespaces) Element { return NewTask(ns) })
	registerType(TypeRepeatedTask, "repeatedTask", func(ns Namespaces) Element { return NewRepeatedTask(ns) })
	registerType(TypeSimpleRepeatedTask, "simpleRepeatedTask", func(ns Namespaces) Element { return NewSimpleRepeatedTask(ns) })
	registerType(TypeSubTask, "subTask", func(ns Namespaces) Element { return NewSubTask(ns) })
	registerType(TypeSetValue, "setValue", func(ns Namespaces) Element { return NewSetValue(ns) })
	registerType(TypeUniformRange, "uniformRange", func(ns Namespaces) Element { return NewUniformRange(ns) })
	registerType(TypeVectorRange, "vectorRange", func(ns Namespaces) Element { return NewVectorRange(ns) })
	registerType(TypeFunctionalRange, "functionalRange", func(ns Namespaces) Element { return NewFunctionalRange(ns) })
	registerType(TypeDataGenerator, "dataGenerator", func(ns Namespaces) Element { return NewDataGenerator(ns) })
	registerType(TypeReport, "report", func(ns Namespaces) Element { return NewReport(ns) })
	registerType(TypePlot2D, "plot2D", func(ns Namespaces) Element { return NewPlot2D(ns) })
	registerType(TypePlot3D, "plot3D", func(ns Namespaces) Element { return NewPlot3D(ns) })
	registerType(TypeDataSet, "dataSet", func(ns Namespaces) Element { return NewDataSet(ns) })
	registerType(TypeCurve, "curve", func(ns Namespaces) Element { return NewCurve(ns) })
	registerType(TypeSurface, "surface", func(ns Namespaces) Element { return NewSurface(ns) })
	registerType(TypeStyle, "style", func(ns Namespaces) Element { return NewStyle(ns) })
	registerType(TypeLine, "line", func(ns Namespaces) Element { return NewLine(ns) })
	registerType(TypeMarker, "marker", func(ns Namespaces) Element { return NewMarker(ns) })
	registerType(TypeFill, "fill", func(ns Namespaces) Element { return NewFill(ns) })
}
