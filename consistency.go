package sedml

import (
	"fmt"

	"go.uber.org/zap"
)

type refKind int8

const (
	refModel refKind = iota
	refSimulation
	refTask
	refDataGenerator
	refRange
	refStyle
)

var refKindStrings = [...]string{
	refModel:         "model",
	refSimulation:    "simulation",
	refTask:          "task",
	refDataGenerator: "data generator",
	refRange:         "range",
	refStyle:         "style",
}

type reference struct {
	attr  string
	value string
	kind  refKind
}

// CheckConsistency validates the whole tree and appends what it finds to the
// error log: missing required attributes and elements, duplicate ids,
// references to ids that do not exist, and math identifiers that name no
// variable, parameter or range. It returns the number of error-severity
// diagnostics added.
func (doc *Document) CheckConsistency() int {
	before := doc.errorLog.NumFailures(SeverityError)

	ids := map[string]Element{}
	targets := map[refKind]map[string]bool{}

	Walk(doc, func(el Element) bool {
		if el.TypeCode() == TypeListOf {
			return true
		}

		doc.checkRequired(el)

		if id := el.ID(); id != "" {
			if first, ok := ids[id]; ok {
				doc.report(ErrDuplicateID, SeverityError, el, "id",
					fmt.Sprintf("id %q of <%s> is already used by <%s>", id, el.ElementName(), first.ElementName()))
			} else {
				ids[id] = el
			}

			if kind, ok := targetKind(el); ok {
				if targets[kind] == nil {
					targets[kind] = map[string]bool{}
				}
				targets[kind][id] = true
			}
		}

		return true
	})

	Walk(doc, func(el Element) bool {
		for _, ref := range references(el) {
			if ref.value != "" && !targets[ref.kind][ref.value] {
				doc.report(ErrUnresolvedReference, SeverityError, el, ref.attr,
					fmt.Sprintf("%s %q of <%s> does not name a %s", ref.attr, ref.value, el.ElementName(), refKindStrings[ref.kind]))
			}
		}

		if c, ok := el.(interface{ calc() *calculation }); ok {
			doc.checkMath(el, c.calc(), targets[refRange])
		}

		return true
	})

	added := doc.errorLog.NumFailures(SeverityError) - before
	Logger().Debug("sedml consistency check", zap.Int("errors", added))
	return added
}

func (doc *Document) checkRequired(el Element) {
	for _, a := range el.attributes() {
		if a.required && !a.isSet() {
			doc.report(ElementErrorCode(el.TypeCode(), ViolationMissingAttribute), SeverityError, el, a.name,
				fmt.Sprintf("<%s> is missing required attribute %q", el.ElementName(), a.name))
		}
	}

	for _, c := range el.children() {
		if c.required && !c.isSet() {
			doc.report(ElementErrorCode(el.TypeCode(), ViolationMissingElement), SeverityError, el, "",
				fmt.Sprintf("<%s> is missing required element <%s>", el.ElementName(), c.name))
		}
	}
}

// checkMath warns about <ci> names that are neither a variable or parameter
// of the same calculation nor a range id.
func (doc *Document) checkMath(el Element, c *calculation, ranges map[string]bool) {
	if c.math == nil {
		return
	}

	for _, name := range c.math.Identifiers() {
		if c.variables.GetByID(name) != nil || c.parameters.GetByID(name) != nil || ranges[name] {
			continue
		}
		doc.report(ErrUnresolvedReference, SeverityWarning, el, "",
			fmt.Sprintf("math of <%s> uses %q, which is not a variable, parameter or range", el.ElementName(), name))
	}
}

func (doc *Document) report(code ErrorCode, severity Severity, el Element, attr, msg string) {
	doc.errorLog.Add(Diagnostic{
		Code:      code,
		Severity:  severity,
		Message:   msg,
		Element:   el.ElementName(),
		Attribute: attr,
	})
}

func targetKind(el Element) (refKind, bool) {
	switch el.(type) {
	case *Model:
		return refModel, true
	case Simulation:
		return refSimulation, true
	case AbstractTask:
		return refTask, true
	case *DataGenerator:
		return refDataGenerator, true
	case Range:
		return refRange, true
	case *Style:
		return refStyle, true
	}
	return 0, false
}

func references(el Element) []reference {
	switch t := el.(type) {
	case *Task:
		return taskReferences(t)
	case *SimpleRepeatedTask:
		return taskReferences(&t.Task)
	case *RepeatedTask:
		return []reference{{"range", t.rangeRef, refRange}}
	case *SubTask:
		return []reference{{"task", t.task, refTask}}
	case *Variable:
		return []reference{
			{"taskReference", t.taskReference, refTask},
			{"modelReference", t.modelReference, refModel},
		}
	case *SetValue:
		return []reference{
			{"modelReference", t.modelReference, refModel},
			{"range", t.rangeRef, refRange},
		}
	case *FunctionalRange:
		return []reference{{"range", t.rangeRef, refRange}}
	case *DataSet:
		return []reference{{"dataReference", t.dataReference, refDataGenerator}}
	case *Curve:
		return curveReferences(t)
	case *Surface:
		return append(curveReferences(&t.Curve), reference{"zDataReference", t.zDataReference, refDataGenerator})
	case *Style:
		return []reference{{"baseStyle", t.baseStyle, refStyle}}
	}
	return nil
}

func taskReferences(t *Task) []reference {
	return []reference{
		{"modelReference", t.modelReference, refModel},
		{"simulationReference", t.simulationReference, refSimulation},
	}
}

func curveReferences(c *Curve) []reference {
	return []reference{
		{"xDataReference", c.xDataReference, refDataGenerator},
		{"yDataReference", c.yDataReference, refDataGenerator},
		{"style", c.style, refStyle},
	}
}
