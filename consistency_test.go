package sedml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagnosticsWith(log *ErrorLog, code ErrorCode) []Diagnostic {
	var out []Diagnostic
	for _, d := range log.Diagnostics() {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

func TestConsistencyCleanDocument(t *testing.T) {
	doc := newTestDocument(t)
	assert.Equal(t, 0, doc.CheckConsistency())
	assert.Equal(t, 0, doc.ErrorLog().Len())
}

func TestConsistencyUnresolvedReferences(t *testing.T) {
	doc := newTestDocument(t)

	task := doc.GetTaskByID("task1").(*Task)
	require.NoError(t, task.SetModelReference("noModel"))

	ds := doc.GetOutputByID("report1").(*Report).GetDataSet(0)
	require.NoError(t, ds.SetDataReference("noGenerator"))

	require.NoError(t, doc.GetStyleByID("style1").SetBaseStyle("task1"))

	assert.Equal(t, 3, doc.CheckConsistency())

	unresolved := diagnosticsWith(doc.ErrorLog(), ErrUnresolvedReference)
	require.Len(t, unresolved, 3)
	assert.Equal(t, "task", unresolved[0].Element)
	assert.Equal(t, "modelReference", unresolved[0].Attribute)
	assert.Equal(t, "dataSet", unresolved[1].Element)
	assert.Equal(t, "style", unresolved[2].Element)
	assert.Equal(t, "baseStyle", unresolved[2].Attribute)
}

func TestConsistencyDuplicateIDs(t *testing.T) {
	doc := newTestDocument(t)

	dg := doc.CreateDataGenerator()
	require.NoError(t, dg.SetID("task1"))
	m, err := ParseMath(`<math xmlns="http://www.w3.org/1998/Math/MathML"><cn>1</cn></math>`)
	require.NoError(t, err)
	require.NoError(t, dg.SetMath(m))

	assert.Equal(t, 1, doc.CheckConsistency())

	dups := diagnosticsWith(doc.ErrorLog(), ErrDuplicateID)
	require.Len(t, dups, 1)
	assert.Equal(t, "dataGenerator", dups[0].Element)
	assert.Contains(t, dups[0].Message, "<task>")
}

func TestConsistencyMissingRequired(t *testing.T) {
	doc := NewDocument(DefaultNamespaces())
	doc.CreateModel()
	dg := doc.CreateDataGenerator()
	require.NoError(t, dg.SetID("dg"))
	doc.CreateRepeatedTask()

	assert.Equal(t, 7, doc.CheckConsistency())

	log := doc.ErrorLog()
	assert.Len(t, diagnosticsWith(log, ElementErrorCode(TypeModel, ViolationMissingAttribute)), 3)
	assert.Len(t, diagnosticsWith(log, ElementErrorCode(TypeDataGenerator, ViolationMissingElement)), 1)
	assert.Len(t, diagnosticsWith(log, ElementErrorCode(TypeRepeatedTask, ViolationMissingAttribute)), 1)
	assert.Len(t, diagnosticsWith(log, ElementErrorCode(TypeRepeatedTask, ViolationMissingElement)), 2)
	assert.Len(t, diagnosticsWith(log, ElementErrorCode(TypeDocument, ViolationMissingAttribute)), 0)
}

func TestConsistencyMathWarnings(t *testing.T) {
	doc := newTestDocument(t)

	m, err := ParseMath(`<math xmlns="http://www.w3.org/1998/Math/MathML"><apply><plus/><ci>time</ci><ci>offset</ci></apply></math>`)
	require.NoError(t, err)
	require.NoError(t, doc.GetDataGeneratorByID("dg_time").SetMath(m))

	assert.Equal(t, 0, doc.CheckConsistency())

	warnings := diagnosticsWith(doc.ErrorLog(), ErrUnresolvedReference)
	require.Len(t, warnings, 1)
	assert.Equal(t, SeverityWarning, warnings[0].Severity)
	assert.Contains(t, warnings[0].Message, `"offset"`)
}

func TestElementByID(t *testing.T) {
	doc := newTestDocument(t)

	assert.IsType(t, &Variable{}, doc.ElementByID("time"))
	assert.IsType(t, &VectorRange{}, doc.ElementByID("r2"))
	assert.IsType(t, &Curve{}, doc.ElementByID("c1"))
	assert.Nil(t, doc.ElementByID("nothing"))
	assert.Nil(t, doc.ElementByID(""))
}
