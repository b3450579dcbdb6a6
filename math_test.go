package sedml

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMath(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		valid bool
	}{
		{"identifier", `<math xmlns="http://www.w3.org/1998/Math/MathML"><ci> x </ci></math>`, true},
		{"apply", `<math xmlns="http://www.w3.org/1998/Math/MathML"><apply><plus/><ci>a</ci><cn type="integer">2</cn></apply></math>`, true},
		{"rational", `<math xmlns="http://www.w3.org/1998/Math/MathML"><cn type="rational">1<sep/>3</cn></math>`, true},
		{"e-notation", `<math xmlns="http://www.w3.org/1998/Math/MathML"><cn type="e-notation">1.5<sep/>-3</cn></math>`, true},
		{"infinity", `<math xmlns="http://www.w3.org/1998/Math/MathML"><cn>INF</cn></math>`, true},
		{"piecewise", `<math xmlns="http://www.w3.org/1998/Math/MathML"><piecewise><piece><cn>1</cn><apply><gt/><ci>t</ci><cn>0</cn></apply></piece><otherwise><cn>0</cn></otherwise></piecewise></math>`, true},
		{"wrong root", `<mathematics><ci>x</ci></mathematics>`, false},
		{"empty", `<math xmlns="http://www.w3.org/1998/Math/MathML"/>`, false},
		{"two expressions", `<math xmlns="http://www.w3.org/1998/Math/MathML"><ci>x</ci><ci>y</ci></math>`, false},
		{"unknown element", `<math xmlns="http://www.w3.org/1998/Math/MathML"><mrow/></math>`, false},
		{"empty ci", `<math xmlns="http://www.w3.org/1998/Math/MathML"><ci> </ci></math>`, false},
		{"real integer", `<math xmlns="http://www.w3.org/1998/Math/MathML"><cn type="integer">1.5</cn></math>`, false},
		{"bad real", `<math xmlns="http://www.w3.org/1998/Math/MathML"><cn>one</cn></math>`, false},
		{"empty apply", `<math xmlns="http://www.w3.org/1998/Math/MathML"><apply/></math>`, false},
		{"malformed", `<math><ci>x</math>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMath(tt.src)
			if tt.valid {
				require.NoError(t, err)
				require.NotNil(t, m)
			} else {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidObject))
			}
		})
	}
}

func TestMathIdentifiers(t *testing.T) {
	m, err := ParseMath(`<math xmlns="http://www.w3.org/1998/Math/MathML">
  <apply><times/>
    <ci>k</ci>
    <apply><plus/><ci>x</ci><ci>k</ci><ci>y</ci></apply>
  </apply>
</math>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "x", "y"}, m.Identifiers())
}

func TestNewMathAddsNamespace(t *testing.T) {
	m, err := NewMath(parseXML(t, `<math><ci>x</ci></math>`))
	require.NoError(t, err)
	assert.Equal(t, MathMLNamespace, m.Element().SelectAttrValue("xmlns", ""))
	assert.Contains(t, m.String(), `<math xmlns="http://www.w3.org/1998/Math/MathML">`)

	_, err = NewMath(nil)
	assert.True(t, errors.Is(err, ErrInvalidObject))
}

func TestSetMath(t *testing.T) {
	dg := NewDataGenerator(DefaultNamespaces())
	assert.False(t, dg.HasRequiredElements())

	m, err := ParseMath(`<math xmlns="http://www.w3.org/1998/Math/MathML"><ci>v</ci></math>`)
	require.NoError(t, err)
	require.NoError(t, dg.SetMath(m))
	assert.True(t, dg.HasRequiredElements())
	assert.NotSame(t, m, dg.Math())

	err = dg.SetMath(nil)
	assert.True(t, errors.Is(err, ErrInvalidObject))
	assert.True(t, dg.IsSetMath())

	dg.UnsetMath()
	assert.False(t, dg.IsSetMath())
	assert.Nil(t, dg.Math())
}
