package sedml

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// Math is a well-formed MathML <math> expression.
type Math struct {
	root *etree.Element
}

// MathML content elements accepted inside <math>.
var mathMLElements = map[string]bool{
	"apply": true, "ci": true, "cn": true, "csymbol": true, "sep": true,
	"bvar": true, "degree": true, "logbase": true, "lambda": true,
	"piecewise": true, "piece": true, "otherwise": true,
	"semantics": true, "annotation": true, "annotation-xml": true,
	"eq": true, "neq": true, "gt": true, "lt": true, "geq": true, "leq": true,
	"plus": true, "minus": true, "times": true, "divide": true, "power": true,
	"root": true, "abs": true, "exp": true, "ln": true, "log": true,
	"floor": true, "ceiling": true, "factorial": true, "quotient": true, "rem": true,
	"and": true, "or": true, "xor": true, "not": true, "implies": true,
	"sin": true, "cos": true, "tan": true, "sec": true, "csc": true, "cot": true,
	"sinh": true, "cosh": true, "tanh": true, "sech": true, "csch": true, "coth": true,
	"arcsin": true, "arccos": true, "arctan": true, "arcsec": true, "arccsc": true, "arccot": true,
	"arcsinh": true, "arccosh": true, "arctanh": true, "arcsech": true, "arccsch": true, "arccoth": true,
	"true": true, "false": true, "notanumber": true, "pi": true, "infinity": true, "exponentiale": true,
	"min": true, "max": true, "sum": true, "product": true, "mean": true, "median": true,
	"sdev": true, "variance": true, "uplimit": true, "lowlimit": true, "condition": true,
}

// NewMath validates el and returns a Math holding a copy of it.
func NewMath(el *etree.Element) (*Math, error) {
	if el == nil {
		return nil, errors.WithMessage(ErrInvalidObject, "nil math")
	}

	if err := checkMath(el); err != nil {
		return nil, errors.WithMessage(ErrInvalidObject, err.Error())
	}

	root := el.Copy()
	if root.Space == "" && root.SelectAttr("xmlns") == nil {
		root.CreateAttr("xmlns", MathMLNamespace)
	}

	return &Math{root: root}, nil
}

// ParseMath parses a MathML <math> document.
func ParseMath(s string) (*Math, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return nil, errors.WithMessagef(ErrInvalidObject, "parse math: %v", err)
	}

	return NewMath(doc.Root())
}

func checkMath(el *etree.Element) error {
	if el.Tag != "math" {
		return errors.Errorf("root element is <%s>, not <math>", el.Tag)
	}

	if n := len(el.ChildElements()); n != 1 {
		return errors.Errorf("<math> must contain exactly one expression, found %d", n)
	}

	return checkMathNode(el.ChildElements()[0])
}

func checkMathNode(el *etree.Element) error {
	if !mathMLElements[el.Tag] {
		return errors.Errorf("<%s> is not a MathML content element", el.Tag)
	}

	switch el.Tag {
	case "ci":
		if strings.TrimSpace(el.Text()) == "" {
			return errors.New("<ci> must name an identifier")
		}

	case "cn":
		if err := checkNumber(el); err != nil {
			return err
		}

	case "apply":
		if len(el.ChildElements()) == 0 {
			return errors.New("<apply> must contain an operator")
		}

	case "annotation", "annotation-xml":
		return nil
	}

	for _, c := range el.ChildElements() {
		if err := checkMathNode(c); err != nil {
			return err
		}
	}

	return nil
}

func checkNumber(el *etree.Element) error {
	var parts []string
	part := ""
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			part += t.Data
		case *etree.Element:
			if t.Tag != "sep" {
				return errors.Errorf("<%s> inside <cn>", t.Tag)
			}
			parts = append(parts, strings.TrimSpace(part))
			part = ""
		}
	}
	parts = append(parts, strings.TrimSpace(part))

	typ := el.SelectAttrValue("type", "real")
	switch typ {
	case "integer":
		if len(parts) == 1 {
			if _, err := strconv.Atoi(parts[0]); err == nil {
				return nil
			}
		}

	case "real":
		if len(parts) == 1 {
			if _, ok := parseDouble(parts[0]); ok {
				return nil
			}
		}

	case "e-notation":
		if len(parts) == 2 {
			_, ok := parseDouble(parts[0])
			_, err := strconv.Atoi(parts[1])
			if ok && err == nil {
				return nil
			}
		}

	case "rational":
		if len(parts) == 2 {
			_, err1 := strconv.Atoi(parts[0])
			_, err2 := strconv.Atoi(parts[1])
			if err1 == nil && err2 == nil {
				return nil
			}
		}

	default:
		return errors.Errorf("<cn> has unknown type %q", typ)
	}

	return errors.Errorf("<cn type=%q> has malformed value %q", typ, strings.Join(parts, " "))
}

// Element returns a copy of the <math> element.
func (m *Math) Element() *etree.Element { return m.root.Copy() }

func (m *Math) Clone() *Math {
	if m == nil {
		return nil
	}
	return &Math{root: m.root.Copy()}
}

// Identifiers returns the names referenced by <ci> elements, in document
// order, without duplicates.
func (m *Math) Identifiers() []string {
	var names []string
	seen := map[string]bool{}

	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if el.Tag == "ci" {
			if name := strings.TrimSpace(el.Text()); !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		for _, c := range el.ChildElements() {
			walk(c)
		}
	}
	walk(m.root)

	return names
}

func (m *Math) String() string {
	doc := etree.NewDocument()
	doc.SetRoot(m.root.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}
