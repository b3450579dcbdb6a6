package sedml

import (
	"math"
	"strconv"
	"strings"
)

// IntUnset is returned by integer getters when the attribute is not set.
const IntUnset = math.MaxInt32

type attrKind int8

const (
	kindString = attrKind(iota)
	kindSId
	kindSIdRef
	kindDouble
	kindInt
	kindBool
	kindEnum
)

// optional holds a scalar attribute value together with its set state.
type optional[T any] struct {
	v  T
	ok bool
}

func some[T any](v T) optional[T] { return optional[T]{v: v, ok: true} }

func (o *optional[T]) set(v T) { o.v, o.ok = v, true }

func (o *optional[T]) unset() {
	var zero T
	o.v, o.ok = zero, false
}

func (o optional[T]) isSet() bool { return o.ok }

func (o optional[T]) getOr(unset T) T {
	if !o.ok {
		return unset
	}
	return o.v
}

// attribute describes one XML attribute of an element: its name, how to
// parse and format it, and whether the schema requires it.
type attribute struct {
	name     string
	kind     attrKind
	required bool
	isSet    func() bool
	format   func() string

	// parse stores raw. It returns false when raw cannot be converted, in
	// which case the attribute is left unset (enums are left INVALID).
	parse func(raw string) bool
}

func stringAttr(name string, v *string, required bool) attribute {
	return textAttr(name, kindString, v, required)
}

func sidAttr(name string, v *string, required bool) attribute {
	return textAttr(name, kindSId, v, required)
}

func sidRefAttr(name string, v *string, required bool) attribute {
	return textAttr(name, kindSIdRef, v, required)
}

func textAttr(name string, kind attrKind, v *string, required bool) attribute {
	return attribute{
		name:     name,
		kind:     kind,
		required: required,
		isSet:    func() bool { return *v != "" },
		format:   func() string { return *v },
		parse: func(raw string) bool {
			*v = raw
			return true
		},
	}
}

func doubleAttr(name string, v *optional[float64], required bool) attribute {
	return attribute{
		name:     name,
		kind:     kindDouble,
		required: required,
		isSet:    v.isSet,
		format:   func() string { return formatDouble(v.v) },
		parse: func(raw string) bool {
			f, ok := parseDouble(raw)
			if ok {
				v.set(f)
			}
			return ok
		},
	}
}

func intAttr(name string, v *optional[int], required bool) attribute {
	return attribute{
		name:     name,
		kind:     kindInt,
		required: required,
		isSet:    v.isSet,
		format:   func() string { return strconv.Itoa(v.v) },
		parse: func(raw string) bool {
			i, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil || i > math.MaxInt32 || i < math.MinInt32 {
				return false
			}
			v.set(i)
			return true
		},
	}
}

func boolAttr(name string, v *optional[bool], required bool) attribute {
	return attribute{
		name:     name,
		kind:     kindBool,
		required: required,
		isSet:    v.isSet,
		format:   func() string { return strconv.FormatBool(v.v) },
		parse: func(raw string) bool {
			b, ok := parseBool(raw)
			if ok {
				v.set(b)
			}
			return ok
		},
	}
}

// enum is implemented by the closed attribute enumerations. The zero value
// of every enum is its INVALID member.
type enum interface {
	~int8
	IsValid() bool
	String() string
}

func enumAttr[E enum](name string, v *E, fromString func(string) E, required bool) attribute {
	return attribute{
		name:     name,
		kind:     kindEnum,
		required: required,
		isSet:    func() bool { return (*v).IsValid() },
		format:   func() string { return (*v).String() },
		parse: func(raw string) bool {
			*v = fromString(raw)
			return (*v).IsValid()
		},
	}
}

func parseDouble(raw string) (float64, bool) {
	switch s := strings.TrimSpace(raw); s {
	case "INF", "inf", "Infinity":
		return math.Inf(1), true
	case "-INF", "-inf", "-Infinity":
		return math.Inf(-1), true
	case "NaN", "nan":
		return math.NaN(), true
	default:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}

func formatDouble(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// parseBool accepts the XML Schema boolean lexical space.
func parseBool(raw string) (bool, bool) {
	switch strings.TrimSpace(raw) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}

func findAttribute(attrs []attribute, name string) *attribute {
	for i := range attrs {
		if attrs[i].name == name {
			return &attrs[i]
		}
	}
	return nil
}
