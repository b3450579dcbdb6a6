package sedml

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Operation errors returned by setters and list mutators.
var (
	ErrInvalidAttributeValue = errors.New("sedml: invalid attribute value")
	ErrUnexpectedAttribute   = errors.New("sedml: attribute not available in this level/version")
	ErrOperationFailed       = errors.New("sedml: operation failed")
	ErrInvalidObject         = errors.New("sedml: invalid object")
	ErrLevelMismatch         = errors.New("sedml: level mismatch")
	ErrVersionMismatch       = errors.New("sedml: version mismatch")
)

// ErrorCode identifies one kind of diagnostic. Codes below 20000 are generic,
// codes from 20000 up are specific to an element type and a violation.
type ErrorCode uint32

const (
	ErrXMLSyntax           ErrorCode = 10001
	ErrUnrecognizedElement ErrorCode = 10102
	ErrInvalidMath         ErrorCode = 10201
	ErrDuplicateID         ErrorCode = 10301
	ErrUnresolvedReference ErrorCode = 10302
	ErrInvalidNamespace    ErrorCode = 10401
	ErrInvalidLevelVersion ErrorCode = 10402
)

// Violation is the element-independent part of an element-specific code.
type Violation uint8

const (
	ViolationAllowedAttributes Violation = iota + 1
	ViolationAllowedElements
	ViolationMissingAttribute
	ViolationEmptyString
	ViolationSIdSyntax
	ViolationSIdRefSyntax
	ViolationNotDouble
	ViolationNotInteger
	ViolationNotBoolean
	ViolationInvalidEnum
	ViolationMissingElement
	ViolationListAllowedAttributes
	ViolationListAllowedElements
	ViolationInvalidMath
	ViolationDuplicateChild
)

var violationStrings = [...]string{
	ViolationAllowedAttributes:     "attribute not allowed",
	ViolationAllowedElements:       "element not allowed",
	ViolationMissingAttribute:      "missing required attribute",
	ViolationEmptyString:           "attribute must not be empty",
	ViolationSIdSyntax:             "attribute must be a SId",
	ViolationSIdRefSyntax:          "attribute must be a SIdRef",
	ViolationNotDouble:             "attribute must be a double",
	ViolationNotInteger:            "attribute must be an integer",
	ViolationNotBoolean:            "attribute must be a boolean",
	ViolationInvalidEnum:           "attribute is not a valid option",
	ViolationMissingElement:        "missing required element",
	ViolationListAllowedAttributes: "attribute not allowed on list",
	ViolationListAllowedElements:   "element not allowed in list",
	ViolationInvalidMath:           "math is not well formed",
	ViolationDuplicateChild:        "element may only appear once",
}

func (v Violation) String() string {
	if int(v) < len(violationStrings) && violationStrings[v] != "" {
		return violationStrings[v]
	}
	return fmt.Sprintf("violation(%d)", uint8(v))
}

// ElementErrorCode returns the code reported when an element of type tc
// violates v.
func ElementErrorCode(tc TypeCode, v Violation) ErrorCode {
	return ErrorCode(20000 + uint32(tc)*100 + uint32(v))
}

// Split returns the type code and violation of an element-specific code.
func (c ErrorCode) Split() (TypeCode, Violation, bool) {
	if c < 20000 {
		return 0, 0, false
	}
	n := uint32(c) - 20000
	return TypeCode(n / 100), Violation(n % 100), true
}

type Severity int8

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

var severityStrings = [...]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
	SeverityFatal:   "fatal",
}

func (s Severity) String() string {
	if int(s) >= 0 && int(s) < len(severityStrings) {
		return severityStrings[s]
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Diagnostic is one entry of an ErrorLog.
type Diagnostic struct {
	Code      ErrorCode
	Severity  Severity
	Message   string
	Element   string
	Attribute string
	Line      int
	Column    int
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s: %s", d.Code, d.Severity, d.Message)
	if d.Element != "" {
		fmt.Fprintf(&b, " at <%s>", d.Element)
	}
	if d.Attribute != "" {
		fmt.Fprintf(&b, " (attribute %s)", d.Attribute)
	}
	if d.Line > 0 {
		fmt.Fprintf(&b, " (line %d, column %d)", d.Line, d.Column)
	}
	return b.String()
}

// DiagnosticList is an error wrapping one or more diagnostics.
type DiagnosticList []Diagnostic

func (l DiagnosticList) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// ErrorLog accumulates diagnostics while a document is read or checked.
type ErrorLog struct {
	diags []Diagnostic
}

func NewErrorLog() *ErrorLog { return &ErrorLog{} }

func (l *ErrorLog) Add(d Diagnostic) {
	l.diags = append(l.diags, d)
}

func (l *ErrorLog) Len() int { return len(l.diags) }

func (l *ErrorLog) At(i int) (Diagnostic, bool) {
	if i < 0 || i >= len(l.diags) {
		return Diagnostic{}, false
	}
	return l.diags[i], true
}

func (l *ErrorLog) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), l.diags...)
}

func (l *ErrorLog) Contains(code ErrorCode) bool {
	for i := range l.diags {
		if l.diags[i].Code == code {
			return true
		}
	}
	return false
}

// NumFailures counts the diagnostics at or above severity s.
func (l *ErrorLog) NumFailures(s Severity) int {
	n := 0
	for i := range l.diags {
		if l.diags[i].Severity >= s {
			n++
		}
	}
	return n
}

func (l *ErrorLog) Clear() { l.diags = nil }

// Err returns the error-severity diagnostics as a DiagnosticList, or nil.
func (l *ErrorLog) Err() error {
	var list DiagnosticList
	for _, d := range l.diags {
		if d.Severity >= SeverityError {
			list = append(list, d)
		}
	}
	if len(list) == 0 {
		return nil
	}
	return list
}
