package sedml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const xmlNamespaceURL = "http://www.w3.org/XML/1998/namespace"

// Encoder writes elements as SED-ML XML.
type Encoder struct {
	*xml.Encoder

	// default namespaces in scope, innermost last.
	scopes []string
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		Encoder: xml.NewEncoder(w),
	}
}

// Encode writes el and everything it owns, then flushes.
func (e *Encoder) Encode(el Element) error {
	if isNil(el) {
		return errors.WithMessage(ErrInvalidObject, "encode nil element")
	}

	if err := e.encodeElement(el); err != nil {
		return err
	}

	return e.Flush()
}

func (e *Encoder) scope() string {
	if len(e.scopes) == 0 {
		return ""
	}
	return e.scopes[len(e.scopes)-1]
}

// encodeElement writes the start tag with every set attribute in declared
// order, then each child slot in declared order. The namespace is declared
// only when the enclosing scope does not already declare it.
func (e *Encoder) encodeElement(el Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.ElementName()}}

	uri := el.Namespaces().URI()
	if e.scope() != uri {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: uri})
	}
	start.Attr = append(start.Attr, writeAttributes(el)...)

	e.scopes = append(e.scopes, uri)
	defer func() { e.scopes = e.scopes[:len(e.scopes)-1] }()

	if err := e.EncodeToken(start); err != nil {
		return errors.WithMessagef(err, "encode <%s>", start.Name.Local)
	}

	for _, c := range el.children() {
		if err := c.encode(e); err != nil {
			return errors.WithMessagef(err, "encode <%s>", start.Name.Local)
		}
	}

	return e.EncodeToken(start.End())
}

// encodeXML writes an opaque XML subtree verbatim.
func (e *Encoder) encodeXML(el *etree.Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.FullTag()}}
	for _, a := range el.Attr {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.FullKey()}, Value: a.Value})
	}

	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, tok := range el.Child {
		var err error
		switch t := tok.(type) {
		case *etree.Element:
			err = e.encodeXML(t)
		case *etree.CharData:
			err = e.EncodeToken(xml.CharData(t.Data))
		case *etree.Comment:
			err = e.EncodeToken(xml.Comment(t.Data))
		}
		if err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

func writeAttributes(el Element) []xml.Attr {
	var attrs []xml.Attr
	for _, a := range el.attributes() {
		if a.isSet() {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: a.name}, Value: a.format()})
		}
	}
	return attrs
}

// Decoder reads SED-ML XML. Schema problems are appended to the error log
// and never stop decoding; only XML syntax and I/O errors are returned.
type Decoder struct {
	*xml.Decoder
	log    *ErrorLog
	logger *zap.Logger
	frames []decodeFrame

	// namespace the root element was actually declared in.
	rootSpace string
}

type decodeFrame struct {
	el   Element
	seen map[string]bool
}

func NewDecoder(r io.Reader, log *ErrorLog) *Decoder {
	if log == nil {
		log = NewErrorLog()
	}

	return &Decoder{
		Decoder: xml.NewDecoder(r),
		log:     log,
		logger:  Logger(),
	}
}

func (d *Decoder) ErrorLog() *ErrorLog { return d.log }

func (d *Decoder) SetLogger(logger *zap.Logger) {
	if logger != nil {
		d.logger = logger
	}
}

var errDecodeXMLStop = errors.New("decode XML stop")

type decodeXMLCallback func(d *Decoder, start xml.StartElement) error

// DecodeEndTo feeds every start element before endTo to f. f must consume
// the element it is given. Returning errDecodeXMLStop ends decoding early.
func (d *Decoder) DecodeEndTo(endTo xml.EndElement, f decodeXMLCallback) error {
	var err error
	var token xml.Token
	for token, err = d.Token(); err == nil; token, err = d.Token() {
		switch t := token.(type) {
		case xml.StartElement:
			if err = f(d, t); err == errDecodeXMLStop {
				return nil
			} else if err != nil {
				return err
			}

		case xml.EndElement:
			if t == endTo {
				return nil
			}
		}
	}

	return err
}

// Decode reads the next element in the stream into el. The start tag must
// carry el's element name.
func (d *Decoder) Decode(el Element) error {
	if isNil(el) {
		return errors.WithMessage(ErrInvalidObject, "decode into nil element")
	}

	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		if start, ok := token.(xml.StartElement); ok {
			if start.Name.Local != el.ElementName() {
				d.logUnknownElement(el, start)
				return errors.Errorf("expected <%s>, found <%s>", el.ElementName(), start.Name.Local)
			}
			return d.decodeElement(el, start)
		}
	}
}

func (d *Decoder) parent() Element {
	if len(d.frames) < 2 {
		return nil
	}
	return d.frames[len(d.frames)-2].el
}

func (d *Decoder) decodeElement(el Element, start xml.StartElement) error {
	if debug {
		d.logger.Debug("decode element", zap.String("element", start.Name.Local), zap.Stringer("type", el.TypeCode()))
	}

	d.frames = append(d.frames, decodeFrame{el: el})
	defer func() { d.frames = d.frames[:len(d.frames)-1] }()

	d.readAttributes(el, start)

	children := el.children()
	return d.DecodeEndTo(start.End(), func(d *Decoder, start xml.StartElement) error {
		return d.decodeChild(el, children, start)
	})
}

func (d *Decoder) decodeChild(el Element, children []child, start xml.StartElement) error {
	c := findChild(children, start.Name.Local)
	if c == nil || !d.inSpace(el, c, start) {
		d.logUnknownElement(el, start)
		return d.Skip()
	}

	if c.name != "" && !c.repeated {
		frame := &d.frames[len(d.frames)-1]
		if frame.seen[c.name] {
			d.logElement(el, ViolationDuplicateChild, "", fmt.Sprintf("<%s> may only appear once in <%s>", c.name, el.ElementName()))
			return d.Skip()
		}

		if frame.seen == nil {
			frame.seen = map[string]bool{}
		}
		frame.seen[c.name] = true
	}

	if err := c.decode(d, start); err != nil {
		return errors.WithMessagef(err, "decode <%s>", start.Name.Local)
	}

	return nil
}

// inSpace reports whether start is in the namespace child slot c expects.
// Documents without any namespace declaration are accepted as is. SED-ML
// children may be in any SED-ML namespace, so a root whose namespace
// disagrees with its level and version still yields its content.
func (d *Decoder) inSpace(el Element, c *child, start xml.StartElement) bool {
	if start.Name.Space == "" {
		return true
	}

	if c.space != "" {
		return start.Name.Space == c.space
	}

	if start.Name.Space == el.Namespaces().URI() || start.Name.Space == d.rootSpace {
		return true
	}
	_, ok := NamespacesFromURI(start.Name.Space)
	return ok
}

// readAttributes parses every declared attribute of el from start and logs
// unknown, missing and malformed attributes. Malformed strings are still
// stored; malformed numbers and booleans leave the attribute unset.
func (d *Decoder) readAttributes(el Element, start xml.StartElement) {
	attrs := el.attributes()
	raw := make(map[string]string, len(start.Attr))

	for _, a := range start.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		if a.Name.Space != "" && a.Name.Space != el.Namespaces().URI() {
			continue
		}

		if findAttribute(attrs, a.Name.Local) == nil {
			d.logUnknownAttribute(el, a.Name.Local)
			continue
		}

		raw[a.Name.Local] = a.Value
	}

	for i := range attrs {
		a := &attrs[i]

		value, present := raw[a.name]
		if !present {
			if a.required {
				d.logElement(el, ViolationMissingAttribute, a.name, fmt.Sprintf("<%s> is missing required attribute %q", el.ElementName(), a.name))
			}
			continue
		}

		ok := a.parse(value)

		switch a.kind {
		case kindString, kindSId, kindSIdRef:
			if value == "" {
				d.logElement(el, ViolationEmptyString, a.name, fmt.Sprintf("attribute %q of <%s> is empty", a.name, el.ElementName()))
			} else if a.kind == kindSId && !IsValidSId(value) {
				d.logElement(el, ViolationSIdSyntax, a.name, fmt.Sprintf("%q is not a valid SId", value))
			} else if a.kind == kindSIdRef && !IsValidSIdRef(value) {
				d.logElement(el, ViolationSIdRefSyntax, a.name, fmt.Sprintf("%q is not a valid SIdRef", value))
			}

		case kindDouble:
			if !ok {
				d.logElement(el, ViolationNotDouble, a.name, fmt.Sprintf("%q is not a double", value))
			}

		case kindInt:
			if !ok {
				d.logElement(el, ViolationNotInteger, a.name, fmt.Sprintf("%q is not an integer", value))
			}

		case kindBool:
			if !ok {
				d.logElement(el, ViolationNotBoolean, a.name, fmt.Sprintf("%q is not a boolean", value))
			}

		case kindEnum:
			if !ok {
				d.logElement(el, ViolationInvalidEnum, a.name, fmt.Sprintf("%q is not a valid %s", value, a.name))
			}
		}
	}
}

func isNamespaceDecl(a xml.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

// decodeXML reads the subtree opened by start into an etree element. The
// namespace of each element is kept as an explicit xmlns attribute whenever
// it differs from its parent's. Whitespace-only text is dropped.
func (d *Decoder) decodeXML(start xml.StartElement) (*etree.Element, error) {
	var outer string
	if len(d.frames) > 0 {
		outer = d.frames[len(d.frames)-1].el.Namespaces().URI()
	}

	prefixes := map[string]string{xmlNamespaceURL: "xml"}
	root := newXMLElement(nil, start, outer, prefixes)

	stack := []*etree.Element{root}
	spaces := []string{start.Name.Space}

	for len(stack) > 0 {
		token, err := d.Token()
		if err != nil {
			return nil, err
		}

		top := stack[len(stack)-1]

		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, newXMLElement(top, t, spaces[len(spaces)-1], prefixes))
			spaces = append(spaces, t.Name.Space)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
			spaces = spaces[:len(spaces)-1]

		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				top.CreateText(string(t))
			}

		case xml.Comment:
			top.CreateComment(string(t))
		}
	}

	return root, nil
}

func newXMLElement(parent *etree.Element, start xml.StartElement, parentSpace string, prefixes map[string]string) *etree.Element {
	var el *etree.Element
	if parent == nil {
		el = etree.NewElement(start.Name.Local)
	} else {
		el = parent.CreateElement(start.Name.Local)
	}

	if start.Name.Space != "" && start.Name.Space != parentSpace {
		el.CreateAttr("xmlns", start.Name.Space)
	}

	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" {
			prefixes[a.Value] = a.Name.Local
			el.CreateAttr("xmlns:"+a.Name.Local, a.Value)
		}
	}

	for _, a := range start.Attr {
		switch {
		case isNamespaceDecl(a):
		case a.Name.Space == "":
			el.CreateAttr(a.Name.Local, a.Value)
		case prefixes[a.Name.Space] != "":
			el.CreateAttr(prefixes[a.Name.Space]+":"+a.Name.Local, a.Value)
		default:
			el.CreateAttr(a.Name.Local, a.Value)
		}
	}

	return el
}

func (d *Decoder) position() (int, int) {
	return d.InputPos()
}

func (d *Decoder) add(diag Diagnostic) {
	diag.Line, diag.Column = d.position()
	d.log.Add(diag)

	d.logger.Debug("sedml diagnostic",
		zap.Uint32("code", uint32(diag.Code)),
		zap.Stringer("severity", diag.Severity),
		zap.String("element", diag.Element),
		zap.String("attribute", diag.Attribute),
		zap.String("message", diag.Message),
		zap.Int("line", diag.Line),
	)
}

// logElement records violation v for el. Violations on list wrappers are
// keyed on the type of the element owning the list.
func (d *Decoder) logElement(el Element, v Violation, attr, msg string) {
	tc := el.TypeCode()
	if tc == TypeListOf {
		if p := d.parent(); p != nil && p != el {
			tc = p.TypeCode()
		}
		switch v {
		case ViolationAllowedAttributes:
			v = ViolationListAllowedAttributes
		case ViolationAllowedElements:
			v = ViolationListAllowedElements
		}
	}

	d.add(Diagnostic{
		Code:      ElementErrorCode(tc, v),
		Severity:  SeverityError,
		Message:   msg,
		Element:   el.ElementName(),
		Attribute: attr,
	})
}

func (d *Decoder) logUnknownAttribute(el Element, name string) {
	d.logElement(el, ViolationAllowedAttributes, name, fmt.Sprintf("attribute %q is not allowed on <%s>", name, el.ElementName()))
}

func (d *Decoder) logUnknownElement(el Element, start xml.StartElement) {
	d.logElement(el, ViolationAllowedElements, "", fmt.Sprintf("<%s> is not allowed in <%s>", start.Name.Local, el.ElementName()))
}

func (d *Decoder) logGeneric(code ErrorCode, severity Severity, element, msg string) {
	d.add(Diagnostic{
		Code:     code,
		Severity: severity,
		Message:  msg,
		Element:  element,
	})
}
