package sedml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const indent = "  "

type readOptions struct {
	logger *zap.Logger
}

type ReadOption func(*readOptions)

// WithReadLogger logs decoding to logger instead of the package logger.
func WithReadLogger(logger *zap.Logger) ReadOption {
	return func(o *readOptions) { o.logger = logger }
}

type writeOptions struct {
	indent      string
	declaration bool
}

type WriteOption func(*writeOptions)

// WithIndent sets the indentation of nested elements. An empty indent writes
// the document on one line.
func WithIndent(indent string) WriteOption {
	return func(o *writeOptions) { o.indent = indent }
}

// WithoutDeclaration omits the <?xml?> declaration.
func WithoutDeclaration() WriteOption {
	return func(o *writeOptions) { o.declaration = false }
}

// ReadDocument parses a SED-ML document. Schema problems are recorded in the
// document's error log and never stop reading. XML syntax and I/O errors
// are logged as well and returned together with the partially read document.
func ReadDocument(r io.Reader, opts ...ReadOption) (*Document, error) {
	o := readOptions{logger: Logger()}
	for _, opt := range opts {
		opt(&o)
	}

	log := NewErrorLog()
	d := NewDecoder(r, log)
	d.SetLogger(o.logger)

	start, err := d.root()
	if err != nil {
		doc := NewDocument(DefaultNamespaces())
		doc.errorLog = log
		d.logGeneric(ErrXMLSyntax, SeverityFatal, "", err.Error())
		return doc, errors.WithMessage(err, "read sedML")
	}

	doc := NewDocument(d.documentNamespaces(start))
	doc.errorLog = log
	d.rootSpace = start.Name.Space

	if start.Name.Local != doc.ElementName() {
		d.logGeneric(ErrUnrecognizedElement, SeverityFatal, start.Name.Local,
			fmt.Sprintf("root element is <%s>, not <%s>", start.Name.Local, doc.ElementName()))
		return doc, nil
	}

	err = d.decodeElement(doc, start)

	// The raw attribute values are already in the log when they were not
	// usable; the document always states the revision it was read as.
	doc.level = some(int(doc.Namespaces().Level()))
	doc.version = some(int(doc.Namespaces().Version()))

	if err != nil {
		d.logGeneric(ErrXMLSyntax, SeverityFatal, "", err.Error())
		return doc, errors.WithMessage(err, "read sedML")
	}

	o.logger.Debug("sedml document read",
		zap.Stringer("namespaces", doc.Namespaces()),
		zap.Int("diagnostics", log.Len()),
	)

	return doc, nil
}

func ReadDocumentFromString(s string, opts ...ReadOption) (*Document, error) {
	return ReadDocument(strings.NewReader(s), opts...)
}

func ReadDocumentFile(path string, opts ...ReadOption) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	doc, err := ReadDocument(file, opts...)
	if err != nil {
		return doc, errors.WithMessagef(err, "read %s", path)
	}

	Logger().Info("sedml file read", zap.String("path", path), zap.Int("errors", doc.NumErrors()))
	return doc, nil
}

// root returns the first start element of the stream.
func (d *Decoder) root() (xml.StartElement, error) {
	for {
		token, err := d.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return xml.StartElement{}, err
		}

		if start, ok := token.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// documentNamespaces derives the namespaces of a document from the level and
// version attributes of its root, falling back to the namespace URI and then
// to the default. Disagreements are logged.
func (d *Decoder) documentNamespaces(start xml.StartElement) Namespaces {
	var levelAttr, versionAttr string
	for _, a := range start.Attr {
		if a.Name.Space != "" {
			continue
		}
		switch a.Name.Local {
		case "level":
			levelAttr = a.Value
		case "version":
			versionAttr = a.Value
		}
	}

	uriNS, uriOK := NamespacesFromURI(start.Name.Space)

	level, err1 := strconv.ParseUint(strings.TrimSpace(levelAttr), 10, 32)
	version, err2 := strconv.ParseUint(strings.TrimSpace(versionAttr), 10, 32)

	var ns Namespaces
	switch {
	case err1 == nil && err2 == nil && IsSupported(uint(level), uint(version)):
		ns = Namespaces{level: uint(level), version: uint(version)}

	case uriOK:
		ns = uriNS
		d.logGeneric(ErrInvalidLevelVersion, SeverityError, "sedML",
			fmt.Sprintf("level %q version %q is not a supported SED-ML revision, using %s from the namespace", levelAttr, versionAttr, ns))

	default:
		ns = DefaultNamespaces()
		d.logGeneric(ErrInvalidLevelVersion, SeverityError, "sedML",
			fmt.Sprintf("level %q version %q is not a supported SED-ML revision, using %s", levelAttr, versionAttr, ns))
	}

	switch {
	case start.Name.Space == "":
		d.logGeneric(ErrInvalidNamespace, SeverityWarning, "sedML", "document does not declare the SED-ML namespace")

	case start.Name.Space != ns.URI():
		d.logGeneric(ErrInvalidNamespace, SeverityError, "sedML",
			fmt.Sprintf("namespace %q does not match %s (%s)", start.Name.Space, ns, ns.URI()))
	}

	return ns
}

// WriteDocument writes doc as XML, indented and with a declaration unless
// options say otherwise.
func WriteDocument(w io.Writer, doc *Document, opts ...WriteOption) error {
	if doc == nil {
		return errors.WithMessage(ErrInvalidObject, "write nil document")
	}
	return WriteElement(w, doc, opts...)
}

// WriteElement writes a single element and everything it owns.
func WriteElement(w io.Writer, el Element, opts ...WriteOption) error {
	if isNil(el) {
		return errors.WithMessage(ErrInvalidObject, "write nil element")
	}

	o := writeOptions{indent: indent, declaration: true}
	for _, opt := range opts {
		opt(&o)
	}

	if o.declaration {
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
	}

	encoder := NewEncoder(w)
	encoder.Indent("", o.indent)

	if err := encoder.Encode(el); err != nil {
		return errors.WithMessagef(err, "write <%s>", el.ElementName())
	}

	return nil
}

func WriteDocumentToString(doc *Document, opts ...WriteOption) (string, error) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, doc, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func WriteDocumentFile(path string, doc *Document, opts ...WriteOption) (err error) {
	if doc == nil {
		return errors.WithMessage(ErrInvalidObject, "write nil document")
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	if err := WriteDocument(file, doc, opts...); err != nil {
		return errors.WithMessagef(err, "write %s", path)
	}

	Logger().Info("sedml file written", zap.String("path", path))
	return nil
}
