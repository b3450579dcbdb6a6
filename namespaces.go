package sedml

import (
	"fmt"

	"github.com/GodYY/gutils/assert"
)

const (
	DefaultLevel   = 1
	DefaultVersion = 4

	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
	XHTMLNamespace  = "http://www.w3.org/1999/xhtml"
)

const sedmlL1V1Namespace = "http://sed-ml.org/"

// Namespaces records the SED-ML level and version an element belongs to.
type Namespaces struct {
	level   uint
	version uint
}

// NewNamespaces returns the namespaces of level/version. Passing an
// unsupported pair is a programming error.
func NewNamespaces(level, version uint) Namespaces {
	assert.AssertF(IsSupported(level, version), "unsupported SED-ML level %d version %d", level, version)
	return Namespaces{level: level, version: version}
}

func DefaultNamespaces() Namespaces { return Namespaces{level: DefaultLevel, version: DefaultVersion} }

// IsSupported reports whether level/version is a known SED-ML revision.
func IsSupported(level, version uint) bool {
	return level == 1 && version >= 1 && version <= 4
}

// NamespacesFromURI maps a SED-ML namespace URI back to its level/version.
func NamespacesFromURI(uri string) (Namespaces, bool) {
	if uri == sedmlL1V1Namespace {
		return Namespaces{level: 1, version: 1}, true
	}

	var level, version uint
	if n, err := fmt.Sscanf(uri, "http://sed-ml.org/sed-ml/level%d/version%d", &level, &version); err != nil || n != 2 {
		return Namespaces{}, false
	}

	ns := Namespaces{level: level, version: version}
	if !ns.valid() || ns.URI() != uri {
		return Namespaces{}, false
	}

	return ns, true
}

func (ns Namespaces) Level() uint   { return ns.level }
func (ns Namespaces) Version() uint { return ns.version }

func (ns Namespaces) URI() string {
	if ns.level == 1 && ns.version == 1 {
		return sedmlL1V1Namespace
	}
	return fmt.Sprintf("http://sed-ml.org/sed-ml/level%d/version%d", ns.level, ns.version)
}

func (ns Namespaces) String() string { return fmt.Sprintf("L%dV%d", ns.level, ns.version) }

func (ns Namespaces) valid() bool { return IsSupported(ns.level, ns.version) }

func (ns Namespaces) atLeast(version uint) bool { return ns.version >= version }
