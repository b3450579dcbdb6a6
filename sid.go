package sedml

import "github.com/pkg/errors"

// IsValidSId reports whether s matches the SId grammar:
// ( letter | '_' ) ( letter | digit | '_' )*.
func IsValidSId(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}

	return true
}

// IsValidSIdRef reports whether s is a syntactically valid reference to a SId.
func IsValidSIdRef(s string) bool { return IsValidSId(s) }

func checkSId(s string) error {
	if !IsValidSId(s) {
		return errInvalidValue("SId", s)
	}
	return nil
}

func errInvalidValue(what, value string) error {
	return errors.WithMessagef(ErrInvalidAttributeValue, "%q is not a valid %s", value, what)
}

// isValidXMLID is a conservative check of the XML ID grammar used by metaid.
func isValidXMLID(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= 0x80:
		case (c >= '0' && c <= '9' || c == '-' || c == '.') && i > 0:
		default:
			return false
		}
	}

	return true
}

func setSIdRef(slot *string, what, ref string) error {
	if !IsValidSIdRef(ref) {
		return errInvalidValue(what, ref)
	}
	*slot = ref
	return nil
}
