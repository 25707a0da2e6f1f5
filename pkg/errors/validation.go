package errors

import (
	"regexp"
	"unicode"
)

// packageNameRegex matches well-formed package names: alphanumeric start and
// end, with '.', '_' and '-' allowed in between (PEP 508).
var packageNameRegex = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

// ValidatePackageName validates a declared package name from an input record.
// Records with a name failing validation carry no usable identity and are
// dropped by the graph builder rather than inserted under a garbage key.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRecord, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidRecord, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRecord, "package name contains control characters")
		}
	}

	if !packageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRecord, "invalid package name: %q", name)
	}

	return nil
}
