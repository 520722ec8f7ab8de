package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultVersion is used whenever no tag is available or the tag cannot be
// parsed as a version.
const DefaultVersion = "1.10.0"

// numericPrefixRe matches the MAJOR.MINOR.PATCH triple at the start of a
// candidate, leaving any pre-release suffix for Full.
var numericPrefixRe = regexp.MustCompile(`^\d+\.\d+\.\d+`)

// ErrNoTag signals that no tag was supplied and none could be resolved.
var ErrNoTag = errors.New("no tag available")

// ParseError signals that a resolved tag had no numeric version prefix.
type ParseError struct {
	Candidate string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse version from %q", e.Candidate)
}

// Version is the result of normalizing a tag.
type Version struct {
	// Full is the version including any pre-release suffix, without the
	// leading tag prefix.
	Full string
	// Numeric is the MAJOR.MINOR.PATCH triple only.
	Numeric string
}

// AssemblyVersion returns the four-component assembly/file version derived
// from the numeric triple. It never carries a pre-release suffix.
func (v *Version) AssemblyVersion() string {
	return v.Numeric + ".0"
}

func (v *Version) String() string {
	return v.Full
}

// Default returns the fallback version applied when normalization fails.
func Default() *Version {
	return &Version{Full: DefaultVersion, Numeric: DefaultVersion}
}

// Normalize turns a tag-like string into a Version.
//
// At most one leading "v" is stripped, then the numeric triple is extracted
// from the start of the remainder. Normalize never returns nil: when the tag
// is empty or has no numeric prefix, the default version is returned together
// with ErrNoTag or a *ParseError. Callers treat that error as a warning, not
// a failure.
func Normalize(rawTag string) (*Version, error) {
	tag := strings.TrimSpace(rawTag)
	if tag == "" {
		return Default(), ErrNoTag
	}
	candidate := strings.TrimPrefix(tag, "v")
	numeric := numericPrefixRe.FindString(candidate)
	if numeric == "" {
		return Default(), &ParseError{Candidate: candidate}
	}
	return &Version{Full: candidate, Numeric: numeric}, nil
}
