package types

// VersionKind discriminates the variants of Version.
type VersionKind int

const (
	VersionKindUnset VersionKind = iota
	VersionKindHumanReadable
	VersionKindMachine
)

// VersionScheme names the ordering rules used to compare machine versions.
type VersionScheme string

const (
	VersionSchemeNone   VersionScheme = ""
	VersionSchemeSemver VersionScheme = "semver"
	VersionSchemePep440 VersionScheme = "pep440"
	VersionSchemeDeb    VersionScheme = "deb"
)

// Version is either unset, a free-text human readable version, or a machine
// version that is comparable within its scheme. A value carries exactly one
// of these, so a free-text version can never share authority with a machine
// version.
type Version struct {
	kind   VersionKind
	text   string
	scheme VersionScheme
}

// HumanReadableVersion returns a free-text version. An empty text yields the
// unset version.
func HumanReadableVersion(text string) Version {
	if text == "" {
		return Version{}
	}
	return Version{kind: VersionKindHumanReadable, text: text}
}

// MachineVersion returns a comparable version in the given scheme. Callers
// are expected to have validated raw against the scheme.
func MachineVersion(scheme VersionScheme, raw string) Version {
	if raw == "" {
		return Version{}
	}
	if scheme == VersionSchemeNone {
		return HumanReadableVersion(raw)
	}
	return Version{kind: VersionKindMachine, text: raw, scheme: scheme}
}

func (v Version) Kind() VersionKind {
	return v.kind
}

func (v Version) IsSet() bool {
	return v.kind != VersionKindUnset
}

// String returns the display text of the version, whatever its kind.
func (v Version) String() string {
	return v.text
}

// Machine returns the scheme and raw text of a machine version. ok is false
// for unset and human readable versions.
func (v Version) Machine() (scheme VersionScheme, raw string, ok bool) {
	if v.kind != VersionKindMachine {
		return VersionSchemeNone, "", false
	}
	return v.scheme, v.text, true
}
