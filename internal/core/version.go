package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	debversion "github.com/knqyf263/go-deb-version"
	"golang.org/x/mod/semver"

	"modtagger/internal/types"
)

// ParseVersion builds a Version from its serialized form. An empty scheme
// yields a human readable version; any other scheme must parse.
func ParseVersion(scheme string, raw string) (types.Version, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.Version{}, nil
	}
	normalized := types.VersionScheme(strings.ToLower(strings.TrimSpace(scheme)))
	switch normalized {
	case types.VersionSchemeNone:
		return types.HumanReadableVersion(raw), nil
	case types.VersionSchemeSemver:
		if !semver.IsValid(canonicalSemver(raw)) {
			return types.Version{}, invalidVersion(normalized, raw, nil)
		}
	case types.VersionSchemePep440:
		if _, err := pep440.Parse(raw); err != nil {
			return types.Version{}, invalidVersion(normalized, raw, err)
		}
	case types.VersionSchemeDeb:
		if _, err := debversion.NewVersion(raw); err != nil {
			return types.Version{}, invalidVersion(normalized, raw, err)
		}
	default:
		return types.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported version scheme: %s", scheme))
	}
	return types.MachineVersion(normalized, raw), nil
}

// FormatVersion is the inverse of ParseVersion.
func FormatVersion(version types.Version) (scheme string, raw string) {
	if machineScheme, machineRaw, ok := version.Machine(); ok {
		return string(machineScheme), machineRaw
	}
	return "", version.String()
}

func invalidVersion(scheme types.VersionScheme, raw string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid %s version: %s", scheme, raw))
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// canonicalSemver adds the "v" prefix golang.org/x/mod/semver requires.
func canonicalSemver(raw string) string {
	if strings.HasPrefix(raw, "v") {
		return raw
	}
	return "v" + raw
}

// VersionComparer compares machine versions, memoizing parsed values so the
// same strings can be compared repeatedly.
type VersionComparer struct {
	deb map[string]debversion.Version
	pep map[string]pep440.Version
}

func NewVersionComparer() *VersionComparer {
	return &VersionComparer{
		deb: map[string]debversion.Version{},
		pep: map[string]pep440.Version{},
	}
}

// Compare returns -1, 0 or 1 comparing a to b. ok is false unless
// both are machine versions of the same scheme.
func (c *VersionComparer) Compare(a types.Version, b types.Version) (result int, ok bool, err error) {
	schemeA, rawA, okA := a.Machine()
	schemeB, rawB, okB := b.Machine()
	if !okA || !okB || schemeA != schemeB {
		return 0, false, nil
	}
	switch schemeA {
	case types.VersionSchemeSemver:
		return semver.Compare(canonicalSemver(rawA), canonicalSemver(rawB)), true, nil
	case types.VersionSchemePep440:
		v1, err := c.pepVersion(rawA)
		if err != nil {
			return 0, false, err
		}
		v2, err := c.pepVersion(rawB)
		if err != nil {
			return 0, false, err
		}
		return v1.Compare(v2), true, nil
	case types.VersionSchemeDeb:
		v1, err := c.debVersion(rawA)
		if err != nil {
			return 0, false, err
		}
		v2, err := c.debVersion(rawB)
		if err != nil {
			return 0, false, err
		}
		return v1.Compare(v2), true, nil
	default:
		return 0, false, nil
	}
}

// debVersion returns a parsed Debian version, caching the result.
func (c *VersionComparer) debVersion(value string) (debversion.Version, error) {
	if parsed, ok := c.deb[value]; ok {
		return parsed, nil
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		return debversion.Version{}, invalidVersion(types.VersionSchemeDeb, value, err)
	}
	c.deb[value] = parsed
	return parsed, nil
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *VersionComparer) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, invalidVersion(types.VersionSchemePep440, value, err)
	}
	c.pep[value] = parsed
	return parsed, nil
}
