package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gh6st66/metaloadout.gg/pkg/errors"
)

// DefaultVersion is the version assigned to a freshly created catalog.
const DefaultVersion = "0.1.0"

// Version is a parsed three-part catalog version. Ingestion merges only
// ever bump the patch component; major and minor are reserved for
// out-of-band schema changes performed by an operator.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a "major.minor.patch" version string. A malformed
// string is a corruption signal and is never repaired.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, errors.NewParseError("version", "",
			fmt.Sprintf("%q is not a major.minor.patch version", s), nil)
	}

	var nums [3]int
	for i, part := range parts {
		if part == "" || strings.IndexFunc(part, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
			return Version{}, errors.NewParseError("version", "",
				fmt.Sprintf("%q is not a major.minor.patch version", s), nil)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, errors.NewParseError("version", "",
				fmt.Sprintf("%q is not a major.minor.patch version", s), err)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// String formats the version as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// BumpPatch returns the version with the patch component incremented.
// This is the only bump the reconciler performs.
func (v Version) BumpPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// BumpMinor returns the version with the minor component incremented
// and the patch reset. Operator use only.
func (v Version) BumpMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// BumpMajor returns the version with the major component incremented
// and minor/patch reset. Operator use only.
func (v Version) BumpMajor() Version {
	return Version{Major: v.Major + 1}
}

// Compare returns -1, 0, or 1 when v is respectively lower than,
// equal to, or higher than other.
func (v Version) Compare(other Version) int {
	for _, d := range [3]int{v.Major - other.Major, v.Minor - other.Minor, v.Patch - other.Patch} {
		if d < 0 {
			return -1
		}
		if d > 0 {
			return 1
		}
	}
	return 0
}
