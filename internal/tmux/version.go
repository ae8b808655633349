package tmux

import (
	"fmt"
	"regexp"
	"strconv"
)

// Version is a tmux version triple. tmux releases use a trailing lowercase
// letter instead of a numeric patch level, so "3.2a" is {3, 2, 1}.
type Version struct {
	Major, Minor, Patch int
}

var _versionRe = regexp.MustCompile(`(\d+)\.(\d+)([a-z])?`)

// ParseVersion extracts a version triple from the output of tmux -V
// (for example, "tmux 3.2a"). Text around the version number is ignored.
//
// The patch level is the alphabetic position of the trailing letter
// ('a' is 1, 'z' is 26), or zero if there is none. Multi-letter suffixes
// are not a thing tmux does, and are not handled.
func ParseVersion(s string) (Version, error) {
	m := _versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("no version number in %q", s)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("major version in %q: %v", s, err)
	}

	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("minor version in %q: %v", s, err)
	}

	var patch int
	if len(m[3]) > 0 {
		patch = int(m[3][0]-'a') + 1
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// Less reports whether v orders before o, comparing the triples
// lexicographically.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor < o.Minor
	}
	return v.Patch < o.Patch
}

// AtLeast reports whether v is o or newer.
func (v Version) AtLeast(o Version) bool {
	return !v.Less(o)
}

func (v Version) String() string {
	if v.Patch > 0 {
		return fmt.Sprintf("%d.%d%c", v.Major, v.Minor, 'a'+v.Patch-1)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
