// Package zoneterm carries the build version shared by the binary and the
// market client.
package zoneterm

import (
	_ "embed"
	"regexp"
	"strings"
)

// devVersion stands in when the embedded VERSION is missing or malformed.
const devVersion = "0.0.0-dev"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the SemVer release of zoneterm, without a leading `v`.
func Version() string {
	return resolveVersion(embeddedVersion)
}

func resolveVersion(raw string) string {
	v := strings.TrimSpace(raw)
	if !IsSemver(v) {
		return devVersion
	}
	return v
}

// VersionTag is Version as a git tag.
func VersionTag() string {
	return "v" + Version()
}

// UserAgent identifies zoneterm in outgoing HTTP requests.
func UserAgent() string {
	return "zoneterm/" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
