// Package zone models price zones and tracks which zones sit closest to the
// live market price.
//
// A zone is a support or resistance band bounded by High and Low. Zones are
// typed in by the user as a single line and parsed with Parse.
package zone
