// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "1.0-" + runtime.GOOS + "/" + runtime.GOARCH

// Unit conversions used by the derived-column calculations.
const (
	FeetPerMile = 5280.0
	KmsPerMile  = 1.609
)
