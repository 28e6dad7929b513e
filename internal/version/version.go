// Package version holds the build version, overridden at link time.
package version

var Version = "dev"
