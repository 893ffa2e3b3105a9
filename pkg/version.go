// Package skillgap keeps build information for the skillgap tool.
package skillgap

var (
	// Version of skillgap, set during build.
	Version = "v0.1.0"

	// Build timestamp, set during build.
	Build = "n/a"
)
