// internal/version/version.go
package version

// Version is set at build time via -ldflags for release builds.
var Version = "0.3.0"
