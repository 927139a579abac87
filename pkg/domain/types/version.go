package types

// Version is overwritten via -ldflags on release builds.
var Version = "v0.1.0"
