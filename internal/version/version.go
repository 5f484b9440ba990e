package version

// Version is overridden at link time with -ldflags "-X .../internal/version.Version=...".
var Version = "0.1.0-dev"
