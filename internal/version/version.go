package version

// Build information set by ldflags
var (
	Version = "dev" // Set by goreleaser: -X github.com/ScottMcKellar/catpath/internal/version.Version={{.Version}}
)
