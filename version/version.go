package version

// Set at build time through -ldflags "-X github.com/thetatoken/treasury/version.GitHash=..."
var (
	Version   = "1.0.0"
	GitHash   = "unknown"
	Timestamp = "unknown"
)
