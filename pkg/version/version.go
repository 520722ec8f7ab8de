package version

// Build variables set via ldflags during compilation:
// -X 'github.com/renjuashokan/Dependencies/pkg/version.Version=v1.0.0'
// -X 'github.com/renjuashokan/Dependencies/pkg/version.CommitHash=abc123'
// -X 'github.com/renjuashokan/Dependencies/pkg/version.BuildDate=2024-01-01T00:00:00Z'
var (
	// Version is the semantic version of the depsver binary itself.
	Version = "unknown"
	// CommitHash is the git commit the binary was built from.
	CommitHash = "unknown"
	// BuildDate is the RFC3339 timestamp of the build.
	BuildDate = "unknown"
)

// Info holds build information in a structured format.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
	}
}
