package config

const (
	// DefaultRepoPath is the default repository path
	DefaultRepoPath = "."
	// DefaultFormat is the default report format
	DefaultFormat = FormatHuman
	// DefaultWorkers is the default number of content fetch workers
	DefaultWorkers = 4
	// DefaultOutputJSONFile is the default saved report file name
	DefaultOutputJSONFile = "impact-report.json"
	// DefaultOutputJSONDir is the default saved report directory
	DefaultOutputJSONDir = ".commit-impact"
	// DefaultEnvFile is read for overrides when present
	DefaultEnvFile = ".env"
)

// Report formats
const (
	FormatHuman   = "human"
	FormatMachine = "machine"
	FormatJSON    = "json"
)

// Environment variables consulted by Load
const (
	EnvRepo    = "COMMIT_IMPACT_REPO"
	EnvWorkers = "COMMIT_IMPACT_WORKERS"
	EnvFormat  = "COMMIT_IMPACT_FORMAT"
)
