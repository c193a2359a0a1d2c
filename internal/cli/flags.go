package cli

import "commit-impact/internal/config"

// Flags holds command-line flags
type Flags struct {
	Commit    string
	Repo      string
	Format    string
	Machine   bool
	Filter    string
	Save      bool
	Workers   int
	Verbose   bool
	TestCases bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Commit:    f.Commit,
		Repo:      f.Repo,
		Format:    f.Format,
		Machine:   f.Machine,
		Filter:    f.Filter,
		Save:      f.Save,
		Workers:   f.Workers,
		Verbose:   f.Verbose,
		TestCases: f.TestCases,
	}
}
