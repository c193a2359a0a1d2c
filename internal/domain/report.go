package domain

// ImpactReportMeta summarises an impact run
type ImpactReportMeta struct {
	Repo      string `json:"repo"`
	Commit    string `json:"commit"`
	Parent    string `json:"parent,omitempty"`
	Added     int    `json:"added"`
	Removed   int    `json:"removed"`
	Modified  int    `json:"modified"`
	Total     int    `json:"total"`
	Timestamp string `json:"timestamp"`
}

// ImpactReport is the persisted form of an impact run
type ImpactReport struct {
	Meta     ImpactReportMeta `json:"meta"`
	Records  []ImpactRecord   `json:"records"`
	Reviewed map[string]bool  `json:"reviewed,omitempty"` // Record keys marked as reviewed in the viewer
}

// CountByKind returns how many records of each kind the slice holds
func CountByKind(records []ImpactRecord) (added, removed, modified int) {
	for _, r := range records {
		switch r.Kind {
		case ImpactAdded:
			added++
		case ImpactRemoved:
			removed++
		case ImpactModified:
			modified++
		}
	}
	return added, removed, modified
}
