package ui

import "commit-impact/internal/domain"

// Viewer displays an impact report in an interactive TUI
type Viewer interface {
	View(report *domain.ImpactReport) error
}
