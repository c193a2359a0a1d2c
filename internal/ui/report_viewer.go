package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"commit-impact/internal/domain"
	"commit-impact/internal/storage"
)

// ReportViewer browses a saved impact report in an interactive TUI
type ReportViewer struct {
	storage storage.Storage
}

// NewReportViewer creates a new ReportViewer
func NewReportViewer(st storage.Storage) *ReportViewer {
	return &ReportViewer{storage: st}
}

// View displays the report's records; R toggles the reviewed mark, which is
// saved back to storage.
func (rv *ReportViewer) View(report *domain.ImpactReport) error {
	if len(report.Records) == 0 {
		color.Green("✓ No impacted tests in the saved report")
		return nil
	}
	if report.Reviewed == nil {
		report.Reviewed = make(map[string]bool)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i, r := range report.Records {
		list.AddItem(listItemText(r, i, report.Reviewed[r.Key()]), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	var saveErr error
	updateHeader := func() {
		headerView.SetText(headerText(report, saveErr))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(report.Records) {
			detailsView.SetText(formatRecordDetails(report, report.Records[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(report.Records) {
					key := report.Records[index].Key()
					report.Reviewed[key] = !report.Reviewed[key]
					list.SetItemText(index, listItemText(report.Records[index], index, report.Reviewed[key]), "")
					saveErr = rv.storage.Save(report)
					updateHeader()
					updateDetails()
				}
				return nil
			}
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// headerText summarises the report; a failed save of the reviewed marks
// replaces the key help so it is not missed.
func headerText(report *domain.ImpactReport, saveErr error) string {
	reviewed := 0
	for _, r := range report.Records {
		if report.Reviewed[r.Key()] {
			reviewed++
		}
	}

	summary := fmt.Sprintf(" Impacted tests for %s (%d total, %d reviewed)", shortID(report.Meta.Commit), len(report.Records), reviewed)
	if saveErr != nil {
		return summary + fmt.Sprintf(" | [red]reviewed marks not saved: %s[white] ", tview.Escape(saveErr.Error()))
	}
	return summary + " | ↑↓ navigate, [yellow]R[white] mark reviewed, Ctrl+C exit "
}

func kindTag(kind domain.ImpactKind) string {
	switch kind {
	case domain.ImpactAdded:
		return "[green]+[white]"
	case domain.ImpactRemoved:
		return "[red]-[white]"
	default:
		return "[yellow]~[white]"
	}
}

func listItemText(r domain.ImpactRecord, index int, reviewed bool) string {
	if reviewed {
		return fmt.Sprintf("[gray]✓ %d. %s[white]", index+1, tview.Escape(r.TestName))
	}
	return fmt.Sprintf("%s %d. %s", kindTag(r.Kind), index+1, tview.Escape(r.TestName))
}

// formatRecordDetails formats one record for display using tview color tags
func formatRecordDetails(report *domain.ImpactReport, r domain.ImpactRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s [white]%s\n\n", kindTag(r.Kind), strings.ToUpper(string(r.Kind)))
	fmt.Fprintf(&b, "[yellow]Test:[white] %s\n", tview.Escape(r.TestName))
	fmt.Fprintf(&b, "[cyan]File:[white] %s\n\n", tview.Escape(r.FilePath))

	fmt.Fprintf(&b, "[yellow]Commit:[white] %s\n", report.Meta.Commit)
	if report.Meta.Parent != "" {
		fmt.Fprintf(&b, "[yellow]Parent:[white] %s\n", report.Meta.Parent)
	}
	fmt.Fprintf(&b, "[yellow]Repo:[white] %s\n", tview.Escape(report.Meta.Repo))
	fmt.Fprintf(&b, "[gray]added %d, removed %d, modified %d[white]\n",
		report.Meta.Added, report.Meta.Removed, report.Meta.Modified)

	if report.Reviewed[r.Key()] {
		b.WriteString("\n[green]✓ reviewed[white]\n")
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
