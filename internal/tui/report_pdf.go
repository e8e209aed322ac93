package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/query"
	"github.com/mhartveld/sprintdeck/internal/store"
)

// GeneratePDFReport writes a full project report into dir and returns
// the generated file's absolute path.
func GeneratePDFReport(snap store.Snapshot, dir string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Project Report: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	stats := query.Stats(snap.Tasks)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("%d tasks, %d%% complete, %d high priority, %d unassigned",
		stats.Total,
		query.CompletionPercent(stats.Done, stats.Total),
		stats.HighPriority,
		stats.Unassigned))
	pdf.Ln(10)

	for _, sp := range snap.Sprints {
		tasks := query.InSprint(snap.Tasks, sp.ID)
		spStats := query.Stats(tasks)

		pdf.SetFont("Arial", "B", 14)
		header := fmt.Sprintf("%s  (%s - %s)", sp.Name,
			sp.StartDate.Format("Jan 2"), sp.EndDate.Format("Jan 2"))
		if sp.IsActive {
			header += " [active]"
		}
		pdf.Cell(0, 10, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("  %d%% complete (%d of %d done)",
			query.CompletionPercent(spStats.Done, spStats.Total), spStats.Done, spStats.Total))
		pdf.Ln(8)

		if len(tasks) == 0 {
			pdf.Cell(0, 8, "  - No tasks assigned.")
			pdf.Ln(8)
		}
		for _, t := range tasks {
			status := "[ ]"
			if t.Status == models.StatusDone {
				status = "[x]"
			}
			names := assigneeNames(snap, t.Assignees)
			line := fmt.Sprintf("  %s %s (%s)", status, t.Title, t.Priority.Label())
			if names != "" {
				line += " - " + names
			}
			pdf.Cell(0, 8, line)
			pdf.Ln(6)

			done, total := query.SubtaskProgress(t)
			if total > 0 {
				pdf.Cell(0, 6, fmt.Sprintf("        subtasks: %d/%d", done, total))
				pdf.Ln(6)
			}
		}
		pdf.Ln(4)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Team Workload")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, load := range query.Workload(snap.Members, snap.Tasks) {
		pdf.Cell(0, 8, fmt.Sprintf("  %s: %d tasks (%d done)",
			load.Member.Name, load.Total, load.Done))
		pdf.Ln(6)
	}

	filename := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", time.Now().Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}

func assigneeNames(snap store.Snapshot, ids []string) string {
	var names string
	for _, id := range ids {
		if member, ok := snap.Member(id); ok {
			if names != "" {
				names += ", "
			}
			names += member.Name
		}
	}
	return names
}
