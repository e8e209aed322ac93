package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestViewBeforeFirstResizeShowsPlaceholder(t *testing.T) {
	m := setupTestDashboard(t)
	m.width = 0

	if got := m.View(); got != "Initializing..." {
		t.Fatalf("View() = %q, want placeholder", got)
	}
}

func TestEveryViewRendersSeededData(t *testing.T) {
	m := setupTestDashboard(t)

	cases := []struct {
		view ViewMode
		want string
	}{
		{ViewBoard, "Design System Setup"},
		{ViewTimeline, "Sprint 1"},
		{ViewBacklog, "Sprint 2"},
		{ViewTeam, "Alex Johnson"},
		{ViewReports, "Team Workload"},
		{ViewRoadmap, "User Authentication"},
		{ViewIssues, "Performance Optimization"},
	}
	for _, c := range cases {
		m.view = c.view
		out := m.View()
		if out == "" {
			t.Fatalf("%s view rendered nothing", viewNames[c.view])
		}
		if !strings.Contains(out, c.want) {
			t.Fatalf("%s view missing %q", viewNames[c.view], c.want)
		}
		if !strings.Contains(out, viewNames[c.view]) {
			t.Fatalf("header missing view name %q", viewNames[c.view])
		}
	}
}

func TestBoardShowsCompletionProgress(t *testing.T) {
	m := setupTestDashboard(t)

	// Sprint 1 seeds one done task out of four.
	out := m.View()
	if !strings.Contains(out, "1 of 4 tasks completed (25%)") {
		t.Fatalf("board missing completion line:\n%s", out)
	}
}

func TestBoardWithoutActiveSprintShowsHint(t *testing.T) {
	m := setupTestDashboard(t)
	m.repo.SetActiveSprint("no-such-sprint")
	m.refresh()

	if !strings.Contains(m.View(), "No active sprint") {
		t.Fatalf("board missing no-active-sprint hint")
	}
}

func TestBacklogMarksActiveSprint(t *testing.T) {
	m := setupTestDashboard(t)
	m.view = ViewBacklog

	if !strings.Contains(m.View(), "ACTIVE") {
		t.Fatalf("backlog missing ACTIVE badge")
	}
}

func TestHeaderShowsActiveFilters(t *testing.T) {
	m := setupTestDashboard(t)
	m = pressKey(t, m, runeKey("S"))

	if !strings.Contains(m.View(), "status:todo") {
		t.Fatalf("header missing status filter")
	}
}

func TestModalOverlayReplacesViewBody(t *testing.T) {
	m := setupTestDashboard(t)
	m = pressKey(t, m, runeKey("n"))

	out := m.View()
	if !strings.Contains(out, "New Task") {
		t.Fatalf("modal heading missing:\n%s", out)
	}
}

func TestFooterShowsTransientMessage(t *testing.T) {
	m := setupTestDashboard(t)
	m.Message = "saved"

	if !strings.Contains(m.View(), "saved") {
		t.Fatalf("footer missing message")
	}
}

func TestMessageClearsOnNextKey(t *testing.T) {
	m := setupTestDashboard(t)
	m.Message = "stale"

	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Message != "" {
		t.Fatalf("message not cleared on key press: %q", m.Message)
	}
}
