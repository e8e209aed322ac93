package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mhartveld/sprintdeck/internal/config"
	"github.com/mhartveld/sprintdeck/internal/models"
	"github.com/mhartveld/sprintdeck/internal/query"
	"github.com/mhartveld/sprintdeck/internal/schedule"
	"github.com/mhartveld/sprintdeck/internal/store"
)

// ViewMode identifies the visible dashboard page.
type ViewMode int

const (
	ViewBoard ViewMode = iota
	ViewTimeline
	ViewBacklog
	ViewTeam
	ViewReports
	ViewRoadmap
	ViewIssues
)

var viewNames = map[ViewMode]string{
	ViewBoard:    "Board",
	ViewTimeline: "Timeline",
	ViewBacklog:  "Backlog",
	ViewTeam:     "Team",
	ViewReports:  "Reports",
	ViewRoadmap:  "Roadmap",
	ViewIssues:   "Issues",
}

// DashboardModel is the root bubbletea model: one store handle, a
// cached snapshot refreshed after every mutation, and per-view cursor
// state.
type DashboardModel struct {
	repo    store.Repository
	snap    store.Snapshot
	roadmap *RoadmapState
	theme   Theme

	view ViewMode

	// Global filters feeding query.Filter.
	searchInput  textinput.Model
	searching    bool
	statusFilter models.Status
	memberFilter string

	// Board cursor.
	boardCol int
	boardRow int

	// Timeline cursor and in-flight gesture.
	tlRow   int
	tlDrag  schedule.DragState
	tlDelta int

	// Backlog cursor and expansion.
	backlogRow int
	expanded   map[string]bool

	// Team cursor.
	teamRow int

	// Issues view keeps its own filters, separate from the global ones.
	issueInput     textinput.Model
	issueSearching bool
	issueStatus    models.Status
	issueRow       int

	modal ModalState

	progress      progress.Model
	Message       string
	width, height int
}

// NewDashboardModel wires the dashboard to a store handle and seeds
// the roadmap's local epics from the startup dataset.
func NewDashboardModel(repo store.Repository, seed store.SeedIDs) DashboardModel {
	si := textinput.New()
	si.Placeholder = "Search tasks..."
	si.CharLimit = config.MaxTitleLength
	si.Width = 30

	ii := textinput.New()
	ii.Placeholder = "Search issues..."
	ii.CharLimit = config.MaxTitleLength
	ii.Width = 30

	now := time.Now()
	roadmap := NewRoadmapState(now)
	roadmap.SeedEpics(now, seed)

	m := DashboardModel{
		repo:         repo,
		roadmap:      roadmap,
		theme:        CurrentTheme,
		searchInput:  si,
		issueInput:   ii,
		statusFilter: query.StatusAll,
		memberFilter: query.MemberAll,
		issueStatus:  query.StatusAll,
		expanded:     make(map[string]bool),
		progress:     progress.New(progress.WithDefaultGradient()),
	}
	m.progress.Width = 30
	m.refresh()
	if sp, ok := m.snap.ActiveSprint(); ok {
		m.expanded[sp.ID] = true
	}
	return m
}

func (m DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-reads the snapshot after a mutation. Every consumer below
// this point works off m.snap, never the live store.
func (m *DashboardModel) refresh() {
	m.snap = m.repo.Snapshot()
	m.clampCursors()
}

// filterParams assembles the global filter inputs.
func (m DashboardModel) filterParams() query.Params {
	return query.Params{
		Query:  m.searchInput.Value(),
		Status: m.statusFilter,
		Member: m.memberFilter,
	}
}

// filteredTasks is the globally filtered task list.
func (m DashboardModel) filteredTasks() []models.Task {
	return query.Filter(m.snap, m.filterParams())
}

// sprintTasks narrows the filtered list to the active sprint. With no
// active sprint the board and timeline show nothing, matching the
// store's exclusive-selection contract.
func (m DashboardModel) sprintTasks() []models.Task {
	sp, ok := m.snap.ActiveSprint()
	if !ok {
		return nil
	}
	return query.InSprint(m.filteredTasks(), sp.ID)
}

// columnTasks partitions the active sprint's tasks into one board
// column.
func (m DashboardModel) columnTasks(status models.Status) []models.Task {
	var out []models.Task
	for _, t := range m.sprintTasks() {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// focusedBoardTask returns the task under the board cursor.
func (m DashboardModel) focusedBoardTask() (models.Task, bool) {
	col := m.columnTasks(models.Statuses[m.boardCol])
	if m.boardRow < len(col) {
		return col[m.boardRow], true
	}
	return models.Task{}, false
}

// focusedTimelineTask returns the task under the timeline cursor.
func (m DashboardModel) focusedTimelineTask() (models.Task, bool) {
	tasks := m.sprintTasks()
	if m.tlRow < len(tasks) {
		return tasks[m.tlRow], true
	}
	return models.Task{}, false
}

func (m *DashboardModel) clampCursors() {
	clampRow := func(row *int, n int) {
		if *row >= n {
			*row = n - 1
		}
		if *row < 0 {
			*row = 0
		}
	}
	clampRow(&m.boardRow, len(m.columnTasks(models.Statuses[m.boardCol])))
	clampRow(&m.tlRow, len(m.sprintTasks()))
	clampRow(&m.backlogRow, len(m.snap.Sprints))
	clampRow(&m.teamRow, len(m.snap.Members))
	clampRow(&m.issueRow, len(m.issueTasks()))
}

// issueTasks applies the issues view's local filters.
func (m DashboardModel) issueTasks() []models.Task {
	return query.Filter(m.snap, query.Params{
		Query:  m.issueInput.Value(),
		Status: m.issueStatus,
	})
}
