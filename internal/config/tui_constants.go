package config

// Layout constants.
const (
	// TimelineDayWidth is the width in cells of one day column on the
	// sprint timeline.
	TimelineDayWidth = 12

	// RoadmapDayWidth is the width in cells of one day on the roadmap
	// grid, kept narrow so twelve weeks fit a wide terminal.
	RoadmapDayWidth = 2

	// BarGutter is the visual gap in cells kept between adjacent bars.
	BarGutter = 1

	// MinColumnWidth is the minimum width for a board column.
	MinColumnWidth = 18

	// SidebarWidth is the width of the task-name column on the
	// timeline and roadmap.
	SidebarWidth = 26

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60
)

// Display limits.
const (
	// MaxVisibleTasks limits tasks shown per board column before
	// scrolling.
	MaxVisibleTasks = 12

	// MaxAvatarsDisplayed limits inline assignee avatars on a card.
	MaxAvatarsDisplayed = 2

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTitleLength is the maximum task or epic title length.
	MaxTitleLength = 100

	// MaxDescriptionLength is the maximum description length.
	MaxDescriptionLength = 500
)
