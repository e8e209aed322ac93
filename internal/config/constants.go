package config

// Application settings.
const (
	AppName = "sprintdeck"
)

// MemberPalette is the fixed set of colors handed out to new team
// members. The store indexes it by current member count modulo its
// length, so colors cycle predictably once the palette is exhausted.
// Values are 256-color terminal codes.
var MemberPalette = []string{
	"33",  // blue
	"99",  // purple
	"37",  // teal
	"41",  // green
	"214", // amber
	"203", // red
	"208", // orange
}

// EpicPalette colors roadmap epics, assigned the same wrapping way.
var EpicPalette = []string{
	"99",  // purple
	"33",  // blue
	"37",  // teal
	"214", // amber
	"203", // red
	"41",  // green
}

// Roadmap horizon.
const (
	// RoadmapWeeks is the number of weeks the roadmap grid spans.
	RoadmapWeeks = 12

	// RoadmapTotalDays is the roadmap window length in days.
	RoadmapTotalDays = RoadmapWeeks * 7

	// DefaultEpicSpanDays seeds the date range of a newly created epic.
	DefaultEpicSpanDays = 14
)
