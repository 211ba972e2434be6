package ui

// Layout breakpoints for responsive rendering.
const (
	// BreakpointNarrow is the width below which the UI uses compact layout.
	BreakpointNarrow = 80

	// BreakpointMedium is the width above which the stats panel can sit
	// beside the list instead of above it.
	BreakpointMedium = 100
)

// Box and panel dimension constraints.
const (
	// MinContentHeight is the minimum height for scrollable content areas.
	MinContentHeight = 5

	// StatsPanelPadding is the padding subtracted from width for the stats panel.
	StatsPanelPadding = 4
)
