package tui

// AppVersion is the displayed application version.
const AppVersion = "1.0.0"
