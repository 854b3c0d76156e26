package models

// Settings represents application-wide settings
type Settings struct {
	DailyGoal            int    `json:"daily_goal"`            // the configured daily intake goal
	Presets              []int  `json:"presets"`               // quick-log amounts offered by the CLI and TUI
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether tray notifications are enabled
	Timezone             string `json:"timezone"`              // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
}
