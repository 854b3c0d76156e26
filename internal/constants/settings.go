package constants

const (
	// General Settings
	SettingDailyGoal            = "daily_goal"
	SettingPresets              = "presets"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingTimezone             = "timezone"

	// Default Settings Values
	DefaultDailyGoal            = 2000
	DefaultPresets              = "250,330,500,750"
	DefaultNotificationsEnabled = true
	DefaultTimezone             = "Local" // Use system local timezone by default
)
