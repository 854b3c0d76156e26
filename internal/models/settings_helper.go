package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/driplog/drip/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingDailyGoal:
			goal, err := strconv.Atoi(value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing daily_goal: %w", err)
			}
			settings.DailyGoal = goal
		case constants.SettingPresets:
			presets, err := ParsePresets(value)
			if err != nil {
				return Settings{}, err
			}
			settings.Presets = presets
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingDailyGoal:            strconv.Itoa(settings.DailyGoal),
		constants.SettingPresets:              FormatPresets(settings.Presets),
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingTimezone:             settings.Timezone,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.DailyGoal == 0 {
		settings.DailyGoal = constants.DefaultDailyGoal
	}
	if len(settings.Presets) == 0 {
		settings.Presets, _ = ParsePresets(constants.DefaultPresets)
	}
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
}

// ParsePresets parses a comma-separated list of positive integers.
func ParsePresets(value string) ([]int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parts := strings.Split(value, ",")
	presets := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parsing presets: invalid amount %q", part)
		}
		if n <= 0 {
			return nil, fmt.Errorf("parsing presets: amount must be positive, got %d", n)
		}
		presets = append(presets, n)
	}
	return presets, nil
}

// FormatPresets renders presets as the comma-separated settings value.
func FormatPresets(presets []int) string {
	parts := make([]string, len(presets))
	for i, p := range presets {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}
