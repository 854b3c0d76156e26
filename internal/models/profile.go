package models

// Profile is the singleton progression record. TotalXP only ever grows and
// drives Level; SpendableXP is the purchase wallet and moves independently.
type Profile struct {
	TotalXP        int    `json:"total_xp"`
	SpendableXP    int    `json:"spendable_xp"`
	Level          int    `json:"level"`
	TotalVolume    int    `json:"total_volume"`
	BestStreak     int    `json:"best_streak"`
	ActiveDays     int    `json:"active_days"`
	DailyRecord    int    `json:"daily_record"`
	LastActiveDate string `json:"last_active_date"` // YYYY-MM-DD, empty until first intake
}
