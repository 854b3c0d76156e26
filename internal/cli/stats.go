package cli

import (
	"fmt"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	stats, err := ctx.Engine.Statistics()
	if err != nil {
		return err
	}
	p := stats.Profile

	fmt.Println("Lifetime stats")
	fmt.Printf("  Level:             %d (%d/%d XP)\n", p.Level, stats.XPIntoLevel, stats.XPLevelSpan)
	fmt.Printf("  Total XP:          %d\n", p.TotalXP)
	fmt.Printf("  Spendable XP:      %d\n", p.SpendableXP)
	fmt.Printf("  Total volume:      %d\n", p.TotalVolume)
	fmt.Printf("  Days tracked:      %d\n", stats.DaysTracked)
	fmt.Printf("  Days goal met:     %d\n", stats.DaysGoalMet)
	fmt.Printf("  Average per day:   %d\n", stats.AveragePerDay)
	fmt.Printf("  Daily record:      %d\n", p.DailyRecord)
	fmt.Printf("  Current streak:    %d\n", stats.CurrentStreak)
	fmt.Printf("  Best streak:       %d\n", p.BestStreak)
	fmt.Printf("  Badges earned:     %d\n", stats.Badges)
	fmt.Printf("  Challenges done:   %d\n", stats.Challenges)
	return nil
}

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *Context) error {
	streak, err := ctx.Engine.Streak()
	if err != nil {
		return err
	}

	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if streak == 0 {
		fmt.Println("No active streak. Meet your daily goal to start one.")
	} else {
		fmt.Printf("🔥 Current streak: %d day(s)\n", streak)
	}
	fmt.Printf("Best streak: %d day(s)\n", profile.BestStreak)
	return nil
}
