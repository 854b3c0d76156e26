package cli

import (
	"fmt"
	"strings"

	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/engine"
	"github.com/driplog/drip/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// FormatAmount renders an amount with the unit of its kind.
func FormatAmount(kind constants.IntakeKind, amount int) string {
	if kind == constants.IntakeBeer {
		return fmt.Sprintf("%d cl", amount)
	}
	return fmt.Sprintf("%d ml", amount)
}

// ProgressBar renders a fixed-width ASCII fill bar.
func ProgressBar(current, goal, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if goal > 0 {
		filled = current * width / goal
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// PrintIntakeResult announces everything one intake changed.
func PrintIntakeResult(res engine.IntakeResult, kind constants.IntakeKind) {
	fmt.Printf("Logged %s. Today: %d / %d\n", FormatAmount(kind, res.Amount), res.CurrentTotal, res.Goal)
	fmt.Printf("%s %d%%\n", ProgressBar(res.CurrentTotal, res.Goal, 20), percent(res.CurrentTotal, res.Goal))

	if res.XPEarned > 0 {
		fmt.Printf("+%d XP\n", res.XPEarned)
	}
	if res.GoalCrossed {
		fmt.Println("🎉 Daily goal reached!")
	}
	if res.LeveledUp {
		fmt.Printf("⬆ Level up! You are now level %d.\n", res.Level)
	}
	if res.ChallengeCompleted != nil {
		fmt.Printf("✓ Challenge completed: %s (+%d XP)\n",
			res.ChallengeCompleted.Description, res.ChallengeCompleted.XPReward)
	}
	if res.Badge != nil {
		fmt.Printf("🏅 New badge: %s\n", res.Badge.Description)
	}
	for _, c := range res.Unlocked {
		fmt.Printf("🐠 New pet unlocked: %s\n", c.Name)
	}
	if res.Streak > 1 {
		fmt.Printf("🔥 %d day streak\n", res.Streak)
	}
}

func percent(current, goal int) int {
	if goal <= 0 {
		return 0
	}
	return current * 100 / goal
}
