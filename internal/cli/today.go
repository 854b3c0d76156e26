package cli

import (
	"fmt"

	"github.com/driplog/drip/internal/engine"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	status, err := ctx.Engine.Today()
	if err != nil {
		return err
	}

	fmt.Printf("Today (%s)\n", status.Date)
	fmt.Printf("%s %d / %d (%d%%)\n",
		ProgressBar(status.Total, status.Goal, 20), status.Total, status.Goal,
		percent(status.Total, status.Goal))
	fmt.Printf("Drinks logged: %d\n", status.Events)
	if status.Streak > 0 {
		fmt.Printf("Streak: %d day(s)\n", status.Streak)
	}

	into, span := engine.XPIntoLevel(status.Profile.TotalXP)
	fmt.Printf("Level %d (%d/%d XP)\n", status.Profile.Level, into, span)

	fmt.Println()
	printChallenge(status.Challenge)
	return nil
}
