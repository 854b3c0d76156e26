package cli

import (
	"fmt"
)

type HistoryCmd struct {
	Days int `help:"Number of days to show." default:"7"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	history, err := ctx.Engine.History(c.Days)
	if err != nil {
		return err
	}

	for _, day := range history {
		marker := " "
		if day.Met {
			marker = "✓"
		}
		fmt.Printf("%s %s %s %5d / %d (%d%%)\n",
			marker, day.Date, ProgressBar(day.Total, day.Goal, 10), day.Total, day.Goal, day.Percent)
	}
	return nil
}
