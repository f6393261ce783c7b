package cmd

import (
	"fmt"

	"github.com/Ceeox/proxer-go/filesystem"
	"github.com/Ceeox/proxer-go/icon"
	"github.com/Ceeox/proxer-go/util"
	"github.com/Ceeox/proxer-go/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"log files", "logs", mo.Some("l"), where.Logs},
	{"temp directory", "temp", mo.Some("t"), where.Temp},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached and temporary files",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			freed, err := filesystem.Clear(target.location())
			erase()
			handleErr(err)

			cmd.Printf("%s %s cleared, %s freed\n", icon.Get(icon.Success), util.Capitalize(target.name), util.Quantify(int(freed), "byte", "bytes"))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
