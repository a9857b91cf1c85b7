package cmd

import (
	"github.com/ichaly/auja/ioc"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var runCmd = &cobra.Command{
	Use:     "start",
	Aliases: []string{"run", "s", "r"},
	Short:   "Start Service.",
	Run: func(cmd *cobra.Command, args []string) {
		fx.New(
			ioc.Get(),
			fx.Supply(configFile(cmd)),
		).Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
