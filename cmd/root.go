package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ichaly/auja/utl"
	"github.com/spf13/cobra"
)

const configFlag = "config"

var rootCmd = &cobra.Command{
	Use:   "auja",
	Short: "根据数据库结构自动生成的管理后台",
}

func init() {
	rootCmd.PersistentFlags().StringP(
		configFlag, "c", "", "config file path",
	)
}

func configFile(cmd *cobra.Command) string {
	file, _ := cmd.Flags().GetString(configFlag)
	if file == "" {
		file = filepath.Join(utl.Root(), "cfg", "config.yml")
	}
	return file
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
