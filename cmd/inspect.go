package cmd

import (
	"fmt"
	"io"

	"github.com/ichaly/auja/admin"
	"github.com/ichaly/auja/std"
	"github.com/ichaly/auja/utl"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "输出推断出的模型、关系与配置",
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := std.NewKonfig(std.WithFilePath(configFile(cmd)))
		if err != nil {
			return err
		}
		c, err := setup(k)
		if err != nil {
			return err
		}
		return inspect(cmd.OutOrStdout(), c)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func setup(k *std.Konfig) (*admin.Configurator, error) {
	sc, err := std.NewConfig(k)
	if err != nil {
		return nil, err
	}
	std.NewLogger(sc)
	ac, err := admin.NewConfig(k)
	if err != nil {
		return nil, err
	}
	db, err := std.NewDatabase(sc)
	if err != nil {
		return nil, err
	}
	store, err := std.NewCache(sc)
	if err != nil {
		return nil, err
	}
	return admin.Setup(ac, admin.NewProvider(ac, db, store))
}

type report struct {
	Models    []*admin.Model                `json:"models"`
	Relations map[string][]*admin.Relation  `json:"relations"`
	Configs   map[string]*admin.ModelConfig `json:"configs"`
}

func inspect(w io.Writer, c *admin.Configurator) error {
	models, err := c.Models()
	if err != nil {
		return err
	}
	relations, err := c.Relations()
	if err != nil {
		return err
	}
	r := &report{Models: models, Relations: relations, Configs: make(map[string]*admin.ModelConfig, len(models))}
	for _, m := range models {
		if r.Configs[m.Name], err = c.Config(m, nil); err != nil {
			return err
		}
	}
	data, err := utl.MarshalIndent(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
