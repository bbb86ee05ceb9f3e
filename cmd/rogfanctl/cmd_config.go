package main

import (
	"fmt"

	"github.com/sierrasoftworks/humane-errors-go"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/rog-community/rogfanctl/pkg/config"
)

func init() {
	cmdConfig.AddCommand(cmdConfigInit)
	rootCmd.AddCommand(cmdConfig)
}

var (
	cmdConfig = &cobra.Command{
		Use:   "config",
		Short: "Manage the rogfanctl configuration file",
	}

	cmdConfigInit = &cobra.Command{
		Use:     "init",
		Short:   "Write a default configuration file unless one already exists",
		Example: "rogfanctl config init",
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				path = defaultConfigPath()
			}
			if path == "" {
				return humane.New("failed to determine the configuration path",
					"pass --config to choose one explicitly",
				)
			}

			if herr := config.Ensure(afero.NewOsFs(), path); herr != nil {
				return herr
			}

			fmt.Println(path)
			return nil
		},
	}
)
