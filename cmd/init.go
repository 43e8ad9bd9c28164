package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	spl "github.com/khang200923/simple-propositional-logic"
)

// initCmd: spl init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new checker configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		path := cfgFile
		if path == "" {
			path = defaultConfigurationPath
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

const defaultConfigurationPath = ".spl.yaml"

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = defaultConfigurationPath
	}

	d, err := yaml.Marshal(spl.DefaultConfig())
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
