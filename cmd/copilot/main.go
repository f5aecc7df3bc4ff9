package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/coralcrm/copilot/pkg/logger"
	"github.com/coralcrm/copilot/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("COPILOT")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.copilot")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "copilot",
	Short: "Skill command pipeline for the CRM copilot",
	Long: `copilot turns free-text chat input into slash-command suggestions,
validates slash-command invocations against per-skill entity requirements,
and assembles the prompt handed to the executor.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if err := logger.SetLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("invalid log level %q, using info", viper.GetString("log_level")))
		}
		logger.SetFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text or json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
