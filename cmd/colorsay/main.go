// Package main provides the colorsay CLI entry point.
// colorsay is a chat command dispatcher with a colored chat palette.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"colorsay/internal/config"
	"colorsay/internal/console"
	"colorsay/internal/logger"
	"colorsay/internal/version"
)

var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "colorsay",
	Short: "ColorSay - chat commands and colored chat",
	Long: `ColorSay dispatches chat commands (help, version, list) and broadcasts
everything else as chat, expanding {color} tags from the chat palette.`,
	PersistentPreRunE: initConfig,
	Run:               runShell,
}

// shellCmd is the explicit version of the default behavior
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive chat console",
	Run:   runShell,
}

// execCmd dispatches a single command line and exits
var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run one command line, e.g. 'exec help list'",
	Args:  cobra.MinimumNArgs(1),
	Run:   runExec,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		line := version.GetFormattedVersion(cfg.Name)
		if version.IsDevelopment() {
			line += " (development build)"
		}
		fmt.Println(line)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.Bool(config.KeyTestMode, false, "Run in deterministic test mode")
	flags.Bool(config.KeyNoColor, false, "Disable ANSI colors")
	flags.String(config.KeyPalette, "", "Load the chat palette from a YAML file")
	flags.String(config.KeyName, "ColorSay", "Plugin name shown in chat tags")
	flags.String(config.KeyUser, "console", "Display name of the local chat session")

	for _, key := range []string{
		config.KeyLogLevel, config.KeyLogFile, config.KeyTestMode, config.KeyNoColor,
		config.KeyPalette, config.KeyName, config.KeyUser,
	} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig(_ *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	var err error
	cfg, err = config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, cfg.TestMode); err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}
	if err := version.ValidateVersion(); err != nil {
		logger.Warn("Version is not semantic", "error", err)
	}
	return nil
}

func newConsole() *console.Console {
	palette, err := cfg.Palette()
	if err != nil {
		logger.Fatal("Failed to load palette", "error", err)
	}

	return console.New(os.Stdout, console.Options{
		Name:    cfg.Name,
		Version: version.GetBaseVersion(),
		User:    cfg.User,
		Palette: palette,
		Plain:   cfg.NoColor || cfg.TestMode,
	})
}

func runShell(_ *cobra.Command, _ []string) {
	logger.Info("Starting console", "name", cfg.Name, "version", version.GetVersion())

	c := newConsole()
	c.Run(version.GetFormattedVersion(cfg.Name))
}

func runExec(_ *cobra.Command, args []string) {
	c := newConsole()
	c.ProcessArgs(args)
}
