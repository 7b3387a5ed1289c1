/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/root31/nursery/internal/iofs"
	"github.com/root31/nursery/internal/iologger"
	app "github.com/root31/nursery/pkg"
	"github.com/root31/nursery/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns a new root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "nursery",
		Short:   "Nursery keeps plant stock and suppliers and raises alerts",
		Long: `Nursery tracks the plant inventory of a nursery and its suppliers.

After every change it derives alerts:
  - CRITICAL when a plant is out of stock
  - LOW when stock is below the threshold (5 by default)
  - GREENHOUSE when plants need a greenhouse from October to May
  - MISSING_SUPPLIER when a plant has no supplier assigned

Data is kept in plants.json and suppliers.json (or one SQLite file)
under ~/.local/share/nursery/data.

Configuration precedence (highest to lowest):
  1. CLI flags (--backend, --data-dir, --threshold)
  2. Environment variables (NURSERY_*)
  3. Config file (~/.config/nursery/config.yaml)
  4. Built-in defaults

Use 'nursery shell' to run several commands in one session. Alerts
about greenhouse changes and missing suppliers stay visible there until
they are resolved.`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "nursery version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for nursery")

	pf := rootCmd.PersistentFlags()
	pf.StringP("backend", "b", "", "data store backend: json or sqlite")
	pf.StringP("data-dir", "d", "", "directory with collection files")
	pf.IntP("threshold", "t", 0, "quantity below which stock is low")

	addSessionCmds(rootCmd)
	rootCmd.AddCommand(getConfigCmd(), getShellCmd())

	return rootCmd
}

// addSessionCmds attaches commands that work with nursery data. They are
// shared by the command line and the shell.
func addSessionCmds(cmd *cobra.Command) {
	cmd.AddCommand(
		getPlantCmd(),
		getSupplierCmd(),
		getAlertsCmd(),
		getStatusCmd(),
	)
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	opts = append(opts, flagOptions(cmd)...)
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"command", cmd.CommandPath(),
	)

	return nil
}

// flagOptions converts changed persistent flags to config options.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()
	if flags.Changed("backend") {
		s, _ := flags.GetString("backend")
		res = append(res, config.OptStoreBackend(s))
	}
	if flags.Changed("data-dir") {
		s, _ := flags.GetString("data-dir")
		res = append(res, config.OptStoreDataDir(s))
	}
	if flags.Changed("threshold") {
		i, _ := flags.GetInt("threshold")
		res = append(res, config.OptAlertsLowStockThreshold(i))
	}
	return res
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute runs the command line and closes the data session afterwards.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	reportError(os.Stderr, err)
	if cErr := closeSession(); cErr != nil {
		gn.PrintErrorMessage(cErr)
		if err == nil {
			err = cErr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("NURSERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Store configuration
	v.BindEnv("store.backend", "NURSERY_STORE_BACKEND")
	v.BindEnv("store.data_dir", "NURSERY_STORE_DATA_DIR")
	v.BindEnv("store.plants_file", "NURSERY_STORE_PLANTS_FILE")
	v.BindEnv("store.suppliers_file", "NURSERY_STORE_SUPPLIERS_FILE")
	v.BindEnv("store.sqlite_file", "NURSERY_STORE_SQLITE_FILE")

	// Alerts configuration
	v.BindEnv("alerts.low_stock_threshold", "NURSERY_ALERTS_LOW_STOCK_THRESHOLD")

	// Log configuration
	v.BindEnv("log.level", "NURSERY_LOG_LEVEL")
	v.BindEnv("log.format", "NURSERY_LOG_FORMAT")
	v.BindEnv("log.destination", "NURSERY_LOG_DESTINATION")

	v.AutomaticEnv()
}
