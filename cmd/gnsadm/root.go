package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gnsadm/internal/ioconfig"
	"gnsadm/internal/iofs"
	"gnsadm/internal/iologger"
	"gnsadm/pkg/config"
	"gnsadm/pkg/gnsadm"
)

var (
	homeDir string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gnsadm.Version, gnsadm.Build),
		Use:   "gnsadm",
		Short: "gnsadm processes GEOnet administrative divisions",
		Long: `gnsadm ingests the GEOnet Names Server administrative-regions
extract, keeps official administrative divisions (ADM1-ADM4, ADMD),
collapses name variants down to one canonical name per geographic
feature, joins country metadata, and writes a multi-sheet Excel report.

Commands:
  process  run the pipeline and write the report workbook
  split    export the report into one workbook per country
  query    look up divisions by country, level or name

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNSADM_*)
  3. Config file (~/.config/gnsadm/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Consistent with other gn projects.
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for gnsadm")

	rootCmd.AddCommand(getProcessCmd())
	rootCmd.AddCommand(getSplitCmd())
	rootCmd.AddCommand(getQueryCmd())

	return rootCmd
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

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured once the user's config is loaded.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ioconfig.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with the user's settings.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, ioconfig.ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, ioconfig.ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed. These match the fields included in
	// config.ToOptions() - i.e., persistent configuration that can be
	// stored in config.yaml.
	v.SetEnvPrefix("GNSADM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.countries_file", "INPUT_COUNTRIES_FILE")
	v.BindEnv("input.regions_file", "INPUT_REGIONS_FILE")

	// Report configuration
	v.BindEnv("report.file", "REPORT_FILE")
	v.BindEnv("report.top_countries", "REPORT_TOP_COUNTRIES")

	// Split configuration
	v.BindEnv("split.dir", "SPLIT_DIR")

	// Dedup policy
	v.BindEnv("dedup.display_policy", "DEDUP_DISPLAY_POLICY")
	v.BindEnv("dedup.priority_languages", "DEDUP_PRIORITY_LANGUAGES")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}
