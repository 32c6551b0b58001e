package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "MODTAGGER"

const appName = "modtagger"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	Catalog    string
	Store      string
	Catalogs   catalogFlags
}

type catalogFlags struct {
	APIKey       string
	TimeoutSec   int
	Retries      int
	RetryDelayMs int
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Match installed mods against a catalog and tag their metadata",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.Catalog, "catalog", "", "Catalog file path or http(s) endpoint")
	flags.StringVar(&cfg.Store, "store", defaultStorePath(), "Installed mod store path")
	flags.StringVar(&cfg.Catalogs.APIKey, "catalog-api-key", "", "Catalog API key")
	flags.IntVar(&cfg.Catalogs.TimeoutSec, "catalog-timeout", 30, "Catalog request timeout in seconds")
	flags.IntVar(&cfg.Catalogs.Retries, "catalog-retries", 3, "Catalog request attempts")
	flags.IntVar(&cfg.Catalogs.RetryDelayMs, "catalog-retry-delay-ms", 200, "Base delay between catalog retries in milliseconds")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("catalog", flags.Lookup("catalog"))
	_ = viper.BindPFlag("store", flags.Lookup("store"))
	_ = viper.BindPFlag("catalog_api_key", flags.Lookup("catalog-api-key"))
	_ = viper.BindPFlag("catalog_timeout", flags.Lookup("catalog-timeout"))
	_ = viper.BindPFlag("catalog_retries", flags.Lookup("catalog-retries"))
	_ = viper.BindPFlag("catalog_retry_delay_ms", flags.Lookup("catalog-retry-delay-ms"))

	cmd.AddCommand(newCandidatesCommand(&cfg))
	cmd.AddCommand(newTagCommand(&cfg))
	cmd.AddCommand(newUpdatesCommand(&cfg))
	cmd.AddCommand(newInspectCommand(&cfg))
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName(appName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, appName))
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func defaultStorePath() string {
	return filepath.Join(xdg.DataHome, appName, "mods.yaml")
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
