package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/logging"
)

// rootOptions are shared by every command.
type rootOptions struct {
	ConfigPath string
	EnvFile    string

	cfg *config.Config
}

func (o *rootOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", "config.yaml", "path to config file")
	fs.StringVar(&o.EnvFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

// Complete loads the env file and config and sets up logging.
func (o *rootOptions) Complete() error {
	if err := godotenv.Load(o.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	return nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "lunchly",
		Short:         "Lunchly restaurant reservations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.Complete()
		},
	}
	opts.AddFlags(cmd.PersistentFlags())

	serve := newServeCommand(opts)
	cmd.AddCommand(serve, newMigrateCommand(opts), newRoutesCommand(opts))

	// Running with no subcommand serves
	cmd.RunE = serve.RunE
	cmd.Flags().AddFlagSet(serve.Flags())
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal().Err(err).Msg("lunchly failed")
	}
}
