package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cbodonnell/scorekeeper/pkg/config"
	"github.com/cbodonnell/scorekeeper/pkg/kv"
	"github.com/cbodonnell/scorekeeper/pkg/log"
	"github.com/cbodonnell/scorekeeper/pkg/tracker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the state shared by every subcommand for one invocation.
type cli struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	store      kv.Store
	tracker    *tracker.Tracker
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.New()}

	root := &cobra.Command{
		Use:           "scorekeeper",
		Short:         "Track card game sessions in a key/value store",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd.Context(), cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.teardown(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (default ./scorekeeper.yaml if present)")
	flags.String("store", "memory://", "store dsn: memory://, sqlite://<path>, bolt://<path>, postgres://...")
	flags.String("prefix", "", "namespace prefix for every key")
	flags.String("log-level", "info", "log level: error, warn, info, debug, trace")
	c.v.BindPFlag(config.KeyStore, flags.Lookup("store"))
	c.v.BindPFlag(config.KeyPrefix, flags.Lookup("prefix"))
	c.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		newProbeCmd(c),
		newInitCmd(c),
		newResetCmd(c),
		newAppCmd(c),
		newGamesCmd(c),
		newCreateCmd(c),
		newAddTitleCmd(c),
		newAddDataCmd(c),
		newRemoveTitleCmd(c),
		newRemoveDataCmd(c),
		newDeleteCmd(c),
		newExistsCmd(c),
		newShowCmd(c),
		newReconcileCmd(c),
		newGuessCmd(c),
		newWonCmd(c),
		newNextRoundCmd(c),
		newStandingsCmd(c),
		newExportCmd(c),
		newImportCmd(c),
		newServeCmd(c),
		newVersionCmd(),
	)
	return root
}

func (c *cli) setup(ctx context.Context, logOut io.Writer) error {
	cfg, err := config.Load(c.v, c.configFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	log.SetDefaultLogger(log.New(logOut, "", log.DefaultLoggerFlag, level))
	log.Debug("Log level set to %s", level)

	store, err := kv.Open(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	c.store = store
	c.tracker = tracker.New(store, tracker.WithPrefix(cfg.Prefix))
	return nil
}

func (c *cli) teardown(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	return c.store.Close(ctx)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
