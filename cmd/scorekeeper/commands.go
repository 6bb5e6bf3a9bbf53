package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cbodonnell/scorekeeper/pkg/log"
	"github.com/cbodonnell/scorekeeper/pkg/version"
	"github.com/spf13/cobra"
)

func newProbeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check that the store accepts writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.tracker.Exists(cmd.Context()))
			return nil
		},
	}
}

func newInitCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the app index if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.tracker.Init(cmd.Context())
		},
	}
}

func newResetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete every game and recreate an empty app index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.tracker.Reset(cmd.Context())
		},
	}
}

func newAppCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "app",
		Short: "Print the app index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.tracker.GetAppData(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), app)
		},
	}
}

func newGamesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List game titles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := c.tracker.ListGames(cmd.Context())
			if err != nil {
				return err
			}
			for _, g := range games {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
}

// gameFlags are shared by create and add-data.
type gameFlags struct {
	gameType   string
	numPlayers int
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.gameType, "type", "wizard", "game type, selects the scoring rules")
	cmd.Flags().IntVarP(&f.numPlayers, "players", "n", 0, "number of players (1-8), defaults to the number of names")
}

func (f *gameFlags) players(names []string) int {
	if f.numPlayers == 0 {
		return len(names)
	}
	return f.numPlayers
}

func newCreateCmd(c *cli) *cobra.Command {
	f := &gameFlags{}
	cmd := &cobra.Command{
		Use:   "create TITLE [PLAYER...]",
		Short: "Create a game and list it in the app index",
		Args:  cobra.RangeArgs(1, 9),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args[1:]
			record, err := c.tracker.CreateGame(cmd.Context(), args[0], f.gameType, f.players(names), names...)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), record)
		},
	}
	f.register(cmd)
	return cmd
}

func newAddTitleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add-title TITLE",
		Short: "Append a title to the app index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.tracker.AddGameTitle(cmd.Context(), args[0])
		},
	}
}

func newAddDataCmd(c *cli) *cobra.Command {
	f := &gameFlags{}
	cmd := &cobra.Command{
		Use:   "add-data TITLE [PLAYER...]",
		Short: "Write a fresh game record without touching the app index",
		Args:  cobra.RangeArgs(1, 9),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args[1:]
			return c.tracker.AddGameData(cmd.Context(), args[0], f.gameType, f.players(names), names...)
		},
	}
	f.register(cmd)
	return cmd
}

func newRemoveTitleCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-title TITLE",
		Short: "Remove a title from the app index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.tracker.RemoveGameTitle(cmd.Context(), args[0])
		},
	}
}

func newRemoveDataCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-data TITLE",
		Short: "Delete a game record without touching the app index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.tracker.RemoveGameData(cmd.Context(), args[0])
		},
	}
}

func newDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete TITLE",
		Short: "Delete a game record and its app index entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.tracker.DeleteGame(cmd.Context(), args[0])
		},
	}
}

func newExistsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "exists TITLE",
		Short: "Report whether a game exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exists, err := c.tracker.GameExists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), exists)
			return nil
		},
	}
}

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show TITLE",
		Short: "Print a game record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.tracker.GetGameData(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), record)
		},
	}
}

func newReconcileCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Rebuild the app index from the stored game records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			added, removed, err := c.tracker.Reconcile(cmd.Context())
			if err != nil {
				return err
			}
			for _, title := range added {
				fmt.Fprintf(cmd.OutOrStdout(), "+ %s\n", title)
			}
			for _, title := range removed {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", title)
			}
			return nil
		},
	}
}

func parseValues(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values[i] = v
	}
	return values, nil
}

func newGuessCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "guess TITLE VALUE...",
		Short: "Record each player's guess for the current round",
		Args:  cobra.RangeArgs(2, 9),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			record, err := c.tracker.RecordGuesses(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "round %d: %s\n", record.Round, record.State)
			return nil
		},
	}
}

func newWonCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "won TITLE VALUE...",
		Short: "Record the sets each player won and score the round",
		Args:  cobra.RangeArgs(2, 9),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			record, err := c.tracker.RecordSetsWon(cmd.Context(), args[0], values)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "round %d: %s\n", record.Round, record.State)
			return nil
		},
	}
}

func newNextRoundCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "next-round TITLE",
		Short: "Start the next round of a scored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.tracker.NextRound(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "round %d: dealer is %s\n", record.Round, record.PlayerName(record.Dealer()))
			return nil
		},
	}
}

func newStandingsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "standings TITLE",
		Short: "Print each player's total points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			standings, err := c.tracker.Standings(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, s := range standings {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\n", s.Slot+1, s.Name, s.Points)
			}
			return nil
		},
	}
}

func newExportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write a compressed snapshot of every game to FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create snapshot: %w", err)
			}
			defer f.Close()

			n, err := c.tracker.Export(cmd.Context(), f)
			if err != nil {
				return err
			}
			log.Info("Exported %d keys to %s", n, args[0])
			return f.Close()
		},
	}
}

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore a snapshot written by export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open snapshot: %w", err)
			}
			defer f.Close()

			n, err := c.tracker.Import(cmd.Context(), f)
			if err != nil {
				return err
			}
			log.Info("Imported %d keys from %s", n, args[0])
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// version needs no store
		PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		},
	}
}
