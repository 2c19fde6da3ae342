package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"sagelink/internal/logging"
	"sagelink/internal/state"
)

func newStatusCommand(cmdCtx *commandContext) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the tracked artifact snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := state.Open(cfg, logging.NewNop())
			if err != nil {
				return fmt.Errorf("open state store: %w", err)
			}
			defer store.Close()

			snapshot, err := store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load snapshot: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "State database: %s\n", store.Path())
			fmt.Fprintf(out, "Tracked artifacts: %d\n", len(snapshot))
			if len(snapshot) == 0 {
				return nil
			}

			ids := make([]string, 0, len(snapshot))
			for id := range snapshot {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			const previewLimit = 25
			shown := ids
			if !showAll && len(ids) > previewLimit {
				shown = ids[:previewLimit]
			}

			rows := make([][]string, 0, len(shown))
			for _, id := range shown {
				artifact := snapshot[id]
				rows = append(rows, []string{id, artifact.FilenameBase, artifact.SourcePath})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Base", "Source"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))
			if len(shown) < len(ids) {
				fmt.Fprintf(out, "... and %d more (use --all to list everything)\n", len(ids)-len(shown))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "List every tracked artifact")
	return cmd
}
