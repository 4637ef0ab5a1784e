package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/nova/internal/application/event"
	"github.com/younwookim/nova/internal/application/replay"
	"github.com/younwookim/nova/internal/application/session"
	"github.com/younwookim/nova/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play a recording back headless",
	Long: `Run a recording made with --record through the simulation without a
window and print where the session ended. The recording's seed and
starting level are used; --seed and --level are ignored.

Examples:
  nova replay run.json
  nova replay run.json --assets ./cmd/nova/configs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runReplay(cmd.OutOrStdout(), args[0], loader, cfg, newLogger())
	},
}

func runReplay(w io.Writer, path string, loader *config.Loader, cfg *config.GameConfig, logger *log.Logger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	if data.Version != replay.FormatVersion {
		logger.Warn("recording format differs", "file", path, "version", data.Version, "want", replay.FormatVersion)
	}

	res := replay.Run(*data, session.Options{
		Config: cfg,
		Loader: loader,
		Logger: logger,
	})
	printSummary(w, data, res)
	return nil
}

func printSummary(w io.Writer, data *replay.ReplayData, res replay.Result) {
	fmt.Fprintf(w, "seed:       %d\n", data.Seed)
	fmt.Fprintf(w, "frames:     %d (%d simulated ticks)\n", res.Frames, res.Ticks)
	fmt.Fprintf(w, "level:      %d -> %d\n", data.StartLevel, res.Level)
	fmt.Fprintf(w, "state:      %s\n", res.State)
	fmt.Fprintf(w, "hp:         %d\n", res.HP)
	fmt.Fprintf(w, "pieces:     %d\n", res.Pieces)
	fmt.Fprintf(w, "memories:   %d\n", res.Flashbacks)

	kinds := make([]event.Kind, 0, len(res.Events))
	for k := range res.Events {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Fprintf(w, "event %-20s %d\n", k.String()+":", res.Events[k])
	}
}
