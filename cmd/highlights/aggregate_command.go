package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-highlights-service/internal/app/highlights"
	domainhighlights "github.com/preston-bernstein/nba-highlights-service/internal/domain/highlights"
)

type aggregateOutput struct {
	GameID  string                   `json:"gameId"`
	Season  string                   `json:"season"`
	Events  []domainhighlights.Event `json:"events"`
	Summary highlights.Summary       `json:"summary"`
}

func newAggregateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "aggregate <gameId>",
		Short: "Collect full-game and clutch highlight events for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID := strings.TrimSpace(args[0])
			if gameID == "" {
				return fmt.Errorf("game id is required")
			}

			result := ctx.components.Aggregator.Run(cmd.Context(), gameID)
			if result.Summary.Interrupted {
				return cmd.Context().Err()
			}

			if ctx.jsonOutput {
				return writeJSON(cmd, aggregateOutput{
					GameID:  gameID,
					Season:  ctx.cfg.Season,
					Events:  result.Events,
					Summary: result.Summary,
				})
			}

			rows := make([][]string, 0, len(result.Events))
			for _, e := range result.Events {
				video := "-"
				if e.HasVideo() {
					video = e.VideoURL
				}
				rows = append(rows, []string{
					strconv.Itoa(e.EventID),
					"Q" + strconv.Itoa(e.Period),
					string(e.Category),
					e.Description,
					video,
				})
			}
			out := cmd.OutOrStdout()
			if err := renderTable(out, []string{"EVENT", "PERIOD", "CAT", "DESCRIPTION", "VIDEO"}, rows); err != nil {
				return err
			}

			s := result.Summary
			fmt.Fprintf(out, "\nGame: %s  |  Events: %d  |  Full game: %d  |  Clutch: %d  |  Upstream errors: %d/%d  |  %dms\n",
				gameID, s.Events, s.FullGameEvents, s.ClutchEvents, s.UpstreamErrors, s.UpstreamCalls, s.DurationMs)
			if !s.ClutchAvailable {
				fmt.Fprintln(out, "clutch context unavailable, showing full-game events only")
			}
			return nil
		},
	}
}
