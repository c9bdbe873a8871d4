package main

import (
	"strconv"

	"github.com/spf13/cobra"

	domaingames "github.com/preston-bernstein/nba-highlights-service/internal/domain/games"
)

func newGamesCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List completed games for the tracked team, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := ctx.components.Games.CompletedGames(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && len(games) > limit {
				games = games[:limit]
			}

			if ctx.jsonOutput {
				return writeJSON(cmd, domaingames.GamesResponse{
					TeamID: ctx.cfg.TrackedTeamID,
					Season: ctx.cfg.Season,
					Games:  games,
				})
			}

			rows := make([][]string, 0, len(games))
			for _, g := range games {
				opp := g.Opponent(ctx.cfg.TrackedTeamID)
				rows = append(rows, []string{
					g.ID,
					g.Date,
					opp.Tricode,
					strconv.Itoa(g.Score.Away) + "-" + strconv.Itoa(g.Score.Home),
				})
			}
			return renderTable(cmd.OutOrStdout(), []string{"GAME", "DATE", "OPP", "SCORE (A-H)"}, rows)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many games")
	return cmd
}
