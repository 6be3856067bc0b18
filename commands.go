package main

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe-variants/internal"
	"github.com/rocketscienceinc/tictactoe-variants/internal/game"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the playable variants and their move notation",
	Run: func(cmd *cobra.Command, _ []string) {
		notation := map[game.Variant]string{
			game.Classic:  "cell 0-8",
			game.Decay:    "cell 0-8",
			game.Ultimate: "board:cell, both 0-8",
			game.Quixo:    "cell:direction, edge cell 0-24, up|down|left|right",
		}

		out := cmd.OutOrStdout()
		for _, variant := range game.Variants {
			fmt.Fprintf(out, "  %-9s %s\n", variant, notation[variant])
		}
	},
}

var (
	flagGames int
	flagSeed  int64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [variant]",
	Short: "Play random computer games and print the tally",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := initConfig()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			conf.Simulation.Variant = args[0]
		}
		if cmd.Flags().Changed("games") {
			conf.Simulation.Games = flagGames
		}
		if cmd.Flags().Changed("seed") {
			conf.Simulation.Seed = flagSeed
		}

		if err = conf.Validate(); err != nil {
			return err
		}

		summary, err := app.RunSimulation(cmd.Context(), initLogger(conf), conf)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d games, X %d, O %d, draws %d, abandoned %d\n",
			conf.Simulation.Variant, summary.Games,
			summary.Score.X, summary.Score.O, summary.Score.Draws, summary.Abandoned)

		return nil
	},
}

var playCmd = &cobra.Command{
	Use:   "play <variant> <moves...>",
	Short: "Apply a scripted list of moves and print the board after each",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := initConfig()
		if err != nil {
			return err
		}

		variant, err := game.ParseVariant(args[0])
		if err != nil {
			return err
		}

		moves := make([]game.Move, 0, len(args)-1)
		for _, arg := range args[1:] {
			move, err := app.ParseMove(variant, arg)
			if err != nil {
				return err
			}
			moves = append(moves, move)
		}

		_, err = app.RunScript(cmd.Context(), initLogger(conf), conf, variant, moves, cmd.OutOrStdout())

		return err
	},
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	simulateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}
