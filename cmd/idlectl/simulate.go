package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/simulation"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/utils"
)

type simulateOptions struct {
	duration time.Duration
	step     time.Duration
	seed     int64
	from     string
	out      string
}

func newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Fast-forward a greedy run and report the economy",
		Long: `Runs the economy headlessly for --duration in --step increments. After
every step the buyer spends food on whichever affordable unit or upgrade adds
the most food per second per food spent. Bursts and caches use a seeded
random source so runs are reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, opts)
		},
	}

	cmd.Flags().DurationVarP(&opts.duration, "duration", "d", time.Hour, "Simulated play time")
	cmd.Flags().DurationVarP(&opts.step, "step", "s", time.Second, "Simulation step")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Random seed for bursts and caches")
	cmd.Flags().StringVarP(&opts.from, "from", "f", "", "Start from a save file instead of a fresh run")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the final state as a save file")
	return cmd
}

func runSimulate(cmd *cobra.Command, opts *simulateOptions) error {
	if opts.duration <= 0 {
		return fmt.Errorf("duration must be positive, got %s", opts.duration)
	}
	if opts.step <= 0 || opts.step > opts.duration {
		return fmt.Errorf("step must be in (0, %s], got %s", opts.duration, opts.step)
	}

	start := time.Now()
	var state *domain.GameState
	if opts.from != "" {
		ls, err := loadSaveFile(cmd.InOrStdin(), opts.from)
		if err != nil {
			return err
		}
		state = ls.state
		state.LastTickAt = start.UnixMilli()
	}

	game := simulation.NewGame(state, start, simulation.WithRandom(utils.SeededRandom(opts.seed)))
	report := game.Autoplay(opts.duration, opts.step)

	w := cmd.OutOrStdout()
	printTitle(cmd, "🐒 Greedy simulation")
	printer.Fprintf(w, "Simulated %s in %d steps (seed %d)\n\n", opts.duration, report.Steps, opts.seed)

	printUnits(w, game.Snapshot(), report.UnitsBought)
	printReport(w, game, report)

	if opts.out != "" {
		raw, err := game.Export(time.UnixMilli(game.State().LastTickAt))
		if err != nil {
			return err
		}
		if err := utils.WriteFileAtomic(opts.out, []byte(raw), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.out, err)
		}
		color.New(color.FgGreen).Fprintf(w, "\n✓ Saved final state to %s\n", opts.out)
	}
	return nil
}

func printUnits(w io.Writer, snap domain.Snapshot, bought map[domain.UnitType]int) {
	title := cases.Title(language.English)
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Unit", "Count", "Bought", "Next Price", "Output/s", "Milestone"}),
	)
	for _, u := range snap.Units {
		row := []string{
			u.Emoji + " " + title.String(string(u.Type)),
			printer.Sprintf("%d", u.Count),
			printer.Sprintf("%d", bought[u.Type]),
			utils.FormatAmount(u.NextPrice),
			utils.FormatAmount(u.Output),
			fmt.Sprintf("x%.2f", u.Milestone),
		}
		table.Append(row)
	}
	table.Render()
}

func printReport(w io.Writer, game *simulation.Game, report simulation.AutoplayReport) {
	state := game.State()
	fmt.Fprintln(w, "\n📊 Summary:")
	fmt.Fprintf(w, "   Food:            %s\n", utils.FormatAmount(state.Food))
	fmt.Fprintf(w, "   Rate:            %s\n", utils.FormatRate(game.Rate()))
	fmt.Fprintf(w, "   Total produced:  %s\n", utils.FormatAmount(state.TotalProduced))
	fmt.Fprintf(w, "   Food spent:      %s\n", utils.FormatAmount(report.FoodSpent))
	printer.Fprintf(w, "   Bursts:          %d (%s food incl. caches)\n", report.Bursts, utils.FormatAmount(report.BonusFood))
	printer.Fprintf(w, "   Caches:          %d\n", report.Caches)
	printer.Fprintf(w, "   Prestige gain:   %d relics\n", game.PrestigeGain())

	if len(report.UpgradesOwned) > 0 {
		fmt.Fprintln(w, "\n⬆️  Upgrades:")
		for _, id := range report.UpgradesOwned {
			upg, _ := domain.LookupUpgrade(id)
			fmt.Fprintf(w, "   %s\n", upg.Name)
		}
	}

	if len(report.Timeline) > 0 {
		fmt.Fprintln(w, "\n⏱️  First purchases:")
		for _, m := range report.Timeline {
			fmt.Fprintf(w, "   %-9s at %s\n", m.Unit, m.Elapsed)
		}
	}
}
