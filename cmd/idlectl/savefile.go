package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/save"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/simulation"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/utils"
)

// loadedSave is a decoded save file and what loading had to change
type loadedSave struct {
	raw      string
	state    *domain.GameState
	version  string
	migrated bool
	repaired bool
}

func readRaw(in io.Reader, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func loadSaveFile(in io.Reader, path string) (*loadedSave, error) {
	raw, err := readRaw(in, path)
	if err != nil {
		return nil, err
	}
	state, err := save.Deserialize(raw)
	if err != nil {
		return nil, err
	}
	ls := &loadedSave{raw: raw, state: state, version: state.EconomyVersion}
	ls.migrated = save.Migrate(state)
	ls.repaired = save.Repair(state)
	return ls, nil
}

func newInspectCmd() *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "inspect <save-file|->",
		Short: "Show what a save file contains",
		Long: `Decodes a save file the way the server loads it: migrate the balance
table, repair missing units, and print the resulting run. With --offline the
offline catch-up owed since the save's last tick is shown too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := loadSaveFile(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(cmd, "🦜 Save "+args[0])

			version := ls.version
			if version == "" {
				version = "(legacy)"
			}
			fmt.Fprintf(w, "   Economy version: %s\n", version)
			fmt.Fprintf(w, "   Needs migration: %t\n", ls.migrated)
			fmt.Fprintf(w, "   Needs repair:    %t\n", ls.repaired)
			fmt.Fprintf(w, "   Last saved:      %s\n", time.UnixMilli(ls.state.LastSaveAt).UTC().Format(time.RFC3339))
			fmt.Fprintf(w, "   Last tick:       %s\n", time.UnixMilli(ls.state.LastTickAt).UTC().Format(time.RFC3339))
			printer.Fprintf(w, "   Relics:          %d\n\n", ls.state.Relics)

			lastTick := ls.state.LastTickAt
			game := simulation.NewGame(ls.state, time.Now())
			snap := game.Snapshot()
			printUnits(w, snap, nil)

			fmt.Fprintln(w, "\n📊 Economy:")
			fmt.Fprintf(w, "   Food:           %s\n", snap.FoodDisplay)
			fmt.Fprintf(w, "   Rate:           %s\n", snap.RateDisplay)
			fmt.Fprintf(w, "   Total produced: %s\n", utils.FormatAmount(snap.TotalProduced))
			printer.Fprintf(w, "   Prestige gain:  %d relics\n", snap.PrestigeGain)

			if len(snap.OwnedUpgrades) > 0 {
				fmt.Fprintln(w, "\n⬆️  Owned upgrades:")
				for _, id := range snap.OwnedUpgrades {
					upg, _ := domain.LookupUpgrade(id)
					fmt.Fprintf(w, "   %s\n", upg.Name)
				}
			}
			if len(snap.AvailableUpgrades) > 0 {
				printUpgrades(w, snap.AvailableUpgrades)
			}

			if offline {
				gain := game.Resume(time.Now())
				fmt.Fprintf(w, "\n💤 Offline since %s: %s food (cap %s)\n",
					time.UnixMilli(lastTick).UTC().Format(time.RFC3339),
					utils.FormatAmount(gain),
					time.Duration(simulation.OfflineCapSeconds(game.State()))*time.Second)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "Also compute offline catch-up owed until now")
	return cmd
}

func printUpgrades(w io.Writer, upgrades []domain.Upgrade) {
	fmt.Fprintln(w, "\n🛒 Available upgrades:")
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Cost", "Requires"}),
	)
	for _, u := range upgrades {
		table.Append([]string{
			string(u.ID),
			u.Name,
			utils.FormatAmount(u.Cost),
			printer.Sprintf("%d %s", u.Requires.MinCount, u.Requires.Unit),
		})
	}
	table.Render()
}

func newMigrateCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "migrate <save-file>",
		Short: "Rewrite a save file with the current balance table",
		Long: `Loads a save file, migrates it to the current economy version, repairs
missing units and writes it back atomically. Use --out to write elsewhere and
keep the original. A save already current is left byte-for-byte untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if path == "-" && out == "" {
				return fmt.Errorf("--out is required when reading from stdin")
			}

			ls, err := loadSaveFile(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			target := out
			if target == "" {
				target = path
			}

			w := cmd.OutOrStdout()
			if !ls.migrated && !ls.repaired && target == path {
				color.New(color.FgYellow).Fprintf(w, "%s is already %s, nothing to do\n", path, domain.EconomyVersionCurrent)
				return nil
			}

			raw, err := save.Serialize(ls.state)
			if err != nil {
				return err
			}
			if err := utils.WriteFileAtomic(target, []byte(raw), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}

			color.New(color.FgGreen).Fprintf(w, "✓ Wrote %s (migrated: %t, repaired: %t)\n", target, ls.migrated, ls.repaired)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this path instead of in place")
	return cmd
}
