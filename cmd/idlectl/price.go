package main

import (
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/domain"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/economy"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/utils"
)

func newPriceCmd() *cobra.Command {
	var (
		have int
		food float64
		mode string
		rows int
	)
	cmd := &cobra.Command{
		Use:   "price <unit>",
		Short: "Quote unit prices from the balance table",
		Long: `Prices a purchase of <unit> (monkey, zebra, gorilla, elephant, parrot)
for a given owned count and food budget, then lists the next single-unit
prices.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := domain.UnitType(args[0])
			spec, ok := domain.LookupUnit(unit)
			if !ok {
				return fmt.Errorf("%w: %q", domain.ErrUnknownUnit, args[0])
			}
			buyMode, err := economy.ParseBuyMode(mode)
			if err != nil {
				return err
			}
			if have < 0 || food < 0 {
				return fmt.Errorf("--have and --food must not be negative")
			}

			state := domain.NewGameState(time.Now())
			state.Units[unit].Count = have
			state.Food = food

			quote, err := economy.Quote(state, unit, buyMode)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printTitle(cmd, spec.Emoji+" "+spec.Name+" prices")
			printer.Fprintf(w, "   Owned:          %d\n", have)
			fmt.Fprintf(w, "   Budget:         %s\n", utils.FormatAmount(food))
			printer.Fprintf(w, "   Buy %-4s ->     %d for %s", string(buyMode), quote.Quantity, utils.FormatAmount(quote.Price))
			if quote.Price > food {
				fmt.Fprint(w, " (unaffordable)")
			}
			fmt.Fprintln(w)
			printer.Fprintf(w, "   Max affordable: %d\n\n", economy.MaxAffordable(have, spec.BaseCost, spec.Growth, food))

			table := tablewriter.NewTable(w,
				tablewriter.WithHeader([]string{"#", "Price", "Cumulative"}),
			)
			for i := 0; i < rows; i++ {
				table.Append([]string{
					printer.Sprintf("%d", have+i+1),
					utils.FormatAmount(economy.Cost(have+i, 1, spec.BaseCost, spec.Growth)),
					utils.FormatAmount(economy.Cost(have, i+1, spec.BaseCost, spec.Growth)),
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&have, "have", 0, "Units already owned")
	cmd.Flags().Float64Var(&food, "food", 0, "Food available")
	cmd.Flags().StringVarP(&mode, "mode", "m", string(domain.BuyOne), "Buy mode: 1, 10, 100 or max")
	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of upcoming prices to list")
	return cmd
}
