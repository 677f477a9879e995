package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Argeon482/Pet-Farm/internal/domain"
)

func newWarehouseCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "warehouse",
		Aliases: []string{"wh"},
		Short:   "Show and edit warehouse stock",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printWarehouse(cmd, deps)
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <item> <stock>",
		Short: "Set the stock of an item (item id or rank letter)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, n, err := parseItemCount(args[0], args[1])
			if err != nil {
				return err
			}
			if err := deps.Service.SetStock(id, n); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s stock set to %d", id, n))
			return nil
		},
	}

	safetyCmd := &cobra.Command{
		Use:   "safety <item> <level>",
		Short: "Set the low-stock threshold of an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, n, err := parseItemCount(args[0], args[1])
			if err != nil {
				return err
			}
			if err := deps.Service.SetSafetyStock(id, n); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s safety stock set to %d", id, n))
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show warehouse stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printWarehouse(cmd, deps)
		},
	}, setCmd, safetyCmd)
	return cmd
}

func printWarehouse(cmd *cobra.Command, deps *Dependencies) error {
	st := deps.Service.State()
	if ok, err := tryJSON(cmd, map[string]interface{}{
		"warehouse": st.Warehouse,
		"collected": st.Collected,
	}); ok {
		return err
	}

	w := newTable(cmd.OutOrStdout())
	fmt.Fprintln(w, "ITEM\tNAME\tSTOCK\tSAFETY\t")
	for _, item := range st.Warehouse {
		flag := ""
		if item.BelowSafety() {
			flag = warnDot.String() + " low"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", item.ID, item.Name, item.Stock, item.SafetyStock, flag)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nCollected: %s\n", formatCollected(st.Collected))
	return nil
}

// parseItemCount accepts a warehouse item id or the rank letter it feeds
func parseItemCount(item, count string) (string, int, error) {
	id := item
	if r, err := domain.ParseRank(item); err == nil && r.IsNPC() {
		id = domain.FeedItemID(r)
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidArgument, count)
	}
	return id, n, nil
}

func newSellCmd(deps *Dependencies) *cobra.Command {
	var price float64
	cmd := &cobra.Command{
		Use:   "sell <rank> <quantity>",
		Short: "Sell collected pets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := domain.ParseRank(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q is not a quantity", domain.ErrInvalidArgument, args[1])
			}
			sale, err := deps.Service.SellPets(rank, qty, price)
			if err != nil {
				return err
			}
			if ok, err := tryJSON(cmd, sale); ok {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Sold %d %s at %s for %s. Cash: %s",
				sale.Quantity, sale.Rank.PetName(), formatMoney(sale.PricePerUnit), formatMoney(sale.Total),
				formatMoney(deps.Service.State().Cash)))
			return nil
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "Unit price (default: configured price)")
	return cmd
}

func newSalesCmd(deps *Dependencies) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "List recorded sales, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sales := deps.Service.State().Sales
			if limit > 0 && len(sales) > limit {
				sales = sales[:limit]
			}
			if ok, err := tryJSON(cmd, sales); ok {
				return err
			}
			if len(sales) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sales yet")
				return nil
			}
			var total float64
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "WHEN\tPET\tQTY\tUNIT\tTOTAL")
			for _, s := range sales {
				total += s.Total
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					s.Timestamp.Format("2006-01-02 15:04"), s.Rank.PetName(), s.Quantity,
					formatMoney(s.PricePerUnit), formatMoney(s.Total))
			}
			fmt.Fprintf(w, "\t\t\t\t%s\n", moneyStyle.Render(formatMoney(total)))
			return w.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most n sales")
	return cmd
}

func newPerfectCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "perfect",
		Short: "Spend one S-Pet on a perfection attempt at the champion house",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := deps.Service.AttemptPerfection()
			if err != nil {
				return err
			}
			if ok, err := tryJSON(cmd, h); ok {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Perfection attempt %d at house %d, %d S-Pets left",
				h.PerfectionAttempts, h.ID, deps.Service.State().Collected.Quantity(domain.RankS)))
			return nil
		},
	}
}

func newPricesCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show and edit market prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := deps.Service.State().Prices
			if ok, err := tryJSON(cmd, p); ok {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			for _, r := range domain.AllRanks {
				fmt.Fprintf(w, "%s\t%s\n", r.PetName(), formatMoney(p.Price(r)))
			}
			fmt.Fprintf(w, "7-day NPC\t%s\n", formatMoney(p.NPCCost7Day))
			fmt.Fprintf(w, "15-day NPC\t%s\n", formatMoney(p.NPCCost15Day))
			return w.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <rank> <price>",
		Short: "Set the unit price of a rank",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, err := domain.ParseRank(args[0])
			if err != nil {
				return err
			}
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("%w: %q is not a price", domain.ErrInvalidArgument, args[1])
			}
			if err := deps.Service.SetPrice(rank, price); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s price set to %s", rank.PetName(), formatMoney(price)))
			return nil
		},
	}, &cobra.Command{
		Use:   "npc <7-day cost> <15-day cost>",
		Short: "Set NPC hiring costs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c7, err7 := strconv.ParseFloat(args[0], 64)
			c15, err15 := strconv.ParseFloat(args[1], 64)
			if err7 != nil || err15 != nil {
				return fmt.Errorf("%w: costs must be numbers", domain.ErrInvalidArgument)
			}
			if err := deps.Service.SetNPCCosts(c7, c15); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("NPC costs set to %s / %s", formatMoney(c7), formatMoney(c15)))
			return nil
		},
	})
	return cmd
}

func newCashCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cash [amount]",
		Short: "Show or set the cash balance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("%w: %q is not an amount", domain.ErrInvalidArgument, args[0])
				}
				if err := deps.Service.SetCash(v); err != nil {
					return err
				}
			}
			cash := deps.Service.State().Cash
			if ok, err := tryJSON(cmd, map[string]float64{"cash": cash}); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cash: %s\n", moneyStyle.Render(formatMoney(cash)))
			return nil
		},
	}
	return cmd
}
