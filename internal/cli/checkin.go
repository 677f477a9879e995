package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Argeon482/Pet-Farm/internal/core/briefing"
	"github.com/Argeon482/Pet-Farm/internal/core/completion"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

func newBriefingCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "briefing",
		Aliases: []string{"b"},
		Short:   "Show due and upcoming tasks for this check-in",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := deps.Service
			b := svc.Briefing()
			if ok, err := tryJSON(cmd, b); ok {
				return err
			}

			out := cmd.OutOrStdout()
			header(cmd, "Check-in briefing")
			fmt.Fprintln(out, nowLine(deps))
			fmt.Fprintf(out, "Next check-in: %s (in %s)\n\n",
				b.NextCheckin.Format("Mon 15:04"), formatDuration(b.NextCheckin.Sub(svc.Now())))

			if len(b.Due) == 0 {
				PrintSuccess(out, "Nothing due right now")
			} else {
				fmt.Fprintf(out, "Due now (%d), complete top to bottom:\n", len(b.Due))
				w := newTable(out)
				for _, t := range b.Due {
					fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
						stateDot(svc.TaskState(t.Key())), t.Key(), t.ServiceBlock, t.CurrentPet, t.Description)
				}
				w.Flush()
			}

			blocks, grouped := b.UpcomingByBlock()
			if len(blocks) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Finishing before next check-in:")
				for _, block := range blocks {
					fmt.Fprintf(out, "  %s\n", mutedStyle.Render(blockLabel(block)))
					w := newTable(out)
					for _, t := range grouped[block] {
						fmt.Fprintf(w, "    %s\t%s\t%s\t%s\n",
							t.Key(), t.CurrentPet, t.FinishAt.Format("15:04"), t.Description)
					}
					w.Flush()
				}
			}
			return nil
		},
	}
}

func newCompleteCmd(deps *Dependencies) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "complete [task-key]",
		Short: "Complete the active due task",
		Long: `Complete a due task from the briefing. Tasks must be completed in
briefing order; with no key the active task is completed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := deps.Service
			var keys []string
			switch {
			case len(args) == 1:
				if _, _, err := domain.ParseTaskKey(args[0]); err != nil {
					return err
				}
				keys = []string{args[0]}
			case all:
				for _, t := range svc.Briefing().Due {
					keys = append(keys, t.Key())
				}
			default:
				task, ok := svc.ActiveTask()
				if !ok {
					PrintSuccess(cmd.OutOrStdout(), "No due tasks")
					return nil
				}
				keys = []string{task.Key()}
			}

			type completed struct {
				Task      string `json:"task"`
				Applied   bool   `json:"applied"`
				Placement string `json:"placement"`
				House     int    `json:"placedHouse,omitempty"`
				Slot      int    `json:"placedSlot,omitempty"`
				Restocked bool   `json:"restocked"`
			}
			var results []completed
			for _, key := range keys {
				task, _ := svc.Briefing().FindDue(key)
				res, err := svc.CompleteTask(key)
				if err != nil {
					return err
				}
				c := completed{Task: key, Applied: res.Applied, Placement: res.Placement.String(), Restocked: res.Restocked}
				if res.Placement == completion.PlacementSlot {
					c.House, c.Slot = res.PlacedHouse, res.PlacedSlot+1
				}
				results = append(results, c)
				if jsonFlag, _ := cmd.Flags().GetBool("json"); !jsonFlag {
					printCompletion(cmd, task, res)
				}
			}

			if ok, err := tryJSON(cmd, results); ok {
				return err
			}
			done, total := svc.Progress()
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf("%d/%d tasks done", done, total)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Complete every due task in order")
	return cmd
}

func printCompletion(cmd *cobra.Command, task domain.Task, res completion.Result) {
	out := cmd.OutOrStdout()
	if !res.Applied {
		PrintWarning(out, fmt.Sprintf("%s changed since the briefing, skipped", task.Key()))
		return
	}
	var where string
	switch res.Placement {
	case completion.PlacementCollected:
		where = "S-Pet collected"
	case completion.PlacementSlot:
		where = fmt.Sprintf("%s started in house %d slot %d", task.OutputRank.PetName(), res.PlacedHouse, res.PlacedSlot+1)
	case completion.PlacementQueued:
		where = fmt.Sprintf("%s queued in warehouse", task.OutputRank.PetName())
	}
	msg := fmt.Sprintf("%s done: %s", task.Key(), where)
	if res.Restocked {
		msg += ", slot restocked"
	}
	PrintSuccess(out, msg)
}

func newStatusCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show alerts, the next finishing pet and balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := deps.Service
			st := svc.State()
			alerts := svc.Alerts()
			next, hasNext := svc.NextAction()
			done, total := svc.Progress()

			if ok, err := tryJSON(cmd, map[string]interface{}{
				"now":        svc.Now(),
				"statePath":  deps.StatePath,
				"houses":     len(st.Houses),
				"cash":       st.Cash,
				"collected":  st.Collected,
				"alerts":     alerts,
				"nextAction": nextOrNil(next, hasNext),
				"dueDone":    done,
				"dueTotal":   total,
			}); ok {
				return err
			}

			out := cmd.OutOrStdout()
			header(cmd, "Farm status")
			fmt.Fprintln(out, nowLine(deps))
			fmt.Fprintf(out, "State:  %s\n", mutedStyle.Render(deps.StatePath))
			fmt.Fprintf(out, "Houses: %d   Cash: %s   Due: %d/%d done\n",
				len(st.Houses), moneyStyle.Render(formatMoney(st.Cash)), done, total)
			fmt.Fprintf(out, "Collected: %s\n", formatCollected(st.Collected))

			if hasNext {
				fmt.Fprintf(out, "Next: house %d slot %d %s finishes %s (in %s)\n",
					next.HouseID, next.Slot+1, next.Rank.PetName(), next.At.Format("Mon 15:04"),
					formatDuration(next.At.Sub(svc.Now())))
			} else {
				fmt.Fprintln(out, mutedStyle.Render("Nothing training"))
			}

			fmt.Fprintln(out)
			if len(alerts) == 0 {
				PrintSuccess(out, "No alerts")
			}
			for _, a := range alerts {
				PrintWarning(out, a.Message)
			}
			return nil
		},
	}
}

func newProfitCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "profit",
		Short: "Project weekly profit for the current layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := deps.Service.Profit()
			if ok, err := tryJSON(cmd, p); ok {
				return err
			}
			st := deps.Service.State()
			header(cmd, "Weekly projection")
			fmt.Fprintf(cmd.OutOrStdout(), "Check-ins: %s\n\n", scheduleLabel(st.Checkins))
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "S-Pets per week\t%.2f\n", p.SPetsPerWeek)
			fmt.Fprintf(w, "Gross revenue\t%s\n", formatMoney(p.GrossRevenue))
			fmt.Fprintf(w, "NPC expenses\t%s\n", formatMoney(p.NPCExpenses))
			fmt.Fprintf(w, "Perfection expenses\t%s\n", formatMoney(p.PerfectionExpenses))
			fmt.Fprintf(w, "Net profit\t%s\n", signedMoney(p.NetProfit))
			return w.Flush()
		},
	}
}

func newCompareCmd(deps *Dependencies) *cobra.Command {
	var hours string
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a check-in schedule with the recommended one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user := deps.Service.State().Checkins
			if cmd.Flags().Changed("hours") {
				parsed, err := domain.ParseSchedule(hours)
				if err != nil {
					return err
				}
				user = parsed
			}
			cmp := deps.Service.Compare(user)
			if ok, err := tryJSON(cmd, cmp); ok {
				return err
			}

			header(cmd, "Schedule comparison")
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "\tYours (%s)\tRecommended (%s)\tDifference\n",
				scheduleLabel(user), domain.Schedule(domain.DefaultCheckinHours))
			fmt.Fprintf(w, "S-Pets per week\t%.2f\t%.2f\t%+.2f\n",
				cmp.User.SPetsPerWeek, cmp.Ideal.SPetsPerWeek, cmp.Difference.SPetsPerWeek)
			fmt.Fprintf(w, "Gross revenue\t%s\t%s\t%s\n",
				formatMoney(cmp.User.GrossRevenue), formatMoney(cmp.Ideal.GrossRevenue), signedMoney(cmp.Difference.GrossRevenue))
			fmt.Fprintf(w, "Net profit\t%s\t%s\t%s\n",
				formatMoney(cmp.User.NetProfit), formatMoney(cmp.Ideal.NetProfit), signedMoney(cmp.Difference.NetProfit))
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&hours, "hours", "", "Check-in hours to evaluate, e.g. 8,20 (default: current schedule)")
	return cmd
}

func stateDot(s briefing.TaskState) string {
	switch s {
	case briefing.TaskCompleted:
		return okDot.String()
	case briefing.TaskActive:
		return warnDot.String()
	default:
		return dotStyle.String()
	}
}

func blockLabel(block string) string {
	if block == "" {
		return "Unassigned"
	}
	return block
}

func scheduleLabel(s domain.Schedule) string {
	if len(s) == 0 {
		return "none"
	}
	return s.String()
}

func formatCollected(c domain.Collection) string {
	if len(c) == 0 {
		return mutedStyle.Render("none")
	}
	parts := make([]string, 0, len(c))
	for _, p := range c {
		parts = append(parts, fmt.Sprintf("%d %s", p.Quantity, p.Rank.PetName()))
	}
	return strings.Join(parts, ", ")
}

func nextOrNil(a interface{}, ok bool) interface{} {
	if !ok {
		return nil
	}
	return a
}
