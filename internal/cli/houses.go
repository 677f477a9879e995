package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Argeon482/Pet-Farm/internal/core/completion"
	"github.com/Argeon482/Pet-Farm/internal/domain"
)

func newHousesCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "houses",
		Aliases: []string{"house", "h"},
		Short:   "List and edit houses",
	}
	cmd.AddCommand(
		newHousesListCmd(deps),
		newHousesAddCmd(deps),
		newHousesRemoveCmd(deps),
		newHousesResetCmd(deps),
		newHousesClearCmd(deps),
		newHousesDivisionCmd(deps),
	)
	return cmd
}

func newHousesListCmd(deps *Dependencies) *cobra.Command {
	var division string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List houses with their slots",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			houses := deps.Service.State().Houses
			if division != "" {
				d, err := domain.ParseDivision(division)
				if err != nil {
					return err
				}
				filtered := houses[:0]
				for _, h := range houses {
					if h.Division == d {
						filtered = append(filtered, h)
					}
				}
				houses = filtered
			}
			if ok, err := tryJSON(cmd, houses); ok {
				return err
			}
			if len(houses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No houses. Add some with: petfarm houses add <template>")
				return nil
			}

			now := deps.Service.Now()
			blocks := deps.Service.Blocks()
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "HOUSE\tBLOCK\tSLOT\tNPC\tPET\tPROGRESS\tFINISH\tNPC EXPIRES")
			for _, h := range houses {
				for i, s := range h.Slots {
					label := ""
					if i == 0 {
						label = strconv.Itoa(h.ID)
					}
					block := ""
					if i == 0 {
						block = blocks[h.ID]
					}
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
						label, block, i+1, npcLabel(s.NPC), petLabel(s.Pet),
						petProgress(s.Pet, now), finishLabel(s.Pet, now), expiryLabel(s.NPC, now))
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&division, "division", "", "Only list one division (Champion, Nursery, Factory)")
	return cmd
}

func newHousesAddCmd(deps *Dependencies) *cobra.Command {
	var qty int
	templates := make([]string, len(domain.Templates))
	for i, t := range domain.Templates {
		templates[i] = string(t)
	}
	cmd := &cobra.Command{
		Use:   "add <template>",
		Short: "Add houses from a template",
		Long:  "Add houses from a template: " + strings.Join(templates, ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := domain.ParseTemplate(args[0])
			if err != nil {
				return err
			}
			added, err := deps.Service.AddHouses(tmpl, qty)
			if err != nil {
				return err
			}
			if ok, err := tryJSON(cmd, added); ok {
				return err
			}
			ids := make([]string, len(added))
			for i, h := range added {
				ids[i] = strconv.Itoa(h.ID)
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Added %d %s house(s): %s", len(added), tmpl, strings.Join(ids, ", ")))
			return nil
		},
	}
	cmd.Flags().IntVarP(&qty, "count", "n", 1, "Number of houses to add")
	return cmd
}

func newHousesRemoveCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <house>",
		Aliases: []string{"rm"},
		Short:   "Remove a house",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHouse(args[0])
			if err != nil {
				return err
			}
			if err := deps.Service.RemoveHouse(id); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Removed house %d", id))
			return nil
		},
	}
}

func newHousesResetCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <house>",
		Short: "Empty every slot of a house",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHouse(args[0])
			if err != nil {
				return err
			}
			if err := deps.Service.ResetHouse(id); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Reset house %d", id))
			return nil
		},
	}
}

func newHousesClearCmd(deps *Dependencies) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every house",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to remove all houses without --yes")
			}
			if err := deps.Service.ClearHouses(); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), "Removed all houses")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm removal")
	return cmd
}

func newHousesDivisionCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "division <house> <Champion|Nursery|Factory>",
		Short: "Move a house to another division",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseHouse(args[0])
			if err != nil {
				return err
			}
			d, err := domain.ParseDivision(args[1])
			if err != nil {
				return err
			}
			if err := deps.Service.SetDivision(id, d); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("House %d is now %s (%s)", id, d, deps.Service.Blocks()[id]))
			return nil
		},
	}
}

func newNPCCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "npc",
		Short: "Assign and configure slot NPCs",
	}

	setCmd := &cobra.Command{
		Use:   "set <house> <slot> <rank|none>",
		Short: "Assign an NPC rank to a slot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			house, slot, err := parseHouseSlot(args[0], args[1])
			if err != nil {
				return err
			}
			rank, err := domain.ParseRank(args[2])
			if err != nil {
				return err
			}
			if err := deps.Service.SetNPC(house, slot, rank); err != nil {
				return err
			}
			if rank == domain.RankNone {
				PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Cleared NPC of house %d slot %d", house, slot+1))
			} else {
				PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("House %d slot %d: %s-NPC", house, slot+1, rank))
			}
			return nil
		},
	}

	durationCmd := &cobra.Command{
		Use:   "duration <house> <slot> <7|15>",
		Short: "Set an NPC lifetime in days",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			house, slot, err := parseHouseSlot(args[0], args[1])
			if err != nil {
				return err
			}
			days, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid days %q: %w", args[2], err)
			}
			if err := deps.Service.SetNPCDuration(house, slot, days); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("House %d slot %d: %d-day NPC", house, slot+1, days))
			return nil
		},
	}

	expireCmd := &cobra.Command{
		Use:   "expire <house> <slot> <remaining>",
		Short: "Set when an NPC expires, e.g. 36h or 2d12h",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			house, slot, err := parseHouseSlot(args[0], args[1])
			if err != nil {
				return err
			}
			remaining, err := parseRemaining(args[2])
			if err != nil {
				return err
			}
			if err := deps.Service.SetNPCExpiration(house, slot, remaining); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("House %d slot %d NPC expires %s",
				house, slot+1, deps.Service.Now().Add(remaining).Format("Mon 2006-01-02 15:04")))
			return nil
		},
	}

	cmd.AddCommand(setCmd, durationCmd, expireCmd)
	return cmd
}

func newPetCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Start and finish pets in slots",
	}

	var progress float64
	startCmd := &cobra.Command{
		Use:   "start <house> <slot>",
		Short: "Start training a pet in an empty slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			house, slot, err := parseHouseSlot(args[0], args[1])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("progress") {
				err = deps.Service.StartPetAtProgress(house, slot, progress)
			} else {
				err = deps.Service.StartPet(house, slot)
			}
			if err != nil {
				return err
			}
			st := deps.Service.State()
			pet := st.Houses[domain.FindHouse(st.Houses, house)].Slots[slot].Pet
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("%s started in house %d slot %d, finishes %s",
				pet.Name, house, slot+1, pet.Finish.Format("Mon 15:04")))
			return nil
		},
	}
	startCmd.Flags().Float64Var(&progress, "progress", 0, "Start as already this percent done (0-100)")

	finishCmd := &cobra.Command{
		Use:   "finish <house> <slot>",
		Short: "Mark a training pet as finished now",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			house, slot, err := parseHouseSlot(args[0], args[1])
			if err != nil {
				return err
			}
			if err := deps.Service.InstantComplete(house, slot); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("House %d slot %d finished, it is now due", house, slot+1))
			return nil
		},
	}

	cmd.AddCommand(startCmd, finishCmd)
	return cmd
}

func parseHouse(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid house %q", domain.ErrInvalidArgument, s)
	}
	return id, nil
}

// parseHouseSlot reads a house id and a 1-based slot number, returning the
// slot as a 0-based index
func parseHouseSlot(house, slot string) (int, int, error) {
	id, err := parseHouse(house)
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.Atoi(slot)
	if err != nil || n < 1 || n > domain.SlotsPerHouse {
		return 0, 0, fmt.Errorf("%w: slot must be 1-%d, got %q", domain.ErrInvalidArgument, domain.SlotsPerHouse, slot)
	}
	return id, n - 1, nil
}

// parseRemaining accepts Go durations plus a leading day count, e.g. "2d12h"
func parseRemaining(s string) (time.Duration, error) {
	var days time.Duration
	if i := strings.Index(s, "d"); i > 0 {
		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		days = time.Duration(n) * 24 * time.Hour
		s = s[i+1:]
		if s == "" {
			return days, nil
		}
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return days + d, nil
}

func npcLabel(n domain.NPC) string {
	if !n.Assigned() {
		return mutedStyle.Render("-")
	}
	if n.Days == 0 {
		return n.Rank.String()
	}
	return fmt.Sprintf("%s (%dd)", n.Rank, n.Days)
}

func petLabel(p domain.Pet) string {
	if p.Empty() {
		return mutedStyle.Render("empty")
	}
	return p.Name
}

func petProgress(p domain.Pet, now time.Time) string {
	if !p.Scheduled() {
		return ""
	}
	return progressBar(completion.Progress(p, now))
}

func finishLabel(p domain.Pet, now time.Time) string {
	if !p.Scheduled() {
		return ""
	}
	if !p.Finish.After(now) {
		return warnDot.String() + " due"
	}
	return formatDuration(p.Finish.Sub(now))
}

func expiryLabel(n domain.NPC, now time.Time) string {
	switch {
	case !n.Assigned():
		return ""
	case n.Expiration.IsZero():
		return mutedStyle.Render("unused")
	case !n.Expiration.After(now):
		return errDot.String() + " expired"
	default:
		return formatDuration(n.Expiration.Sub(now))
	}
}
