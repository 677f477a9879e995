package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Argeon482/Pet-Farm/internal/config"
	"github.com/Argeon482/Pet-Farm/internal/domain"
	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
)

// noDeps marks commands that run without loading config or farm state
var noDeps = map[string]string{"deps": "none"}

func newScheduleCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show or change check-in hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sched := deps.Service.State().Checkins
			next, ok := sched.Next(deps.Service.Now())
			if jsonOK, err := tryJSON(cmd, map[string]interface{}{
				"checkinHours": sched,
				"nextCheckin":  nextOrNil(next, ok),
			}); jsonOK {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Check-ins: %s\n", scheduleLabel(sched))
			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Next:      %s (in %s)\n",
					next.Format("Mon 15:04"), formatDuration(next.Sub(deps.Service.Now())))
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <hours>",
		Short: "Replace check-in hours, e.g. 9,15,21",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sched, err := domain.ParseSchedule(args[0])
			if err != nil {
				return err
			}
			if err := deps.Service.SetSchedule(sched); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), "Check-ins set to "+deps.Service.State().Checkins.String())
			return nil
		},
	})
	return cmd
}

func newScenarioCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Load built-in example farms",
	}

	listCmd := &cobra.Command{
		Use:         "list",
		Short:       "List built-in scenarios",
		Args:        cobra.NoArgs,
		Annotations: noDeps,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := snapshot.Scenarios()
			if ok, err := tryJSON(cmd, scenarioRows(scenarios)); ok {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			for _, s := range scenarios {
				fmt.Fprintf(w, "%s\t%s\n", s.Name, s.Description)
			}
			return w.Flush()
		},
	}

	var yes bool
	loadCmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Replace the farm with a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !deps.Created && len(deps.Service.State().Houses) > 0 {
				return fmt.Errorf("loading a scenario replaces %d houses; rerun with --yes", len(deps.Service.State().Houses))
			}
			if err := deps.Service.LoadScenario(args[0]); err != nil {
				return err
			}
			st := deps.Service.State()
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Loaded %s: %d houses, cash %s", st.Scenario, len(st.Houses), formatMoney(st.Cash)))
			return nil
		},
	}
	loadCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Replace existing houses without asking")

	cmd.AddCommand(listCmd, loadCmd)
	return cmd
}

func scenarioRows(scenarios []snapshot.Scenario) []map[string]string {
	rows := make([]map[string]string, len(scenarios))
	for i, s := range scenarios {
		rows[i] = map[string]string{"name": s.Name, "description": s.Description}
	}
	return rows
}

func newProfileCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "profile",
		Short:       "Manage named farm profiles",
		Annotations: noDeps,
	}

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := config.LoadProfilesRegistry()
			if err != nil {
				return err
			}
			if ok, err := tryJSON(cmd, reg); ok {
				return err
			}
			if len(reg.Profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles. Add one with: petfarm profile add <name>")
				return nil
			}
			w := newTable(cmd.OutOrStdout())
			for _, p := range reg.Profiles {
				marker := " "
				if p.Name == reg.DefaultProfile {
					marker = okDot.String()
				}
				fmt.Fprintf(w, "%s %s\t%s\n", marker, p.Name, mutedStyle.Render(p.StatePath))
			}
			return w.Flush()
		},
	}

	var statePath string
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := statePath
			if path != "" {
				abs, err := filepath.Abs(path)
				if err != nil {
					return err
				}
				path = abs
			}
			return editProfiles(cmd, func(reg *config.ProfilesRegistry) (string, error) {
				if err := reg.Add(args[0], path); err != nil {
					return "", err
				}
				p, _ := reg.Get(args[0])
				return fmt.Sprintf("Added profile %s (%s)", p.Name, p.StatePath), nil
			})
		},
	}
	addCmd.Flags().StringVar(&statePath, "state", "", "State file for the profile (default: next to the registry)")

	useCmd := &cobra.Command{
		Use:   "use <name>",
		Short: "Make a profile the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editProfiles(cmd, func(reg *config.ProfilesRegistry) (string, error) {
				if err := reg.SetDefault(args[0]); err != nil {
					return "", err
				}
				return "Default profile is now " + args[0], nil
			})
		},
	}

	removeCmd := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Unregister a profile (its state file is kept)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return editProfiles(cmd, func(reg *config.ProfilesRegistry) (string, error) {
				if err := reg.Remove(args[0]); err != nil {
					return "", err
				}
				return "Removed profile " + args[0], nil
			})
		},
	}

	cmd.AddCommand(listCmd, addCmd, useCmd, removeCmd)
	return cmd
}

func editProfiles(cmd *cobra.Command, fn func(reg *config.ProfilesRegistry) (string, error)) error {
	reg, err := config.LoadProfilesRegistry()
	if err != nil {
		return err
	}
	msg, err := fn(reg)
	if err != nil {
		return err
	}
	if err := config.SaveProfilesRegistry(reg); err != nil {
		return err
	}
	PrintSuccess(cmd.OutOrStdout(), msg)
	return nil
}

func newConfigCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), deps.Config.String())
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to " + config.FileName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(deps.ConfigDir, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.SaveConfig(deps.Config, path); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), "Wrote "+path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd, &cobra.Command{
		Use:   "path",
		Short: "Print config, state and log locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := []string{
				"config: " + filepath.Join(deps.ConfigDir, config.FileName),
				"state:  " + deps.StatePath,
				"logs:   " + deps.Config.Log.Dir,
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
			return nil
		},
	})
	return cmd
}
