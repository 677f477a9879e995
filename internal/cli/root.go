package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Argeon482/Pet-Farm/internal/config"
	"github.com/Argeon482/Pet-Farm/internal/logging"
	"github.com/Argeon482/Pet-Farm/internal/services/clock"
	"github.com/Argeon482/Pet-Farm/internal/services/farm"
	"github.com/Argeon482/Pet-Farm/internal/services/snapshot"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config    *config.Config
	ConfigDir string
	Profiles  *config.ProfilesRegistry
	Service   *farm.Service
	Clock     clock.Clock
	StatePath string
	// Created is true when the state file did not exist yet
	Created bool
	Logger  *slog.Logger

	logCloser io.Closer
}

// Simulated returns the simulated clock when --at was given
func (d *Dependencies) Simulated() (*clock.Simulated, bool) {
	c, ok := d.Clock.(*clock.Simulated)
	return c, ok
}

// Close releases the log file
func (d *Dependencies) Close() error {
	if d.logCloser == nil {
		return nil
	}
	return d.logCloser.Close()
}

// rootFlags are the persistent flags shared by every command
type rootFlags struct {
	configDir string
	state     string
	profile   string
	at        string
}

// NewRootCmd creates the root command with all subcommands
func NewRootCmd(version string) *cobra.Command {
	flags := &rootFlags{}
	deps := &Dependencies{}

	rootCmd := &cobra.Command{
		Use:   "petfarm",
		Short: "Pet farm production planner",
		Long: titleStyle.Render("petfarm") + " " + mutedStyle.Render(version) + "\n" +
			"  Plans check-ins, tracks houses and projects weekly profit.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsDependencies(cmd) {
				return nil
			}
			return deps.init(flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return deps.Close()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "Directory holding "+config.FileName+" (default: current directory)")
	pf.StringVar(&flags.state, "state", "", "State file (overrides profile and config)")
	pf.StringVar(&flags.profile, "profile", "", "Named profile to use")
	pf.StringVar(&flags.at, "at", "", "Simulated current time (RFC3339), enables time travel")
	pf.Bool("json", false, "Output in JSON format")

	rootCmd.AddCommand(newBriefingCmd(deps))
	rootCmd.AddCommand(newCompleteCmd(deps))
	rootCmd.AddCommand(newStatusCmd(deps))
	rootCmd.AddCommand(newProfitCmd(deps))
	rootCmd.AddCommand(newCompareCmd(deps))
	rootCmd.AddCommand(newHousesCmd(deps))
	rootCmd.AddCommand(newNPCCmd(deps))
	rootCmd.AddCommand(newPetCmd(deps))
	rootCmd.AddCommand(newWarehouseCmd(deps))
	rootCmd.AddCommand(newSellCmd(deps))
	rootCmd.AddCommand(newSalesCmd(deps))
	rootCmd.AddCommand(newPerfectCmd(deps))
	rootCmd.AddCommand(newPricesCmd(deps))
	rootCmd.AddCommand(newCashCmd(deps))
	rootCmd.AddCommand(newScheduleCmd(deps))
	rootCmd.AddCommand(newScenarioCmd(deps))
	rootCmd.AddCommand(newProfileCmd(deps))
	rootCmd.AddCommand(newConfigCmd(deps))
	rootCmd.AddCommand(newTUICmd(deps))

	return rootCmd
}

// skipsDependencies reports commands that only touch the profile registry or
// the built-in scenario list
func skipsDependencies(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["deps"] == "none" {
			return true
		}
	}
	return false
}

func (d *Dependencies) init(flags *rootFlags) error {
	dir := flags.configDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}
	d.Config, d.ConfigDir = cfg, dir

	logger, closer, err := logging.New(logging.Config{
		Dir:       cfg.Log.Dir,
		Debug:     cfg.Log.Debug,
		JSON:      cfg.Log.JSON,
		Component: "cli",
	})
	if err != nil {
		return err
	}
	d.Logger, d.logCloser = logger, closer

	reg, err := config.LoadProfilesRegistry()
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}
	d.Profiles = reg

	d.StatePath = flags.state
	if d.StatePath == "" {
		d.StatePath, err = reg.ResolveStatePath(flags.profile, cfg.State.Path)
		if err != nil {
			return fmt.Errorf("profile %q: %w", flags.profile, err)
		}
	}

	d.Clock = clock.System{}
	if flags.at != "" {
		at, err := time.Parse(time.RFC3339, flags.at)
		if err != nil {
			return fmt.Errorf("invalid --at time: %w", err)
		}
		d.Clock = clock.NewSimulated(at)
	}

	table, err := cfg.CycleTable()
	if err != nil {
		return err
	}
	prices, err := cfg.PriceConfig()
	if err != nil {
		return err
	}
	checkins, err := cfg.Checkins()
	if err != nil {
		return err
	}

	store := farm.FileStore{Path: d.StatePath}
	st, created, err := store.Load(func() snapshot.State {
		return snapshot.New(cfg.State.StartingCash, prices, checkins)
	})
	if err != nil {
		return err
	}
	d.Created = created

	d.Service = farm.NewService(st, d.Clock, farm.Options{
		Table:             table,
		BlocksPerDivision: cfg.Schedule.BlocksPerDivision,
		ExpiryWindow:      cfg.ExpiryWindow(),
		Store:             store,
	}, logger)

	logger.Debug("dependencies ready", "state", d.StatePath, "created", created, "simulated", flags.at != "")
	return nil
}

// tryJSON returns true if --json was set and v was printed
func tryJSON(cmd *cobra.Command, v interface{}) (bool, error) {
	jsonFlag, _ := cmd.Flags().GetBool("json")
	if !jsonFlag {
		return false, nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return true, err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return true, nil
}

// header prints a bold section title
func header(cmd *cobra.Command, title string) {
	fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(title))
}

// now formats the service time, marking simulated time
func nowLine(d *Dependencies) string {
	line := "Now: " + d.Service.Now().Format("Mon 2006-01-02 15:04")
	if _, ok := d.Simulated(); ok {
		line += " " + lipgloss.NewStyle().Foreground(warning).Render("(simulated)")
	}
	return line
}
