package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/control-sim/control-sim/devs"
	"github.com/control-sim/control-sim/devs/trace"
)

var (
	logLevel     string   // Log verbosity level
	duration     float64  // Simulated-time budget (seconds)
	realtime     bool     // Drive the run against the wall clock
	scenarioPath string   // Optional scenario YAML
	csvPath      string   // Optional state-trace CSV output
	inputFlags   []string // Repeatable name=path input trace bindings
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "control-sim",
	Short: "Discrete-event simulator for small embedded control systems",
}

// runCmd executes one simulation run, offline or in real time.
var runCmd = &cobra.Command{
	Use:   "run [elevator|garage|temperature|trafficlight]",
	Short: "Run a control-system simulation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		sc, err := assembleScenario(cmd, args)
		if err != nil {
			return err
		}

		built, closeInputs, err := buildSystem(sc)
		if err != nil {
			return err
		}
		defer closeInputs()

		for _, line := range built.banner {
			logrus.Infof("lcd: %s", line)
		}

		rc := devs.NewRootCoordinator(built.top)

		st := trace.NewStateTrace()
		rc.Attach(st)

		if sc.CSV != "" {
			csvFile, err := os.Create(sc.CSV)
			if err != nil {
				return err
			}
			defer csvFile.Close()
			cw := trace.NewCSVWriter(csvFile)
			rc.Attach(cw)
			defer func() {
				if err := cw.Flush(); err != nil {
					logrus.Errorf("writing trace CSV: %v", err)
				}
			}()
		}

		logrus.Infof("Starting %s run: duration=%vs realtime=%v run=%s",
			sc.System, sc.Duration, sc.Realtime, st.RunID)

		if sc.Realtime {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			if err := rc.RunRealTime(ctx, devs.WallClock{}, sc.Duration); err != nil {
				logrus.Warnf("real-time run stopped: %v", err)
			}
		} else {
			rc.Run(sc.Duration)
		}

		logrus.Infof("Simulation complete: %d transitions recorded", len(st.Records))
		return nil
	},
}

// assembleScenario merges the scenario file (if any) with CLI flags; flags
// win.
func assembleScenario(cmd *cobra.Command, args []string) (*Scenario, error) {
	sc := &Scenario{Inputs: map[string]string{}}
	if scenarioPath != "" {
		loaded, err := LoadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
		if sc.Inputs == nil {
			sc.Inputs = map[string]string{}
		}
	}

	if len(args) == 1 {
		sc.System = args[0]
	}
	if cmd.Flags().Changed("duration") || sc.Duration == 0 {
		sc.Duration = duration
	}
	if cmd.Flags().Changed("realtime") {
		sc.Realtime = realtime
	}
	if cmd.Flags().Changed("csv") {
		sc.CSV = csvPath
	}
	for _, binding := range inputFlags {
		name, path, ok := strings.Cut(binding, "=")
		if !ok {
			logrus.Fatalf("--input wants name=path, got %q", binding)
		}
		sc.Inputs[name] = path
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Execute runs the CLI root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands.
func init() {
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().Float64Var(&duration, "duration", 100.0, "Simulated-time budget in seconds")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "Drive the simulation against the wall clock")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "Write a state-trace CSV to this path")
	runCmd.Flags().StringArrayVar(&inputFlags, "input", nil, "Bind an input stream to a trace file (name=path, repeatable)")

	rootCmd.AddCommand(runCmd)
}
