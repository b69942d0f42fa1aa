// Package cmd provides the root command and CLI setup for argue.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"argue.dev/pkg/argue/internal/adapter"
	"argue.dev/pkg/argue/internal/controller"
	"argue.dev/pkg/argue/internal/domain"
	m "argue.dev/pkg/argue/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var frameworkSource adapter.FrameworkSource
var catalog adapter.Catalog
var reportStore adapter.ReportStore
var sampler domain.Sampler
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// noSaveFlag skips writing reports when set.
var noSaveFlag bool

var uiModeFlag string
var verboseFlag bool
var logFileFlag string
var maxArgumentsFlag int
var timeoutFlag int64

func init() {
	configureRootFlags(rootCmd)

	var err error

	// Initialize shared dependencies.
	frameworkSource = adapter.NewLocalFrameworkSource()
	catalog, err = adapter.NewCatalog()
	cobra.CheckErr(err)
	reportStore = adapter.NewLocalReportStore()
	sampler = domain.NewSampler("")

	mode, err := controller.ParseMode(viper.GetString(uiModeConfigKey))
	if err != nil {
		mode = controller.ModeAuto
	}

	wireWorkflow(rootCmd, mode)
}

// wireWorkflow builds the UI for mode and the workflow around it.
func wireWorkflow(cmd *cobra.Command, mode controller.Mode) {
	ui = controller.NewUI(cmd, mode, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(
		frameworkSource,
		catalog,
		reportStore,
		ui,
		sampler,
	)
}

const frameworkFilesHelp = `Frameworks are read from YAML files, one document per framework:

  name: nixon-diamond        # optional, defaults to the file name
  arguments: [a, b]          # optional, attack endpoints are always included
  attacks:
    - [a, b]
    - [b, a]

Built-in examples from the literature are selected with --example or --all.`

const rootLongDescription = `Argue analyses abstract argumentation frameworks: directed graphs whose
nodes are arguments and whose edges are attacks. It enumerates the classical
acceptability semantics (conflict-free, admissible, complete, preferred,
stable, grounded, semi-stable, stage, ideal and eager), iterates the defense
function and relates arguments through indirect attack and defense.

` + frameworkFilesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "argue",
		Short: "Abstract argumentation framework analyser",
		Long:  rootLongDescription,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if !cmd.Flags().Changed(uiModeFlagName) {
				return nil
			}

			mode, err := controller.ParseMode(viper.GetString(uiModeConfigKey))
			if err != nil {
				return err
			}

			wireWorkflow(cmd.Root(), mode)

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with the persistent flags
// configured, for attaching subcommands in isolation.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for analysis reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&noSaveFlag, noSaveFlagName, viper.GetBool(noSaveFlagName), "do not write reports to the output directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(noSaveFlagName), noSaveFlagName)

	cmd.PersistentFlags().StringVar(&uiModeFlag, uiModeFlagName, viper.GetString(uiModeConfigKey), "output mode: auto, simple or tui")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(uiModeFlagName), uiModeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().IntVar(&maxArgumentsFlag, maxArgumentsFlagName, viper.GetInt(maxArgumentsConfigKey), "largest framework enumerated exhaustively (0 disables the limit)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(maxArgumentsFlagName), maxArgumentsConfigKey)

	cmd.PersistentFlags().Int64Var(&timeoutFlag, timeoutFlagName, viper.GetInt64(timeoutConfigKey), "seconds allowed per framework (0 disables the timeout)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(timeoutFlagName), timeoutConfigKey)
}

// engineConfig reads the engine limits from flags, env and config.
func engineConfig() domain.EngineConfig {
	return domain.EngineConfig{
		MaxArguments: viper.GetInt(maxArgumentsConfigKey),
		Timeout:      engineTimeout(),
	}
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
