// Package cmd provides the root command and CLI setup for unitgen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	"unitgen.dev/pkg/unitgen/internal/controller"
	"unitgen.dev/pkg/unitgen/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var processAdapter adapter.ProcessAdapter
var structureAdapter adapter.StructureAdapter
var doubleGenerator adapter.DoubleGenerator
var treeLoader domain.TreeLoader
var locator domain.Locator
var resolver domain.Resolver
var workflow domain.Workflow
var ui controller.UI

var rootDirFlag string
var mocksDirFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	processAdapter = adapter.NewLocalProcessAdapter()
	structureAdapter = adapter.NewSourceKittenAdapter(processAdapter, viper.GetString(sourceKittenConfigKey))
	doubleGenerator = adapter.NewSourceryAdapter(fsAdapter, processAdapter, viper.GetString(sourceryConfigKey))
	treeLoader = domain.NewTreeLoader(fsAdapter, structureAdapter)
	locator = domain.NewLocator(fsAdapter, treeLoader)
	resolver = domain.NewResolver(fsAdapter, treeLoader)
	workflow = domain.NewWorkflow(
		fsAdapter,
		doubleGenerator,
		ui,
		locator,
		resolver,
		domain.NewInitializerExtractor(),
	)
}

const rootLongDescription = `unitgen generates XCTest scaffolds for Swift types.

It locates a class or struct by name in a source tree (using SourceKitten
structure output), reconstructs its initializer, collects the methods and
properties a test should cover, and wires dependencies to test doubles,
generating missing doubles with Sourcery.`

const generateLongDescription = `Generate an XCTest scaffold for the named type.

Initializer parameters whose types have a double (a class or struct whose name
ends with Mock or Stub and that conforms to the parameter type) are wired to
that double. Doubles that do not exist yet are generated with Sourcery into the
mocks directory before the scaffold is written.`

const inspectLongDescription = `Print what unitgen knows about the named type: where it is declared,
its initializer parameters with their resolved doubles and the operations a
scaffold would test. Nothing is generated or written.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unitgen",
		Short: "XCTest scaffold generator for Swift types",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&rootDirFlag, rootFlagName, defaultRoot, "directory searched for the type and its doubles")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().StringVarP(&mocksDirFlag, mocksDirFlagName, "m", defaultMocksDir, "folder for generated doubles, relative to the root")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(mocksDirFlagName), mocksDirConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
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
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
