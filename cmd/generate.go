package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unitgen.dev/pkg/unitgen/internal/domain"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

var generateFileNameFlag string
var generateImportsFlag []string
var generateTestableImportsFlag []string
var generateOutputFlag string
var generatePlatformFlag string
var generateNoDoublesFlag bool
var generateDryRunFlag bool

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <TypeName>",
		Short: "Generate an XCTest scaffold for a type",
		Long:  generateLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Generate(cmd.Context(), domain.GenerateArgs{
				TypeName:        args[0],
				Root:            m.Path(viper.GetString(rootConfigKey)),
				MocksDir:        m.Path(viper.GetString(mocksDirConfigKey)),
				FileName:        generateFileNameFlag,
				OutputDir:       m.Path(viper.GetString(scaffoldOutputConfigKey)),
				Platform:        viper.GetString(scaffoldPlatformConfigKey),
				Imports:         splitList(viper.GetStringSlice(importsConfigKey)),
				TestableImports: splitList(viper.GetStringSlice(testableImportsConfigKey)),
				Doubles:         !generateNoDoublesFlag,
				DryRun:          generateDryRunFlag,
			})
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateFileNameFlag, fileNameFlagName, "f", "", "name of the scaffold file (default <TypeName>Tests)")

	cmd.Flags().StringSliceVarP(&generateImportsFlag, importsFlagName, "i", nil, "additional imports for the scaffold and generated doubles (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(importsFlagName), importsConfigKey)

	cmd.Flags().StringSliceVarP(&generateTestableImportsFlag, testableImportsFlagName, "t", nil, "additional @testable imports (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(testableImportsFlagName), testableImportsConfigKey)

	cmd.Flags().StringVarP(&generateOutputFlag, outputFlagName, "o", defaultScaffoldOutput, "directory the scaffold is written to")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), scaffoldOutputConfigKey)

	cmd.Flags().StringVar(&generatePlatformFlag, platformFlagName, defaultPlatform, "UI framework imported after Foundation, e.g. UIKit or AppKit (empty for none)")
	bindFlagToConfig(cmd.Flags().Lookup(platformFlagName), scaffoldPlatformConfigKey)

	cmd.Flags().BoolVar(&generateNoDoublesFlag, noDoublesFlagName, false, "do not resolve or generate test doubles")
	cmd.Flags().BoolVar(&generateDryRunFlag, dryRunFlagName, false, "print the scaffold and a diff instead of writing it")
}
