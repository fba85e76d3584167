package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unitgen.dev/pkg/unitgen/internal/controller"
	"unitgen.dev/pkg/unitgen/internal/domain"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

var inspectFormatFlag string

// inspectCmd represents the inspect command.
var inspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <TypeName>",
		Short: "Show the initializer, doubles and operations of a type",
		Long:  inspectLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := controller.ParseReportFormat(inspectFormatFlag)
			if err != nil {
				return err
			}

			_, err = workflow.Inspect(cmd.Context(), domain.InspectArgs{
				TypeName: args[0],
				Root:     m.Path(viper.GetString(rootConfigKey)),
				MocksDir: m.Path(viper.GetString(mocksDirConfigKey)),
				Format:   format,
			})

			return err
		},
	}

	cmd.Flags().StringVar(&inspectFormatFlag, formatFlagName, string(controller.FormatTable),
		fmt.Sprintf("output format (%s)", formatNames()))

	return cmd
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func formatNames() string {
	names := make([]string, 0, len(controller.ReportFormats))
	for _, format := range controller.ReportFormats {
		names = append(names, string(format))
	}

	return strings.Join(names, "|")
}
