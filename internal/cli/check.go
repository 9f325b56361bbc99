package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	fio "github.com/matzehuels/fontroute/pkg/io"
)

// checkCommand creates the check command that validates a fallback file.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a fallback file and report rejected routes",
		Long: `Load a fallback file (.toml or .json) and report what the graph accepted.

Routes that already exist or that would create a fallback cycle are skipped
and listed. With --strict the first such route fails the check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, report, err := c.loadCatalog(cmd.Context(), args[0], strict)
			if err != nil {
				return err
			}
			printCheckReport(report)
			if len(report.Rejected) > 0 {
				printNextStep("Fail on rejected routes", fmt.Sprintf("%s check --strict %s", appName, args[0]))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on the first rejected route")

	return cmd
}

func printCheckReport(report *fio.Report) {
	printStats(report.Fonts, report.Routes, len(report.Rejected))
	if len(report.Rejected) == 0 {
		printSuccess("All routes accepted")
		return
	}

	printWarning("%d routes rejected", len(report.Rejected))
	fmt.Println(rejectionTable(report.Rejected))
}

// rejectionTable renders rejected routes as a bordered table.
func rejectionTable(rejected []fio.Rejection) string {
	rows := make([][]string, len(rejected))
	for i, r := range rejected {
		rows[i] = []string{strconv.Itoa(r.Index), r.Route.From, r.Route.To, r.Route.Tag, r.Result.String()}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "From", "To", "Tag", "Result").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 4 {
				return lipgloss.NewStyle().Foreground(colorYellow)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
