// Command numgroup checks Go source files for numeric literals whose
// digits are not grouped with underscores.
package main

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sirkon/numgroup"
	"github.com/sirkon/numgroup/internal/discover"
	"github.com/sirkon/numgroup/internal/grouping"
	"github.com/sirkon/numgroup/internal/report"
	"github.com/sirkon/numgroup/internal/srcbuf"
)

var parallelFlag int
var configFlag string

// rootCmd represents the base command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "numgroup [files...]",
		Short: "Report numeric literals with missing digit group separators",
		Long: `Numgroup flags numeric literals that are hard to read because their
digits are not grouped with underscores: decimal literals group by 3
digits, binary, octal and hexadecimal ones by 4. The leading group of
a literal may be shorter than the group width, every following group
must match it exactly.

Examples:
  1000         flagged, write 1_000
  0xDEADBEEF   flagged, write 0xDEAD_BEEF
  100_000      fine
  1_000.123_4  flagged, the fractional part groups by 3`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := numgroup.LoadConfig(configFlag)
			if err != nil {
				return err
			}

			sink := &report.Collector{}

			grp, _ := errgroup.WithContext(cmd.Context())
			grp.SetLimit(max(parallelFlag, 1))
			for _, path := range args {
				grp.Go(func() error {
					return checkFile(path, cfg, sink)
				})
			}
			if err := grp.Wait(); err != nil {
				return err
			}

			findings := sink.Sorted()
			out := cmd.OutOrStdout()
			sink.PrintSummary(out)
			printSummaryTable(out, args, findings)

			if len(findings) > 0 {
				return fmt.Errorf("found %d ungrouped numeric literals", len(findings))
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files checked in parallel")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to a numgroup YAML config file")

	return cmd
}

// checkFile runs the whole discovery and validation pipeline over one
// file. The file is read exactly once, the line buffer built from it is
// shared by every literal extraction of the pass.
func checkFile(path string, cfg *numgroup.Config, sink *report.Collector) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, content, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	buf := srcbuf.New(content)
	for lit := range discover.Literals(fset, file, buf) {
		if finding := grouping.ValidateWith(cfg.Widths, lit); finding != nil {
			sink.Add(*finding)
		}
	}

	return nil
}

// printSummaryTable renders the per-file finding counts, every checked
// file included even when clean.
func printSummaryTable(out io.Writer, paths []string, findings []grouping.Finding) {
	perFile := make(map[string]int, len(paths))
	for _, path := range paths {
		perFile[path] = 0
	}
	for _, f := range findings {
		perFile[f.Pos.Filename]++
	}

	pathsList := make([]string, 0, len(perFile))
	for path := range perFile {
		pathsList = append(pathsList, path)
	}

	sort.Strings(pathsList)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Findings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, path := range pathsList {
		table.Append([]string{path, fmt.Sprintf("%d", perFile[path])})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(pathsList)),
		fmt.Sprintf("%d", len(findings)),
	})

	table.Render()
	fmt.Fprintf(out, "\n%s", tableBuffer.String())
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
