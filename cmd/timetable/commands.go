package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/timetable-go/internal/tui"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/output"
)

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a schedule workbook and remember it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.session.Import(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			for _, sheet := range a.session.Sheets() {
				fmt.Fprintln(cmd.OutOrStdout(), sheet)
			}
			return nil
		},
	}
}

func newSheetsCommand() *cobra.Command {
	var asJSON, pretty bool

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "List the course sheets of the imported workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			wb := a.session.Workbook()
			if wb == nil {
				return fmt.Errorf("%w: no workbook imported", timetable.ErrEmptySelection)
			}

			summaries, err := sheetSummaries(wb)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := output.SheetsToJSON(summaries, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			for _, s := range summaries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d groups\n", s.Name, len(s.Groups))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

// sheetSummaries lists every sheet with its groups, in workbook order.
func sheetSummaries(wb *models.Workbook) ([]output.SheetSummary, error) {
	summaries := make([]output.SheetSummary, 0, len(wb.SheetNames))
	for _, name := range wb.SheetNames {
		groups, err := timetable.Groups(wb, name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		summaries = append(summaries, output.SheetSummary{Name: name, Groups: groups})
	}
	return summaries, nil
}

func newGroupsCommand() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the groups of a course sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			if sheet == "" {
				sheet = a.session.Selection().Sheet
			}
			if err := a.session.SelectSheet(cmd.Context(), sheet); err != nil {
				return err
			}
			for _, group := range a.session.Groups() {
				fmt.Fprintln(cmd.OutOrStdout(), group)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Course sheet (default: last selected)")
	return cmd
}

func newShowCommand() *cobra.Command {
	var (
		file       string
		sheet      string
		group      string
		day        string
		format     string
		pretty     bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the schedule of a group",
		Long: `Print the schedule of a group day by day.
Sheet and group default to the last selection; a successful build is remembered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("invalid format: %s (must be text or json)", format)
			}

			a, err := newApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			if file != "" {
				if err := a.session.Import(ctx, file); err != nil {
					return fmt.Errorf("import failed: %w", err)
				}
			}

			remembered := a.session.Selection()
			if sheet == "" {
				sheet = remembered.Sheet
			}
			if group == "" && sheet == remembered.Sheet {
				group = remembered.Group
			}
			if err := a.session.SelectSheet(ctx, sheet); err != nil {
				return err
			}
			if err := a.session.SelectGroup(ctx, group); err != nil {
				return err
			}
			a.session.SelectDay(resolveDay(day))

			view := a.session.View()
			var data []byte
			if format == "json" {
				data, err = output.ToJSON(view, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				data = append(data, '\n')
			} else {
				var sb strings.Builder
				if err := output.WriteText(&sb, view.Days); err != nil {
					return err
				}
				data = []byte(sb.String())
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Import this workbook first")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Course sheet (default: last selected)")
	cmd.Flags().StringVar(&group, "group", "", "Group column (default: last selected)")
	cmd.Flags().StringVar(&day, "day", models.AllDays, "Day filter (\"all\" for every day)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Pick sheet, group and day interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer a.Close()

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			if err := tui.Run(cmd.Context(), a.session, path, a.opts); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}
}

func resolveDay(day string) string {
	if day == "" || strings.EqualFold(day, "all") {
		return models.AllDays
	}
	return day
}
