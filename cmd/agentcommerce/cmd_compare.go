package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitwit/agentcommerce/comparison"
)

func newCompareCmd(a *app) *cobra.Command {
	var (
		category string
		raw      bool
		asJSON   bool
		style    string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Show the UCP vs ACP feature comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := a.ac.Compare(comparison.Category(strings.ToLower(category)))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case asJSON:
				return printJSON(w, rows)
			case raw:
				_, err = fmt.Fprint(w, comparison.Markdown(rows))
				return err
			}

			out, err := renderMarkdown(comparison.Markdown(rows), style)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(w, out)
			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", string(comparison.CategoryAll), "filter: "+categoryNames())
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown table without rendering")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rows as JSON")
	cmd.Flags().StringVar(&style, "style", "auto", "markdown style: auto, dark, light, notty")
	return cmd
}

func categoryNames() string {
	cats := comparison.Categories()
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c.ID)
	}
	return strings.Join(parts, ", ")
}
