package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitwit/agentcommerce/extensions"
	"github.com/vitwit/agentcommerce/utils"
)

func newComposeCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "compose [extension...]",
		Short: "Print the checkout document with extensions merged in",
		Long: `Builds the base checkout object and merges in the named extensions.
With no arguments the default selection (fulfillment) is used.

Example:
  agentcommerce compose fulfillment discounts ap2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, ext := range extensions.All() {
					fmt.Fprintf(w, "%-14s %-32s %s\n", ext.ID, ext.Name, ext.Description)
				}
				return nil
			}

			ids := extensions.DefaultActive
			if values := utils.SplitList(args); len(values) > 0 {
				ids = make([]extensions.ID, len(values))
				for i, v := range values {
					ids[i] = extensions.ID(v)
				}
			}

			doc, err := a.ac.Compose(ids)
			if err != nil {
				return err
			}
			return printJSON(w, doc)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list the available extensions")
	return cmd
}
