package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitwit/agentcommerce/negotiation"
	"github.com/vitwit/agentcommerce/types"
	"github.com/vitwit/agentcommerce/utils"
)

type negotiateFlags struct {
	merchantCapabilities []string
	merchantHandlers     []string
	agentCapabilities    []string
	agentHandlers        []string
	merchantFile         string
	agentFile            string
	profiles             bool
	asJSON               bool
}

func newNegotiateCmd(a *app) *cobra.Command {
	f := &negotiateFlags{}

	cmd := &cobra.Command{
		Use:   "negotiate",
		Short: "Intersect merchant and agent capabilities and payment handlers",
		Long: `Computes which capabilities and payment handlers a merchant and an agent
have in common and whether a transaction can proceed.

Selections start from the configuration (or the sample profiles) and can be
replaced per list with flags or per party with a selection file.

Example:
  agentcommerce negotiate --merchant-capabilities checkout --agent-capabilities fulfillment`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			merchant, err := f.selection(cmd, a, types.RoleMerchant)
			if err != nil {
				return err
			}
			agent, err := f.selection(cmd, a, types.RoleAgent)
			if err != nil {
				return err
			}
			return f.run(cmd.OutOrStdout(), a, merchant, agent)
		},
	}

	cmd.Flags().StringSliceVar(&f.merchantCapabilities, "merchant-capabilities", nil, "capabilities the merchant supports")
	cmd.Flags().StringSliceVar(&f.merchantHandlers, "merchant-handlers", nil, "payment handlers the merchant accepts")
	cmd.Flags().StringSliceVar(&f.agentCapabilities, "agent-capabilities", nil, "capabilities the agent supports")
	cmd.Flags().StringSliceVar(&f.agentHandlers, "agent-handlers", nil, "payment handlers the agent can process")
	cmd.Flags().StringVar(&f.merchantFile, "merchant-file", "", "merchant selection file (.yaml or .json)")
	cmd.Flags().StringVar(&f.agentFile, "agent-file", "", "agent selection file (.yaml or .json)")
	cmd.Flags().BoolVar(&f.profiles, "profiles", false, "also print both profile documents with their digests")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the result as JSON")
	return cmd
}

// selection resolves one party: config default, then file, then flags.
func (f *negotiateFlags) selection(cmd *cobra.Command, a *app, role types.Role) (negotiation.PartySelection, error) {
	sel, err := a.ac.DefaultSelection(role)
	if err != nil {
		return negotiation.PartySelection{}, err
	}

	file, capFlag, handlerFlag := f.merchantFile, "merchant-capabilities", "merchant-handlers"
	caps, handlers := f.merchantCapabilities, f.merchantHandlers
	if role == types.RoleAgent {
		file, capFlag, handlerFlag = f.agentFile, "agent-capabilities", "agent-handlers"
		caps, handlers = f.agentCapabilities, f.agentHandlers
	}

	if file != "" {
		cfg, err := readSelection(file)
		if err != nil {
			return negotiation.PartySelection{}, err
		}
		sel = negotiation.SelectionFromConfig(role, *cfg)
	}

	if cmd.Flags().Changed(capFlag) {
		ids, err := utils.ParseCapabilityIDs(caps)
		if err != nil {
			return negotiation.PartySelection{}, err
		}
		sel.Capabilities = negotiation.NewSet(ids...)
	}
	if cmd.Flags().Changed(handlerFlag) {
		ids, err := utils.ParseHandlerIDs(handlers)
		if err != nil {
			return negotiation.PartySelection{}, err
		}
		sel.Handlers = negotiation.NewSet(ids...)
	}
	return sel, nil
}

func readSelection(path string) (*types.SelectionConfig, error) {
	format, err := utils.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	return utils.ParseSelection(data, format)
}

type negotiateOutput struct {
	Merchant   types.SelectionConfig  `json:"merchant"`
	Agent      types.SelectionConfig  `json:"agent"`
	Result     negotiation.Result     `json:"result"`
	CanProceed bool                   `json:"can_proceed"`
	Warning    types.Warning          `json:"warning,omitempty"`
	Message    string                 `json:"message"`
	Profiles   map[string]interface{} `json:"profiles,omitempty"`
}

func (f *negotiateFlags) run(w io.Writer, a *app, merchant, agent negotiation.PartySelection) error {
	result := a.ac.Negotiate(merchant, agent)
	warning := result.Warning()

	out := negotiateOutput{
		Merchant:   merchant.Config(),
		Agent:      agent.Config(),
		Result:     result,
		CanProceed: negotiation.CanProceed(result),
		Warning:    warning,
		Message:    warning.Message(),
	}

	if f.profiles {
		out.Profiles = make(map[string]interface{}, 2)
		for _, sel := range []negotiation.PartySelection{merchant, agent} {
			doc, digest, err := a.ac.Profile(sel)
			if err != nil {
				return err
			}
			out.Profiles[sel.Role.String()] = map[string]interface{}{"digest": digest, "document": doc}
		}
	}

	if f.asJSON {
		return printJSON(w, out)
	}

	fmt.Fprintf(w, "Merchant: %s | %s\n", joinIDs(out.Merchant.Capabilities), joinIDs(out.Merchant.Handlers))
	fmt.Fprintf(w, "Agent:    %s | %s\n\n", joinIDs(out.Agent.Capabilities), joinIDs(out.Agent.Handlers))

	fmt.Fprintln(w, "Negotiated capabilities:")
	for _, c := range result.CapabilityList() {
		fmt.Fprintf(w, "  ✓ %s (%s)\n", c.Label, c.Name)
	}
	if result.CapabilitiesEmpty() {
		fmt.Fprintln(w, "  (none)")
	}
	fmt.Fprintln(w, "Negotiated payment handlers:")
	for _, h := range result.HandlerList() {
		fmt.Fprintf(w, "  ✓ %s\n", h.Name)
	}
	if result.HandlersEmpty() {
		fmt.Fprintln(w, "  (none)")
	}
	fmt.Fprintln(w)

	if out.CanProceed {
		fmt.Fprintf(w, "✓ %s\n", warning.Message())
	} else {
		fmt.Fprintf(w, "⚠ %s\n", warning.Message())
	}

	if f.profiles {
		for _, role := range []types.Role{types.RoleMerchant, types.RoleAgent} {
			p := out.Profiles[role.String()].(map[string]interface{})
			fmt.Fprintf(w, "\n%s profile (%s):\n", role, utils.ShortDigest(p["digest"].(string)))
			if err := printJSON(w, p["document"]); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinIDs[T ~string](ids []T) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}
