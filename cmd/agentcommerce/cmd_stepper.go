package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vitwit/agentcommerce/internal/tui"
	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/stepper"
	"github.com/vitwit/agentcommerce/utils"
)

func newStepperCmd(a *app) *cobra.Command {
	var (
		scenarioName string
		plain        bool
		style        string
	)

	cmd := &cobra.Command{
		Use:   "stepper",
		Short: "Replay a scripted checkout session state by state",
		Long: `Opens an interactive stepper over a scripted checkout session.

Keys: ←/h previous, →/l next, r reset, tab switch scenario, 1-9 jump, q quit.

With --plain the whole scenario is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := a.ac.NewStepper()
			if cmd.Flags().Changed("scenario") {
				name, err := utils.ParseScenarioName(scenarioName)
				if err != nil {
					return err
				}
				if err := ctrl.SelectScenario(name); err != nil {
					return err
				}
			}

			if plain {
				return printScenario(cmd.OutOrStdout(), ctrl, style)
			}
			return tui.Run(ctrl)
		},
	}

	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "scenario to start with: "+scenarioNames())
	cmd.Flags().BoolVar(&plain, "plain", false, "print every step instead of opening the interactive view")
	cmd.Flags().StringVar(&style, "style", "auto", "markdown style for --plain: auto, dark, light, notty")
	return cmd
}

// printScenario walks the controller from the first to the last step.
func printScenario(w io.Writer, ctrl *stepper.Controller, style string) error {
	ctrl.Reset()
	var md strings.Builder
	for {
		snap := ctrl.Snapshot()
		md.WriteString(stepMarkdown(snap))
		if ctrl.AtEnd() {
			break
		}
		ctrl.Next()
	}

	out, err := renderMarkdown(md.String(), style)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func stepMarkdown(snap stepper.Snapshot) string {
	var sb strings.Builder
	step := snap.Step
	if snap.Index == 0 {
		sb.WriteString(fmt.Sprintf("# %s\n\n", snap.Title))
	}
	sb.WriteString(fmt.Sprintf("## %d/%d %s", snap.Index+1, snap.Total, step.Title))
	if step.Status != "" {
		sb.WriteString(fmt.Sprintf(" `%s`", step.Status))
	}
	sb.WriteString("\n\n")
	if step.Actor != "" {
		sb.WriteString("*" + step.Actor + "*\n\n")
	}
	sb.WriteString(step.Description + "\n\n")
	if step.Prompt != "" {
		sb.WriteString("> \"" + step.Prompt + "\"\n\n")
	}
	if step.WhatToDo != "" {
		sb.WriteString("**What to do:** " + step.WhatToDo + "\n\n")
	}
	lang := "http"
	if !step.Request.IsHTTP() {
		lang = step.Request.Language
	}
	sb.WriteString("```" + lang + "\n" + tui.RequestText(step.Request) + "\n```\n\n")
	if step.Response != "" {
		sb.WriteString("```json\n" + step.Response + "\n```\n\n")
	}
	if step.Note != "" {
		sb.WriteString(step.Note + "\n\n")
	}
	return sb.String()
}

func renderMarkdown(md, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(md)
}

// scenarioNames lists the known scenarios for flag help.
func scenarioNames() string {
	names := scenario.Names()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
