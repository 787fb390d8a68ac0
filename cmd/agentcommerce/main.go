// Command agentcommerce explores the UCP and ACP commerce protocols from
// the terminal: capability negotiation, checkout scenario replay, the
// integration cost calculator, the protocol comparison and the extension
// composer. It can also serve the same features as a JSON API.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitwit/agentcommerce"
	"github.com/vitwit/agentcommerce/logger"
	"github.com/vitwit/agentcommerce/metrics"
	"github.com/vitwit/agentcommerce/types"
	"github.com/vitwit/agentcommerce/utils"
)

// app carries state built once per invocation by the root command.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg      *types.Config
	log      logger.Logger
	recorder metrics.Recorder
	ac       *agentcommerce.AgentCommerce
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "agentcommerce",
		Short: "Explore the Universal Commerce Protocol and the Agentic Commerce Protocol",
		Long: `agentcommerce walks through how AI agents buy from merchants.

It negotiates capabilities and payment handlers between a merchant and an
agent profile, replays scripted checkout sessions state by state, compares
integration costs with and without a shared standard, and contrasts UCP
with ACP feature by feature.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ac != nil {
				_ = a.ac.Close()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (.yaml, .yml or .json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json or console")

	root.AddCommand(
		newNegotiateCmd(a),
		newStepperCmd(a),
		newCalcCmd(a),
		newCompareCmd(a),
		newComposeCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// init loads configuration and builds the logger, recorder and library instance.
func (a *app) init(cmd *cobra.Command) error {
	cfg := types.DefaultConfig()
	if a.cfgFile != "" {
		loaded, err := utils.LoadConfig(a.cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		if !logger.IsLevel(a.logLevel) {
			return types.Errorf(types.ErrInvalidConfig, "invalid log level: %s", a.logLevel)
		}
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}

	log, err := logger.NewZapLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}
	if cfg.EnableMetrics {
		rec = metrics.NewPrometheusRecorder()
	}

	a.cfg = cfg
	a.log = log
	a.recorder = rec
	a.ac = agentcommerce.New(cfg, agentcommerce.WithLogger(log), agentcommerce.WithMetrics(rec))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), agentcommerce.GetVersion())
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := utils.NormalizeJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
