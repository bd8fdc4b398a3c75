// Command lex-resource-invoke runs a Lex custom resource handler
// locally against a CloudFormation event stored in a file.
//
// Usage:
//
//	lex-resource-invoke bot create-event.yaml
//	lex-resource-invoke intent update-event.json --log-level debug
//
// The handler talks to the Lex account configured in the environment,
// but the CloudFormation response is printed instead of being sent to
// the event's ResponseURL.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	cfncustomresource "github.com/MinneapolisStarTribune/cfn-lex-resource-go"
	"github.com/MinneapolisStarTribune/cfn-lex-resource-go/lexresource"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "lex-resource-invoke <bot|intent|slot-type> <event-file>",
		Short: "Run a Lex custom resource handler against a CloudFormation event file",
		Long: `lex-resource-invoke reads a CloudFormation custom resource event from a
YAML or JSON file, runs the bot, intent or slot type handler on it, and prints the
response that would have been sent to CloudFormation.

Examples:
    lex-resource-invoke bot create-bot.yaml
    lex-resource-invoke intent update-intent.json --log-level debug`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoke(cmd.Context(), args[0], args[1], logLevel, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default from LOG_LEVEL)")

	return cmd
}

func runInvoke(ctx context.Context, kind, path, logLevel string, out, logOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := lexresource.LoadConfig()
	if err != nil {
		return err
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	logger := cfg.NewLogger(logOut)

	req, err := loadEvent(path, out)
	if err != nil {
		return err
	}
	req.Ctx = ctx
	req.Logger = logger

	client, err := cfg.NewClient(ctx)
	if err != nil {
		return err
	}
	res, err := lexresource.New(kind, client, logger)
	if err != nil {
		return err
	}

	if err := req.Try(cfncustomresource.Handler(res)); err != nil {
		return fmt.Errorf("%s handler failed: %w", res.Kind(), err)
	}
	return nil
}
