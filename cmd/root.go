package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/threefoldtech/stellar-examples/client"
	"github.com/threefoldtech/stellar-examples/config"
	"github.com/threefoldtech/stellar-examples/errors"
	"github.com/threefoldtech/stellar-examples/exception"
	"github.com/threefoldtech/stellar-examples/jsonx"
	"github.com/threefoldtech/stellar-examples/logx"
)

// RootConfig holds the global flags and the configuration resolved from them.
type RootConfig struct {
	ConfigFile string
	Network    string
	Keystore   string
	Verbose    bool

	cfg *config.Config
}

// newStellarClient is swapped out by tests to avoid touching the network.
var newStellarClient = client.NewClient

func newRootCmd() *cobra.Command {
	rootConfig := &RootConfig{}

	rootCmd := &cobra.Command{
		Use:   "stellarx",
		Short: "Stellar network command line examples",
		Long: `Command line examples for basic interactions with the Stellar network:
generating keypairs, funding and activating accounts, checking account state,
transferring assets and establishing trustlines.

Every command performs a single request against Horizon or friendbot.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.SetVerbose(rootConfig.Verbose)

			cfg, err := config.Load(rootConfig.ConfigFile, rootConfig.Network)
			if err != nil {
				return errors.WrapError(errors.ErrCodeInvalidRequest, "invalid configuration", err)
			}
			if cmd.Flags().Changed("keystore") {
				cfg.Keystore = rootConfig.Keystore
			}
			rootConfig.cfg = cfg
			logx.Debug("CMD", "running ", cmd.CommandPath(), " against ", cfg.HorizonURL)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&rootConfig.ConfigFile, "config", "c", "", "config file (yaml, toml or ini)")
	rootCmd.PersistentFlags().StringVarP(&rootConfig.Network, "network", "n", "", "network to use: "+strings.Join(config.NetworkNames(), "|")+" (default testnet)")
	rootCmd.PersistentFlags().StringVar(&rootConfig.Keystore, "keystore", config.DefaultKeystorePath, "keystore file with named accounts")
	rootCmd.PersistentFlags().BoolVarP(&rootConfig.Verbose, "verbose", "v", false, "write debug lines to the log file")

	rootCmd.AddCommand(
		newCreateKeypairCmd(rootConfig),
		newFundCmd(rootConfig),
		newCheckAccountCmd(rootConfig),
		newActivateCmd(rootConfig),
		newTransferCmd(rootConfig),
		newTrustlineCmd(rootConfig),
		newDeriveCmd(rootConfig),
		newAccountsCmd(rootConfig),
		newVersionCmd(rootConfig),
	)
	return rootCmd
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := exception.SafeRun("stellarx", func() error {
		return rootCmd.ExecuteContext(ctx)
	})
	if err != nil {
		logx.Error("CMD", "Command execution failed: ", err)
		reportError(stdout, stderr, err)
		return 1
	}
	return 0
}

var closeLogger = logx.Close

func Execute() {
	code := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	closeLog(os.Stderr)
	os.Exit(code)
}

func closeLog(stderr io.Writer) {
	if err := closeLogger(); err != nil {
		fmt.Fprintf(stderr, "Warning: failed to close log file: %v\n", err)
	}
}

// reportError prints a failure the way the user needs to see it. Friendbot
// rejections print the response body and rejected transactions print the
// horizon problem on stdout, everything else goes to stderr.
func reportError(stdout, stderr io.Writer, err error) {
	ce, ok := errors.AsClientError(err)
	if !ok {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if !strings.Contains(err.Error(), "unknown command") {
			fmt.Fprintln(stderr, "Run 'stellarx --help' for usage.")
		}
		return
	}

	switch ce.Code {
	case errors.ErrCodeFriendbotRejected:
		if pretty, ok := jsonx.Pretty(ce.Body); ok {
			fmt.Fprintln(stdout, pretty)
		} else {
			fmt.Fprintln(stdout, string(ce.Body))
		}
	case errors.ErrCodeBadRequest:
		fmt.Fprintf(stdout, "Transaction failed: %s\n", ce.Message)
		if ce.Detail != "" {
			fmt.Fprintf(stdout, "Detail: %s\n", ce.Detail)
		}
		if len(ce.ResultCodes) > 0 {
			fmt.Fprintf(stdout, "Result codes: %s\n", strings.Join(ce.ResultCodes, ", "))
		}
	default:
		fmt.Fprintf(stderr, "Error: %s\n", ce.Message)
		if ce.Detail != "" {
			fmt.Fprintf(stderr, "  %s\n", ce.Detail)
		}
	}
}
