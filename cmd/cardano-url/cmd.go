package main

import (
	"fmt"

	"github.com/singnet/cardano-sdk-go/pkg/config"
	"github.com/singnet/cardano-sdk-go/pkg/sdk"
	"github.com/spf13/cobra"
)

const (
	configF         = "config"
	networkF        = "network"
	projectIDF      = "project-id"
	debugF          = "debug"
	countF          = "count"
	pageF           = "page"
	orderF          = "order"
	fromF           = "from"
	toF             = "to"
	requestTimeoutF = "request-timeout"

	configFlagUsage = "The YAML configuration file. Environment variables (CARDANO_*) and flags " +
		"take precedence over values in the file."
	networkUsage = "Network name (mainnet, testnet) or a custom API endpoint URL. Default: mainnet."
	countUsage   = "Number of results per page (0-255)."
	pageUsage    = "Page index to fetch."
	orderUsage   = "Result ordering: asc or desc."
	fromUsage    = "Lower bound of the listing range, e.g. a block height or height:index."
	toUsage      = "Upper bound of the listing range."
)

// Version is set via ldflags during build.
var Version = "dev"

// NewCmd returns the cardano-url command. It prints the request URL for the
// optional API path argument under the resolved configuration.
func NewCmd() *cobra.Command {
	var (
		cfgFile string
		order   config.QueryOrder
	)

	cmd := &cobra.Command{
		Use:     "cardano-url [path]",
		Short:   "Build Cardano API request URLs from network and query settings.",
		Version: Version,
		Args:    cobra.MaximumNArgs(1),

		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&cfgFile, configF, "", configFlagUsage)
	cmd.Flags().String(networkF, "", networkUsage)
	cmd.Flags().String(projectIDF, "", "Blockfrost project ID.")
	cmd.Flags().Bool(debugF, false, "Enable debug logging.")
	cmd.Flags().Uint8(countF, 0, countUsage)
	cmd.Flags().Uint64(pageF, 0, pageUsage)
	cmd.Flags().Var(&order, orderF, orderUsage)
	cmd.Flags().String(fromF, "", fromUsage)
	cmd.Flags().String(toF, "", toUsage)
	cmd.Flags().Duration(requestTimeoutF, 0, "Per-request timeout handed to the HTTP layer; not used when building URLs. Default: 30s.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return err
		}

		core, err := sdk.NewSDK(cfg)
		if err != nil {
			return err
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		u, err := core.RequestURL(path)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
		return err
	}

	return cmd
}
