package main

import (
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envPrefix = "TFBINDINGS"

	flagBech32Prefix = "bech32-prefix"
	flagLogLevel     = "log-level"

	defaultBech32Prefix = "wormhole"
)

// cli carries the state shared by all subcommands of one invocation.
type cli struct {
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCmd creates the tfbindings command tree.
func NewRootCmd() *cobra.Command {
	c := &cli{
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	rootCmd := &cobra.Command{
		Use:           "tfbindings",
		Short:         "Build and inspect token factory contract bindings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}

	globalFlagSet := pflag.NewFlagSet("global", pflag.ContinueOnError)
	globalFlagSet.String(flagBech32Prefix, defaultBech32Prefix, "Bech32 prefix of account addresses")
	globalFlagSet.String(flagLogLevel, "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().AddFlagSet(globalFlagSet)

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	if err := c.v.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		c.msgCmd(),
		c.queryCmd(),
		c.decodeCmd(),
	)
	return rootCmd
}

func (c *cli) init(cmd *cobra.Command) error {
	lvl, err := zap.ParseAtomicLevel(c.v.GetString(flagLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	c.logger = logger.Named("tfbindings")

	prefix := c.v.GetString(flagBech32Prefix)
	if prefix == "" {
		return fmt.Errorf("--%s must not be empty", flagBech32Prefix)
	}
	sdk.GetConfig().SetBech32PrefixForAccount(prefix, prefix+sdk.PrefixPublic)
	c.logger.Debug("configured address prefix", zap.String("prefix", prefix), zap.String("cmd", cmd.Name()))
	return nil
}

func (c *cli) parseAddress(arg string, name string) (sdk.AccAddress, error) {
	addr, err := sdk.AccAddressFromBech32(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", name, arg, err)
	}
	return addr, nil
}

func (c *cli) print(cmd *cobra.Command, v interface{}) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
