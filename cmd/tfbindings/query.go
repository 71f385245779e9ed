package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	bindings "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

func (c *cli) queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Print the QueryRequest a contract sends for a token factory query",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "full-denom [creator] [subdenom]",
			Short: "Full denom a creator gets for a subdenom",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				creator, err := c.parseAddress(args[0], "creator")
				if err != nil {
					return err
				}
				return c.printQuery(cmd, bindings.FullDenomQuery(args[1], creator))
			},
		},
		&cobra.Command{
			Use:   "admin [denom]",
			Short: "Admin of a denom",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.printQuery(cmd, bindings.AdminQuery(args[0]))
			},
		},
		&cobra.Command{
			Use:   "metadata [denom]",
			Short: "Bank metadata of a denom",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.printQuery(cmd, bindings.MetadataQuery(args[0]))
			},
		},
		&cobra.Command{
			Use:   "denoms-by-creator [creator]",
			Short: "Denoms created by an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				creator, err := c.parseAddress(args[0], "creator")
				if err != nil {
					return err
				}
				return c.printQuery(cmd, bindings.DenomsByCreatorQuery(creator))
			},
		},
		&cobra.Command{
			Use:   "params",
			Short: "Token factory module parameters",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.printQuery(cmd, bindings.ParamsQuery())
			},
		},
	)
	return cmd
}

func (c *cli) printQuery(cmd *cobra.Command, query bindings.TokenFactoryQuery) error {
	request, err := query.ToQueryRequest()
	if err != nil {
		return err
	}
	c.logger.Debug("built token factory query", zap.String("variant", query.Variant()))
	return c.print(cmd, request)
}
