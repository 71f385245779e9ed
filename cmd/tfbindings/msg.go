package main

import (
	"encoding/json"
	"fmt"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	bindings "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

const flagMetadata = "metadata"

func (c *cli) msgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "msg",
		Short: "Print the CosmosMsg a contract emits for a token factory message",
	}

	createDenomCmd := &cobra.Command{
		Use:   "create-denom [subdenom]",
		Short: "Create a denom owned by the calling contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var metadata *bindings.DenomMetadata
			if path, _ := cmd.Flags().GetString(flagMetadata); path != "" {
				m, err := readMetadata(path)
				if err != nil {
					return err
				}
				metadata = &m
			}
			return c.printMsg(cmd, bindings.CreateDenomMsg(args[0], metadata))
		},
	}
	createDenomCmd.Flags().String(flagMetadata, "", "JSON file with the denom metadata to set on creation")

	changeAdminCmd := &cobra.Command{
		Use:   "change-admin [denom] [new-admin]",
		Short: "Hand the admin rights of a denom to another account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			newAdmin, err := c.parseAddress(args[1], "new admin")
			if err != nil {
				return err
			}
			return c.printMsg(cmd, bindings.ChangeAdminMsg(args[0], newAdmin))
		},
	}

	mintCmd := &cobra.Command{
		Use:   "mint [denom] [amount] [recipient]",
		Short: "Mint an amount of a denom to a recipient",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := bindings.ParseAmount(args[1])
			if err != nil {
				return err
			}
			rcpt, err := c.parseAddress(args[2], "recipient")
			if err != nil {
				return err
			}
			return c.printMsg(cmd, bindings.MintTokensMsg(args[0], amount, rcpt))
		},
	}

	burnCmd := &cobra.Command{
		Use:   "burn [denom] [amount] [burn-from]",
		Short: "Burn an amount of a denom, from the contract unless burn-from is given",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := bindings.ParseAmount(args[1])
			if err != nil {
				return err
			}
			if len(args) == 2 {
				return c.printMsg(cmd, bindings.TokenFactoryMsg{BurnTokens: &bindings.BurnTokens{
					Denom:  args[0],
					Amount: amount,
				}})
			}
			from, err := c.parseAddress(args[2], "burn from address")
			if err != nil {
				return err
			}
			return c.printMsg(cmd, bindings.BurnTokensMsg(args[0], amount, from))
		},
	}

	setMetadataCmd := &cobra.Command{
		Use:   "set-metadata [metadata-file]",
		Short: "Set the metadata of the denom named by the metadata base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metadata, err := readMetadata(args[0])
			if err != nil {
				return err
			}
			return c.printMsg(cmd, bindings.SetMetadataMsg(metadata))
		},
	}

	forceTransferCmd := &cobra.Command{
		Use:   "force-transfer [denom] [amount] [from] [to]",
		Short: "Move an amount of a denom between two accounts as its admin",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := bindings.ParseAmount(args[1])
			if err != nil {
				return err
			}
			addrs := make([]sdk.AccAddress, 2)
			for i, name := range []string{"from address", "to address"} {
				if addrs[i], err = c.parseAddress(args[2+i], name); err != nil {
					return err
				}
			}
			return c.printMsg(cmd, bindings.ForceTransferMsg(args[0], addrs[0], addrs[1], amount))
		},
	}

	cmd.AddCommand(createDenomCmd, changeAdminCmd, mintCmd, burnCmd, setMetadataCmd, forceTransferCmd)
	return cmd
}

func (c *cli) printMsg(cmd *cobra.Command, msg bindings.TokenFactoryMsg) error {
	cosmosMsg, err := msg.ToCosmosMsg()
	if err != nil {
		return err
	}
	c.logger.Debug("built token factory msg", zap.String("variant", msg.Variant()))
	return c.print(cmd, cosmosMsg)
}

func readMetadata(path string) (bindings.DenomMetadata, error) {
	var metadata bindings.DenomMetadata
	bz, err := os.ReadFile(path)
	if err != nil {
		return metadata, err
	}
	if err := json.Unmarshal(bz, &metadata); err != nil {
		return metadata, fmt.Errorf("invalid metadata in %s: %w", path, err)
	}
	return metadata, nil
}
