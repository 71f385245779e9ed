package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	bindings "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

// decodeKinds maps a decode kind to a constructor of the value it decodes into.
var decodeKinds = map[string]func() interface{}{
	"msg":               func() interface{} { return &bindings.TokenFactoryMsg{} },
	"query":             func() interface{} { return &bindings.TokenFactoryQuery{} },
	"full_denom":        func() interface{} { return &bindings.FullDenomResponse{} },
	"admin":             func() interface{} { return &bindings.AdminResponse{} },
	"metadata":          func() interface{} { return &bindings.MetadataResponse{} },
	"denoms_by_creator": func() interface{} { return &bindings.DenomsByCreatorResponse{} },
	"params":            func() interface{} { return &bindings.TokenParamsResponse{} },
}

func decodeKindNames() []string {
	names := make([]string, 0, len(decodeKinds))
	for name := range decodeKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *cli) decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [kind] [json]",
		Short: "Strictly decode a message, query or query response and print it normalized",
		Long: fmt.Sprintf("Kinds: %s. Pass - as json to read from stdin.",
			strings.Join(decodeKindNames(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			newValue, ok := decodeKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown kind %q, expected one of %s", args[0], strings.Join(decodeKindNames(), ", "))
			}

			bz := []byte(args[1])
			if args[1] == "-" {
				var err error
				if bz, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			v := newValue()
			if err := json.Unmarshal(bz, v); err != nil {
				c.logger.Debug("decode failed", zap.String("kind", args[0]), zap.Error(err))
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}
			return c.print(cmd, v)
		},
	}
}
