package bindings

import (
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	bindingstypes "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

// WasmMetadataToSdk converts contract metadata into bank metadata.
func WasmMetadataToSdk(metadata bindingstypes.DenomMetadata) banktypes.Metadata {
	units := make([]*banktypes.DenomUnit, len(metadata.DenomUnits))
	for i, u := range metadata.DenomUnits {
		units[i] = &banktypes.DenomUnit{Denom: u.Denom, Exponent: u.Exponent, Aliases: u.Aliases}
	}
	return banktypes.Metadata{
		Description: metadata.Description,
		DenomUnits:  units,
		Base:        metadata.Base,
		Display:     metadata.Display,
		Name:        metadata.Name,
		Symbol:      metadata.Symbol,
	}
}

// SdkMetadataToWasm converts bank metadata into the shape contracts read.
func SdkMetadataToWasm(metadata banktypes.Metadata) *bindingstypes.DenomMetadata {
	units := make([]bindingstypes.DenomUnit, 0, len(metadata.DenomUnits))
	for _, u := range metadata.DenomUnits {
		if u == nil {
			continue
		}
		units = append(units, bindingstypes.DenomUnit{Denom: u.Denom, Exponent: u.Exponent, Aliases: u.Aliases})
	}
	return &bindingstypes.DenomMetadata{
		Description: metadata.Description,
		DenomUnits:  units,
		Base:        metadata.Base,
		Display:     metadata.Display,
		Name:        metadata.Name,
		Symbol:      metadata.Symbol,
	}
}
