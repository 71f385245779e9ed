package bindings

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	bindingstypes "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

type QueryPlugin struct {
	bankKeeper         BankKeeper
	tokenFactoryKeeper TokenFactoryKeeper
}

// NewQueryPlugin returns a reference to a new QueryPlugin.
func NewQueryPlugin(b BankKeeper, tfk TokenFactoryKeeper) *QueryPlugin {
	return &QueryPlugin{
		bankKeeper:         b,
		tokenFactoryKeeper: tfk,
	}
}

// GetFullDenom is a query to get the full denom of a creator's subdenom.
func (qp QueryPlugin) GetFullDenom(creator string, subdenom string) (*bindingstypes.FullDenomResponse, error) {
	fullDenom, err := GetFullDenom(creator, subdenom)
	if err != nil {
		return nil, errorsmod.Wrap(err, "full denom query")
	}
	return &bindingstypes.FullDenomResponse{Denom: fullDenom}, nil
}

// GetDenomAdmin is a query to get denom admin.
func (qp QueryPlugin) GetDenomAdmin(ctx sdk.Context, denom string) (*bindingstypes.AdminResponse, error) {
	admin, err := qp.tokenFactoryKeeper.GetDenomAdmin(ctx, denom)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "failed to get admin for denom: %s", denom)
	}
	return &bindingstypes.AdminResponse{Admin: admin}, nil
}

func (qp QueryPlugin) GetDenomsByCreator(ctx sdk.Context, creator string) (*bindingstypes.DenomsByCreatorResponse, error) {
	if _, err := parseAddress(creator); err != nil {
		return nil, err
	}
	denoms := qp.tokenFactoryKeeper.GetDenomsFromCreator(ctx, creator)
	if denoms == nil {
		denoms = []string{}
	}
	return &bindingstypes.DenomsByCreatorResponse{Denoms: denoms}, nil
}

func (qp QueryPlugin) GetMetadata(ctx sdk.Context, denom string) (*bindingstypes.MetadataResponse, error) {
	metadata, found := qp.bankKeeper.GetDenomMetaData(ctx, denom)
	var parsed *bindingstypes.DenomMetadata
	if found {
		parsed = SdkMetadataToWasm(metadata)
	}
	return &bindingstypes.MetadataResponse{Metadata: parsed}, nil
}

func (qp QueryPlugin) GetParams(ctx sdk.Context) (*bindingstypes.TokenParamsResponse, error) {
	fee := qp.tokenFactoryKeeper.GetDenomCreationFee(ctx)
	return &bindingstypes.TokenParamsResponse{
		Params: bindingstypes.TokenParams{
			DenomCreationFee: ConvertSdkCoinsToCreationFees(fee),
		},
	}, nil
}
