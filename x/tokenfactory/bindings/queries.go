package bindings

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	bindingstypes "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

// CustomQuerier dispatches custom CosmWasm bindings queries.
func CustomQuerier(qp *QueryPlugin, metrics *Metrics) func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
		var contractQuery bindingstypes.TokenFactoryQuery
		if err := json.Unmarshal(request, &contractQuery); err != nil {
			metrics.observeQuery(variantInvalid, err)
			return nil, errorsmod.Wrap(sdkerrors.ErrJSONUnmarshal, err.Error())
		}

		bz, err := answer(ctx, qp, contractQuery)
		metrics.observeQuery(contractQuery.Variant(), err)
		if err != nil {
			logger(ctx).Debug("token factory query failed", "variant", contractQuery.Variant(), "err", err)
		}
		return bz, err
	}
}

func answer(ctx sdk.Context, qp *QueryPlugin, query bindingstypes.TokenFactoryQuery) ([]byte, error) {
	var (
		res interface{}
		err error
	)
	switch {
	case query.FullDenom != nil:
		res, err = qp.GetFullDenom(query.FullDenom.CreatorAddr, query.FullDenom.Subdenom)
	case query.Admin != nil:
		res, err = qp.GetDenomAdmin(ctx, query.Admin.Denom)
	case query.Metadata != nil:
		res, err = qp.GetMetadata(ctx, query.Metadata.Denom)
	case query.DenomsByCreator != nil:
		res, err = qp.GetDenomsByCreator(ctx, query.DenomsByCreator.Creator)
	case query.Params != nil:
		res, err = qp.GetParams(ctx)
	default:
		return nil, wasmvmtypes.UnsupportedRequest{Kind: "unknown token factory query variant"}
	}
	if err != nil {
		return nil, err
	}

	bz, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("failed to JSON marshal %s response: %w", query.Variant(), err)
	}
	return bz, nil
}

// ConvertSdkCoinsToCreationFees converts sdk type coins to denom creation fees.
func ConvertSdkCoinsToCreationFees(coins sdk.Coins) []bindingstypes.DenomCreationFee {
	fees := []bindingstypes.DenomCreationFee{}
	for _, coin := range coins {
		fees = append(fees, bindingstypes.DenomCreationFee{
			// Note: tokenfactory tokens have 18 decimal places, so 10^22 is common, no longer in u64 range
			Amount: sdkmath.NewUintFromBigInt(coin.Amount.BigInt()),
			Denom:  coin.Denom,
		})
	}
	return fees
}
