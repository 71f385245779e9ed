package querier

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	bindingstypes "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

// Querier performs one synchronous query against chain state. It is
// satisfied by wasmvmtypes.Querier.
type Querier interface {
	Query(request wasmvmtypes.QueryRequest, gasLimit uint64) ([]byte, error)
}

var _ Querier = (wasmvmtypes.Querier)(nil)

// QuerierWrapper exposes the TokenFactory custom queries as typed calls.
// Every failure, whether in transport or in decoding, is reported as
// bindingstypes.ErrQueryFailed.
type QuerierWrapper struct {
	querier  Querier
	gasLimit uint64
}

func NewQuerierWrapper(querier Querier, gasLimit uint64) QuerierWrapper {
	return QuerierWrapper{
		querier:  querier,
		gasLimit: gasLimit,
	}
}

func (w QuerierWrapper) FullDenom(subdenom string, creatorAddr sdk.AccAddress) (*bindingstypes.FullDenomResponse, error) {
	var res bindingstypes.FullDenomResponse
	if err := w.query(bindingstypes.FullDenomQuery(subdenom, creatorAddr), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (w QuerierWrapper) Admin(denom string) (*bindingstypes.AdminResponse, error) {
	var res bindingstypes.AdminResponse
	if err := w.query(bindingstypes.AdminQuery(denom), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (w QuerierWrapper) Metadata(denom string) (*bindingstypes.MetadataResponse, error) {
	var res bindingstypes.MetadataResponse
	if err := w.query(bindingstypes.MetadataQuery(denom), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (w QuerierWrapper) DenomsByCreator(creator sdk.AccAddress) (*bindingstypes.DenomsByCreatorResponse, error) {
	var res bindingstypes.DenomsByCreatorResponse
	if err := w.query(bindingstypes.DenomsByCreatorQuery(creator), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (w QuerierWrapper) Params() (*bindingstypes.TokenParamsResponse, error) {
	var res bindingstypes.TokenParamsResponse
	if err := w.query(bindingstypes.ParamsQuery(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (w QuerierWrapper) query(query bindingstypes.TokenFactoryQuery, res interface{}) error {
	request, err := query.ToQueryRequest()
	if err != nil {
		return errorsmod.Wrap(bindingstypes.ErrQueryFailed, err.Error())
	}
	bz, err := w.querier.Query(request, w.gasLimit)
	if err != nil {
		return errorsmod.Wrap(bindingstypes.ErrQueryFailed, err.Error())
	}
	if err := json.Unmarshal(bz, res); err != nil {
		return errorsmod.Wrapf(bindingstypes.ErrQueryFailed, "%s: %s", query.Variant(), err)
	}
	return nil
}
