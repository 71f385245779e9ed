package types

import (
	"encoding/json"

	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Wire tags of the TokenFactoryQuery variants.
const (
	QueryFullDenom       = "full_denom"
	QueryAdmin           = "admin"
	QueryMetadata        = "metadata"
	QueryDenomsByCreator = "denoms_by_creator"
	QueryParams          = "params"
)

var queryVariants = []string{
	QueryFullDenom, QueryAdmin, QueryMetadata, QueryDenomsByCreator, QueryParams,
}

// TokenFactoryQuery is the custom query a contract sends to read TokenFactory
// state. Exactly one field is set.
type TokenFactoryQuery struct {
	// Given a subdenom created by the address `creator_addr` via
	// `TokenFactoryMsg::CreateDenom`, returns the full denom as used by
	// `BankMsg::Send`.
	FullDenom       *FullDenom       `json:"full_denom,omitempty"`
	Admin           *Admin           `json:"admin,omitempty"`
	Metadata        *Metadata        `json:"metadata,omitempty"`
	DenomsByCreator *DenomsByCreator `json:"denoms_by_creator,omitempty"`
	Params          *Params          `json:"params,omitempty"`
}

// query types

type FullDenom struct {
	Subdenom    string `json:"subdenom"`
	CreatorAddr string `json:"creator_addr"`
}

type Admin struct {
	Denom string `json:"denom"`
}

type Metadata struct {
	Denom string `json:"denom"`
}

type DenomsByCreator struct {
	Creator string `json:"creator"`
}

type Params struct{}

// responses

type FullDenomResponse struct {
	Denom string `json:"denom"`
}

// AdminResponse carries an empty Admin when the denom has no admin.
type AdminResponse struct {
	Admin string `json:"admin"`
}

// MetadataResponse carries a nil Metadata when the denom has none.
type MetadataResponse struct {
	Metadata *DenomMetadata `json:"metadata,omitempty"`
}

type DenomsByCreatorResponse struct {
	Denoms []string `json:"denoms"`
}

type TokenParamsResponse struct {
	Params TokenParams `json:"params"`
}

func FullDenomQuery(subdenom string, creatorAddr sdk.AccAddress) TokenFactoryQuery {
	return TokenFactoryQuery{FullDenom: &FullDenom{
		Subdenom:    subdenom,
		CreatorAddr: creatorAddr.String(),
	}}
}

func AdminQuery(denom string) TokenFactoryQuery {
	return TokenFactoryQuery{Admin: &Admin{Denom: denom}}
}

func MetadataQuery(denom string) TokenFactoryQuery {
	return TokenFactoryQuery{Metadata: &Metadata{Denom: denom}}
}

func DenomsByCreatorQuery(creator sdk.AccAddress) TokenFactoryQuery {
	return TokenFactoryQuery{DenomsByCreator: &DenomsByCreator{Creator: creator.String()}}
}

func ParamsQuery() TokenFactoryQuery {
	return TokenFactoryQuery{Params: &Params{}}
}

// Variant returns the wire tag of the variant set on q, or "" if none is.
func (q TokenFactoryQuery) Variant() string {
	switch {
	case q.FullDenom != nil:
		return QueryFullDenom
	case q.Admin != nil:
		return QueryAdmin
	case q.Metadata != nil:
		return QueryMetadata
	case q.DenomsByCreator != nil:
		return QueryDenomsByCreator
	case q.Params != nil:
		return QueryParams
	default:
		return ""
	}
}

// ToQueryRequest wraps q into the custom variant of the outbound wasm query.
func (q TokenFactoryQuery) ToQueryRequest() (wasmvmtypes.QueryRequest, error) {
	bz, err := json.Marshal(q)
	if err != nil {
		return wasmvmtypes.QueryRequest{}, err
	}
	return wasmvmtypes.QueryRequest{Custom: bz}, nil
}

func (q TokenFactoryQuery) MarshalJSON() ([]byte, error) {
	type tokenFactoryQuery TokenFactoryQuery
	set := countSet(
		q.FullDenom != nil,
		q.Admin != nil,
		q.Metadata != nil,
		q.DenomsByCreator != nil,
		q.Params != nil,
	)
	return encodeUnion(tokenFactoryQuery(q), set)
}

func (q *TokenFactoryQuery) UnmarshalJSON(bz []byte) error {
	type tokenFactoryQuery TokenFactoryQuery
	*q = TokenFactoryQuery{}
	return decodeUnion(bz, (*tokenFactoryQuery)(q), queryVariants...)
}

func (f *FullDenom) UnmarshalJSON(bz []byte) error {
	type fullDenom FullDenom
	return decodeStrict(bz, (*fullDenom)(f), "subdenom", "creator_addr")
}

func (a *Admin) UnmarshalJSON(bz []byte) error {
	type admin Admin
	return decodeStrict(bz, (*admin)(a), "denom")
}

func (m *Metadata) UnmarshalJSON(bz []byte) error {
	type metadata Metadata
	return decodeStrict(bz, (*metadata)(m), "denom")
}

func (d *DenomsByCreator) UnmarshalJSON(bz []byte) error {
	type denomsByCreator DenomsByCreator
	return decodeStrict(bz, (*denomsByCreator)(d), "creator")
}

func (r *FullDenomResponse) UnmarshalJSON(bz []byte) error {
	type fullDenomResponse FullDenomResponse
	return decodeStrict(bz, (*fullDenomResponse)(r), "denom")
}

func (r *AdminResponse) UnmarshalJSON(bz []byte) error {
	type adminResponse AdminResponse
	return decodeStrict(bz, (*adminResponse)(r), "admin")
}

func (r *MetadataResponse) UnmarshalJSON(bz []byte) error {
	type metadataResponse MetadataResponse
	return decodeStrict(bz, (*metadataResponse)(r))
}

func (r DenomsByCreatorResponse) MarshalJSON() ([]byte, error) {
	type denomsByCreatorResponse DenomsByCreatorResponse
	if r.Denoms == nil {
		r.Denoms = []string{}
	}
	return json.Marshal(denomsByCreatorResponse(r))
}

func (r *DenomsByCreatorResponse) UnmarshalJSON(bz []byte) error {
	type denomsByCreatorResponse DenomsByCreatorResponse
	return decodeStrict(bz, (*denomsByCreatorResponse)(r), "denoms")
}

func (r *TokenParamsResponse) UnmarshalJSON(bz []byte) error {
	type tokenParamsResponse TokenParamsResponse
	return decodeStrict(bz, (*tokenParamsResponse)(r), "params")
}
