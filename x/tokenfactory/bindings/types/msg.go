package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Wire tags of the TokenFactoryMsg variants.
const (
	MsgCreateDenom   = "create_denom"
	MsgChangeAdmin   = "change_admin"
	MsgMintTokens    = "mint_tokens"
	MsgBurnTokens    = "burn_tokens"
	MsgSetMetadata   = "set_metadata"
	MsgForceTransfer = "force_transfer"
)

var msgVariants = []string{
	MsgCreateDenom, MsgChangeAdmin, MsgMintTokens, MsgBurnTokens, MsgSetMetadata, MsgForceTransfer,
}

// TokenFactoryMsg is the custom message a contract sends to call into the
// TokenFactory bindings. Exactly one field is set.
type TokenFactoryMsg struct {
	// Contracts can create denoms, namespaced under the contract's address.
	// A contract may create any number of independent sub-denoms.
	CreateDenom *CreateDenom `json:"create_denom,omitempty"`
	// Contracts can change the admin of a denom that they are the admin of.
	ChangeAdmin *ChangeAdmin `json:"change_admin,omitempty"`
	// Contracts can mint native tokens for an existing factory denom
	// that they are the admin of.
	MintTokens *MintTokens `json:"mint_tokens,omitempty"`
	// Contracts can burn native tokens for an existing factory denom
	// that they are the admin of.
	// Currently, the burn from address must be the admin contract.
	BurnTokens *BurnTokens `json:"burn_tokens,omitempty"`
	// Sets the metadata on a denom which the contract controls
	SetMetadata *SetMetadata `json:"set_metadata,omitempty"`
	// Forces a transfer of tokens from one address to another.
	ForceTransfer *ForceTransfer `json:"force_transfer,omitempty"`
}

// CreateDenom creates a new factory denom, of denomination:
// factory/{creating contract address}/{Subdenom}
// Subdenom can be of length at most 44 characters, in [0-9a-zA-Z./]
// The (creating contract address, subdenom) pair must be unique.
// The created denom's admin is the creating contract address,
// but this admin can be changed using the ChangeAdmin binding.
type CreateDenom struct {
	Subdenom string         `json:"subdenom"`
	Metadata *DenomMetadata `json:"metadata,omitempty"`
}

// ChangeAdmin changes the admin for a factory denom.
// If the NewAdminAddress is empty, the denom has no admin.
type ChangeAdmin struct {
	Denom           string `json:"denom"`
	NewAdminAddress string `json:"new_admin_address"`
}

type MintTokens struct {
	Denom         string       `json:"denom"`
	Amount        sdkmath.Uint `json:"amount"`
	MintToAddress string       `json:"mint_to_address"`
}

type BurnTokens struct {
	Denom           string       `json:"denom"`
	Amount          sdkmath.Uint `json:"amount"`
	BurnFromAddress string       `json:"burn_from_address"`
}

type SetMetadata struct {
	Metadata DenomMetadata `json:"metadata"`
}

type ForceTransfer struct {
	Denom       string       `json:"denom"`
	FromAddress string       `json:"from_address"`
	ToAddress   string       `json:"to_address"`
	Amount      sdkmath.Uint `json:"amount"`
}

func CreateDenomMsg(subdenom string, metadata *DenomMetadata) TokenFactoryMsg {
	return TokenFactoryMsg{CreateDenom: &CreateDenom{
		Subdenom: subdenom,
		Metadata: metadata,
	}}
}

func ChangeAdminMsg(denom string, newAdminAddress sdk.AccAddress) TokenFactoryMsg {
	return TokenFactoryMsg{ChangeAdmin: &ChangeAdmin{
		Denom:           denom,
		NewAdminAddress: newAdminAddress.String(),
	}}
}

func MintTokensMsg(denom string, amount sdkmath.Uint, mintToAddress sdk.AccAddress) TokenFactoryMsg {
	return TokenFactoryMsg{MintTokens: &MintTokens{
		Denom:         denom,
		Amount:        amount,
		MintToAddress: mintToAddress.String(),
	}}
}

func BurnTokensMsg(denom string, amount sdkmath.Uint, burnFromAddress sdk.AccAddress) TokenFactoryMsg {
	return TokenFactoryMsg{BurnTokens: &BurnTokens{
		Denom:           denom,
		Amount:          amount,
		BurnFromAddress: burnFromAddress.String(),
	}}
}

func SetMetadataMsg(metadata DenomMetadata) TokenFactoryMsg {
	return TokenFactoryMsg{SetMetadata: &SetMetadata{Metadata: metadata}}
}

func ForceTransferMsg(denom string, fromAddress, toAddress sdk.AccAddress, amount sdkmath.Uint) TokenFactoryMsg {
	return TokenFactoryMsg{ForceTransfer: &ForceTransfer{
		Denom:       denom,
		FromAddress: fromAddress.String(),
		ToAddress:   toAddress.String(),
		Amount:      amount,
	}}
}

// Variant returns the wire tag of the variant set on m, or "" if none is.
func (m TokenFactoryMsg) Variant() string {
	switch {
	case m.CreateDenom != nil:
		return MsgCreateDenom
	case m.ChangeAdmin != nil:
		return MsgChangeAdmin
	case m.MintTokens != nil:
		return MsgMintTokens
	case m.BurnTokens != nil:
		return MsgBurnTokens
	case m.SetMetadata != nil:
		return MsgSetMetadata
	case m.ForceTransfer != nil:
		return MsgForceTransfer
	default:
		return ""
	}
}

// ToCosmosMsg wraps m into the custom variant of the outbound wasm message.
func (m TokenFactoryMsg) ToCosmosMsg() (wasmvmtypes.CosmosMsg, error) {
	bz, err := json.Marshal(m)
	if err != nil {
		return wasmvmtypes.CosmosMsg{}, err
	}
	return wasmvmtypes.CosmosMsg{Custom: bz}, nil
}

func (m TokenFactoryMsg) MarshalJSON() ([]byte, error) {
	type tokenFactoryMsg TokenFactoryMsg
	set := countSet(
		m.CreateDenom != nil,
		m.ChangeAdmin != nil,
		m.MintTokens != nil,
		m.BurnTokens != nil,
		m.SetMetadata != nil,
		m.ForceTransfer != nil,
	)
	return encodeUnion(tokenFactoryMsg(m), set)
}

func (m *TokenFactoryMsg) UnmarshalJSON(bz []byte) error {
	type tokenFactoryMsg TokenFactoryMsg
	*m = TokenFactoryMsg{}
	return decodeUnion(bz, (*tokenFactoryMsg)(m), msgVariants...)
}

func (c *CreateDenom) UnmarshalJSON(bz []byte) error {
	type createDenom CreateDenom
	return decodeStrict(bz, (*createDenom)(c), "subdenom")
}

func (c *ChangeAdmin) UnmarshalJSON(bz []byte) error {
	type changeAdmin ChangeAdmin
	return decodeStrict(bz, (*changeAdmin)(c), "denom", "new_admin_address")
}

func (m *MintTokens) UnmarshalJSON(bz []byte) error {
	type mintTokens MintTokens
	return decodeStrictAmount(bz, (*mintTokens)(m), "denom", "amount", "mint_to_address")
}

func (b *BurnTokens) UnmarshalJSON(bz []byte) error {
	type burnTokens BurnTokens
	return decodeStrictAmount(bz, (*burnTokens)(b), "denom", "amount", "burn_from_address")
}

func (s *SetMetadata) UnmarshalJSON(bz []byte) error {
	type setMetadata SetMetadata
	return decodeStrict(bz, (*setMetadata)(s), "metadata")
}

func (f *ForceTransfer) UnmarshalJSON(bz []byte) error {
	type forceTransfer ForceTransfer
	return decodeStrictAmount(bz, (*forceTransfer)(f), "denom", "from_address", "to_address", "amount")
}
