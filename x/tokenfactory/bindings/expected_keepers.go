package bindings

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

// TokenFactoryKeeper is the part of the tokenfactory module the bindings call
// into. The module owns all validation, admin enforcement and fee charging.
type TokenFactoryKeeper interface {
	CreateDenom(ctx sdk.Context, creatorAddr string, subdenom string) (newTokenDenom string, err error)
	ChangeAdmin(ctx sdk.Context, sender string, denom string, newAdmin string) error
	// Mint mints amount to the sender, who must be the denom admin.
	Mint(ctx sdk.Context, sender string, amount sdk.Coin) error
	Burn(ctx sdk.Context, sender string, amount sdk.Coin, burnFromAddress string) error
	ForceTransfer(ctx sdk.Context, sender string, amount sdk.Coin, fromAddress string, toAddress string) error

	// GetDenomAdmin returns "" for a denom without an admin.
	GetDenomAdmin(ctx sdk.Context, denom string) (string, error)
	GetDenomsFromCreator(ctx sdk.Context, creator string) []string
	GetDenomCreationFee(ctx sdk.Context) sdk.Coins
}

// BankKeeper defines the bank functionality the bindings need.
type BankKeeper interface {
	GetDenomMetaData(ctx sdk.Context, denom string) (banktypes.Metadata, bool)
	SetDenomMetaData(ctx sdk.Context, denomMetaData banktypes.Metadata)
	BlockedAddr(addr sdk.AccAddress) bool
	SendCoins(ctx sdk.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
}
