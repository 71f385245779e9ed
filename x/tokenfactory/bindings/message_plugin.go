package bindings

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	bindingstypes "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

// variantInvalid labels custom payloads that did not decode.
const variantInvalid = "invalid"

// CreateDenomResponse is returned as message data by a successful CreateDenom.
type CreateDenomResponse struct {
	NewTokenDenom string `json:"new_token_denom"`
}

// CustomMessageDecorator returns decorator for custom CosmWasm bindings messages
func CustomMessageDecorator(bank BankKeeper, tokenFactory TokenFactoryKeeper, metrics *Metrics) func(wasmkeeper.Messenger) wasmkeeper.Messenger {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return func(next wasmkeeper.Messenger) wasmkeeper.Messenger {
		return &CustomMessenger{
			next:         next,
			bank:         bank,
			tokenFactory: tokenFactory,
			metrics:      metrics,
		}
	}
}

// CustomMessenger executes token factory messages on behalf of the calling
// contract and hands every other message to the next messenger.
type CustomMessenger struct {
	next         wasmkeeper.Messenger
	bank         BankKeeper
	tokenFactory TokenFactoryKeeper
	metrics      *Metrics
}

var _ wasmkeeper.Messenger = (*CustomMessenger)(nil)

// DispatchMsg executes on the contractMsg.
func (m *CustomMessenger) DispatchMsg(ctx sdk.Context, contractAddr sdk.AccAddress, contractIBCPortID string, msg wasmvmtypes.CosmosMsg) ([]sdk.Event, [][]byte, error) {
	if msg.Custom == nil {
		return m.next.DispatchMsg(ctx, contractAddr, contractIBCPortID, msg)
	}

	var tfMsg bindingstypes.TokenFactoryMsg
	if err := json.Unmarshal(msg.Custom, &tfMsg); err != nil {
		m.metrics.observeMsg(variantInvalid, err)
		return nil, nil, errorsmod.Wrap(err, "token factory msg")
	}

	data, err := m.dispatch(ctx, contractAddr, tfMsg)
	m.metrics.observeMsg(tfMsg.Variant(), err)
	if err != nil {
		logger(ctx).Debug("token factory msg failed", "variant", tfMsg.Variant(), "contract", contractAddr.String(), "err", err)
		return nil, nil, err
	}
	if data == nil {
		return nil, nil, nil
	}
	return nil, [][]byte{data}, nil
}

func (m *CustomMessenger) dispatch(ctx sdk.Context, contract sdk.AccAddress, msg bindingstypes.TokenFactoryMsg) ([]byte, error) {
	switch {
	case msg.CreateDenom != nil:
		data, err := m.createDenom(ctx, contract, *msg.CreateDenom)
		return data, errorsmod.Wrap(err, "perform create denom")
	case msg.ChangeAdmin != nil:
		return nil, errorsmod.Wrap(m.changeAdmin(ctx, contract, *msg.ChangeAdmin), "failed to change admin")
	case msg.MintTokens != nil:
		return nil, errorsmod.Wrap(m.mint(ctx, contract, *msg.MintTokens), "perform mint")
	case msg.BurnTokens != nil:
		return nil, errorsmod.Wrap(m.burn(ctx, contract, *msg.BurnTokens), "perform burn")
	case msg.SetMetadata != nil:
		return nil, errorsmod.Wrap(m.setMetadata(ctx, contract, *msg.SetMetadata), "perform set metadata")
	case msg.ForceTransfer != nil:
		return nil, errorsmod.Wrap(m.forceTransfer(ctx, contract, *msg.ForceTransfer), "perform force transfer")
	default:
		return nil, errorsmod.Wrap(sdkerrors.ErrUnknownRequest, "unknown token factory msg variant")
	}
}

// createDenom creates the denom and, when metadata is attached, sets it in the
// same message. The data returned is a JSON CreateDenomResponse.
func (m *CustomMessenger) createDenom(ctx sdk.Context, contract sdk.AccAddress, msg bindingstypes.CreateDenom) ([]byte, error) {
	denom, err := m.tokenFactory.CreateDenom(ctx, contract.String(), msg.Subdenom)
	if err != nil {
		return nil, errorsmod.Wrap(err, "creating denom")
	}
	if msg.Metadata != nil {
		if err := m.applyMetadata(ctx, contract, denom, *msg.Metadata); err != nil {
			return nil, errorsmod.Wrap(err, "setting metadata")
		}
	}
	return json.Marshal(CreateDenomResponse{NewTokenDenom: denom})
}

// changeAdmin forwards an empty new admin untouched; the module decides
// whether a denom may be left without an admin.
func (m *CustomMessenger) changeAdmin(ctx sdk.Context, contract sdk.AccAddress, msg bindingstypes.ChangeAdmin) error {
	if msg.NewAdminAddress != "" {
		if _, err := parseAddress(msg.NewAdminAddress); err != nil {
			return err
		}
	}
	return errorsmod.Wrap(
		m.tokenFactory.ChangeAdmin(ctx, contract.String(), msg.Denom, msg.NewAdminAddress),
		"failed changing admin from message",
	)
}

// mint creates the coins in the contract's balance through the token factory
// and forwards them to the recipient. Blocked module accounts never receive.
func (m *CustomMessenger) mint(ctx sdk.Context, contract sdk.AccAddress, msg bindingstypes.MintTokens) error {
	rcpt, err := parseAddress(msg.MintToAddress)
	if err != nil {
		return err
	}
	if m.bank.BlockedAddr(rcpt) {
		return errorsmod.Wrapf(sdkerrors.ErrUnauthorized, "minting coins to blocked address %s", rcpt)
	}

	coin := sdk.Coin{Denom: msg.Denom, Amount: toSdkInt(msg.Amount)}
	if err := m.tokenFactory.Mint(ctx, contract.String(), coin); err != nil {
		return errorsmod.Wrap(err, "minting coins from message")
	}
	if err := m.bank.SendCoins(ctx, contract, rcpt, sdk.NewCoins(coin)); err != nil {
		return errorsmod.Wrap(err, "sending newly minted coins from message")
	}
	return nil
}

// burn defaults the burn source to the contract itself.
func (m *CustomMessenger) burn(ctx sdk.Context, contract sdk.AccAddress, msg bindingstypes.BurnTokens) error {
	from := contract.String()
	if msg.BurnFromAddress != "" {
		if _, err := parseAddress(msg.BurnFromAddress); err != nil {
			return err
		}
		from = msg.BurnFromAddress
	}

	coin := sdk.Coin{Denom: msg.Denom, Amount: toSdkInt(msg.Amount)}
	return errorsmod.Wrap(
		m.tokenFactory.Burn(ctx, contract.String(), coin, from),
		"burning coins from message",
	)
}

func (m *CustomMessenger) forceTransfer(ctx sdk.Context, contract sdk.AccAddress, msg bindingstypes.ForceTransfer) error {
	for _, addr := range []string{msg.FromAddress, msg.ToAddress} {
		if _, err := parseAddress(addr); err != nil {
			return err
		}
	}

	coin := sdk.Coin{Denom: msg.Denom, Amount: toSdkInt(msg.Amount)}
	return errorsmod.Wrap(
		m.tokenFactory.ForceTransfer(ctx, contract.String(), coin, msg.FromAddress, msg.ToAddress),
		"force transferring from message",
	)
}

// setMetadata targets the denom named by the metadata base.
func (m *CustomMessenger) setMetadata(ctx sdk.Context, contract sdk.AccAddress, msg bindingstypes.SetMetadata) error {
	if msg.Metadata.Base == "" {
		return wasmvmtypes.InvalidRequest{Err: "metadata base is required"}
	}
	return m.applyMetadata(ctx, contract, msg.Metadata.Base, msg.Metadata)
}

// applyMetadata stores metadata for denom after checking that the contract is
// the denom admin. An empty base is filled with denom; any other base must
// match it.
func (m *CustomMessenger) applyMetadata(ctx sdk.Context, contract sdk.AccAddress, denom string, metadata bindingstypes.DenomMetadata) error {
	admin, err := m.tokenFactory.GetDenomAdmin(ctx, denom)
	if err != nil {
		return err
	}
	if admin != contract.String() {
		return wasmvmtypes.InvalidRequest{Err: "only admin can set metadata"}
	}

	switch metadata.Base {
	case "":
		metadata.Base = denom
	case denom:
	default:
		return wasmvmtypes.InvalidRequest{Err: "metadata base must equal the denom " + denom}
	}

	bankMetadata := WasmMetadataToSdk(metadata)
	if err := bankMetadata.Validate(); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	m.bank.SetDenomMetaData(ctx, bankMetadata)
	return nil
}

func toSdkInt(amount sdkmath.Uint) sdkmath.Int {
	return sdkmath.NewIntFromBigInt(amount.BigInt())
}

func logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/tokenfactory-bindings")
}
