package bindings_test

import (
	"fmt"
	"testing"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	"github.com/cometbft/cometbft/crypto/ed25519"
	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	wasmbinding "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings"
	bindings "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

func RandomAccountAddress() sdk.AccAddress {
	return sdk.AccAddress(ed25519.GenPrivKey().PubKey().Address())
}

func RandomBech32AccountAddress() string {
	return RandomAccountAddress().String()
}

func testContext() sdk.Context {
	return sdk.Context{}.WithLogger(log.NewNopLogger())
}

// fakeBank keeps balances, metadata and blocked addresses in memory.
type fakeBank struct {
	balances map[string]sdk.Coins
	metadata map[string]banktypes.Metadata
	blocked  map[string]bool
}

func newFakeBank() *fakeBank {
	return &fakeBank{
		balances: map[string]sdk.Coins{},
		metadata: map[string]banktypes.Metadata{},
		blocked:  map[string]bool{},
	}
}

var _ wasmbinding.BankKeeper = (*fakeBank)(nil)

func (b *fakeBank) GetDenomMetaData(_ sdk.Context, denom string) (banktypes.Metadata, bool) {
	m, ok := b.metadata[denom]
	return m, ok
}

func (b *fakeBank) SetDenomMetaData(_ sdk.Context, m banktypes.Metadata) {
	b.metadata[m.Base] = m
}

func (b *fakeBank) BlockedAddr(addr sdk.AccAddress) bool {
	return b.blocked[addr.String()]
}

func (b *fakeBank) SendCoins(_ sdk.Context, from sdk.AccAddress, to sdk.AccAddress, amt sdk.Coins) error {
	remaining, hasNeg := b.balances[from.String()].SafeSub(amt...)
	if hasNeg {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", b.balances[from.String()], amt)
	}
	b.balances[from.String()] = remaining
	b.balances[to.String()] = b.balances[to.String()].Add(amt...)
	return nil
}

func (b *fakeBank) GetAllBalances(addr sdk.AccAddress) sdk.Coins {
	return b.balances[addr.String()]
}

// fakeTokenFactory mimics the tokenfactory keeper: admins per denom,
// denoms per creator, minting into the admin's balance.
type fakeTokenFactory struct {
	bank     *fakeBank
	admins   map[string]string
	creators map[string][]string
	fee      sdk.Coins
}

func newFakeTokenFactory(bank *fakeBank) *fakeTokenFactory {
	return &fakeTokenFactory{
		bank:     bank,
		admins:   map[string]string{},
		creators: map[string][]string{},
	}
}

var _ wasmbinding.TokenFactoryKeeper = (*fakeTokenFactory)(nil)

func (f *fakeTokenFactory) CreateDenom(ctx sdk.Context, creatorAddr string, subdenom string) (string, error) {
	denom, err := wasmbinding.GetFullDenom(creatorAddr, subdenom)
	if err != nil {
		return "", err
	}
	if _, found := f.bank.metadata[denom]; found {
		return "", fmt.Errorf("attempting to create a denom that already exists (has bank metadata)")
	}
	f.bank.SetDenomMetaData(ctx, banktypes.Metadata{
		DenomUnits: []*banktypes.DenomUnit{{Denom: denom, Exponent: 0}},
		Base:       denom,
	})
	f.admins[denom] = creatorAddr
	f.creators[creatorAddr] = append(f.creators[creatorAddr], denom)
	return denom, nil
}

func (f *fakeTokenFactory) requireAdmin(sender string, denom string) error {
	admin, ok := f.admins[denom]
	if !ok {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "denom does not exist: %s", denom)
	}
	if admin != sender {
		return sdkerrors.ErrUnauthorized
	}
	return nil
}

func (f *fakeTokenFactory) ChangeAdmin(_ sdk.Context, sender string, denom string, newAdmin string) error {
	if err := f.requireAdmin(sender, denom); err != nil {
		return err
	}
	f.admins[denom] = newAdmin
	return nil
}

func (f *fakeTokenFactory) Mint(_ sdk.Context, sender string, amount sdk.Coin) error {
	if err := f.requireAdmin(sender, amount.Denom); err != nil {
		return err
	}
	f.bank.balances[sender] = f.bank.balances[sender].Add(amount)
	return nil
}

func (f *fakeTokenFactory) Burn(_ sdk.Context, sender string, amount sdk.Coin, burnFromAddress string) error {
	if err := f.requireAdmin(sender, amount.Denom); err != nil {
		return err
	}
	remaining, hasNeg := f.bank.balances[burnFromAddress].SafeSub(amount)
	if hasNeg {
		return sdkerrors.ErrInsufficientFunds
	}
	f.bank.balances[burnFromAddress] = remaining
	return nil
}

func (f *fakeTokenFactory) ForceTransfer(ctx sdk.Context, sender string, amount sdk.Coin, fromAddress string, toAddress string) error {
	if err := f.requireAdmin(sender, amount.Denom); err != nil {
		return err
	}
	return f.bank.SendCoins(ctx, sdk.MustAccAddressFromBech32(fromAddress), sdk.MustAccAddressFromBech32(toAddress), sdk.NewCoins(amount))
}

func (f *fakeTokenFactory) GetDenomAdmin(_ sdk.Context, denom string) (string, error) {
	return f.admins[denom], nil
}

func (f *fakeTokenFactory) GetDenomsFromCreator(_ sdk.Context, creator string) []string {
	return f.creators[creator]
}

func (f *fakeTokenFactory) GetDenomCreationFee(_ sdk.Context) sdk.Coins {
	return f.fee
}

// recordingMessenger stands in for the default wasm messenger.
type recordingMessenger struct {
	dispatched []wasmvmtypes.CosmosMsg
}

func (r *recordingMessenger) DispatchMsg(_ sdk.Context, _ sdk.AccAddress, _ string, msg wasmvmtypes.CosmosMsg) ([]sdk.Event, [][]byte, error) {
	r.dispatched = append(r.dispatched, msg)
	return nil, nil, nil
}

type testEnv struct {
	ctx          sdk.Context
	bank         *fakeBank
	tokenFactory *fakeTokenFactory
	wrapped      *recordingMessenger
	messenger    *wasmbinding.CustomMessenger
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	bank := newFakeBank()
	tf := newFakeTokenFactory(bank)
	wrapped := &recordingMessenger{}

	messenger, ok := wasmbinding.CustomMessageDecorator(bank, tf, wasmbinding.NopMetrics())(wrapped).(*wasmbinding.CustomMessenger)
	require.True(t, ok)

	return &testEnv{
		ctx:          testContext(),
		bank:         bank,
		tokenFactory: tf,
		wrapped:      wrapped,
		messenger:    messenger,
	}
}

func (e *testEnv) execute(t *testing.T, contract sdk.AccAddress, msg bindings.TokenFactoryMsg) ([][]byte, error) {
	t.Helper()
	cosmosMsg, err := msg.ToCosmosMsg()
	require.NoError(t, err)
	_, data, err := e.messenger.DispatchMsg(e.ctx, contract, "", cosmosMsg)
	return data, err
}

func (e *testEnv) createDenom(t *testing.T, contract sdk.AccAddress, subdenom string) string {
	t.Helper()
	data, err := e.execute(t, contract, bindings.CreateDenomMsg(subdenom, nil))
	require.NoError(t, err)
	require.Len(t, data, 1)
	return fmt.Sprintf("factory/%s/%s", contract.String(), subdenom)
}

func validMetadata(denom string) bindings.DenomMetadata {
	return bindings.DenomMetadata{
		Description: "Sun token",
		DenomUnits: []bindings.DenomUnit{
			{Denom: denom, Exponent: 0, Aliases: []string{}},
			{Denom: "SUN", Exponent: 6, Aliases: []string{}},
		},
		Base:    denom,
		Display: "SUN",
		Name:    "Sun",
		Symbol:  "SUN",
	}
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, variant, result string) float64 {
	t.Helper()
	return testutil.ToFloat64(vec.WithLabelValues(variant, result))
}
