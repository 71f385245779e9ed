package bindings

import (
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"

	bindingstypes "github.com/wormhole-foundation/tokenfactory-bindings/x/tokenfactory/bindings/types"
)

type options struct {
	metrics        *Metrics
	disableQuerier bool
}

// Option configures RegisterCustomPlugins.
type Option func(*options)

// WithMetrics exports message and query counters through m. A nil m keeps
// the counters unexported.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithoutQuerier registers only the message decorator, for chains that already
// route custom queries elsewhere.
func WithoutQuerier() Option {
	return func(o *options) {
		o.disableQuerier = true
	}
}

func RegisterCustomPlugins(
	bank BankKeeper,
	tokenFactory TokenFactoryKeeper,
	opts ...Option,
) []wasmkeeper.Option {
	o := options{metrics: NopMetrics()}
	for _, opt := range opts {
		opt(&o)
	}

	wasmOpts := []wasmkeeper.Option{
		wasmkeeper.WithMessageHandlerDecorator(
			CustomMessageDecorator(bank, tokenFactory, o.metrics),
		),
	}
	if !o.disableQuerier {
		wasmQueryPlugin := NewQueryPlugin(bank, tokenFactory)
		wasmOpts = append(wasmOpts, wasmkeeper.WithQueryPlugins(&wasmkeeper.QueryPlugins{
			Custom: CustomQuerier(wasmQueryPlugin, o.metrics),
		}))
	}
	return wasmOpts
}

// WithTokenFactoryCapability appends the token_factory capability to the
// capabilities a chain announces to wasmd, unless already present.
func WithTokenFactoryCapability(capabilities []string) []string {
	for _, c := range capabilities {
		if c == bindingstypes.RequiredCapability {
			return capabilities
		}
	}
	return append(capabilities, bindingstypes.RequiredCapability)
}
