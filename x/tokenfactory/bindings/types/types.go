package types

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
)

// RequiredCapability is the wasmd capability a contract built against these
// bindings requires from the chain it is deployed on.
const RequiredCapability = "token_factory"

// DenomMetadata is used to describe a token for the Bank module; part of the
// SetMetadata message.
type DenomMetadata struct {
	Description string `json:"description"`
	// DenomUnits represents the list of DenomUnit's for a given coin
	DenomUnits []DenomUnit `json:"denom_units"`
	// Base represents the base denom (should be the DenomUnit with exponent = 0).
	Base string `json:"base"`
	// Display indicates the suggested denom that should be displayed in clients.
	Display string `json:"display"`
	// Name defines the name of the token (eg: Cosmos Atom)
	Name string `json:"name"`
	// Symbol is the token symbol usually shown on exchanges (eg: ATOM).
	// This can be the same as the display.
	Symbol string `json:"symbol"`
}

// DenomUnit is used to describe a token for the Bank module.
type DenomUnit struct {
	// Denom represents the string name of the given denom unit (e.g uatom).
	Denom string `json:"denom"`
	// Exponent represents power of 10 exponent that one must
	// raise the base_denom to in order to equal the given DenomUnit's denom
	// 1 denom = 10^exponent base_denom
	// (e.g. with a base_denom of uatom, one can create a DenomUnit of 'atom' with
	// exponent = 6, thus: 1 atom = 10^6 uatom).
	Exponent uint32 `json:"exponent"`
	// Aliases is a list of string aliases for the given denom
	Aliases []string `json:"aliases"`
}

type TokenParams struct {
	DenomCreationFee []DenomCreationFee `json:"denom_creation_fee"`
}

type DenomCreationFee struct {
	Amount sdkmath.Uint `json:"amount"`
	Denom  string       `json:"denom"`
}

func (m DenomMetadata) MarshalJSON() ([]byte, error) {
	type denomMetadata DenomMetadata
	if m.DenomUnits == nil {
		m.DenomUnits = []DenomUnit{}
	}
	return json.Marshal(denomMetadata(m))
}

func (m *DenomMetadata) UnmarshalJSON(bz []byte) error {
	type denomMetadata DenomMetadata
	return decodeStrict(bz, (*denomMetadata)(m), "description", "denom_units", "base", "display", "name", "symbol")
}

func (u DenomUnit) MarshalJSON() ([]byte, error) {
	type denomUnit DenomUnit
	if u.Aliases == nil {
		u.Aliases = []string{}
	}
	return json.Marshal(denomUnit(u))
}

func (u *DenomUnit) UnmarshalJSON(bz []byte) error {
	type denomUnit DenomUnit
	return decodeStrict(bz, (*denomUnit)(u), "denom", "exponent", "aliases")
}

func (p TokenParams) MarshalJSON() ([]byte, error) {
	type tokenParams TokenParams
	if p.DenomCreationFee == nil {
		p.DenomCreationFee = []DenomCreationFee{}
	}
	return json.Marshal(tokenParams(p))
}

func (p *TokenParams) UnmarshalJSON(bz []byte) error {
	type tokenParams TokenParams
	return decodeStrict(bz, (*tokenParams)(p), "denom_creation_fee")
}

func (f *DenomCreationFee) UnmarshalJSON(bz []byte) error {
	type denomCreationFee DenomCreationFee
	return decodeStrictAmount(bz, (*denomCreationFee)(f), "amount", "denom")
}
