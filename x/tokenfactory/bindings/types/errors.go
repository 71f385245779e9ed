package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Codespace is the error codespace of the bindings, distinct from the
// tokenfactory module's.
const Codespace = "tfbindings"

var (
	ErrMissingField   = errorsmod.Register(Codespace, 2, "missing required field")
	ErrUnknownVariant = errorsmod.Register(Codespace, 3, "unknown variant")
	ErrInvalidAmount  = errorsmod.Register(Codespace, 4, "invalid uint256 amount")
	ErrQueryFailed    = errorsmod.Register(Codespace, 5, "query failed")
)
