package types

import (
	"bytes"
	"encoding/json"
	"regexp"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// maxAmountBits bounds amounts to the Uint256 used by contracts.
const maxAmountBits = 256

var (
	jsonNull = []byte("null")

	// decimalAmount is the only accepted amount spelling.
	decimalAmount = regexp.MustCompile(`^[0-9]+$`)
)

// decodeStrict decodes bz into v after checking that every required field is
// present and not null. Unknown fields are ignored.
func decodeStrict(bz []byte, v interface{}, required ...string) error {
	if _, err := requireFields(bz, required...); err != nil {
		return err
	}
	return json.Unmarshal(bz, v)
}

// decodeStrictAmount is decodeStrict for objects carrying a Uint256 "amount",
// which must be a decimal string within 256 bits.
func decodeStrictAmount(bz []byte, v interface{}, required ...string) error {
	fields, err := requireFields(bz, required...)
	if err != nil {
		return err
	}
	var amount string
	if err := json.Unmarshal(fields["amount"], &amount); err != nil {
		return errorsmod.Wrap(ErrInvalidAmount, err.Error())
	}
	if _, err := ParseAmount(amount); err != nil {
		return err
	}
	return json.Unmarshal(bz, v)
}

func requireFields(bz []byte, required ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bz, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errorsmod.Wrap(ErrMissingField, "expected object, got null")
	}
	for _, name := range required {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return nil, errorsmod.Wrap(ErrMissingField, name)
		}
	}
	return fields, nil
}

// decodeUnion decodes an externally tagged union: an object carrying exactly
// one of the known variant tags.
func decodeUnion(bz []byte, v interface{}, variants ...string) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bz, &fields); err != nil {
		return err
	}
	if len(fields) != 1 {
		return errorsmod.Wrapf(ErrUnknownVariant, "expected exactly one variant, got %d", len(fields))
	}
	for tag, raw := range fields {
		if !contains(variants, tag) {
			return errorsmod.Wrap(ErrUnknownVariant, tag)
		}
		if bytes.Equal(bytes.TrimSpace(raw), jsonNull) {
			return errorsmod.Wrapf(ErrMissingField, "%s body", tag)
		}
	}
	return json.Unmarshal(bz, v)
}

// encodeUnion encodes v after checking that exactly one variant is set.
func encodeUnion(v interface{}, set int) ([]byte, error) {
	if set != 1 {
		return nil, errorsmod.Wrapf(ErrUnknownVariant, "expected exactly one variant, got %d", set)
	}
	return json.Marshal(v)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func countSet(ptrs ...bool) int {
	n := 0
	for _, set := range ptrs {
		if set {
			n++
		}
	}
	return n
}

// ParseAmount parses a decimal string into a Uint256 amount. Anything but
// plain decimal digits, and values wider than 256 bits, are rejected.
func ParseAmount(s string) (sdkmath.Uint, error) {
	if !decimalAmount.MatchString(s) {
		return sdkmath.Uint{}, errorsmod.Wrapf(ErrInvalidAmount, "%q is not a decimal integer", s)
	}
	amount, err := sdkmath.ParseUint(s)
	if err != nil {
		return sdkmath.Uint{}, errorsmod.Wrap(ErrInvalidAmount, err.Error())
	}
	if err := validateAmount(amount); err != nil {
		return sdkmath.Uint{}, err
	}
	return amount, nil
}

func validateAmount(amount sdkmath.Uint) error {
	i := amount.BigInt()
	if i.Sign() < 0 {
		return errorsmod.Wrapf(ErrInvalidAmount, "negative amount %s", i)
	}
	if i.BitLen() > maxAmountBits {
		return errorsmod.Wrapf(ErrInvalidAmount, "bit length %d greater than %d", i.BitLen(), maxAmountBits)
	}
	return nil
}
