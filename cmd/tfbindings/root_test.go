package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func bech32(t *testing.T, prefix string, raw string) string {
	t.Helper()
	addr, err := sdk.Bech32ifyAddressBytes(prefix, []byte(raw))
	require.NoError(t, err)
	return addr
}

// customOf extracts the custom payload of a printed CosmosMsg or QueryRequest.
func customOf(t *testing.T, out string) string {
	t.Helper()
	var envelope struct {
		Custom json.RawMessage `json:"custom"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	require.NotNil(t, envelope.Custom)
	return string(envelope.Custom)
}

func TestMsgCommands(t *testing.T) {
	rcpt := bech32(t, "wormhole", "cli_rcpt____________")
	from := bech32(t, "wormhole", "cli_from____________")

	specs := map[string]struct {
		args    []string
		expJSON string
	}{
		"create denom": {
			args:    []string{"msg", "create-denom", "sun"},
			expJSON: `{"create_denom":{"subdenom":"sun"}}`,
		},
		"change admin": {
			args:    []string{"msg", "change-admin", "factory/x/sun", rcpt},
			expJSON: `{"change_admin":{"denom":"factory/x/sun","new_admin_address":"` + rcpt + `"}}`,
		},
		"mint": {
			args:    []string{"msg", "mint", "factory/x/sun", "1000000000000000000000000", rcpt},
			expJSON: `{"mint_tokens":{"denom":"factory/x/sun","amount":"1000000000000000000000000","mint_to_address":"` + rcpt + `"}}`,
		},
		"burn from contract": {
			args:    []string{"msg", "burn", "factory/x/sun", "5"},
			expJSON: `{"burn_tokens":{"denom":"factory/x/sun","amount":"5","burn_from_address":""}}`,
		},
		"burn from account": {
			args:    []string{"msg", "burn", "factory/x/sun", "5", from},
			expJSON: `{"burn_tokens":{"denom":"factory/x/sun","amount":"5","burn_from_address":"` + from + `"}}`,
		},
		"force transfer": {
			args:    []string{"msg", "force-transfer", "factory/x/sun", "7", from, rcpt},
			expJSON: `{"force_transfer":{"denom":"factory/x/sun","from_address":"` + from + `","to_address":"` + rcpt + `","amount":"7"}}`,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "", spec.args...)
			require.NoError(t, err)
			assert.JSONEq(t, spec.expJSON, customOf(t, out))
		})
	}
}

func TestMsgCommandsRejectBadInput(t *testing.T) {
	rcpt := bech32(t, "wormhole", "cli_rcpt____________")

	specs := map[string][]string{
		"negative amount":   {"msg", "mint", "factory/x/sun", "-1", rcpt},
		"oversize amount":   {"msg", "mint", "factory/x/sun", "115792089237316195423570985008687907853269984665640564039457584007913129639936", rcpt},
		"foreign prefix":    {"msg", "mint", "factory/x/sun", "1", bech32(t, "osmo", "cli_rcpt____________")},
		"missing args":      {"msg", "change-admin", "factory/x/sun"},
		"missing metadata":  {"msg", "set-metadata", filepath.Join(t.TempDir(), "absent.json")},
		"invalid log level": {"--log-level", "loud", "msg", "create-denom", "sun"},
	}
	for name, args := range specs {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, "", args...)
			require.Error(t, err)
		})
	}
}

func TestSetMetadataFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"description": "Sun token",
		"denom_units": [{"denom": "factory/x/sun", "exponent": 0, "aliases": []}],
		"base": "factory/x/sun",
		"display": "factory/x/sun",
		"name": "Sun",
		"symbol": "SUN"
	}`), 0o600))

	out, err := run(t, "", "msg", "set-metadata", path)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"set_metadata":{"metadata":{"description":"Sun token","denom_units":[{"denom":"factory/x/sun","exponent":0,"aliases":[]}],"base":"factory/x/sun","display":"factory/x/sun","name":"Sun","symbol":"SUN"}}}`,
		customOf(t, out))

	// symbol is required
	require.NoError(t, os.WriteFile(path, []byte(`{"description":"","denom_units":[],"base":"b","display":"b","name":"n"}`), 0o600))
	_, err = run(t, "", "msg", "create-denom", "sun", "--metadata", path)
	require.Error(t, err)
}

func TestQueryCommands(t *testing.T) {
	creator := bech32(t, "wormhole", "cli_creator_________")

	specs := map[string]struct {
		args    []string
		expJSON string
	}{
		"full denom": {
			args:    []string{"query", "full-denom", creator, "sun"},
			expJSON: `{"full_denom":{"subdenom":"sun","creator_addr":"` + creator + `"}}`,
		},
		"admin": {
			args:    []string{"query", "admin", "factory/x/sun"},
			expJSON: `{"admin":{"denom":"factory/x/sun"}}`,
		},
		"metadata": {
			args:    []string{"query", "metadata", "factory/x/sun"},
			expJSON: `{"metadata":{"denom":"factory/x/sun"}}`,
		},
		"denoms by creator": {
			args:    []string{"query", "denoms-by-creator", creator},
			expJSON: `{"denoms_by_creator":{"creator":"` + creator + `"}}`,
		},
		"params": {
			args:    []string{"query", "params"},
			expJSON: `{"params":{}}`,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "", spec.args...)
			require.NoError(t, err)
			assert.JSONEq(t, spec.expJSON, customOf(t, out))
		})
	}
}

func TestBech32PrefixFromEnv(t *testing.T) {
	t.Setenv("TFBINDINGS_BECH32_PREFIX", "osmo")
	defer sdk.GetConfig().SetBech32PrefixForAccount(defaultBech32Prefix, defaultBech32Prefix+sdk.PrefixPublic)

	creator := bech32(t, "osmo", "cli_env_creator_____")
	out, err := run(t, "", "query", "denoms-by-creator", creator)
	require.NoError(t, err)
	assert.JSONEq(t, `{"denoms_by_creator":{"creator":"`+creator+`"}}`, customOf(t, out))
}

func TestDecode(t *testing.T) {
	specs := map[string]struct {
		kind    string
		payload string
		expJSON string
		expErr  bool
	}{
		"admin response": {
			kind:    "admin",
			payload: `{"admin":"","extra":1}`,
			expJSON: `{"admin":""}`,
		},
		"empty denoms": {
			kind:    "denoms_by_creator",
			payload: `{"denoms":[]}`,
			expJSON: `{"denoms":[]}`,
		},
		"params": {
			kind:    "params",
			payload: `{"params":{"denom_creation_fee":[{"amount":"10000000000000000000000","denom":"uworm"}]}}`,
			expJSON: `{"params":{"denom_creation_fee":[{"amount":"10000000000000000000000","denom":"uworm"}]}}`,
		},
		"msg": {
			kind:    "msg",
			payload: `{"create_denom":{"subdenom":"sun","metadata":null}}`,
			expJSON: `{"create_denom":{"subdenom":"sun"}}`,
		},
		"missing field": {
			kind:    "full_denom",
			payload: `{}`,
			expErr:  true,
		},
		"unknown query": {
			kind:    "query",
			payload: `{"denom_admin":{"denom":"d"}}`,
			expErr:  true,
		},
		"unknown kind": {
			kind:    "balance",
			payload: `{}`,
			expErr:  true,
		},
	}
	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, "", "decode", spec.kind, spec.payload)
			if spec.expErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, spec.expJSON, out)
		})
	}
}

func TestDecodeFromStdin(t *testing.T) {
	out, err := run(t, `{"denom":"factory/x/sun"}`, "decode", "full_denom", "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"denom":"factory/x/sun"}`, out)
}
