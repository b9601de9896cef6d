package common

import (
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEVMDevAccount(t *testing.T) {
	for i := 0; i < 10; i++ {
		addr, privKeyHex := GetEVMDevAccount(i)
		if addr == (Address{}) {
			t.Errorf("Account %d: got empty address", i)
		}
		if len(privKeyHex) != 64 {
			t.Errorf("Account %d: private key length = %d, want 64", i, len(privKeyHex))
		}

		// Verify private key derives to correct address
		privKey, err := crypto.HexToECDSA(privKeyHex)
		if err != nil {
			t.Errorf("Account %d: failed to parse private key: %v", i, err)
			continue
		}
		derivedAddr := crypto.PubkeyToAddress(privKey.PublicKey)
		if Address(derivedAddr) != addr {
			t.Errorf("Account %d: address mismatch: got %s, derived %s", i, addr.Hex(), derivedAddr.Hex())
		}
	}

	// indices wrap around
	a0, _ := GetEVMDevAccount(0)
	a10, _ := GetEVMDevAccount(10)
	assert.Equal(t, a0, a10)
}

func TestParseAddress(t *testing.T) {
	want := HexToAddress("0xD3776b414F5Ec37a1dd2FDD49BBb502b60A516E3")

	for _, in := range []string{
		"0xD3776b414F5Ec37a1dd2FDD49BBb502b60A516E3",
		"0xd3776b414f5ec37a1dd2fdd49bbb502b60a516e3",
		"D3776b414F5Ec37a1dd2FDD49BBb502b60A516E3",
		"  0xD3776b414F5Ec37a1dd2FDD49BBb502b60A516E3\n",
	} {
		got, err := ParseAddress(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	assert.Equal(t, "0xD3776b414F5Ec37a1dd2FDD49BBb502b60A516E3", want.Hex())

	for _, in := range []string{
		"",
		"0x",
		"0xD3776b414F5Ec37a1dd2FDD49BBb502b60A516",     // 19 bytes
		"0xD3776b414F5Ec37a1dd2FDD49BBb502b60A516E300", // 21 bytes
		"0xD3776b414F5Ec37a1dd2FDD49BBb502b60A516E",    // odd length
		"0xZZ776b414F5Ec37a1dd2FDD49BBb502b60A516E3",
	} {
		_, err := ParseAddress(in)
		assert.Error(t, err, in)
	}
}

func TestParseHash(t *testing.T) {
	h, err := ParseHash("0xdf19025e182b8f317bf1d82eb51bc8a65cc8d0d9ac5f7be6f26f6609eb02ff81")
	require.NoError(t, err)
	assert.Equal(t, "0xdf19025e182b8f317bf1d82eb51bc8a65cc8d0d9ac5f7be6f26f6609eb02ff81", h.Hex())
	assert.Equal(t, "df19..ff81", h.String_short())

	_, err = ParseHash("0xdf19")
	assert.Error(t, err)
}

func TestAddressJSON(t *testing.T) {
	addr, _ := GetEVMDevAccount(1)
	b, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"0x70997970C51812dc3A010C7d01b50e0d17dc79C8"`, string(b))

	var back Address
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, addr, back)

	assert.Error(t, json.Unmarshal([]byte(`"0x1234"`), &back))
}

func TestLeftPad32(t *testing.T) {
	w := LeftPad32([]byte{0x01, 0x02})
	require.Len(t, w, 32)
	assert.Equal(t, byte(0x01), w[30])
	assert.Equal(t, byte(0x02), w[31])
	for _, b := range w[:30] {
		assert.Zero(t, b)
	}
}
