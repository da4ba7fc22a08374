package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainAddress = "0x52908400098527886e0f7030069857d2e4169ee7"

func TestParseWalletAddress(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		addr, err := ParseWalletAddress(plainAddress)
		require.NoError(t, err)
		assert.Equal(t, plainAddress, addr.Address)
		assert.Nil(t, addr.SubnetID)
		assert.False(t, addr.HasSubnet())
		assert.Equal(t, plainAddress, addr.String())
	})
	t.Run("composite", func(t *testing.T) {
		raw := "subnet42/" + plainAddress
		addr, err := ParseWalletAddress(raw)
		require.NoError(t, err)
		assert.Equal(t, plainAddress, addr.Address)
		require.NotNil(t, addr.SubnetID)
		assert.Equal(t, "subnet42", *addr.SubnetID)
		assert.True(t, addr.HasSubnet())
		assert.Equal(t, raw, addr.String())
	})
	t.Run("upper case hex is accepted", func(t *testing.T) {
		raw := "0x" + strings.ToUpper(plainAddress[2:])
		addr, err := ParseWalletAddress(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, addr.Address)
	})
	t.Run("invalid", func(t *testing.T) {
		inputs := []string{
			"",
			"not-an-address",
			plainAddress[2:],                 // missing prefix marker
			plainAddress[:41],                // too short
			plainAddress + "0",               // too long
			"0x" + strings.Repeat("g", 40),   // non hex
			"0X" + plainAddress[2:],          // wrong prefix marker
			"/" + plainAddress,               // empty subnet
			"subnet42/",                      // empty address
			"subnet42//" + plainAddress,      // doubled separator
			"a/b/" + plainAddress,            // two separators
			"subnet 42/" + plainAddress,      // whitespace in subnet
			plainAddress + "/subnet42",       // reversed
			" " + plainAddress,               // leading whitespace
			"subnet42:" + plainAddress,       // wrong separator
			"-subnet/" + plainAddress,        // subnet must start alphanumeric
			strings.Repeat("s", 65) + "/" + plainAddress,
		}
		for _, input := range inputs {
			addr, err := ParseWalletAddress(input)
			assert.ErrorIs(t, err, ErrInvalidWalletAddress, "input %q", input)
			assert.Nil(t, addr)
		}
	})
}

func TestWalletAddress_Checksummed(t *testing.T) {
	addr, err := ParseWalletAddress(plainAddress)
	require.NoError(t, err)
	assert.Equal(t, "0x52908400098527886E0F7030069857D2E4169EE7", addr.Checksummed())
}

func FuzzParseWalletAddress(f *testing.F) {
	f.Add(plainAddress)
	f.Add("subnet42/" + plainAddress)
	f.Add("not-an-address")
	f.Fuzz(func(t *testing.T, raw string) {
		addr, err := ParseWalletAddress(raw)
		if err != nil {
			assert.ErrorIs(t, err, ErrInvalidWalletAddress)
			return
		}
		// valid inputs always round trip
		assert.Equal(t, raw, addr.String())
		again, err := ParseWalletAddress(addr.String())
		require.NoError(t, err)
		assert.Equal(t, addr, again)
	})
}
