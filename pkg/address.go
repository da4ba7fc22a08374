package pkg

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// SubnetSeparator splits the subnet identifier from the bare address in a composite address.
const SubnetSeparator = "/"

var ErrInvalidWalletAddress = errors.New("invalid IPC or Ethereum address format")

var (
	ethAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	subnetIDRe   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)
)

// WalletAddress is a classified wallet address. SubnetID is nil for plain addresses.
type WalletAddress struct {
	Address  string
	SubnetID *string
}

// ParseWalletAddress classifies raw as either a plain address (0x + 40 hex chars)
// or a composite one (subnetId/0x...). Anything else yields ErrInvalidWalletAddress.
func ParseWalletAddress(raw string) (*WalletAddress, error) {
	subnet, bare, composite := strings.Cut(raw, SubnetSeparator)
	if !composite {
		bare = raw
	}

	if !ethAddressRe.MatchString(bare) {
		return nil, fmt.Errorf("%w: %q is not a 0x-prefixed 20 byte hex address", ErrInvalidWalletAddress, bare)
	}

	if !composite {
		return &WalletAddress{Address: bare}, nil
	}

	if !subnetIDRe.MatchString(subnet) {
		return nil, fmt.Errorf("%w: malformed subnet id %q", ErrInvalidWalletAddress, subnet)
	}

	return &WalletAddress{Address: bare, SubnetID: &subnet}, nil
}

// HasSubnet reports whether the address was given in composite form.
func (a *WalletAddress) HasSubnet() bool {
	return a.SubnetID != nil
}

// Checksummed returns the EIP-55 form of the bare address.
func (a *WalletAddress) Checksummed() string {
	return common.HexToAddress(a.Address).Hex()
}

func (a *WalletAddress) String() string {
	if a.SubnetID == nil {
		return a.Address
	}
	return *a.SubnetID + SubnetSeparator + a.Address
}
