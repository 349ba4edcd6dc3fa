package common

import (
	gethcommon "github.com/ethereum/go-ethereum/common"
)

// AddressLength is the expected length of an address in bytes.
const AddressLength = gethcommon.AddressLength

// Address represents the 20 byte address of an account.
type Address = gethcommon.Address

// HexToAddress returns Address with byte values of s.
// If s is larger than len(h), s will be cropped from the left.
func HexToAddress(s string) Address {
	return gethcommon.HexToAddress(s)
}

// IsHexAddress verifies whether a string can represent a valid hex-encoded
// address or not.
func IsHexAddress(s string) bool {
	return gethcommon.IsHexAddress(s)
}
