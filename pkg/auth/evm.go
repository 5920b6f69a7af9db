package auth

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateEVMAddress checks if a string is a valid EVM address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// NormalizeAddress returns a checksummed EVM address
func NormalizeAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// NormalizeOptionalAddress checksums address unless it is empty.
func NormalizeOptionalAddress(address string) string {
	if strings.TrimSpace(address) == "" {
		return ""
	}
	return NormalizeAddress(address)
}
