// Package types holds small value types shared across packages.
package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Hex is a quantity encoded the way Ethereum JSON-RPC does it: a 0x-prefixed
// hexadecimal string such as "0x1a".
type Hex string

func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, err := strconv.ParseUint(s[2:], 16, 64); err != nil {
		return fmt.Errorf("invalid hexadecimal value: %w", err)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON accepts a JSON string holding a valid hex quantity. A JSON
// null leaves h empty, since nodes report pending blocks without a number.
func (h *Hex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Uint64 returns the decoded value, or zero when h is empty or invalid.
func (h Hex) Uint64() uint64 {
	if len(h) < 3 {
		return 0
	}

	v, _ := strconv.ParseUint(string(h)[2:], 16, 64)
	return v
}

// String returns the value in decimal, or an empty string when h is empty.
func (h Hex) String() string {
	if h == "" {
		return ""
	}

	return strconv.FormatUint(h.Uint64(), 10)
}
