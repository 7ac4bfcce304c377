package reducer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// MainnetHandlePolicyID is the policy handles are minted under on mainnet.
const MainnetHandlePolicyID = "f0ff48bbb7bbe9d59a40f1ce90e9e9d0ff5002ec48f232b49ca0fb9a"

const policyIDSize = 28

// Config holds the key prefixes of both projections and the tracked policy.
// An empty prefix leaves keys unprefixed.
type Config struct {
	KeyPrefixHandleToAddress  string `yaml:"key_prefix_handle_to_address"`
	KeyPrefixAddressToHandles string `yaml:"key_prefix_address_to_handles"`
	PolicyIDHex               string `yaml:"policy_id_hex"`
}

// Validate checks the policy id and returns the config with the id in lower case.
func (c Config) Validate() (Config, error) {
	id := strings.ToLower(strings.TrimSpace(c.PolicyIDHex))
	if id == "" {
		return c, errors.New("policy id is required")
	}
	raw, err := hex.DecodeString(id)
	if err != nil {
		return c, fmt.Errorf("decode policy id: %w", err)
	}
	if len(raw) != policyIDSize {
		return c, fmt.Errorf("policy id must be %d bytes, got %d", policyIDSize, len(raw))
	}
	c.PolicyIDHex = id
	return c, nil
}
