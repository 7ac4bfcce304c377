package model

import "encoding/hex"

// Asset is one unit class held in an output.
type Asset struct {
	PolicyID []byte
	Name     []byte
	Quantity uint64
}

// IsNative reports whether the asset was minted under a policy. The base unit has no policy.
func (a Asset) IsNative() bool {
	return len(a.PolicyID) > 0
}

// PolicyHex returns the lower-case hex form of the policy id.
func (a Asset) PolicyHex() string {
	return hex.EncodeToString(a.PolicyID)
}
