// Package model defines domain models for handle reduction.
package model

// Network identifies the Cardano network a block belongs to.
type Network string

var (
	Mainnet Network = "mainnet"
	Preprod Network = "preprod"
	Preview Network = "preview"
)
