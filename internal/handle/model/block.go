package model

import "fmt"

// OutputRef identifies an output produced by a transaction.
type OutputRef struct {
	TxHash string
	Index  uint32
}

func (r OutputRef) String() string {
	return fmt.Sprintf("%s#%d", r.TxHash, r.Index)
}

// Output is a materialized transaction output.
type Output struct {
	Ref      OutputRef
	Address  []byte
	Lovelace uint64
	Assets   []Asset
}

// NonADAAssets returns the native assets held by the output.
func (o Output) NonADAAssets() []Asset {
	assets := make([]Asset, 0, len(o.Assets))
	for _, asset := range o.Assets {
		if asset.IsNative() {
			assets = append(assets, asset)
		}
	}
	return assets
}

// Transaction lists consumed references and produced outputs in ledger order.
type Transaction struct {
	Hash    string
	Inputs  []OutputRef
	Outputs []Output
}

// Block is a decoded block with its transactions in canonical order.
type Block struct {
	Network      Network
	Height       uint64
	Slot         uint64
	Hash         string
	Transactions []Transaction
}
