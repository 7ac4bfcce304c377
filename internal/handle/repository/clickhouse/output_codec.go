package clickhouse

import (
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

// outputRow mirrors the output columns shared by the outputs and lookup tables.
type outputRow struct {
	TxHash          string
	OutputIndex     uint32
	Address         string
	Lovelace        uint64
	AssetPolicies   []string
	AssetNames      []string
	AssetQuantities []uint64
}

func (row outputRow) toModel() (model.Output, error) {
	ref := model.OutputRef{TxHash: row.TxHash, Index: row.OutputIndex}

	address, err := hex.DecodeString(row.Address)
	if err != nil {
		return model.Output{}, fmt.Errorf("decode address of %s: %w", ref, err)
	}

	if len(row.AssetPolicies) != len(row.AssetNames) || len(row.AssetPolicies) != len(row.AssetQuantities) {
		return model.Output{}, fmt.Errorf("output %s asset columns length mismatch: %d policies, %d names, %d quantities",
			ref, len(row.AssetPolicies), len(row.AssetNames), len(row.AssetQuantities))
	}

	assets := make([]model.Asset, 0, len(row.AssetPolicies))
	for i := range row.AssetPolicies {
		policyID, err := hex.DecodeString(row.AssetPolicies[i])
		if err != nil {
			return model.Output{}, fmt.Errorf("decode policy %d of %s: %w", i, ref, err)
		}
		name, err := hex.DecodeString(row.AssetNames[i])
		if err != nil {
			return model.Output{}, fmt.Errorf("decode asset name %d of %s: %w", i, ref, err)
		}
		assets = append(assets, model.Asset{PolicyID: policyID, Name: name, Quantity: row.AssetQuantities[i]})
	}

	return model.Output{
		Ref:      ref,
		Address:  address,
		Lovelace: row.Lovelace,
		Assets:   assets,
	}, nil
}

func (row *outputRow) dest() []any {
	return []any{
		&row.TxHash,
		&row.OutputIndex,
		&row.Address,
		&row.Lovelace,
		&row.AssetPolicies,
		&row.AssetNames,
		&row.AssetQuantities,
	}
}
