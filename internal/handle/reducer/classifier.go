package reducer

import (
	"unicode/utf8"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

// Classifier extracts a handle from an asset, reporting false when the asset is not a handle.
type Classifier func(asset model.Asset) (string, bool)

// PolicyClassifier returns a Classifier accepting assets minted under policyHex whose
// name is valid UTF-8. policyHex must be lower case.
func PolicyClassifier(policyHex string) Classifier {
	return func(asset model.Asset) (string, bool) {
		if asset.PolicyHex() != policyHex {
			return "", false
		}
		// Malformed names exist on chain; they are not handles.
		if !utf8.Valid(asset.Name) {
			return "", false
		}
		return string(asset.Name), true
	}
}

func (r *Reducer) handles(out model.Output) []string {
	var handles []string
	for _, asset := range out.NonADAAssets() {
		if handle, ok := r.classify(asset); ok {
			handles = append(handles, handle)
		}
	}
	return handles
}
