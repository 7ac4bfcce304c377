// Package config loads the reducer section of a YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/policy"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/reducer"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a reducer configuration file.
//
//	reducer:
//	  policy_id_hex: f0ff48bbb7bbe9d59a40f1ce90e9e9d0ff5002ec48f232b49ca0fb9a
//	  key_prefix_handle_to_address: h2a
//	  key_prefix_address_to_handles: a2h
//	policy:
//	  missing_data: skip
//	  lookup_errors: default
type File struct {
	Reducer reducer.Config       `yaml:"reducer"`
	Policy  policy.RuntimePolicy `yaml:"policy"`
}

// Load reads and decodes path. Unknown fields are rejected.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("decode config: %w", err)
	}
	return f, nil
}

// Override replaces file values with the non-empty values in o.
func (f File) Override(o Overrides) File {
	if o.PolicyIDHex != "" {
		f.Reducer.PolicyIDHex = o.PolicyIDHex
	}
	if o.KeyPrefixHandleToAddress != "" {
		f.Reducer.KeyPrefixHandleToAddress = o.KeyPrefixHandleToAddress
	}
	if o.KeyPrefixAddressToHandles != "" {
		f.Reducer.KeyPrefixAddressToHandles = o.KeyPrefixAddressToHandles
	}
	if o.MissingData != nil {
		f.Policy.MissingData = *o.MissingData
	}
	if o.LookupErrors != nil {
		f.Policy.LookupErrors = *o.LookupErrors
	}
	return f
}

// Overrides carries values set on the command line.
type Overrides struct {
	PolicyIDHex               string
	KeyPrefixHandleToAddress  string
	KeyPrefixAddressToHandles string
	MissingData               *policy.ErrorAction
	LookupErrors              *policy.ErrorAction
}
