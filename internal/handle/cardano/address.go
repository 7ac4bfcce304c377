// Package cardano renders raw Cardano ledger values into their textual forms.
package cardano

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/fxamacker/cbor/v2"
)

const (
	testnetNetworkID = 0x00
	mainnetNetworkID = 0x01

	headerPointerKey    = 0x04
	headerPointerScript = 0x05
	headerEnterprise    = 0x06
	headerByron         = 0x08
	headerRewardKey     = 0x0e
	headerRewardShare   = 0x0f

	hashSize = 28

	byronPayloadTag = 24
	pointerVarints  = 3
)

var (
	ErrEmptyAddress     = errors.New("empty address")
	ErrMalformedAddress = errors.New("malformed address")
)

// RenderAddress returns the textual form of a raw address: bech32 for Shelley
// payment and reward addresses, base58 for Byron addresses. Shelley addresses of
// a network without a bech32 prefix render as hex.
func RenderAddress(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", ErrEmptyAddress
	}

	kind := raw[0] >> 4
	network := raw[0] & 0x0f

	switch {
	case kind < headerPointerKey:
		if len(raw) != 1+2*hashSize {
			return "", malformed(raw, "base address of %d bytes", len(raw))
		}
		return renderShelley("addr", network, raw)
	case kind == headerPointerKey || kind == headerPointerScript:
		if err := checkPointer(raw); err != nil {
			return "", err
		}
		return renderShelley("addr", network, raw)
	case kind == headerEnterprise || kind == headerEnterprise+1:
		if len(raw) != 1+hashSize {
			return "", malformed(raw, "enterprise address of %d bytes", len(raw))
		}
		return renderShelley("addr", network, raw)
	case kind == headerRewardKey || kind == headerRewardShare:
		if len(raw) != 1+hashSize {
			return "", malformed(raw, "reward address of %d bytes", len(raw))
		}
		return renderShelley("stake", network, raw)
	case kind == headerByron:
		if err := checkByron(raw); err != nil {
			return "", err
		}
		return base58.Encode(raw), nil
	default:
		return "", fmt.Errorf("unsupported address header 0x%02x", raw[0])
	}
}

func malformed(raw []byte, format string, args ...any) error {
	return fmt.Errorf("%w: header 0x%02x: %s", ErrMalformedAddress, raw[0], fmt.Sprintf(format, args...))
}

func renderShelley(base string, network byte, raw []byte) (string, error) {
	switch network {
	case mainnetNetworkID:
		return encodeBech32(base, raw)
	case testnetNetworkID:
		return encodeBech32(base+"_test", raw)
	default:
		return hex.EncodeToString(raw), nil
	}
}

func encodeBech32(hrp string, raw []byte) (string, error) {
	data, err := bech32.ConvertBits(raw, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert address bits: %w", err)
	}
	encoded, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", fmt.Errorf("encode %s address: %w", hrp, err)
	}
	return encoded, nil
}

// checkPointer requires a payment hash followed by exactly three varints
// (slot, transaction index, certificate index).
func checkPointer(raw []byte) error {
	if len(raw) < 1+hashSize+pointerVarints {
		return malformed(raw, "pointer address of %d bytes", len(raw))
	}

	rest := raw[1+hashSize:]
	for i := 0; i < pointerVarints; i++ {
		n := varintLen(rest)
		if n == 0 {
			return malformed(raw, "truncated pointer varint %d", i)
		}
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return malformed(raw, "%d trailing pointer bytes", len(rest))
	}
	return nil
}

// varintLen returns the length of the 7-bit big-endian varint at the start of b, 0 when incomplete.
func varintLen(b []byte) int {
	for i, c := range b {
		if c&0x80 == 0 {
			return i + 1
		}
	}
	return 0
}

type byronAddress struct {
	_       struct{} `cbor:",toarray"`
	Payload cbor.Tag
	CRC     uint32
}

type byronPayload struct {
	_          struct{} `cbor:",toarray"`
	Root       []byte
	Attributes cbor.RawMessage
	Type       uint64
}

// checkByron decodes the CBOR envelope of a Byron address and verifies its checksum.
func checkByron(raw []byte) error {
	var addr byronAddress
	if err := cbor.Unmarshal(raw, &addr); err != nil {
		return fmt.Errorf("%w: byron address: %w", ErrMalformedAddress, err)
	}
	if addr.Payload.Number != byronPayloadTag {
		return malformed(raw, "byron payload tag %d", addr.Payload.Number)
	}
	payload, ok := addr.Payload.Content.([]byte)
	if !ok {
		return malformed(raw, "byron payload is %T", addr.Payload.Content)
	}
	if sum := crc32.ChecksumIEEE(payload); sum != addr.CRC {
		return malformed(raw, "byron checksum 0x%08x, want 0x%08x", addr.CRC, sum)
	}

	var inner byronPayload
	if err := cbor.Unmarshal(payload, &inner); err != nil {
		return fmt.Errorf("%w: byron payload: %w", ErrMalformedAddress, err)
	}
	if len(inner.Root) != hashSize {
		return malformed(raw, "byron root of %d bytes", len(inner.Root))
	}
	return nil
}
