package kit

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// PublicKey is a Solana account address, 32 bytes of ed25519 key material.
type PublicKey [32]byte

// ParseAddress decodes a base58 account address. It fails on malformed
// base58 and on payloads that are not exactly 32 bytes.
func ParseAddress(s string) (PublicKey, error) {
	var key PublicKey
	raw, err := base58.Decode(s)
	if err != nil {
		return key, fmt.Errorf("kit: invalid address %q: %w", s, err)
	}
	if len(raw) != len(key) {
		return key, fmt.Errorf("kit: invalid address %q: decoded to %d bytes, want %d", s, len(raw), len(key))
	}
	copy(key[:], raw)
	return key, nil
}

// String returns the base58 form of the address.
func (k PublicKey) String() string {
	return base58.Encode(k[:])
}

// IsZero reports whether the key is the all-zero address.
func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}

// ActivationType selects how a Meteora DLMM pool schedules activation.
type ActivationType int

const (
	ActivationSlot ActivationType = iota
	ActivationTimestamp
)

// ParseActivationType maps the wire token to its enum value. The error
// message is part of the tool contract and is surfaced verbatim to callers.
func ParseActivationType(s string) (ActivationType, error) {
	switch s {
	case "Slot":
		return ActivationSlot, nil
	case "Timestamp":
		return ActivationTimestamp, nil
	default:
		return 0, errors.New("Invalid activation_type. Valid options are: Slot, Timestamp.")
	}
}

func (t ActivationType) String() string {
	switch t {
	case ActivationSlot:
		return "Slot"
	case ActivationTimestamp:
		return "Timestamp"
	default:
		return fmt.Sprintf("ActivationType(%d)", int(t))
	}
}
