package commitment

import (
	"crypto/rand"
	"io"

	"github.com/colorfulnotion/commitreveal/commiterrors"
	"github.com/colorfulnotion/commitreveal/common"
	"github.com/pkg/errors"
)

// NonceLength is the size of the secret blinding value, encoded as bytes32.
const NonceLength = 32

// Nonce hides the choice until reveal. A nonce must never be reused across
// commitments.
type Nonce [NonceLength]byte

// NewNonce reads exactly NonceLength bytes from r, or crypto/rand when r is
// nil. Any short read is ErrEntropyUnavailable; there is no retry.
func NewNonce(r io.Reader) (Nonce, error) {
	if r == nil {
		r = rand.Reader
	}
	var n Nonce
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return Nonce{}, errors.Wrapf(commiterrors.ErrEntropyUnavailable, "read nonce: %v", err)
	}
	return n, nil
}

// ParseNonce decodes 32 bytes of hex, with or without 0x.
func ParseNonce(s string) (Nonce, error) {
	h, err := common.ParseHash(s)
	if err != nil {
		// Cause stays the sentinel; the hex error survives as message text.
		return Nonce{}, errors.Wrapf(commiterrors.ErrInvalidNonce, "%v", err)
	}
	return Nonce(h), nil
}

func (n Nonce) Bytes() []byte {
	return n[:]
}

// Hex returns the 0x-prefixed lowercase hex form.
func (n Nonce) Hex() string {
	return common.Bytes2Hex(n[:])
}

func (n Nonce) String() string {
	return n.Hex()
}

func (n Nonce) MarshalText() ([]byte, error) {
	return []byte(n.Hex()), nil
}

func (n *Nonce) UnmarshalText(text []byte) error {
	parsed, err := ParseNonce(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
