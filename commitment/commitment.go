package commitment

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/colorfulnotion/commitreveal/commiterrors"
	"github.com/colorfulnotion/commitreveal/common"
	"github.com/colorfulnotion/commitreveal/log"
)

// Commitment is one commit of a choice by an account. Hash is what gets
// published; Choice and Nonce stay secret until reveal.
type Commitment struct {
	Account common.Address
	Choice  Choice
	Nonce   Nonce
	Hash    common.Hash
}

// New builds a commitment for a known nonce.
func New(account common.Address, choice Choice, nonce Nonce) *Commitment {
	return &Commitment{
		Account: account,
		Choice:  choice,
		Nonce:   nonce,
		Hash:    Hash(account, choice, nonce),
	}
}

// Generator creates commitments with fresh nonces drawn from Rand.
type Generator struct {
	Rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate draws a nonce and commits to choice for account. On entropy failure
// it returns nil and an error wrapping ErrEntropyUnavailable.
func (g *Generator) Generate(account common.Address, choice Choice) (*Commitment, error) {
	nonce, err := NewNonce(g.Rand)
	if err != nil {
		log.Error(log.CommitMonitoring, "nonce generation failed", "err", err)
		return nil, err
	}
	c := New(account, choice, nonce)
	log.Debug(log.CommitMonitoring, "commitment generated", "account", account.Hex(), "choice", choice.Name(), "hash", c.Hash.String_short())
	return c, nil
}

// Verify recomputes the commit hash from the revealed values.
func Verify(hash common.Hash, account common.Address, choice Choice, nonce Nonce) bool {
	return Hash(account, choice, nonce) == hash
}

// Verify reports whether c.Hash matches its own fields.
func (c *Commitment) Verify() bool {
	return Verify(c.Hash, c.Account, c.Choice, c.Nonce)
}

// CheckReveal returns ErrCommitMismatch when the revealed values do not
// reproduce hash.
func CheckReveal(hash common.Hash, account common.Address, choice Choice, nonce Nonce) error {
	if !Verify(hash, account, choice, nonce) {
		log.Debug(log.CommitMonitoring, "reveal mismatch", "want", hash.Hex(), "got", Hash(account, choice, nonce).Hex())
		return commiterrors.ErrCommitMismatch
	}
	return nil
}

// Format renders the three output lines, without a trailing newline:
//
//	commit-hash = 0x<64 hex>
//	choice=<n>
//	nonce = 0x<64 hex>
func (c *Commitment) Format() string {
	return fmt.Sprintf("commit-hash = %s\nchoice=%s\nnonce = %s", c.Hash.Hex(), c.Choice, c.Nonce.Hex())
}

func (c *Commitment) String() string {
	return c.Format()
}

type commitmentJSON struct {
	Account    common.Address `json:"account"`
	Choice     uint8          `json:"choice"`
	Nonce      Nonce          `json:"nonce"`
	CommitHash common.Hash    `json:"commit_hash"`
}

func (c *Commitment) MarshalJSON() ([]byte, error) {
	return json.Marshal(commitmentJSON{
		Account:    c.Account,
		Choice:     uint8(c.Choice),
		Nonce:      c.Nonce,
		CommitHash: c.Hash,
	})
}

// UnmarshalJSON accepts the MarshalJSON form and rejects a commit_hash that
// does not match the other fields.
func (c *Commitment) UnmarshalJSON(data []byte) error {
	var raw commitmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Account = raw.Account
	c.Choice = Choice(raw.Choice)
	c.Nonce = raw.Nonce
	c.Hash = raw.CommitHash
	if !c.Verify() {
		return commiterrors.ErrCommitMismatch
	}
	return nil
}
