package commitment

import (
	"strconv"
	"strings"

	"github.com/colorfulnotion/commitreveal/commiterrors"
	"github.com/pkg/errors"
)

// Choice is the committed value, encoded as an ABI uint8. Only Heads and Tails
// carry meaning for the coin-flip contract but any byte value encodes.
type Choice uint8

const (
	Heads Choice = 0
	Tails Choice = 1
)

// String returns the decimal form, which is what gets revealed on chain.
func (c Choice) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// Name returns "HEADS", "TAILS" or "CHOICE_<n>".
func (c Choice) Name() string {
	switch c {
	case Heads:
		return "HEADS"
	case Tails:
		return "TAILS"
	default:
		return "CHOICE_" + c.String()
	}
}

// IsCoinSide reports whether c is Heads or Tails.
func (c Choice) IsCoinSide() bool {
	return c == Heads || c == Tails
}

// ParseChoice accepts a decimal value in 0..255 or the names heads/tails.
func ParseChoice(s string) (Choice, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "heads":
		return Heads, nil
	case "tails":
		return Tails, nil
	}
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Wrapf(commiterrors.ErrInvalidChoice, "%q", s)
	}
	return Choice(v), nil
}
