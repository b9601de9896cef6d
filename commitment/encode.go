package commitment

import (
	"github.com/colorfulnotion/commitreveal/common"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

const (
	// WordLength is the size of one ABI head slot.
	WordLength = 32
	// EncodedLength is the size of abi.encode(address, uint8, bytes32).
	EncodedLength = 3 * WordLength
)

// Encode returns the contract-ABI static encoding of (address, uint8, bytes32):
// three left-padded 32-byte words in that order. It matches Solidity's
// abi.encode(account, choice, nonce) bit for bit.
func Encode(account common.Address, choice Choice, nonce Nonce) []byte {
	buf := make([]byte, 0, EncodedLength)
	buf = append(buf, common.LeftPad32(account.Bytes())...)
	buf = append(buf, common.LeftPad32([]byte{byte(choice)})...)
	// bytes32 is already a full word
	buf = append(buf, nonce[:]...)
	return buf
}

var commitArguments = mustArguments("address", "uint8", "bytes32")

func mustArguments(types ...string) abi.Arguments {
	args := make(abi.Arguments, 0, len(types))
	for _, t := range types {
		typ, err := abi.NewType(t, "", nil)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Type: typ})
	}
	return args
}

// EncodeABI produces the same bytes as Encode through go-ethereum's ABI packer.
func EncodeABI(account common.Address, choice Choice, nonce Nonce) ([]byte, error) {
	out, err := commitArguments.Pack(account.Eth(), uint8(choice), [32]byte(nonce))
	if err != nil {
		return nil, errors.Wrap(err, "abi pack")
	}
	return out, nil
}

// Hash is keccak256(Encode(account, choice, nonce)).
func Hash(account common.Address, choice Choice, nonce Nonce) common.Hash {
	return common.Keccak256(Encode(account, choice, nonce))
}
