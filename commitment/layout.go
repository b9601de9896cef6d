package commitment

import (
	"bytes"
	"fmt"

	"github.com/colorfulnotion/commitreveal/common"
	"github.com/colorfulnotion/commitreveal/log"
	"github.com/pkg/errors"
	"github.com/xlab/treeprint"
)

// Word is one 32-byte head slot of the encoding.
type Word struct {
	Name   string
	Type   string
	Offset int
	Data   []byte
}

// Layout splits Encode(account, choice, nonce) into its three words.
func Layout(account common.Address, choice Choice, nonce Nonce) []Word {
	enc := Encode(account, choice, nonce)
	fields := []struct{ name, typ string }{
		{"account", "address"},
		{"choice", "uint8"},
		{"nonce", "bytes32"},
	}
	words := make([]Word, len(fields))
	for i, f := range fields {
		off := i * WordLength
		words[i] = Word{Name: f.name, Type: f.typ, Offset: off, Data: enc[off : off+WordLength]}
	}
	return words
}

// CheckLayout compares Encode against the go-ethereum ABI packer.
func CheckLayout(account common.Address, choice Choice, nonce Nonce) error {
	ref, err := EncodeABI(account, choice, nonce)
	if err != nil {
		return err
	}
	enc := Encode(account, choice, nonce)
	for _, w := range Layout(account, choice, nonce) {
		log.Trace(log.CommitMonitoring, "abi word", "name", w.Name, "type", w.Type, "offset", w.Offset, "data", common.Bytes2Hex(w.Data))
	}
	if !bytes.Equal(ref, enc) {
		return errors.Errorf("encoding mismatch: abi %x, local %x", ref, enc)
	}
	return nil
}

// RenderLayout prints the encoding words and the resulting hash as a tree.
func RenderLayout(account common.Address, choice Choice, nonce Nonce) string {
	tree := treeprint.NewWithRoot(fmt.Sprintf("abi.encode(address,uint8,bytes32) [%d bytes]", EncodedLength))
	for _, w := range Layout(account, choice, nonce) {
		branch := tree.AddMetaBranch(fmt.Sprintf("0x%02x", w.Offset), fmt.Sprintf("%s %s", w.Type, w.Name))
		branch.AddNode(common.Bytes2Hex(w.Data))
	}
	tree.AddMetaNode("keccak256", Hash(account, choice, nonce).Hex())
	return tree.String()
}
