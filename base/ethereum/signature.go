// Package ethereum verifies wallet signatures produced by personal_sign.
package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrBadSignature = errors.New("malformed signature")

// VerifyPersonalSign reports whether signature is signer's personal_sign of message
func VerifyPersonalSign(message []byte, signature, signer string) (bool, error) {
	if !common.IsHexAddress(signer) {
		return false, fmt.Errorf("invalid signer %q", signer)
	}
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	got, err := RecoverSigner(accounts.TextHash(message), sig)
	if err != nil {
		return false, err
	}
	return got == common.HexToAddress(signer), nil
}

// RecoverSigner accepts the recovery id both as 0/1 and as 27/28. sig is not modified.
func RecoverSigner(hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: want %d bytes, got %d", ErrBadSignature, crypto.SignatureLength, len(sig))
	}
	rsv := make([]byte, len(sig))
	copy(rsv, sig)
	switch v := rsv[crypto.RecoveryIDOffset]; v {
	case 0, 1:
	case 27, 28:
		rsv[crypto.RecoveryIDOffset] = v - 27
	default:
		return common.Address{}, fmt.Errorf("%w: recovery id %d", ErrBadSignature, v)
	}
	pub, err := crypto.SigToPub(hash, rsv)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
