package marketplace

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/domain"
)

// ParseCategory accepts a 0x bytes32 id or a category name of at most 31 bytes
func ParseCategory(category string) ([32]byte, error) {
	var out [32]byte
	if strings.HasPrefix(category, "0x") && len(category) == 66 {
		b, err := hexutil.Decode(category)
		if err != nil {
			return out, domain.ErrInvalidCategory
		}
		copy(out[:], b)
		return out, nil
	}
	if category == "" {
		return out, domain.ErrInvalidCategory
	}
	out, err := abi.FormatBytes32String(category)
	if err != nil {
		return out, domain.ErrInvalidCategory
	}
	return out, nil
}
