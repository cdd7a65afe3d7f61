package marketplace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andy-marketplace/goapi/base/abi"
	"github.com/andy-marketplace/goapi/domain"
)

func TestParseCategory(t *testing.T) {
	req := require.New(t)
	art, _ := abi.FormatBytes32String("Art")

	got, err := ParseCategory("Art")
	req.NoError(err)
	req.Equal(art, got)

	got, err = ParseCategory("0x4172740000000000000000000000000000000000000000000000000000000000")
	req.NoError(err)
	req.Equal(art, got)

	for _, bad := range []string{"", "0xzz72740000000000000000000000000000000000000000000000000000000000", "a category name that is far longer than thirty one bytes"} {
		_, err = ParseCategory(bad)
		req.ErrorIs(err, domain.ErrInvalidCategory, bad)
	}
}
