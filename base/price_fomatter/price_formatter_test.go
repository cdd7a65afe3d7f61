package pricefomatter

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatEther(t *testing.T) {
	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"whole", oneEther, "1.0"},
		{"fraction", big.NewInt(50000000000000000), "0.05"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"zero", big.NewInt(0), "0.0"},
		{"nil", nil, "0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatEther(tt.wei))
		})
	}
}

func TestParseEther(t *testing.T) {
	req := require.New(t)

	wei, err := ParseEther("1.5")
	req.NoError(err)
	req.Equal("1500000000000000000", wei.String())

	wei, err = ParseEther(" 0.000000000000000001 ")
	req.NoError(err)
	req.Equal("1", wei.String())

	_, err = ParseEther("0.0000000000000000001")
	req.ErrorIs(err, ErrTooManyDecimal)

	_, err = ParseEther("one")
	req.ErrorIs(err, ErrInvalidAmount)
}

func TestBasisPoints(t *testing.T) {
	req := require.New(t)
	req.Equal("2.5", FormatBasisPoints(big.NewInt(250)))

	bps, err := ParsePercent("2.5")
	req.NoError(err)
	req.Equal(int64(250), bps)

	_, err = ParsePercent("2.505")
	req.ErrorIs(err, ErrTooManyDecimal)
}
