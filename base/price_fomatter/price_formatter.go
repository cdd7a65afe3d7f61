package pricefomatter

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

const (
	EtherDecimals = 18

	// BasisPoints is the royalty denominator, 250 = 2.5%
	BasisPoints = 10000
)

var (
	ErrInvalidAmount  = xerrors.New("invalid amount")
	ErrTooManyDecimal = xerrors.New("too many decimals")
)

// FormatEther renders wei as an ether string, always with a fractional part: 1e18 -> "1.0"
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	s := decimal.NewFromBigInt(wei, -EtherDecimals).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ParseEther converts an ether decimal string to wei
func ParseEther(ether string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(ether))
	if err != nil {
		return nil, xerrors.Errorf("%s: %w", ether, ErrInvalidAmount)
	}
	wei := d.Shift(EtherDecimals)
	if !wei.Equal(wei.Truncate(0)) {
		return nil, xerrors.Errorf("%s: %w", ether, ErrTooManyDecimal)
	}
	return wei.BigInt(), nil
}

// FormatBasisPoints renders a royalty fee as a percentage string: 250 -> "2.5"
func FormatBasisPoints(bps *big.Int) string {
	if bps == nil {
		return "0"
	}
	return decimal.NewFromBigInt(bps, -2).String()
}

// ParsePercent converts a percentage string to basis points: "2.5" -> 250
func ParsePercent(percent string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(percent))
	if err != nil {
		return 0, xerrors.Errorf("%s: %w", percent, ErrInvalidAmount)
	}
	bps := d.Shift(2)
	if !bps.Equal(bps.Truncate(0)) {
		return 0, xerrors.Errorf("%s: %w", percent, ErrTooManyDecimal)
	}
	return bps.IntPart(), nil
}
