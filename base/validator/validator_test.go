package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{"invalid address", "0x000", false},
		{"checksum address", "0x939ae6A4C8dfDBB1f7085189574F0A938013952A", true},
		{"lower case", "0x939ae6a4c8dfdbb1f7085189574f0a938013952b", true},
		{"empty", "", false},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidBytes32() {
	s.True(IsValidBytes32("0x4172740000000000000000000000000000000000000000000000000000000000"))
	s.False(IsValidBytes32("0x41727400"))
	s.False(IsValidBytes32("Art"))
}

func (s *ValidatorTestSuite) TestIsPositiveEther() {
	s.True(IsPositiveEther("0.05"))
	s.True(IsPositiveEther("12"))
	s.False(IsPositiveEther("0"))
	s.False(IsPositiveEther("-1"))
	s.False(IsPositiveEther("abc"))
	s.False(IsPositiveEther("0.0000000000000000001"))
}

func (s *ValidatorTestSuite) TestStructTags() {
	type form struct {
		Seller   string `validate:"required,address"`
		Category string `validate:"required,bytes32"`
		Price    string `validate:"required,ether"`
	}
	v := NewCustomValidator(New())

	s.NoError(v.Validate(&form{
		Seller:   "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
		Category: "0x4172740000000000000000000000000000000000000000000000000000000000",
		Price:    "1.5",
	}))
	s.Error(v.Validate(&form{
		Seller:   "0x1",
		Category: "0x4172740000000000000000000000000000000000000000000000000000000000",
		Price:    "1.5",
	}))
	s.Error(v.Validate(&form{
		Seller:   "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
		Category: "0x4172740000000000000000000000000000000000000000000000000000000000",
		Price:    "0",
	}))
}
