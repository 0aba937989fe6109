package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	cases := []struct {
		Desc    string
		Address string
		Valid   bool
	}{
		{
			Desc:    "lowercase address",
			Address: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
			Valid:   true,
		},
		{
			Desc:    "missing prefix",
			Address: "bc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
			Valid:   false,
		},
		{
			Desc:    "too short",
			Address: "0xbc4ca0ed",
			Valid:   false,
		},
		{
			Desc:    "not hex",
			Address: "0xzz4ca0eda7647a8ab7c2061c2e118a18a936f13d",
			Valid:   false,
		},
		{
			Desc:    "empty",
			Address: "",
			Valid:   false,
		},
	}

	for _, c := range cases {
		s.Equal(c.Valid, IsValidAddress(c.Address), c.Desc)
	}
}
