package verification

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/holdergate/goapi/domain"
	"github.com/holdergate/goapi/domain/delegation"
)

type verificationSuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(verificationSuite))
}

func (s *verificationSuite) TestAccessLevelRank() {
	s.Less(AccessLevelNone.Rank(), AccessLevelHolder.Rank())
	s.Less(AccessLevelHolder.Rank(), AccessLevelCollector.Rank())
	s.Less(AccessLevelCollector.Rank(), AccessLevelWhale.Rank())
}

func (s *verificationSuite) TestFingerprintIsOrderIndependent() {
	g1 := delegation.Grant{Vault: "0xaaa", Type: domain.DelegationTypeAll}
	g2 := delegation.Grant{Vault: "0xbbb", Type: domain.DelegationTypeContract}

	s.Equal(
		Fingerprint([]delegation.Grant{g1, g2}),
		Fingerprint([]delegation.Grant{g2, g1}),
	)
}

func (s *verificationSuite) TestFingerprintNormalizesCase() {
	s.Equal(
		Fingerprint([]delegation.Grant{{Vault: "0xAAA", Type: domain.DelegationTypeAll}}),
		Fingerprint([]delegation.Grant{{Vault: "0xaaa", Type: domain.DelegationTypeAll}}),
	)
}

func (s *verificationSuite) TestFingerprintDistinguishesContexts() {
	empty := Fingerprint(nil)
	one := Fingerprint([]delegation.Grant{{Vault: "0xaaa", Type: domain.DelegationTypeAll}})
	s.NotEqual(empty, one)

	typed := Fingerprint([]delegation.Grant{{Vault: "0xaaa", Type: domain.DelegationTypeToken}})
	s.NotEqual(one, typed)
}
