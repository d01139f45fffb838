package shuffle

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ShuffleTestSuite struct {
	suite.Suite
}

func TestShuffleTestSuite(t *testing.T) {
	suite.Run(t, new(ShuffleTestSuite))
}

func (s *ShuffleTestSuite) TestShuffleKeepsMembership() {
	shuffler := New(nil)
	options := []string{"Lyon", "Marseille", "Nice", "Paris"}

	shuffler.Strings(options)

	s.ElementsMatch([]string{"Lyon", "Marseille", "Nice", "Paris"}, options)
}

func (s *ShuffleTestSuite) TestSameSeedSamePermutation() {
	first := []string{"a", "b", "c", "d", "e"}
	second := []string{"a", "b", "c", "d", "e"}

	New(&Config{Seed: 42}).Strings(first)
	New(&Config{Seed: 42}).Strings(second)

	s.Equal(first, second)
}

func (s *ShuffleTestSuite) TestEmptyAndSingleOptionAreStable() {
	shuffler := New(&Config{Seed: 1})

	var empty []string
	shuffler.Strings(empty)
	s.Empty(empty)

	single := []string{"Paris"}
	shuffler.Strings(single)
	s.Equal([]string{"Paris"}, single)
}
