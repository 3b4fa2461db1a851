package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MapSliceSuite struct {
	suite.Suite
}

func TestMapSliceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MapSliceSuite))
}

func (s *MapSliceSuite) TestNilStaysNil() {
	// arrange
	var messages []string

	// act
	result := MapSlice(messages, strings.ToUpper)

	// assert
	s.Nil(result)
}

func (s *MapSliceSuite) TestKeepsOrder() {
	// arrange
	scores := []int{0, 2, 4}

	// act
	result := MapSlice(scores, func(score int) bool {
		return score >= 3
	})

	// assert
	s.Equal([]bool{false, false, true}, result)
}

type EmptyIfNilSuite struct {
	suite.Suite
}

func TestEmptyIfNilSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(EmptyIfNilSuite))
}

func (s *EmptyIfNilSuite) TestNilBecomesEmpty() {
	// arrange
	var suggestions []string

	// act
	result := EmptyIfNil(suggestions)

	// assert
	s.NotNil(result)
	s.Equal([]string{}, result)
}

func (s *EmptyIfNilSuite) TestNonNilIsReturnedAsIs() {
	// arrange
	suggestions := []string{"Use a longer passphrase"}

	// act
	result := EmptyIfNil(suggestions)

	// assert
	s.Equal(suggestions, result)
}

type TakeSuite struct {
	suite.Suite
}

func TestTakeSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TakeSuite))
}

func (s *TakeSuite) TestKeepsPrefix() {
	// arrange
	errs := []string{"a", "b", "c", "d"}

	// act
	result := Take(errs, 3)

	// assert
	s.Equal([]string{"a", "b", "c"}, result)
}

func (s *TakeSuite) TestShorterInputIsCopied() {
	// arrange
	errs := []string{"a"}

	// act
	result := Take(errs, 3)
	result[0] = "changed"

	// assert
	s.Equal([]string{"a"}, errs)
}

func (s *TakeSuite) TestNegativeKeepsEverything() {
	// arrange
	errs := []string{"a", "b"}

	// act
	result := Take(errs, -1)

	// assert
	s.Equal(errs, result)
}

func (s *TakeSuite) TestNilGivesEmpty() {
	// act
	result := Take[string](nil, 2)

	// assert
	s.NotNil(result)
	s.Empty(result)
}
