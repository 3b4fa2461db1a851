package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MockServiceSuite struct {
	suite.Suite
}

func TestMockServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(MockServiceSuite))
}

func (s *MockServiceSuite) TestReturnsFixedTime() {
	// arrange
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service, _ := NewMockService(now)

	// act
	first := service.Now()
	second := service.Now()

	// assert
	s.Equal(now, first)
	s.Equal(now, second)
}

func (s *MockServiceSuite) TestSetterMovesTime() {
	// arrange
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service, setTime := NewMockService(now)

	// act
	setTime(now.Add(time.Hour))

	// assert
	s.Equal(now.Add(time.Hour), service.Now())
}
