package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	domainservice "todo/internal/domain/service"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(subject string, ttl time.Duration) (string, error) {
	args := m.Called(subject, ttl)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)

	claims, _ := args.Get(0).(*domainservice.Claims)

	return claims, args.Error(1)
}

func (m *MockTokenService) DefaultTTL() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
