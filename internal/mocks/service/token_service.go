package service

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Generate(login string) (string, error) {
	args := m.Called(login)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (string, error) {
	args := m.Called(token)

	return args.String(0), args.Error(1)
}
