package contract

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/huangsam/hiresignal/schema"
)

// MockFetcher is a mock implementation of Fetcher for testing.
type MockFetcher struct {
	mock.Mock
}

var _ Fetcher = &MockFetcher{} // Compile-time check

// FetchBundle implements the Fetcher interface.
func (m *MockFetcher) FetchBundle(ctx context.Context, username string) (schema.UserBundle, error) {
	ret := m.Called(ctx, username)
	bundle, _ := ret.Get(0).(schema.UserBundle)
	return bundle, ret.Error(1)
}
