// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"twqr-system/domain/entities"
	"twqr-system/domain/value_objects"
)

// BankRepository is a mock for repositories.BankRepository.
type BankRepository struct {
	mock.Mock
}

func (m *BankRepository) All() []entities.BankRecord {
	ret := m.Called()
	if rf, ok := ret.Get(0).([]entities.BankRecord); ok {
		return rf
	}
	return nil
}

func (m *BankRepository) FindByCode(code string) *entities.BankRecord {
	ret := m.Called(code)
	if rf, ok := ret.Get(0).(*entities.BankRecord); ok {
		return rf
	}
	return nil
}

func (m *BankRepository) Search(query string) []entities.SearchResult {
	ret := m.Called(query)
	if rf, ok := ret.Get(0).([]entities.SearchResult); ok {
		return rf
	}
	return nil
}

func (m *BankRepository) HighlightSpan(text, query string) []entities.HighlightRun {
	ret := m.Called(text, query)
	if rf, ok := ret.Get(0).([]entities.HighlightRun); ok {
		return rf
	}
	return nil
}

// IKVStore is a mock for repositories.IKVStore.
type IKVStore struct {
	mock.Mock
}

func (m *IKVStore) Get(key string) (string, bool) {
	ret := m.Called(key)
	return ret.String(0), ret.Bool(1)
}

func (m *IKVStore) Set(key, value string) error {
	ret := m.Called(key, value)
	return ret.Error(0)
}

// IAssetCache is a mock for repositories.IAssetCache.
type IAssetCache struct {
	mock.Mock
}

func (m *IAssetCache) GetOrFetch(ctx context.Context, key string) (string, error) {
	ret := m.Called(ctx, key)
	return ret.String(0), ret.Error(1)
}

// IMatrixGenerator is a mock for repositories.IMatrixGenerator.
type IMatrixGenerator struct {
	mock.Mock
}

func (m *IMatrixGenerator) Encode(text string, opts value_objects.MatrixOptions) ([]byte, error) {
	ret := m.Called(text, opts)
	if rf, ok := ret.Get(0).([]byte); ok {
		return rf, ret.Error(1)
	}
	return nil, ret.Error(1)
}
