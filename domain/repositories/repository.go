package repositories

import (
	"context"

	"twqr-system/domain/entities"
	"twqr-system/domain/value_objects"
)

// BankRepository answers lookups and fuzzy queries over the bank directory.
// Implementations hold an immutable dataset loaded once at startup.
type BankRepository interface {
	All() []entities.BankRecord
	FindByCode(code string) *entities.BankRecord
	Search(query string) []entities.SearchResult
	HighlightSpan(text, query string) []entities.HighlightRun
}

// IKVStore is the persisted key-value store behind the asset cache. Set
// failures are non-fatal for callers.
type IKVStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// IAssetCache returns a binary-as-text asset, fetching and persisting it on
// first use.
type IAssetCache interface {
	GetOrFetch(ctx context.Context, key string) (string, error)
}

// IMatrixGenerator is the external code-matrix generator. The returned bytes
// are an encoded raster image.
type IMatrixGenerator interface {
	Encode(text string, opts value_objects.MatrixOptions) ([]byte, error)
}
