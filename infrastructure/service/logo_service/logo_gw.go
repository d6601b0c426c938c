package logo_service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"go.uber.org/zap"

	"twqr-system/domain/repositories"
	"twqr-system/errors"
)

const timeout = time.Second * 30

// repoImpl fetches the branding logo once and keeps it in the injected
// key-value store. A stored value is returned without touching the network;
// there is no expiry, invalidation happens by changing the key.
type repoImpl struct {
	Uri    string
	Store  repositories.IKVStore
	Logger *zap.Logger
	client *http.Client
}

func NewRepoImpl(uri string, store repositories.IKVStore, logger *zap.Logger) *repoImpl {
	return &repoImpl{
		Uri:    uri,
		Store:  store,
		Logger: logger,
		client: &http.Client{Timeout: timeout},
	}
}

// GetOrFetch returns the asset as base64 text. Persistence failures are
// warnings only: the fetched value is still returned and used in-memory.
func (r *repoImpl) GetOrFetch(ctx context.Context, key string) (string, error) {
	if cached, ok := r.Store.Get(key); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.Uri, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %v", errors.ErrAssetUnavailable, resp.StatusCode)
	}

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	encoded := base64.StdEncoding.EncodeToString(raw)

	if err := r.Store.Set(key, encoded); err != nil {
		r.Logger.With(
			zap.String("key", key),
			zap.Error(err),
		).Warn("asset persisted failed, continuing with in-memory value")
	}

	return encoded, nil
}
