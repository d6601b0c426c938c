package application

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"twqr-system/domain/entities"
	"twqr-system/domain/repositories/mocks"
	domainerrors "twqr-system/errors"
	"twqr-system/utils/gpooling"
)

func newTestApplication(t *testing.T, matrix *mocks.IMatrixGenerator, assets *mocks.IAssetCache) *TransferApplication {
	t.Helper()
	pool, err := gpooling.NewPooling(4, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	return &TransferApplication{
		Logger:   zap.NewNop(),
		IPool:    pool,
		Renderer: newTestRenderer(t, matrix, assets),
	}
}

func TestTransferApplication_EncodeTransfer(t *testing.T) {
	type args struct {
		req entities.TransferRequest
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr error
	}{
		{
			name: "bank and account only",
			args: args{req: entities.TransferRequest{BankCode: "822", AccountID: "1234567890"}},
			want: "TWQRP://xn--gmqw5ax42ad01c/158/02/V1?D5=822&D6=0000001234567890",
		},
		{
			name:    "missing bank code",
			args:    args{req: entities.TransferRequest{AccountID: "1234567890"}},
			wantErr: domainerrors.ErrMissingBankCode,
		},
		{
			name:    "missing account",
			args:    args{req: entities.TransferRequest{BankCode: "822"}},
			wantErr: domainerrors.ErrMissingAccountID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			us := &TransferApplication{Logger: zap.NewNop()}
			got, err := us.EncodeTransfer(tt.args.req)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransferApplication_RenderTransfer_InvalidRequestYieldsEmpty(t *testing.T) {
	us := &TransferApplication{Logger: zap.NewNop()}
	assert.Empty(t, us.RenderTransfer(context.Background(), entities.TransferRequest{BankCode: "822"}))
}

func TestTransferApplication_SubmitRender(t *testing.T) {
	matrix := &mocks.IMatrixGenerator{}
	matrix.On("Encode", mock.Anything, mock.Anything).Return(testPNG(t, 400), nil)
	assets := &mocks.IAssetCache{}
	assets.On("GetOrFetch", mock.Anything, "twqr-logo").Return("", errors.New("offline"))

	us := newTestApplication(t, matrix, assets)

	token := us.SubmitRender(context.Background(), entities.TransferRequest{
		BankCode:  "822",
		AccountID: "1234567890",
	})
	assert.Equal(t, uint64(1), token)

	deadline := time.Now().Add(5 * time.Second)
	for us.LatestArtifact() == "" {
		if time.Now().After(deadline) {
			t.Fatal("render did not resolve")
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.True(t, strings.HasPrefix(us.LatestArtifact(), "data:image/png;base64,"))
}

func TestTransferApplication_applyResult_DiscardsStale(t *testing.T) {
	us := &TransferApplication{Logger: zap.NewNop()}

	stale := atomic.AddUint64(&us.generation, 1)
	current := atomic.AddUint64(&us.generation, 1)

	assert.True(t, us.applyResult(current, "current-artifact", "trace-2"))
	assert.False(t, us.applyResult(stale, "stale-artifact", "trace-1"))
	assert.Equal(t, "current-artifact", us.LatestArtifact())
}
