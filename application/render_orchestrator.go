package application

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"twqr-system/domain/entities"
	"twqr-system/errors"
	"twqr-system/utils/helpers"
	"twqr-system/utils/twqr"
)

// EncodeTransfer gates on the required wire fields before calling the pure
// encoder. Callers treat an error as "do not render".
func (us *TransferApplication) EncodeTransfer(req entities.TransferRequest) (string, error) {
	if req.BankCode == "" {
		return "", errors.ErrMissingBankCode
	}
	if req.AccountID == "" {
		return "", errors.ErrMissingAccountID
	}
	return twqr.GeneratePayload(req, twqr.Options{}), nil
}

// RenderTransfer is the synchronous path: encode, render, degrade to an
// empty artifact on any failure.
func (us *TransferApplication) RenderTransfer(ctx context.Context, req entities.TransferRequest) string {
	payload, err := us.EncodeTransfer(req)
	if err != nil {
		return ""
	}
	return us.Renderer.Render(ctx, payload, req)
}

// SubmitRender runs a render on the pool under a fresh generation token.
// Fast field edits may leave several renders in flight; only the result
// whose token is still newest at resolution time is applied, stale results
// are discarded so they can never overwrite a newer artifact. The token is
// returned for callers that want to correlate.
func (us *TransferApplication) SubmitRender(ctx context.Context, req entities.TransferRequest) uint64 {
	token := atomic.AddUint64(&us.generation, 1)
	traceId := helpers.GetUUId()

	us.IPool.Submit(func() {
		us.applyResult(token, us.RenderTransfer(ctx, req), traceId)
	})

	return token
}

// LatestArtifact returns the artifact of the newest completed render, empty
// until one resolves.
func (us *TransferApplication) LatestArtifact() string {
	us.mu.RLock()
	defer us.mu.RUnlock()
	return us.latest
}

func (us *TransferApplication) applyResult(token uint64, artifact, traceId string) bool {
	us.mu.Lock()
	defer us.mu.Unlock()

	if token != atomic.LoadUint64(&us.generation) {
		us.Logger.With(
			zap.Uint64("token", token),
			zap.String("trace-id", traceId),
		).Debug("stale render discarded")
		return false
	}

	us.latest = artifact
	return true
}
