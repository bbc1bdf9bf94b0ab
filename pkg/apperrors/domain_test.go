package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFactories(t *testing.T) {
	invalid := ErrInvalidStatus("job_posting", "not allowed")
	assert.Equal(t, CodeInvalidStatus, invalid.Code)
	assert.Equal(t, http.StatusConflict, invalid.HTTPCode)

	op := ErrInvalidOperation("checkpoint", "not now")
	assert.Equal(t, CodeInvalidOperation, op.Code)
	assert.Equal(t, http.StatusBadRequest, op.HTTPCode)
}

func TestFactoryBuiltSentinels(t *testing.T) {
	assert.Equal(t, CodeInvalidStatus, ErrInvalidJobPostingStatus.Code)
	assert.Equal(t, http.StatusConflict, ErrInvalidJobPostingStatus.HTTPCode)
	assert.Equal(t, CodeInvalidStatus, ErrCandidateAlreadyResolved.Code)
	assert.Equal(t, CodeInvalidOperation, ErrCheckpointNotSubmittable.Code)
	assert.Equal(t, http.StatusBadRequest, ErrCheckpointNotSubmittable.HTTPCode)
}

func TestWithErrorLeavesSentinelUntouched(t *testing.T) {
	wrapped := ErrInvalidToken.WithError(errors.New("signature mismatch"))
	assert.Error(t, wrapped.Err)
	assert.Nil(t, ErrInvalidToken.Err)
	assert.Equal(t, ErrInvalidToken.Code, wrapped.Code)
}
