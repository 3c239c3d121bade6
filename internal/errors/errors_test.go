package errors

import (
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCode(t *testing.T) {
	base := DatasetMalformed("row 3: class must be 0 or 1")
	wrapped := Wrap(base, "failed to load dataset")

	assert.Equal(t, CodeDatasetMalformed, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "failed to load dataset")
	assert.Contains(t, wrapped.Error(), "row 3")
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	wrapped := Wrapf(os.ErrNotExist, "open %s", "launches.csv")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.ErrorIs(t, wrapped, os.ErrNotExist)
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestGetCode_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", InvalidInput("low must be a number"))

	assert.True(t, IsAppError(err))
	assert.Equal(t, CodeInvalidInput, GetCode(err))
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", InvalidInput("bad bound"), http.StatusBadRequest},
		{"malformed dataset", DatasetMalformed("bad row"), http.StatusInternalServerError},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeDatabaseError, fmt.Errorf("connection refused"))
	assert.Equal(t, CodeDatabaseError, GetCode(err))
	assert.Nil(t, WithCode(CodeDatabaseError, nil))
}
