package pagelens_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/semanticgateway/pagelens"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", pagelens.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := pagelens.Errorf(pagelens.EINVALID, "bad input")
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", pagelens.Errorf(pagelens.EUNAVAILABLE, "down"))
		assert.Equal(t, pagelens.EUNAVAILABLE, pagelens.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pagelens.EINTERNAL, pagelens.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := pagelens.Errorf(pagelens.ENOTFOUND, "page %q not found", "x")
		assert.Equal(t, `page "x" not found`, pagelens.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", pagelens.ErrorMessage(errors.New("boom")))
	})
}

func TestError_Error(t *testing.T) {
	t.Parallel()

	err := pagelens.Errorf(pagelens.EINVALID, "empty HTML input")
	assert.Equal(t, "pagelens error: code=invalid message=empty HTML input", err.Error())
}
