package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindForbidden, KindOf(Forbidden("no")))
	assert.Equal(t, KindConflict, KindOf(Conflict("busy")))
	assert.Equal(t, KindStorage, KindOf(Storage(errors.New("db down"))))

	// untyped errors fall back to storage so nothing leaks to clients
	assert.Equal(t, KindStorage, KindOf(errors.New("plain")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("checkout: %w", Conflict("cart already scoped"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(nil, KindConflict))
}

func TestStorageHidesCause(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed")
	err := Storage(cause)
	assert.NotEqual(t, cause.Error(), err.Msg)
	assert.ErrorIs(t, err, cause)
}

func TestMessageFormatting(t *testing.T) {
	err := NotFound("product %q is no longer available", "Yassa")
	assert.Equal(t, `product "Yassa" is no longer available`, err.Error())
}
