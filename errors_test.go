package conjen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/conjen"
)

func TestMissingRequiredFieldError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := conjen.NewMissingRequiredFieldError("Widget", []string{"a", "c"})
		assert.Equal(t, "conjen: some required fields have not been set on Widget: [a, c]", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := conjen.NewMissingRequiredFieldError("Widget", []string{"c"})
		assert.True(t, errors.Is(err, conjen.ErrMissingRequiredField))
		assert.False(t, errors.Is(err, conjen.ErrNullArgument))
	})

	t.Run("IsMissingRequiredField", func(t *testing.T) {
		err := conjen.NewMissingRequiredFieldError("Widget", []string{"c"})
		assert.True(t, conjen.IsMissingRequiredField(err))
		assert.True(t, conjen.IsMissingRequiredField(fmt.Errorf("wrapper: %w", err)))
		assert.False(t, conjen.IsMissingRequiredField(errors.New("other")))
		assert.False(t, conjen.IsMissingRequiredField(nil))
	})
}

func TestNullFieldsError(t *testing.T) {
	err := conjen.NewNullFieldsError("Inventory", []string{"payload", "primary"})
	assert.Equal(t, "conjen: Inventory has null fields: [payload, primary]", err.Error())
	assert.True(t, errors.Is(err, conjen.ErrNullFields))
	assert.False(t, errors.Is(err, conjen.ErrMissingRequiredField))
	assert.True(t, conjen.IsNullFields(fmt.Errorf("wrapper: %w", err)))
	assert.False(t, conjen.IsNullFields(conjen.NewMissingRequiredFieldError("Inventory", nil)))
	assert.False(t, conjen.IsNullFields(nil))
}

func TestNullArgumentError(t *testing.T) {
	err := conjen.NewNullArgumentError("Widget", "b")
	assert.Equal(t, "conjen: Widget.b cannot be null", err.Error())
	assert.True(t, errors.Is(err, conjen.ErrNullArgument))
	assert.True(t, conjen.IsNullArgument(fmt.Errorf("wrapper: %w", err)))
	assert.False(t, conjen.IsNullArgument(nil))
}

func TestIllegalBuilderReuseError(t *testing.T) {
	err := conjen.NewIllegalBuilderReuseError("Widget", "SetA")
	assert.Equal(t, "conjen: Widget builder: build has already been called (in SetA)", err.Error())
	assert.True(t, errors.Is(err, conjen.ErrIllegalBuilderReuse))
	assert.True(t, conjen.IsIllegalBuilderReuse(err))
	assert.False(t, conjen.IsIllegalBuilderReuse(conjen.NewNullArgumentError("Widget", "b")))
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("bad token")

	t.Run("with field", func(t *testing.T) {
		err := conjen.NewDecodeError("Widget", "b", cause)
		assert.Equal(t, "conjen: cannot decode Widget.b: bad token", err.Error())
		assert.True(t, errors.Is(err, conjen.ErrDecode))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("whole value", func(t *testing.T) {
		err := conjen.NewDecodeError("Widget", "", cause)
		assert.Equal(t, "conjen: cannot decode Widget: bad token", err.Error())
	})
}

func TestUnknownFieldError(t *testing.T) {
	err := conjen.NewUnknownFieldError("Widget", "extra")
	assert.Equal(t, `conjen: unknown field "extra" on Widget`, err.Error())
	assert.True(t, errors.Is(err, conjen.ErrUnknownField))
}
