package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/medsignup/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message in insertion order", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "password", Message: "too short"},
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "needs a digit"},
	}

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("phone"))
	assert.Equal(t, []string{"too short", "needs a digit"}, errs.Get("password"))
	assert.Nil(t, errs.Get("phone"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "John"),
			validator.MinLen("name", "John", 3),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", ""),
			validator.Email("email", "nope"),
			validator.MinLen("license", "abc", 5),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"name", "email", "license"}, verrs.Fields())
	})

	t.Run("works with no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestFirst(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when every rule passes", func(t *testing.T) {
		assert.Nil(t, validator.First(
			validator.Required("name", "Jane"),
			validator.PersonName("name", "Jane"),
		))
	})

	t.Run("stops at the first failing rule", func(t *testing.T) {
		calls := 0
		counting := validator.Rule{Check: func() bool { calls++; return true }}

		verr := validator.First(
			validator.Required("name", "").WithMessage("Name is required"),
			counting,
		)
		require.NotNil(t, verr)
		assert.Equal(t, "name", verr.Field)
		assert.Equal(t, "Name is required", verr.Message)
		assert.Zero(t, calls)
	})

	t.Run("reports later rule when earlier pass", func(t *testing.T) {
		verr := validator.First(
			validator.Required("name", "Al"),
			validator.MinLen("name", "Al", 3),
		)
		require.NotNil(t, verr)
		assert.Equal(t, "validation.min_length", verr.TranslationKey)
	})
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.Required("email", "")
	custom := base.WithMessage("Email address is required")

	assert.Equal(t, "field is required", base.Error.Message)
	assert.Equal(t, "Email address is required", custom.Error.Message)
	assert.Equal(t, base.Error.TranslationKey, custom.Error.TranslationKey)
	assert.False(t, custom.Check())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	err := validator.Apply(validator.Required("name", ""))
	wrapped := fmt.Errorf("signup: %w", err)
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "name", verrs[0].Field)
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))

	err := validator.Apply(validator.Required("name", ""))
	assert.True(t, validator.IsValidationError(err))
	assert.True(t, validator.IsValidationError(fmt.Errorf("wrap: %w", err)))
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
}
