package guard_test

import (
	"errors"
	"sync"
	"testing"

	"orderwizard/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type advanceCommand struct {
		wizardID string
		guard    guard.ConstructorGuard
	}

	errNotConstructed := errors.New("advanceCommand must be created via newAdvanceCommand")
	newAdvanceCommand := func(id string) advanceCommand {
		return advanceCommand{wizardID: id, guard: guard.NewConstructorGuard()}
	}
	validate := func(c advanceCommand) error {
		return c.guard.Validate(errNotConstructed)
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		require.NoError(t, validate(newAdvanceCommand("abc")))
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		err := validate(advanceCommand{wizardID: "abc"})
		require.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("copies_keep_their_guard", func(t *testing.T) {
		original := newAdvanceCommand("abc")
		copied := original
		require.NoError(t, validate(copied))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}
