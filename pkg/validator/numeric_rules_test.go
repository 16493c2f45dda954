package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asnimansari/validator-go/pkg/validator"
)

func TestBoundRules(t *testing.T) {
	t.Parallel()

	t.Run("min", func(t *testing.T) {
		assert.True(t, validator.MinNum("age", 21, 18).Check())
		assert.True(t, validator.MinNum("age", 18, 18).Check())
		assert.False(t, validator.MinNum("age", 17, 18).Check())
		assert.True(t, validator.MinNum("score", 0.5, 0.1).Check())
	})

	t.Run("max", func(t *testing.T) {
		assert.True(t, validator.MaxNum("age", 65, 100).Check())
		assert.True(t, validator.MaxNum("age", 100, 100).Check())
		assert.False(t, validator.MaxNum("age", 101, 100).Check())
	})

	t.Run("in range", func(t *testing.T) {
		assert.True(t, validator.InRange("age", 30, 18, 65).Check())
		assert.True(t, validator.InRange("age", 18, 18, 65).Check())
		assert.True(t, validator.InRange("age", 65, 18, 65).Check())
		assert.False(t, validator.InRange("age", 17, 18, 65).Check())
		assert.False(t, validator.InRange("age", 66, 18, 65).Check())
	})

	t.Run("aliases", func(t *testing.T) {
		assert.True(t, validator.Min("age", 21, 18).Check())
		assert.True(t, validator.Max("age", 65, 100).Check())
	})
}

func TestSignRules(t *testing.T) {
	t.Parallel()

	t.Run("positive", func(t *testing.T) {
		assert.True(t, validator.Positive("count", 1).Check())
		assert.True(t, validator.Positive("count", 0.001).Check())
		assert.False(t, validator.Positive("count", 0).Check())
		assert.False(t, validator.Positive("count", -1).Check())
	})

	t.Run("negative", func(t *testing.T) {
		assert.True(t, validator.Negative("delta", -1).Check())
		assert.False(t, validator.Negative("delta", 0).Check())
		assert.False(t, validator.Negative("delta", 1).Check())
	})

	t.Run("zero", func(t *testing.T) {
		assert.True(t, validator.Zero("balance", 0).Check())
		assert.True(t, validator.Zero("balance", 0.0).Check())
		assert.False(t, validator.Zero("balance", 0.01).Check())
		assert.False(t, validator.Zero("balance", -1).Check())
	})
}

func TestParityRules(t *testing.T) {
	t.Parallel()

	t.Run("even", func(t *testing.T) {
		assert.True(t, validator.Even("n", 0).Check())
		assert.True(t, validator.Even("n", 2).Check())
		assert.True(t, validator.Even("n", -4).Check())
		assert.False(t, validator.Even("n", 3).Check())
	})

	t.Run("odd", func(t *testing.T) {
		assert.True(t, validator.Odd("n", 1).Check())
		assert.True(t, validator.Odd("n", -3).Check())
		assert.False(t, validator.Odd("n", 0).Check())
		assert.False(t, validator.Odd("n", 2).Check())
	})

	t.Run("multiple of", func(t *testing.T) {
		assert.True(t, validator.MultipleOf("n", 15, 5).Check())
		assert.True(t, validator.MultipleOf("n", 0, 5).Check())
		assert.False(t, validator.MultipleOf("n", 16, 5).Check())
		assert.False(t, validator.MultipleOf("n", 10, 0).Check())
	})
}

func TestCloseTo(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.CloseTo("total", 100.05, 100.0, 0.1).Check())
	assert.True(t, validator.CloseTo("total", 100.0, 100.0, 0.0).Check())
	assert.False(t, validator.CloseTo("total", 101.0, 100.0, 0.5).Check())
}
