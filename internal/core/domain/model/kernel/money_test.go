package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rounds to two places", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(12.999))

		require.NoError(t, err)
		assert.Equal(t, "13.00", m.String())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromFloat(-0.01))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money

		require.Error(t, m.Validate())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("parses exact base-10 amount", func(t *testing.T) {
		m, err := kernel.MoneyFromString("12.99")

		require.NoError(t, err)
		assert.Equal(t, "12.99", m.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("MulInt keeps exact decimals", func(t *testing.T) {
		price, err := kernel.MoneyFromString("12.99")
		require.NoError(t, err)

		total := price.MulInt(2)

		assert.Equal(t, "25.98", total.String())
	})

	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("25.98")
		b, _ := kernel.MoneyFromString("4.50")

		assert.Equal(t, "30.48", a.Add(b).String())
	})

	t.Run("no binary-float drift over many additions", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("0.10")
		sum := kernel.ZeroMoney()
		for range 100 {
			sum = sum.Add(price)
		}

		assert.Equal(t, "10.00", sum.String())
	})

	t.Run("IsEqual compares numerically", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("5.00")
		b, _ := kernel.MoneyFromString("5")

		assert.True(t, a.IsEqual(b))
	})
}
