package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionPrincipal(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"100.00", "100.00"},
		{"-50.00", "50.00"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		tx := Transaction{Amount: decimal.RequireFromString(tt.amount)}
		assert.Equal(t, tt.want, tx.Principal().StringFixed(2), "Principal(%s)", tt.amount)
	}
}
