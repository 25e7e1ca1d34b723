package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "shipped", "delivered", "cancelled"} {
		status, ok := ParseOrderStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, valid, status.String())
	}

	for _, invalid := range []string{"", "archived", "PAID", "Pending"} {
		_, ok := ParseOrderStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestRevenueStatuses(t *testing.T) {
	assert.Equal(t, []OrderStatus{OrderStatusPaid, OrderStatusDelivered}, RevenueStatuses())
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "farmer", "consumer"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, valid, role.String())
	}

	_, ok := ParseRole("merchant")
	assert.False(t, ok)
}
