package services

import (
	"testing"

	"github.com/azamatp047/shukrona-backend/entity"

	"github.com/stretchr/testify/assert"
)

func TestAdminChecker(t *testing.T) {
	checker := NewAdminChecker([]string{"111", "222"})

	assert.True(t, checker.IsAdmin("111"))
	assert.True(t, checker.IsAdmin("222"))
	assert.False(t, checker.IsAdmin("333"))
	assert.False(t, checker.IsAdmin(""))
	assert.ElementsMatch(t, []string{"111", "222"}, checker.ChatIDs())

	empty := NewAdminChecker(nil)
	assert.False(t, empty.IsAdmin("111"))
	assert.Empty(t, empty.ChatIDs())
}

func TestIsAssignedCourier(t *testing.T) {
	id := uint(7)

	assert.False(t, isAssignedCourier(&entity.Order{}, 7))
	assert.True(t, isAssignedCourier(&entity.Order{CourierID: &id}, 7))
	assert.False(t, isAssignedCourier(&entity.Order{CourierID: &id}, 8))
}
