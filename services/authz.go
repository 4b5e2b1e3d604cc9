package services

import (
	"github.com/azamatp047/shukrona-backend/entity"
)

// AdminChecker answers "is this chat id an operator". The id list comes
// from config at construction time; the checker itself is immutable.
type AdminChecker struct {
	ids map[string]struct{}
}

func NewAdminChecker(chatIDs []string) *AdminChecker {
	ids := make(map[string]struct{}, len(chatIDs))
	for _, id := range chatIDs {
		ids[id] = struct{}{}
	}
	return &AdminChecker{ids: ids}
}

func (a *AdminChecker) IsAdmin(chatID string) bool {
	_, ok := a.ids[chatID]
	return ok
}

// ChatIDs returns the operator list for broadcasts.
func (a *AdminChecker) ChatIDs() []string {
	out := make([]string, 0, len(a.ids))
	for id := range a.ids {
		out = append(out, id)
	}
	return out
}

// isAssignedCourier is the per-order authorization rule for courier
// actions: the order must already carry this courier's id.
func isAssignedCourier(o *entity.Order, courierID uint) bool {
	return o.CourierID != nil && *o.CourierID == courierID
}
