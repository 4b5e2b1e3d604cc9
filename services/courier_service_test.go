package services

import (
	"testing"

	"github.com/azamatp047/shukrona-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierStats_DeliveredAndRated(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)

	id := env.deliveredOrder(t, "u1", courier, osh.ID, 2)
	require.NoError(t, env.orders.Rate(id, 5, "great"))

	stats, err := env.couriers.Stats(courier.ID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.DeliveredCount)
	assert.Equal(t, int64(30000), stats.TotalCollected)
	assert.Equal(t, 5.0, stats.AverageRating)
	require.Len(t, stats.History, 1)
	assert.Equal(t, id, stats.History[0].OrderID)
	require.NotNil(t, stats.History[0].Rating)
	assert.Equal(t, 5, *stats.History[0].Rating)
}

func TestCourierStats_AverageSkipsUnrated(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	env.seedUser(t, "u2")
	env.seedUser(t, "u3")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)

	a := env.deliveredOrder(t, "u1", courier, osh.ID, 1)
	b := env.deliveredOrder(t, "u2", courier, osh.ID, 1)
	env.deliveredOrder(t, "u3", courier, osh.ID, 1) // never rated

	require.NoError(t, env.orders.Rate(a, 4, ""))
	require.NoError(t, env.orders.Rate(b, 5, ""))

	stats, err := env.couriers.Stats(courier.ID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.DeliveredCount)
	assert.Equal(t, 4.5, stats.AverageRating) // (4+5)/2, unrated excluded
}

func TestCourierStats_RoundedToOneDecimal(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	env.seedUser(t, "u2")
	env.seedUser(t, "u3")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)

	for i, chat := range []string{"u1", "u2", "u3"} {
		id := env.deliveredOrder(t, chat, courier, osh.ID, 1)
		ratings := []int{4, 4, 5}
		require.NoError(t, env.orders.Rate(id, ratings[i], ""))
	}

	stats, err := env.couriers.Stats(courier.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.3, stats.AverageRating) // 13/3 = 4.333…
}

func TestCourierStats_NoRatingsMeansZero(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	courier := env.seedCourier(t, "c1")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)
	env.deliveredOrder(t, "u1", courier, osh.ID, 1)

	stats, err := env.couriers.Stats(courier.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, 1, stats.DeliveredCount)
}

func TestCourierStats_FiltersByCourierAndWindow(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "u1")
	env.seedUser(t, "u2")
	mine := env.seedCourier(t, "c1")
	other := env.seedCourier(t, "c2")
	osh := env.seedProduct(t, "Osh", 10000, 15000, 100)

	env.deliveredOrder(t, "u1", mine, osh.ID, 1)
	env.deliveredOrder(t, "u2", other, osh.ID, 2)

	stats, err := env.couriers.Stats(mine.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DeliveredCount)
	assert.Equal(t, int64(15000), stats.TotalCollected)

	// Window in the distant past: empty.
	start, end := date(2000, 1, 1), date(2000, 2, 1)
	stats, err = env.couriers.Stats(mine.ID, &start, &end)
	require.NoError(t, err)
	assert.Zero(t, stats.DeliveredCount)
	assert.Empty(t, stats.History)

	_, err = env.couriers.Stats(9999, nil, nil)
	assert.ErrorIs(t, err, ErrCourierNotFound)
}

func TestCourierUpdate_PartialMerge(t *testing.T) {
	env := newTestEnv(t)
	courier := env.seedCourier(t, "c1")

	phone := "+998911112233"
	updated, err := env.couriers.Update(courier.ID, &UpdateCourierReq{Phone: &phone})
	require.NoError(t, err)

	// Only the supplied field changed.
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, courier.Name, updated.Name)
	assert.Equal(t, entity.CourierActive, updated.Status)

	// An explicit empty string clears; a nil leaves alone.
	empty := ""
	updated, err = env.couriers.Update(courier.ID, &UpdateCourierReq{Username: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Username)
	assert.Equal(t, phone, updated.Phone)
}
