package services

import (
	"testing"

	"github.com/azamatp047/shukrona-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_SameChatIDReturnsExisting(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.users.Register(&RegisterUserReq{ChatID: "u1", Name: "Aziz"})
	require.NoError(t, err)

	second, err := env.users.Register(&RegisterUserReq{ChatID: "u1", Name: "Someone Else"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Aziz", second.Name)
}

func TestUserUpdate_PartialMerge(t *testing.T) {
	env := newTestEnv(t)
	u, err := env.users.Register(&RegisterUserReq{
		ChatID: "u1", Name: "Aziz", Phone: "+998901234567", Address: "Chilonzor 5",
	})
	require.NoError(t, err)

	addr := "Yunusobod 12"
	updated, err := env.users.Update(u.ID, &UpdateUserReq{Address: &addr})
	require.NoError(t, err)

	assert.Equal(t, addr, updated.Address)
	assert.Equal(t, "Aziz", updated.Name)
	assert.Equal(t, "+998901234567", updated.Phone)
}

func TestUserBlockUnblock(t *testing.T) {
	env := newTestEnv(t)
	u := env.seedUser(t, "u1")

	blocked, err := env.users.SetStatus(u.ID, entity.UserBlocked)
	require.NoError(t, err)
	assert.Equal(t, entity.UserBlocked, blocked.Status)

	active, err := env.users.SetStatus(u.ID, entity.UserActive)
	require.NoError(t, err)
	assert.Equal(t, entity.UserActive, active.Status)

	_, err = env.users.Get(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
