package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func zapNop() *zap.Logger { return zap.NewNop() }

func TestTelegramSend(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottoken123/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := NewTelegram(srv.URL, "token123")
	err := tg.Send("555", "order is ready", nil)
	require.NoError(t, err)

	assert.Equal(t, "555", got["chat_id"])
	assert.Equal(t, "order is ready", got["text"])
	_, hasKeyboard := got["reply_markup"]
	assert.False(t, hasKeyboard)
}

func TestTelegramSend_Buttons(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := NewTelegram(srv.URL, "t")
	err := tg.Send("555", "rate please", []Button{{Text: "5", Data: "rate:5"}})
	require.NoError(t, err)
	assert.Contains(t, got, "reply_markup")
}

func TestTelegramSend_APIErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	tg := NewTelegram(srv.URL, "t")
	err := tg.Send("0", "hello", nil)
	assert.Error(t, err)
}

type failingSender struct {
	mu    sync.Mutex
	calls int
}

func (f *failingSender) Send(chatID, text string, _ []Button) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return assert.AnError
}

func TestDispatcher_SwallowsFailures(t *testing.T) {
	sender := &failingSender{}
	d := NewDispatcher(sender, zapNop())

	// Must not panic, block or surface the error.
	d.Dispatch("1", "hello")
	d.Broadcast([]string{"2", "3"}, "hello all")

	assert.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return sender.calls == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDispatcher_NilSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch("1", "hello") // no-op

	empty := NewDispatcher(nil, zapNop())
	empty.Dispatch("1", "hello")
	empty.Dispatch("", "no recipient")
}
