package support

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"algonest_webclient/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewNotifier(Config{})
	require.NoError(t, err)
	assert.IsType(t, noopNotifier{}, n)
	assert.NoError(t, n.Notify(context.Background(), model.SupportReport{}))
}

func TestTelegramNotifier_Notify(t *testing.T) {
	var (
		mu   sync.Mutex
		sent []string
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"support","username":"support_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			mu.Lock()
			sent = append(sent, r.FormValue("chat_id")+"|"+r.FormValue("text"))
			mu.Unlock()
			w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"private"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	n, err := NewNotifier(Config{
		TelegramBotToken: "123:abc",
		ChatID:           42,
		APIEndpoint:      srv.URL + "/bot%s/%s",
	})
	require.NoError(t, err)

	err = n.Notify(context.Background(), model.SupportReport{
		Name:        "Ada",
		Email:       "ada@example.com",
		Subject:     "Withdrawal delayed",
		Description: "Pending for 3 days",
	})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, sent, 1)
	assert.True(t, strings.HasPrefix(sent[0], "42|New support report"))
	assert.Contains(t, sent[0], "Subject: Withdrawal delayed")
}

func TestTelegramNotifier_CancelledContext(t *testing.T) {
	n := &TelegramNotifier{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx, model.SupportReport{}), context.Canceled)
}
