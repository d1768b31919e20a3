package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(hub)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)
	return conn
}

func TestHubPublish(t *testing.T) {
	hub := New(zap.NewNop())
	conn := dial(t, hub)

	hub.Publish("news.created", map[string]string{"newsId": "n1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type      string            `json:"type"`
		Data      map[string]string `json:"data"`
		Timestamp int64             `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "news.created", event.Type)
	assert.Equal(t, "n1", event.Data["newsId"])
	assert.NotZero(t, event.Timestamp)
}

func TestHubUnregistersOnDisconnect(t *testing.T) {
	hub := New(zap.NewNop())
	conn := dial(t, hub)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubClose(t *testing.T) {
	hub := New(zap.NewNop())
	conn := dial(t, hub)

	hub.Close()
	assert.Equal(t, 0, hub.Count())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestPublishWithoutClients(t *testing.T) {
	hub := New(zap.NewNop())
	assert.NotPanics(t, func() { hub.Publish("comment.created", nil) })
}
