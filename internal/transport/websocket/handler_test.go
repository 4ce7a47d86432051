package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/presentation"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/pkg/auth"
	"github.com/iamasit07/connect4-engine/pkg/httputil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	url      string
	sessions *game.SessionManager
	conns    *ConnectionManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conns := NewConnectionManager()
	sessions := game.NewSessionManager(NewPresenterFactory(conns, zerolog.Nop()), zerolog.Nop())
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	h := NewHandler(conns, sessions, tokens, []string{"http://allowed.example"}, zerolog.Nop())

	router := gin.New()
	router.GET("/ws", h.HandleWebSocket)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		url:      "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws",
		sessions: sessions,
		conns:    conns,
	}
}

func (s *testServer) dial(t *testing.T) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

func receive(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestInitCreatesSession(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t)

	send(t, conn, ClientMessage{Type: "init"})
	msg := receive(t, conn)

	assert.Equal(t, MsgSession, msg.Type)
	assert.NotEmpty(t, msg.Token)
	require.NotNil(t, msg.Board)
	assert.Equal(t, domain.Board{}, *msg.Board)
	assert.Equal(t, domain.Red, msg.Turn)
	assert.Equal(t, domain.StatePlaying, msg.State)

	_, ok := s.sessions.GetSession(msg.SessionID)
	assert.True(t, ok)
	assert.True(t, s.conns.IsConnected(msg.SessionID))
}

func TestRejectsMissingInit(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t)

	send(t, conn, ClientMessage{Type: "play", Column: 3})
	msg := receive(t, conn)
	assert.Equal(t, MsgError, msg.Type)
	assert.Empty(t, s.sessions.ActiveSessions())
}

func TestPlayStreamsEvents(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t)
	send(t, conn, ClientMessage{Type: "init"})
	receive(t, conn)

	send(t, conn, ClientMessage{Type: "play", Column: 2})
	msg := receive(t, conn)

	assert.Equal(t, MsgCheckerPlaced, msg.Type)
	require.NotNil(t, msg.Row)
	require.NotNil(t, msg.Column)
	assert.Equal(t, 5, *msg.Row)
	assert.Equal(t, 2, *msg.Column)
	assert.Equal(t, domain.Red, msg.Player)
	assert.Equal(t, &presentation.Vector{X: 32, Y: -16}, msg.From)
	assert.Equal(t, &presentation.Vector{X: 32, Y: 80}, msg.To)
}

func TestConnectedFourAndReset(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t)
	send(t, conn, ClientMessage{Type: "init"})
	receive(t, conn)

	for _, column := range []int{0, 0, 1, 1, 2, 2, 3} {
		send(t, conn, ClientMessage{Type: "play", Column: column})
		require.Equal(t, MsgCheckerPlaced, receive(t, conn).Type)
	}

	msg := receive(t, conn)
	assert.Equal(t, MsgConnectedFour, msg.Type)
	assert.Equal(t, []domain.Coord{{Row: 5, Column: 0}, {Row: 5, Column: 1}, {Row: 5, Column: 2}, {Row: 5, Column: 3}}, msg.Cells)

	send(t, conn, ClientMessage{Type: "play", Column: 6})
	assert.Equal(t, MsgBoardReset, receive(t, conn).Type)

	send(t, conn, ClientMessage{Type: "play", Column: 6})
	assert.Equal(t, MsgCheckerPlaced, receive(t, conn).Type)

	send(t, conn, ClientMessage{Type: "restart"})
	assert.Equal(t, MsgBoardReset, receive(t, conn).Type)
}

func TestFullColumnIsSilent(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t)
	send(t, conn, ClientMessage{Type: "init"})
	receive(t, conn)

	for i := 0; i < domain.Rows; i++ {
		send(t, conn, ClientMessage{Type: "play", Column: 4})
		require.Equal(t, MsgCheckerPlaced, receive(t, conn).Type)
	}

	send(t, conn, ClientMessage{Type: "play", Column: 4})
	send(t, conn, ClientMessage{Type: "play", Column: 9})
	send(t, conn, ClientMessage{Type: "play", Column: 1})

	msg := receive(t, conn)
	assert.Equal(t, MsgCheckerPlaced, msg.Type)
	require.NotNil(t, msg.Column)
	assert.Equal(t, 1, *msg.Column)
}

func TestResumeWithToken(t *testing.T) {
	s := newTestServer(t)
	first := s.dial(t)
	send(t, first, ClientMessage{Type: "init"})
	session := receive(t, first)

	send(t, first, ClientMessage{Type: "play", Column: 3})
	receive(t, first)
	first.Close()

	second := s.dial(t)
	send(t, second, ClientMessage{Type: "init", Token: session.Token})
	resumed := receive(t, second)

	assert.Equal(t, session.SessionID, resumed.SessionID)
	require.NotNil(t, resumed.Board)
	assert.Equal(t, domain.Red, resumed.Board[5][3])
	assert.Equal(t, domain.Yellow, resumed.Turn)
	assert.Len(t, s.sessions.ActiveSessions(), 1)
}

func TestResumeWithCookie(t *testing.T) {
	s := newTestServer(t)
	first := s.dial(t)
	send(t, first, ClientMessage{Type: "init"})
	session := receive(t, first)
	first.Close()

	header := http.Header{}
	header.Set("Cookie", httputil.SessionCookieName+"="+session.Token)
	second, _, err := websocket.DefaultDialer.Dial(s.url, header)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	send(t, second, ClientMessage{Type: "init"})
	resumed := receive(t, second)
	assert.Equal(t, session.SessionID, resumed.SessionID)
	assert.Len(t, s.sessions.ActiveSessions(), 1)
}

func TestInvalidTokenStartsNewSession(t *testing.T) {
	s := newTestServer(t)
	conn := s.dial(t)

	send(t, conn, ClientMessage{Type: "init", Token: "garbage"})
	msg := receive(t, conn)

	assert.Equal(t, MsgSession, msg.Type)
	assert.NotEqual(t, "garbage", msg.Token)
	assert.Len(t, s.sessions.ActiveSessions(), 1)
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"http://allowed.example"})

	r := httptest.NewRequest("GET", "/ws", nil)
	assert.True(t, check(r))

	r.Header.Set("Origin", "http://allowed.example")
	assert.True(t, check(r))

	r.Header.Set("Origin", "http://evil.example")
	assert.False(t, check(r))
}
