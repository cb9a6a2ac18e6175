package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtruck/helpers"
	"foodtruck/models"
)

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app := NewApp(t.TempDir(), "Test Truck", "Test Lot")
	router := gin.New()
	router.GET("/ws", app.HandleOrderFeed())
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func feedURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func TestOrderFeedRejectsAnonymousDial(t *testing.T) {
	srv := newFeedServer(t)

	conn, resp, err := websocket.DefaultDialer.Dial(feedURL(srv), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	if conn != nil {
		conn.Close()
	}
}

func TestOrderFeedRejectsCustomerToken(t *testing.T) {
	srv := newFeedServer(t)

	token, _, err := helpers.GenerateAllTokens("c@x.com", "Cara", "Lee", string(models.RoleCustomer))
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(feedURL(srv)+"?token="+token, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	if conn != nil {
		conn.Close()
	}
}

func TestOrderFeedAcceptsStaffToken(t *testing.T) {
	srv := newFeedServer(t)

	token, _, err := helpers.GenerateAllTokens("s@x.com", "Sam", "Kim", string(models.RoleStaff))
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(feedURL(srv)+"?token="+token, nil)
	require.NoError(t, err)
	conn.Close()
}
