package services

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/serdvr66/orderQPro/api"
	"github.com/serdvr66/orderQPro/mockapi"
	"github.com/serdvr66/orderQPro/pkg/session"
)

func testLogger() zerolog.Logger { return zerolog.Nop() }

// newTestBackend spins up the stand-in backend over httptest and returns a
// logged-in client against it.
func newTestBackend(t *testing.T) (*mockapi.Server, *api.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := mockapi.New("test-secret", time.Hour)
	ts := httptest.NewServer(backend.Router())
	t.Cleanup(ts.Close)

	sess := session.New()
	client := api.NewClient(ts.URL, 5*time.Second, sess, testLogger())

	user, token, err := client.Login(context.Background(), mockapi.StaffEmail, mockapi.StaffPassword)
	require.NoError(t, err)
	sess.Begin(user, token)
	return backend, client
}
