package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/insight"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
	"github.com/rpggio/noteflow/internal/extract"
	"github.com/rpggio/noteflow/internal/mcp"
	"github.com/rpggio/noteflow/internal/sqlite"
	"github.com/stretchr/testify/require"
)

// TestServer runs the MCP server over streamable HTTP with bearer auth enabled.
type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Token  string
}

func New(t *testing.T, token string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	noteRepo := sqlite.NewNoteRepository(db)
	eventRepo := sqlite.NewEventRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	feed := notification.NewService(eventRepo, extract.NewScanner(extract.Options{}, nil), activityRepo, nil,
		notification.WithLocation(time.UTC))
	require.NoError(t, feed.Load(context.Background()))

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Notes:    note.NewService(noteRepo, activityRepo, nil),
			Feed:     feed,
			Activity: activity.NewService(activityRepo, nil),
			Insights: insight.NewService(nil),
		},
		AuthEnabled:   true,
		AuthToken:     token,
		TransportMode: "http",
		UpcomingLimit: 10,
	})

	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)
	router := http.NewServeMux()
	router.Handle("/mcp", mcpHandler)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server: server,
		DB:     db,
		Token:  token,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// Connect opens a client session that sends token as its bearer credential.
func (ts *TestServer) Connect(t *testing.T, token string) *sdkmcp.ClientSession {
	t.Helper()

	transport := &sdkmcp.StreamableClientTransport{
		Endpoint: ts.Server.URL + "/mcp",
		HTTPClient: &http.Client{
			Transport: &bearerTransport{token: token, next: http.DefaultTransport},
		},
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), transport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

type bearerTransport struct {
	token string
	next  http.RoundTripper
}

func (b *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}
	return b.next.RoundTrip(req)
}
