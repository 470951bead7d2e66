package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/insight"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
)

// NoteService defines note operations needed by MCP.
type NoteService interface {
	Create(ctx context.Context, req note.CreateRequest) (*note.Note, error)
	Get(ctx context.Context, id string) (*note.Note, error)
	Update(ctx context.Context, req note.UpdateRequest) (*note.Note, error)
	Delete(ctx context.Context, id string) error
	TogglePin(ctx context.Context, id string) (*note.Note, error)
	ToggleArchive(ctx context.Context, id string) (*note.Note, error)
	List(ctx context.Context, opts note.ListOptions) ([]note.Note, error)
	All(ctx context.Context) ([]note.Note, error)
	Stats(ctx context.Context) (note.Stats, error)
	Categories(ctx context.Context) ([]string, error)
	Export(ctx context.Context) (note.ExportBundle, error)
	Import(ctx context.Context, bundle note.ExportBundle) (int, error)
	ClearArchived(ctx context.Context) (int, error)
	ClearAll(ctx context.Context) error
}

// FeedService defines notification feed operations needed by MCP.
type FeedService interface {
	Scan(ctx context.Context, notes []note.Note) ([]notification.Event, error)
	Events() []notification.Event
	UnreadCount() int
	View(upcomingLimit int) notification.View
	Stale(noteIDs []string) []notification.Event
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// InsightService defines insight operations needed by MCP.
type InsightService interface {
	Generate(notes []note.Note) insight.Insight
	QuickStats(notes []note.Note) []insight.Stat
}

// Services contains all domain services needed by MCP.
// Insights may be nil when insights are disabled.
type Services struct {
	Notes    NoteService
	Feed     FeedService
	Activity ActivityService
	Insights InsightService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	AuthEnabled   bool
	AuthToken     string
	TransportMode string // "stdio" or "http"
	UpcomingLimit int
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "noteflow",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	// Stdio is local only and never authenticates.
	if cfg.TransportMode != "stdio" && cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.AuthToken))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	handler := NewHandler(cfg.Services, cfg.UpcomingLimit)
	registerTools(server, handler, cfg.Logger)

	return server
}
