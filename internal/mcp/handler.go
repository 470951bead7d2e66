package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
)

// Handler dispatches MCP tool calls to domain services.
type Handler struct {
	notes         NoteService
	feed          FeedService
	activity      ActivityService
	insights      InsightService
	upcomingLimit int
}

// NewHandler creates a new MCP handler.
func NewHandler(services Services, upcomingLimit int) *Handler {
	return &Handler{
		notes:         services.Notes,
		feed:          services.Feed,
		activity:      services.Activity,
		insights:      services.Insights,
		upcomingLimit: upcomingLimit,
	}
}

// Handle dispatches a tool call by name.
func (h *Handler) Handle(ctx context.Context, method string, params json.RawMessage) (any, error) {
	switch method {
	case "create_note":
		var req CreateNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.notes.Create(ctx, note.CreateRequest{
			Title:      req.Title,
			Content:    req.Content,
			Category:   req.Category,
			Color:      req.Color,
			IsPinned:   req.IsPinned,
			IsArchived: req.IsArchived,
		})
	case "get_note":
		var req NoteIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.notes.Get(ctx, req.ID)
	case "update_note":
		var req UpdateNoteParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.notes.Update(ctx, note.UpdateRequest{
			ID:       req.ID,
			Title:    req.Title,
			Content:  req.Content,
			Category: req.Category,
			Color:    req.Color,
		})
	case "delete_note":
		var req NoteIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.notes.Delete(ctx, req.ID); err != nil {
			return nil, err
		}
		return DeleteResponse{Deleted: true}, nil
	case "toggle_pin":
		var req NoteIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.notes.TogglePin(ctx, req.ID)
	case "toggle_archive":
		var req NoteIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.notes.ToggleArchive(ctx, req.ID)
	case "list_notes":
		var req ListNotesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		notes, err := h.notes.List(ctx, note.ListOptions{
			Category:     req.Category,
			Query:        req.Query,
			ShowArchived: req.ShowArchived,
			ShowPinned:   req.ShowPinned,
		})
		if err != nil {
			return nil, err
		}
		if notes == nil {
			notes = []note.Note{}
		}
		return ListNotesResponse{Notes: notes, Count: len(notes)}, nil
	case "note_stats":
		stats, err := h.notes.Stats(ctx)
		if err != nil {
			return nil, err
		}
		categories, err := h.notes.Categories(ctx)
		if err != nil {
			return nil, err
		}
		if categories == nil {
			categories = []string{}
		}
		return NoteStatsResponse{Stats: stats, Categories: categories}, nil
	case "export_notes":
		return h.notes.Export(ctx)
	case "import_notes":
		var req ImportNotesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		data, err := bundleBytes(req.Bundle)
		if err != nil {
			return nil, err
		}
		bundle, err := note.DecodeBundle(data)
		if err != nil {
			return nil, err
		}
		n, err := h.notes.Import(ctx, bundle)
		if err != nil {
			return nil, err
		}
		return CountResponse{Count: n}, nil
	case "clear_archived_notes":
		n, err := h.notes.ClearArchived(ctx)
		if err != nil {
			return nil, err
		}
		return CountResponse{Count: n}, nil
	case "clear_all_notes":
		var req ClearAllNotesParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if !req.Confirm {
			return nil, &APIError{Code: "CONFIRMATION_REQUIRED", Message: "clear_all_notes deletes every note", RecoveryHint: "Call again with confirm=true"}
		}
		if err := h.notes.ClearAll(ctx); err != nil {
			return nil, err
		}
		return DeleteResponse{Deleted: true}, nil
	case "scan_notes":
		created, err := h.scan(ctx)
		if err != nil {
			return nil, err
		}
		return ScanResponse{
			NewEvents:   created,
			UnreadCount: h.feed.UnreadCount(),
			Total:       len(h.feed.Events()),
		}, nil
	case "get_notification_feed":
		var req FeedParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		created, err := h.scan(ctx)
		if err != nil {
			return nil, err
		}
		limit := req.Limit
		if limit <= 0 {
			limit = h.upcomingLimit
		}
		return FeedResponse{View: h.feed.View(limit), NewEvents: len(created)}, nil
	case "list_notifications":
		var req ListNotificationsParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		return h.listNotifications(ctx, req)
	case "mark_notification_read":
		var req NotificationIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.feed.MarkAsRead(ctx, req.ID); err != nil {
			return nil, err
		}
		return UnreadResponse{UnreadCount: h.feed.UnreadCount()}, nil
	case "mark_all_notifications_read":
		if err := h.feed.MarkAllAsRead(ctx); err != nil {
			return nil, err
		}
		return UnreadResponse{UnreadCount: h.feed.UnreadCount()}, nil
	case "delete_notification":
		var req NotificationIDParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		if err := h.feed.Delete(ctx, req.ID); err != nil {
			return nil, err
		}
		return UnreadResponse{UnreadCount: h.feed.UnreadCount()}, nil
	case "get_recent_activity":
		var req GetRecentActivityParams
		if err := decodeParams(params, &req); err != nil {
			return nil, err
		}
		opts := activity.ListActivityOptions{
			NoteID:  req.NoteID,
			EventID: req.EventID,
			Limit:   req.Limit,
		}
		if req.Type != nil {
			typ := activity.ActivityType(*req.Type)
			opts.ActivityType = &typ
		}
		entries, err := h.activity.GetRecentActivity(ctx, opts)
		if err != nil {
			return nil, err
		}
		resp := make([]ActivityEntryResponse, 0, len(entries))
		for _, entry := range entries {
			resp = append(resp, ActivityEntryResponse{
				Timestamp: entry.CreatedAt,
				Type:      entry.ActivityType,
				NoteID:    entry.NoteID,
				EventID:   entry.EventID,
				Summary:   entry.Summary,
				Details:   entry.Details,
			})
		}
		return resp, nil
	case "get_insight":
		if h.insights == nil {
			return nil, errInsightsDisabled
		}
		notes, err := h.notes.All(ctx)
		if err != nil {
			return nil, err
		}
		return InsightResponse{
			Insight:    h.insights.Generate(notes),
			QuickStats: h.insights.QuickStats(notes),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTool, method)
	}
}

func (h *Handler) scan(ctx context.Context) ([]notification.Event, error) {
	notes, err := h.notes.All(ctx)
	if err != nil {
		return nil, err
	}
	created, err := h.feed.Scan(ctx, notes)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = []notification.Event{}
	}
	return created, nil
}

func (h *Handler) listNotifications(ctx context.Context, req ListNotificationsParams) (ListNotificationsResponse, error) {
	var typeFilter *notification.EventType
	if req.Type != "" {
		typ, err := notification.ParseEventType(req.Type)
		if err != nil {
			return ListNotificationsResponse{}, err
		}
		typeFilter = &typ
	}

	notes, err := h.notes.All(ctx)
	if err != nil {
		return ListNotificationsResponse{}, err
	}
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	stale := make(map[string]bool)
	for _, ev := range h.feed.Stale(ids) {
		stale[ev.ID] = true
	}

	resp := ListNotificationsResponse{Notifications: []NotificationResponse{}}
	for _, ev := range h.feed.Events() {
		if !ev.IsRead {
			resp.UnreadCount++
		}
		if req.UnreadOnly && ev.IsRead {
			continue
		}
		if typeFilter != nil && ev.EventType != *typeFilter {
			continue
		}
		resp.Notifications = append(resp.Notifications, NotificationResponse{Event: ev, Stale: stale[ev.ID]})
	}
	return resp, nil
}

func decodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 || bytes.Equal(bytes.TrimSpace(params), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(params, out); err != nil {
		return invalidParams(err)
	}
	return nil
}

// bundleBytes accepts the bundle either as a JSON object or as a string
// containing the exported document.
func bundleBytes(raw json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, note.ErrInvalidImport
	}
	if trimmed[0] != '"' {
		return trimmed, nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, invalidParams(err)
	}
	return []byte(s), nil
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
