package mcp

import (
	"encoding/json"
	"time"

	"github.com/rpggio/noteflow/internal/domain/activity"
	"github.com/rpggio/noteflow/internal/domain/insight"
	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/domain/notification"
)

type CreateNoteParams struct {
	Title      string `json:"title,omitempty"`
	Content    string `json:"content,omitempty"`
	Category   string `json:"category,omitempty"`
	Color      string `json:"color,omitempty"`
	IsPinned   bool   `json:"is_pinned,omitempty"`
	IsArchived bool   `json:"is_archived,omitempty"`
}

type NoteIDParams struct {
	ID string `json:"id"`
}

type UpdateNoteParams struct {
	ID       string  `json:"id"`
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
	Color    *string `json:"color,omitempty"`
}

type ListNotesParams struct {
	Category     string `json:"category,omitempty"`
	Query        string `json:"query,omitempty"`
	ShowArchived bool   `json:"show_archived,omitempty"`
	ShowPinned   bool   `json:"show_pinned,omitempty"`
}

type ImportNotesParams struct {
	// Bundle is the export object, or a string holding its JSON.
	Bundle json.RawMessage `json:"bundle"`
}

type ClearAllNotesParams struct {
	Confirm bool `json:"confirm"`
}

type FeedParams struct {
	Limit int `json:"limit,omitempty"`
}

type ListNotificationsParams struct {
	UnreadOnly bool   `json:"unread_only,omitempty"`
	Type       string `json:"type,omitempty"`
}

type NotificationIDParams struct {
	ID string `json:"id"`
}

type GetRecentActivityParams struct {
	NoteID  *string `json:"note_id,omitempty"`
	EventID *string `json:"event_id,omitempty"`
	Type    *string `json:"type,omitempty"`
	Limit   int     `json:"limit,omitempty"`
}

type ListNotesResponse struct {
	Notes []note.Note `json:"notes"`
	Count int         `json:"count"`
}

type NoteStatsResponse struct {
	Stats      note.Stats `json:"stats"`
	Categories []string   `json:"categories_in_use"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type CountResponse struct {
	Count int `json:"count"`
}

type ScanResponse struct {
	NewEvents   []notification.Event `json:"new_events"`
	UnreadCount int                  `json:"unread_count"`
	Total       int                  `json:"total"`
}

type FeedResponse struct {
	notification.View
	NewEvents int `json:"new_events"`
}

type NotificationResponse struct {
	notification.Event
	// Stale marks events whose note has since been deleted.
	Stale bool `json:"stale"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

type UnreadResponse struct {
	UnreadCount int `json:"unread_count"`
}

type ActivityEntryResponse struct {
	Timestamp time.Time             `json:"timestamp"`
	Type      activity.ActivityType `json:"type"`
	NoteID    *string               `json:"note_id,omitempty"`
	EventID   *string               `json:"event_id,omitempty"`
	Summary   string                `json:"summary"`
	Details   string                `json:"details,omitempty"`
}

type InsightResponse struct {
	Insight    insight.Insight `json:"insight"`
	QuickStats []insight.Stat  `json:"quick_stats"`
}
