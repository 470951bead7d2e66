package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition describes a callable tool
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}

var idSchema = objectSchema(map[string]any{"id": prop("string", "Note ID")}, "id")

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Notes
		{
			Name:        "create_note",
			Description: "Create a note. A title or content is required.",
			InputSchema: objectSchema(map[string]any{
				"title":       prop("string", "Note title"),
				"content":     prop("string", "Note body; dates mentioned here are detected by scans"),
				"category":    prop("string", "One of Personal, Work, Ideas, Tasks, Study, Health, Finance, Other (default Other)"),
				"color":       prop("string", "Palette color name (default purple)"),
				"is_pinned":   prop("boolean", "Pin the note"),
				"is_archived": prop("boolean", "Create the note archived"),
			}),
		},
		{
			Name:        "get_note",
			Description: "Get a note by ID",
			InputSchema: idSchema,
		},
		{
			Name:        "update_note",
			Description: "Update note fields. Omitted fields are unchanged.",
			InputSchema: objectSchema(map[string]any{
				"id":       prop("string", "Note ID"),
				"title":    prop("string", "New title"),
				"content":  prop("string", "New content"),
				"category": prop("string", "New category"),
				"color":    prop("string", "New color"),
			}, "id"),
		},
		{
			Name:        "delete_note",
			Description: "Delete a note. Its detected notifications are kept and reported as stale.",
			InputSchema: idSchema,
		},
		{
			Name:        "toggle_pin",
			Description: "Pin or unpin a note",
			InputSchema: idSchema,
		},
		{
			Name:        "toggle_archive",
			Description: "Archive or unarchive a note. Archived notes are not scanned.",
			InputSchema: idSchema,
		},
		{
			Name:        "list_notes",
			Description: "List notes, pinned first then most recently updated",
			InputSchema: objectSchema(map[string]any{
				"category":      prop("string", "Only notes in this category"),
				"query":         prop("string", "Case-insensitive search over title and content"),
				"show_archived": prop("boolean", "List archived notes instead of active ones"),
				"show_pinned":   prop("boolean", "Only pinned notes"),
			}),
		},
		{
			Name:        "note_stats",
			Description: "Count notes by state and category",
			InputSchema: objectSchema(map[string]any{}),
		},

		// Backup
		{
			Name:        "export_notes",
			Description: "Export every note as a backup bundle {notes, exportDate, version}",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "import_notes",
			Description: "Replace all notes with the notes of an export bundle",
			InputSchema: objectSchema(map[string]any{
				"bundle": map[string]any{
					"type":        []string{"object", "string"},
					"description": "Bundle produced by export_notes, as an object or JSON string",
				},
			}, "bundle"),
		},
		{
			Name:        "clear_archived_notes",
			Description: "Delete all archived notes",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "clear_all_notes",
			Description: "Delete every note. Requires confirm=true.",
			InputSchema: objectSchema(map[string]any{
				"confirm": prop("boolean", "Must be true"),
			}, "confirm"),
		},

		// Notifications
		{
			Name:        "scan_notes",
			Description: "Detect date references in all active notes and add new notifications",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "get_notification_feed",
			Description: "Scan notes, then return unread count, today's events and upcoming events",
			InputSchema: objectSchema(map[string]any{
				"limit": prop("integer", "Maximum upcoming events (default from server config)"),
			}),
		},
		{
			Name:        "list_notifications",
			Description: "List all stored notifications, newest scan first",
			InputSchema: objectSchema(map[string]any{
				"unread_only": prop("boolean", "Only unread notifications"),
				"type":        prop("string", "Only this event type: date, time, deadline, event, reminder"),
			}),
		},
		{
			Name:        "mark_notification_read",
			Description: "Mark one notification read",
			InputSchema: objectSchema(map[string]any{"id": prop("string", "Notification ID")}, "id"),
		},
		{
			Name:        "mark_all_notifications_read",
			Description: "Mark every notification read",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        "delete_notification",
			Description: "Delete a notification permanently",
			InputSchema: objectSchema(map[string]any{"id": prop("string", "Notification ID")}, "id"),
		},

		// History
		{
			Name:        "get_recent_activity",
			Description: "List recent activity, newest first",
			InputSchema: objectSchema(map[string]any{
				"note_id":  prop("string", "Only activity for this note"),
				"event_id": prop("string", "Only activity for this notification"),
				"type":     prop("string", "Only this activity type"),
				"limit":    prop("integer", "Maximum entries"),
			}),
		},
		{
			Name:        "get_insight",
			Description: "Get a themed tagline, quote and quick stats for the note collection",
			InputSchema: objectSchema(map[string]any{}),
		},
	}
}

func registerTools(server *sdkmcp.Server, handler *Handler, logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for _, def := range buildToolCatalog() {
		name := def.Name
		server.AddTool(&sdkmcp.Tool{
			Name:        name,
			Description: def.Description,
			InputSchema: def.InputSchema,
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			var args json.RawMessage
			if req != nil && req.Params != nil {
				args = req.Params.Arguments
			}
			result, err := handler.Handle(ctx, name, args)
			if err != nil {
				logger.Debug("tool call failed", "tool", name, "error", err)
				return errorResult(mapError(err)), nil
			}
			return jsonResult(result)
		})
	}
}

func jsonResult(v any) (*sdkmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil
}

func errorResult(err error) *sdkmcp.CallToolResult {
	payload := any(map[string]string{"code": "INTERNAL", "message": err.Error()})
	if apiErr, ok := err.(*APIError); ok {
		payload = apiErr
	}
	data, _ := json.Marshal(payload)
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}
}
