package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/noteflow/internal/domain/notification"
	"github.com/rpggio/noteflow/internal/repository"
)

// EventRepository implements notification.Repository for SQLite
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns every event, newest scan first and scan order within a scan
func (r *EventRepository) List(ctx context.Context) ([]notification.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, note_id, note_title, event_type, event_date, description, is_read, created_at
		FROM detected_events
		ORDER BY created_at DESC, seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []notification.Event{}
	for rows.Next() {
		var ev notification.Event
		var eventType, eventDate, createdAt string
		var read int
		if err := rows.Scan(
			&ev.ID,
			&ev.NoteID,
			&ev.NoteTitle,
			&eventType,
			&eventDate,
			&ev.Description,
			&read,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if ev.EventType, err = notification.ParseEventType(eventType); err != nil {
			return nil, err
		}
		if ev.EventDate, err = parseTime(eventDate); err != nil {
			return nil, err
		}
		if ev.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		ev.IsRead = read != 0
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

// InsertBatch stores one scan's events in a single transaction
func (r *EventRepository) InsertBatch(ctx context.Context, events []notification.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO detected_events (
			id, note_id, note_title, event_type, event_date, description, is_read, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare event insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.ExecContext(ctx,
			ev.ID,
			ev.NoteID,
			ev.NoteTitle,
			ev.EventType.String(),
			formatTime(ev.EventDate),
			ev.Description,
			boolToInt(ev.IsRead),
			formatTime(ev.CreatedAt),
		); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("event %s: %w", ev.ID, repository.ErrConflict)
			}
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit events: %w", err)
	}
	return nil
}

// MarkRead sets is_read on one event
func (r *EventRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE detected_events SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to mark event read: %w", err)
	}
	return requireAffected(result)
}

// MarkAllRead sets is_read on every event
func (r *EventRepository) MarkAllRead(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE detected_events SET is_read = 1 WHERE is_read = 0`); err != nil {
		return fmt.Errorf("failed to mark events read: %w", err)
	}
	return nil
}

// Delete removes one event
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM detected_events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return requireAffected(result)
}

var _ notification.Repository = (*EventRepository)(nil)
