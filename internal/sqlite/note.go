package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/noteflow/internal/domain/note"
	"github.com/rpggio/noteflow/internal/repository"
)

// NoteRepository implements note.Repository for SQLite
type NoteRepository struct {
	db *DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `id, title, content, category, color, is_pinned, is_archived, created_at, updated_at`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertNote(ctx context.Context, db execer, n *note.Note) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO notes (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		n.ID,
		n.Title,
		n.Content,
		n.Category,
		n.Color,
		boolToInt(n.IsPinned),
		boolToInt(n.IsArchived),
		formatTime(n.CreatedAt),
		formatTime(n.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// Create inserts a new note
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	return insertNote(ctx, r.db, n)
}

// Get retrieves a note by ID
func (r *NoteRepository) Get(ctx context.Context, id string) (*note.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return n, nil
}

// Update overwrites every mutable field of a note
func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE notes
		SET title = ?, content = ?, category = ?, color = ?,
			is_pinned = ?, is_archived = ?, updated_at = ?
		WHERE id = ?
	`,
		n.Title,
		n.Content,
		n.Category,
		n.Color,
		boolToInt(n.IsPinned),
		boolToInt(n.IsArchived),
		formatTime(n.UpdatedAt),
		n.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return requireAffected(result)
}

// Delete removes a note
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return requireAffected(result)
}

// List returns every note in creation order
func (r *NoteRepository) List(ctx context.Context) ([]note.Note, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+noteColumns+` FROM notes ORDER BY created_at ASC, rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}
	return notes, nil
}

// ReplaceAll swaps the whole collection inside one transaction
func (r *NoteRepository) ReplaceAll(ctx context.Context, notes []note.Note) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	for i := range notes {
		if err := insertNote(ctx, tx, &notes[i]); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit notes: %w", err)
	}
	return nil
}

// DeleteArchived removes archived notes and reports how many were deleted
func (r *NoteRepository) DeleteArchived(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE is_archived = 1`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete archived notes: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted notes: %w", err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*note.Note, error) {
	var n note.Note
	var pinned, archived int
	var createdAt, updatedAt string
	if err := row.Scan(
		&n.ID,
		&n.Title,
		&n.Content,
		&n.Category,
		&n.Color,
		&pinned,
		&archived,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	n.IsPinned = pinned != 0
	n.IsArchived = archived != 0

	var err error
	if n.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if n.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ note.Repository = (*NoteRepository)(nil)
