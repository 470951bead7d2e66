package note

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rpggio/noteflow/internal/domain/activity"
)

// Export returns every note in a backup bundle.
func (s *Service) Export(ctx context.Context) (ExportBundle, error) {
	all, err := s.All(ctx)
	if err != nil {
		return ExportBundle{}, err
	}
	if all == nil {
		all = []Note{}
	}
	return ExportBundle{
		Notes:      all,
		ExportDate: s.now().UTC(),
		Version:    ExportVersion,
	}, nil
}

// DecodeBundle parses a backup bundle. A document without a notes array is rejected.
func DecodeBundle(data []byte) (ExportBundle, error) {
	var raw struct {
		Notes *[]Note `json:"notes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ExportBundle{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if raw.Notes == nil {
		return ExportBundle{}, ErrInvalidImport
	}
	var bundle ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return ExportBundle{}, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return bundle, nil
}

// Import replaces the whole note collection with the bundle's notes.
func (s *Service) Import(ctx context.Context, bundle ExportBundle) (int, error) {
	if bundle.Notes == nil {
		return 0, ErrInvalidImport
	}
	seen := make(map[string]bool, len(bundle.Notes))
	for _, n := range bundle.Notes {
		if err := ValidateImported(n); err != nil {
			return 0, fmt.Errorf("%w: note without id", ErrInvalidImport)
		}
		if seen[n.ID] {
			return 0, fmt.Errorf("%w: duplicate note id %s", ErrInvalidImport, n.ID)
		}
		seen[n.ID] = true
	}

	if err := s.notes.ReplaceAll(ctx, bundle.Notes); err != nil {
		return 0, fmt.Errorf("importing notes: %w", err)
	}
	s.logActivity(ctx, nil, activity.TypeNotesImported, fmt.Sprintf("imported %d notes", len(bundle.Notes)))
	return len(bundle.Notes), nil
}

// ClearArchived deletes all archived notes and returns how many were removed.
func (s *Service) ClearArchived(ctx context.Context) (int, error) {
	n, err := s.notes.DeleteArchived(ctx)
	if err != nil {
		return 0, fmt.Errorf("clearing archived notes: %w", err)
	}
	s.logActivity(ctx, nil, activity.TypeNotesCleared, fmt.Sprintf("cleared %d archived notes", n))
	return n, nil
}

// ClearAll deletes every note.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.notes.ReplaceAll(ctx, nil); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}
	s.logActivity(ctx, nil, activity.TypeNotesCleared, "cleared all notes")
	return nil
}
