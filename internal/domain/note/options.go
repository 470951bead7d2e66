package note

// ListOptions filters the note list the way the notes view does.
type ListOptions struct {
	Category     string
	Query        string
	ShowArchived bool
	ShowPinned   bool
}
