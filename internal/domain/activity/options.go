package activity

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	NoteID       *string
	EventID      *string
	ActivityType *ActivityType
	Limit        int
	Offset       int
}
