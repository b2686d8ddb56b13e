package domain

import "time"

// ActivityLog is an audit entry for an admin or public mutation.
type ActivityLog struct {
	ID        string
	AdminID   string
	Action    string
	Entity    string
	EntityID  string
	Detail    map[string]interface{}
	CreatedAt time.Time
}
