package dto

import "time"

// ActivityLogResponse is one audit entry.
type ActivityLogResponse struct {
	ID        string                 `json:"id"`
	AdminID   string                 `json:"admin_id,omitempty"`
	Action    string                 `json:"action"`
	Entity    string                 `json:"entity"`
	EntityID  string                 `json:"entity_id,omitempty"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
