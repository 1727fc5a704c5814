package history

import "strings"

// Action is the kind of mutation an audit record describes.
type Action string

const (
	ActionAdd      Action = "add"
	ActionUpdate   Action = "update"
	ActionApproved Action = "approved"
	ActionRejected Action = "rejected"
	ActionDelete   Action = "delete"
)

// Normalize lower-cases the action; upstream casing is not guaranteed.
func (a Action) Normalize() Action {
	return Action(strings.ToLower(string(a)))
}

// Icon names the badge the dashboard shows for the action. Unknown actions
// get an empty icon and are rendered as text.
func (a Action) Icon() string {
	switch a.Normalize() {
	case ActionApproved:
		return "check"
	case ActionRejected:
		return "times"
	case ActionAdd:
		return "add"
	case ActionUpdate:
		return "pen"
	case ActionDelete:
		return "trash"
	}
	return ""
}

// Record is one append-only audit log row.
type Record struct {
	Timestamp string `json:"timestamp"` // YYYY-MM-DD HH:MM:SS
	Action    Action `json:"action"`
	Employee  string `json:"employee"`
	Message   string `json:"message"`
}
