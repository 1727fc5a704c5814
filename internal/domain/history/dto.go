package history

// HistoryRow is a Record with display fields resolved.
type HistoryRow struct {
	Timestamp        string `json:"timestamp"`
	DisplayTimestamp string `json:"display_timestamp"`
	Action           Action `json:"action"`
	Icon             string `json:"icon,omitempty"`
	Employee         string `json:"employee"`
	Message          string `json:"message"`
}

// HistoryTabs splits the log the way the history view tabs do. Every tab is
// sorted latest first.
type HistoryTabs struct {
	All      []HistoryRow `json:"all"`
	Add      []HistoryRow `json:"add"`
	Update   []HistoryRow `json:"update"`
	Approval []HistoryRow `json:"approval"`
	Delete   []HistoryRow `json:"delete"`
}

type HistoryView struct {
	Search string      `json:"search,omitempty"`
	Total  int         `json:"total"`
	Tabs   HistoryTabs `json:"tabs"`
}
