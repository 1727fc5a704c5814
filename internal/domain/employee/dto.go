package employee

// ListEmployeeResponse backs the employees view and the dashboard selector.
type ListEmployeeResponse struct {
	Employees   []Employee `json:"employees"`
	ActiveCount int        `json:"active_count"`
	Empty       bool       `json:"empty"`
}
