package employee

// Employee is a roster row. The roster is owned upstream and read-only here.
type Employee struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
