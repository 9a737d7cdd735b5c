package application

// Ingest modes
const (
	IngestModeReplace = "replace"
	IngestModeAppend  = "append"
)

// OrderInput is one loose upload row before normalization. Order time is a
// string because upload sources disagree on layout; normalization parses it
// and defaults to the current clock reading when missing or unparseable.
type OrderInput struct {
	OrderID    string  `json:"orderId" binding:"required"`
	Customer   string  `json:"customer"`
	Platform   string  `json:"platform" binding:"required"`
	OrderTime  string  `json:"orderTime"`
	OrderValue float64 `json:"orderValue"`
	Carrier    string  `json:"carrier"`
}

// IngestOrdersCommand loads a batch of orders into the in-memory list
type IngestOrdersCommand struct {
	Mode   string       `json:"mode" binding:"omitempty,oneof=replace append"`
	Orders []OrderInput `json:"orders" binding:"required,min=1,dive"`
}

// MatrixEntryInput is one deadline pair in a matrix update
type MatrixEntryInput struct {
	ConfirmHours  float64 `json:"confirmHours" binding:"required,gt=0"`
	HandoverHours float64 `json:"handoverHours" binding:"required,gt=0"`
}

// UpdateMatrixCommand replaces the carrier deadline matrix. The payload is
// the full platform -> carrier -> deadline mapping; partial edits are the
// caller's responsibility (read, modify, put back).
type UpdateMatrixCommand struct {
	Entries map[string]map[string]MatrixEntryInput `json:"entries" binding:"required,min=1"`
}

// ListQuery filters the evaluated order list
type ListQuery struct {
	Platform string
	Level    string
	Search   string
	Limit    int
}
