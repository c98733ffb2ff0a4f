package models

// SortKey names a sortable quote column.
type SortKey string

const (
	SortNone          SortKey = ""
	SortSymbol        SortKey = "symbol"
	SortName          SortKey = "name"
	SortPrice         SortKey = "price"
	SortChange        SortKey = "change"
	SortChangePercent SortKey = "changePercent"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortConfig pairs the active sort column with its direction.
type SortConfig struct {
	Key       SortKey
	Direction SortDirection
}

// ViewState is the complete observable state of the dashboard view. It has a
// single owner and is mutated only through the engine's operations. Err and a
// populated Snapshot are mutually exclusive.
type ViewState struct {
	Snapshot   []QuoteRecord
	Loading    bool
	Err        string
	SearchTerm string
	Sort       SortConfig
	Refreshing bool
}

// Failed reports whether the last fetch stored an error.
func (s ViewState) Failed() bool { return s.Err != "" }
