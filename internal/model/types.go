package model

// Item is one row of the inventory table.
type Item struct {
	ID        int64
	Name      string
	Category  string
	Qty       int64
	Price     float64
	UpdatedOn string
}

// TablePrefs stores persisted per-table UI preferences.
type TablePrefs struct {
	SortKey       string
	SortDesc      bool
	FilterKey     string
	FilterText    string
	CaseSensitive bool
}
