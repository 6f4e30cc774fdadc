package colhead

// Affordances is the set of optional controls a header currently presents.
// It is derived from configuration and runtime state only, so the same
// inputs always produce the same rendering decision.
type Affordances struct {
	// Checkbox is true when the checkbox control is present.
	Checkbox bool
	// Filter is true when the filter input is present. Checkbox columns
	// never show a filter.
	Filter bool
	// SortToggle is true when the column can sort at all.
	SortToggle bool
	// SortToggleShown is true when the toggle is actually visible. A
	// hidden toggle takes no space.
	SortToggleShown bool
	// SortDescending mirrors the toggle's pressed state.
	SortDescending bool
}

func affordancesFor(t Type, sortable, filterable, withSortButton, sortedDescending bool) Affordances {
	return Affordances{
		Checkbox:        t == TypeCheckbox,
		Filter:          filterable && t != TypeCheckbox,
		SortToggle:      sortable,
		SortToggleShown: sortable && withSortButton,
		SortDescending:  sortedDescending,
	}
}

// Affordances reports which controls the header presents right now.
func (m *Model) Affordances() Affordances {
	return affordancesFor(m.colType, m.sortable, m.filterable, m.withSortButton, m.sortedDescending)
}
