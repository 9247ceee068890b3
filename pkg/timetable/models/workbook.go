package models

// Workbook represents workbook-level container with per-sheet grids.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetNames lists sheets in workbook order.
	SheetNames []string `json:"sheet_names"`
	// Sheets maps sheet name to its grid.
	Sheets map[string]Grid `json:"sheets"`
}

// Sheet returns the grid of the named sheet.
func (w *Workbook) Sheet(name string) (Grid, bool) {
	if w == nil {
		return nil, false
	}
	g, ok := w.Sheets[name]
	return g, ok
}
