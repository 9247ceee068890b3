package parser

import "strings"

// FirstGroupColumn is the index of the first group column; columns 0 and 1
// hold the day and the time.
const FirstGroupColumn = 2

// ResolveGroups returns the selectable group names of a header row.
// Blank cells are skipped; order and duplicates are kept as in the sheet.
func ResolveGroups(header []string) []string {
	groups := make([]string, 0, max(len(header)-FirstGroupColumn, 0))
	for colIdx := FirstGroupColumn; colIdx < len(header); colIdx++ {
		if strings.TrimSpace(header[colIdx]) == "" {
			continue
		}
		groups = append(groups, header[colIdx])
	}
	return groups
}

// GroupIndex returns the column of the first header cell equal to group, or -1.
func GroupIndex(header []string, group string) int {
	for colIdx, cell := range header {
		if cell == group {
			return colIdx
		}
	}
	return -1
}
