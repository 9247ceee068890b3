package models

// Selection is the last sheet/group choice, persisted across sessions.
type Selection struct {
	Sheet string `json:"sheet"`
	Group string `json:"group"`
}

// Complete reports whether both a sheet and a group are chosen.
func (s Selection) Complete() bool {
	return s.Sheet != "" && s.Group != ""
}
