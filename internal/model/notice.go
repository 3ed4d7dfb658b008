package model

import "strings"

type Status string

const (
	StatusShow Status = "show"
	StatusHide Status = "hide"
)

type Type string

const (
	TypeNormal    Type = "normal"
	TypeScrolling Type = "scrolling"
)

// Notice is one sheet row mapped to its display fields. Title and
// Description may carry inline markup.
type Notice struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Type        Type   `json:"type"`
}

func (n Notice) Visible() bool {
	return n.Status == StatusShow
}

// ParseStatus treats anything other than "show" as hidden.
func ParseStatus(s string) Status {
	if strings.EqualFold(strings.TrimSpace(s), string(StatusShow)) {
		return StatusShow
	}
	return StatusHide
}

// ParseType defaults to TypeNormal for empty or unknown values.
func ParseType(s string) Type {
	if strings.EqualFold(strings.TrimSpace(s), string(TypeScrolling)) {
		return TypeScrolling
	}
	return TypeNormal
}
