package models

import "time"

// JournalEntry is a dated note about one of the owner's crops (Scope).
type JournalEntry struct {
	ID     string
	UserID string
	Date   time.Time
	Scope  string
	Text   string
}

type JournalView struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Scope string `json:"scope"`
	Text  string `json:"text"`
}

func (e *JournalEntry) Serialize() JournalView {
	return JournalView{ID: e.ID, Date: FormatDate(e.Date), Scope: e.Scope, Text: e.Text}
}

// JournalFields lists the journal attributes a client may set.
var JournalFields = []string{"date", "scope", "text"}

// JournalPatch is a sparse set of journal attributes. A nil field was not provided.
type JournalPatch struct {
	Date  *Date   `json:"date"`
	Scope *string `json:"scope"`
	Text  *string `json:"text"`
}

func (p *JournalPatch) IsEmpty() bool {
	return p.Date == nil && p.Scope == nil && p.Text == nil
}

func (p *JournalPatch) Apply(e *JournalEntry) {
	if p.Date != nil {
		e.Date = p.Date.Time
	}
	if p.Scope != nil {
		e.Scope = *p.Scope
	}
	if p.Text != nil {
		e.Text = *p.Text
	}
}

func (p *JournalPatch) Columns() []Column {
	var cols []Column
	if p.Date != nil {
		cols = append(cols, Column{Name: "date", Value: p.Date.Time})
	}
	if p.Scope != nil {
		cols = append(cols, Column{Name: "scope", Value: *p.Scope})
	}
	if p.Text != nil {
		cols = append(cols, Column{Name: "text", Value: *p.Text})
	}
	return cols
}
