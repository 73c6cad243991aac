// Package contact holds the value types shared by the extraction branches
// and the fusion step that reconciles them.
package contact

import "strings"

// Candidate is one extraction branch's best guess at a contact. Every field
// is either "" (absent) or a non-empty, whitespace-trimmed string. Candidates
// are built once per input and consumed immediately by Merge; they carry no
// identity and are never mutated after construction.
type Candidate struct {
	Name     string `json:"name,omitempty"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	JobTitle string `json:"job_title,omitempty"`
	Website  string `json:"website,omitempty"` // QR/vCard branch only
	Address  string `json:"address,omitempty"` // vCard branch only
}

// HasData reports whether the candidate carries at least one of the four
// core fields. Website, address and job title alone do not count as data.
func (c Candidate) HasData() bool {
	return c.Name != "" || c.Company != "" || c.Email != "" || c.Phone != ""
}

// Trimmed returns a copy with every field whitespace-trimmed. Parsers trim
// as they go; this is the belt for values arriving from manual edits.
func (c Candidate) Trimmed() Candidate {
	return Candidate{
		Name:     strings.TrimSpace(c.Name),
		Company:  strings.TrimSpace(c.Company),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		JobTitle: strings.TrimSpace(c.JobTitle),
		Website:  strings.TrimSpace(c.Website),
		Address:  strings.TrimSpace(c.Address),
	}
}
