// Package models defines the wire records read from the JSON sources and
// the aggregate types the pipeline derives from them.
//
// Wire fields are pointers so that an absent key is distinguishable from a
// zero value: each pipeline stage checks only the fields it needs (required
// at point of use). Every record keeps its original JSON so validation
// errors can quote the offending input in full.
package models

import "encoding/json"

// User is a single record from the users source.
type User struct {
	ID           *int64  `json:"id"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	Tokens       *int64  `json:"tokens"`
	ActiveStatus *bool   `json:"active_status"`
	EmailStatus  *bool   `json:"email_status"`
	CompanyID    *int64  `json:"company_id"`

	raw json.RawMessage
}

func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*u = User(a)
	u.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Record returns the record's original JSON for diagnostics. Falls back to
// re-marshalling when the value was built in code rather than decoded.
func (u *User) Record() string {
	if len(u.raw) > 0 {
		return string(u.raw)
	}
	b, _ := json.Marshal(u)
	return string(b)
}

// ActiveUser is an active user admitted to a company's report lists, with
// the balance fields resolved during aggregation.
type ActiveUser struct {
	User            *User
	Tokens          int64
	NewTokenBalance int64
}
