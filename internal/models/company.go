package models

import "encoding/json"

// Company is a single record from the companies source.
type Company struct {
	ID          *int64  `json:"id"`
	Name        *string `json:"name"`
	TopUp       *int64  `json:"top_up"`
	EmailStatus *bool   `json:"email_status"`

	raw json.RawMessage
}

func (c *Company) UnmarshalJSON(data []byte) error {
	type alias Company
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = Company(a)
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Record returns the record's original JSON for diagnostics.
func (c *Company) Record() string {
	if len(c.raw) > 0 {
		return string(c.raw)
	}
	b, _ := json.Marshal(c)
	return string(b)
}

// CompanyAccount is a company plus the accumulators filled in during
// aggregation: the two classification lists and the running top-up total.
type CompanyAccount struct {
	Company         *Company
	UsersEmailed    []*ActiveUser
	UsersNotEmailed []*ActiveUser
	TotalTopUp      int64
}
