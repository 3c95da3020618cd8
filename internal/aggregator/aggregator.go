// Package aggregator applies the users source to the company index:
// validation, balance computation, email classification and totals.
package aggregator

import (
	"fmt"

	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/dmitrijs2005/topup/internal/models"
)

// Apply walks the users in input order and mutates accounts in place.
//
// Inactive users are skipped entirely. Each active user must reference an
// indexed company, carry non-negative tokens, and both the user and its
// company must carry email_status; the user then lands on exactly one of
// the company's two lists and contributes the company's top_up to its
// total. The first violation aborts with a descriptive error.
func Apply(users []*models.User, accounts map[int64]*models.CompanyAccount) error {
	for _, u := range users {
		if u.ActiveStatus == nil {
			return common.MissingFieldError("user", u.Record(), "active_status")
		}
		if !*u.ActiveStatus {
			continue
		}

		if u.CompanyID == nil {
			return common.MissingFieldError("user", u.Record(), "company_id")
		}
		acc, ok := accounts[*u.CompanyID]
		if !ok {
			return fmt.Errorf("user %s: %w: company_id %d", u.Record(), common.ErrUnknownCompany, *u.CompanyID)
		}
		c := acc.Company

		if c.TopUp == nil {
			return common.MissingFieldError("company", c.Record(), "top_up")
		}
		if *c.TopUp < 0 {
			return common.InvalidValueError("company", c.Record(), "top_up must be >= 0")
		}

		if u.Tokens == nil {
			return common.MissingFieldError("user", u.Record(), "tokens")
		}
		if *u.Tokens < 0 {
			return common.InvalidValueError("user", u.Record(), "tokens must be >= 0")
		}

		if u.EmailStatus == nil {
			return common.MissingFieldError("user", u.Record(), "email_status")
		}
		if c.EmailStatus == nil {
			return common.MissingFieldError("company", c.Record(), "email_status")
		}

		au := &models.ActiveUser{
			User:            u,
			Tokens:          *u.Tokens,
			NewTokenBalance: *u.Tokens + *c.TopUp,
		}

		if *u.EmailStatus && *c.EmailStatus {
			acc.UsersEmailed = append(acc.UsersEmailed, au)
		} else {
			acc.UsersNotEmailed = append(acc.UsersNotEmailed, au)
		}

		acc.TotalTopUp += *c.TopUp
	}

	return nil
}
