// Package indexer builds the company index consumed by the aggregator.
package indexer

import (
	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/dmitrijs2005/topup/internal/models"
)

// Build maps each company id to a CompanyAccount seeded with empty
// classification lists and a zero total. Every company must carry an id;
// uniqueness is assumed, so a later duplicate overwrites an earlier one.
func Build(companies []*models.Company) (map[int64]*models.CompanyAccount, error) {
	accounts := make(map[int64]*models.CompanyAccount, len(companies))

	for _, c := range companies {
		if c.ID == nil {
			return nil, common.MissingFieldError("company", c.Record(), "id")
		}
		accounts[*c.ID] = &models.CompanyAccount{
			Company:         c,
			UsersEmailed:    []*models.ActiveUser{},
			UsersNotEmailed: []*models.ActiveUser{},
		}
	}

	return accounts, nil
}
