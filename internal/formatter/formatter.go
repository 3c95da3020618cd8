// Package formatter orders the aggregated data for rendering.
package formatter

import (
	"sort"

	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/dmitrijs2005/topup/internal/models"
)

// Sort returns the accounts ordered ascending by company id, with each
// account's user lists stably sorted ascending by last name. Users on the
// lists must carry last_name. Ties keep their input order.
func Sort(accounts map[int64]*models.CompanyAccount) ([]*models.CompanyAccount, error) {
	out := make([]*models.CompanyAccount, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, acc)
	}

	for _, acc := range out {
		if err := sortUsers(acc.UsersEmailed); err != nil {
			return nil, err
		}
		if err := sortUsers(acc.UsersNotEmailed); err != nil {
			return nil, err
		}
	}

	// Company ids are non-nil here: the indexer rejects companies without one.
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].Company.ID < *out[j].Company.ID
	})

	return out, nil
}

func sortUsers(users []*models.ActiveUser) error {
	for _, au := range users {
		if au.User.LastName == nil {
			return common.MissingFieldError("user", au.User.Record(), "last_name")
		}
	}
	sort.SliceStable(users, func(i, j int) bool {
		return *users[i].User.LastName < *users[j].User.LastName
	})
	return nil
}
