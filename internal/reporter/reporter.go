// Package reporter renders the aggregated report into its fixed text
// layout and writes it to disk atomically.
package reporter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/topup/internal/common"
	"github.com/dmitrijs2005/topup/internal/models"
)

// Layout constants: 8 spaces before a user line, 10 before a balance line.
const (
	userIndent    = "        "
	balanceIndent = "          "
)

// Render produces the report text for the already-sorted accounts.
//
// A company with no users on either list emits nothing, not even a header.
// Every emitted company prints both section headers, each followed by one
// block per user in list order, then the total line and a blank line.
func Render(accounts []*models.CompanyAccount) (string, error) {
	var b strings.Builder

	for _, acc := range accounts {
		if len(acc.UsersEmailed) == 0 && len(acc.UsersNotEmailed) == 0 {
			continue
		}

		c := acc.Company
		if c.ID == nil {
			return "", common.MissingFieldError("company", c.Record(), "id")
		}
		if c.Name == nil {
			return "", common.MissingFieldError("company", c.Record(), "name")
		}

		fmt.Fprintf(&b, "Company Id: %d\n", *c.ID)
		fmt.Fprintf(&b, "Company Name: %s\n", *c.Name)

		b.WriteString("Users Emailed:\n")
		if err := renderUsers(&b, acc.UsersEmailed); err != nil {
			return "", err
		}
		b.WriteString("Users Not Emailed:\n")
		if err := renderUsers(&b, acc.UsersNotEmailed); err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "Total amount of top ups for %s: %d\n\n", *c.Name, acc.TotalTopUp)
	}

	return b.String(), nil
}

func renderUsers(w io.Writer, users []*models.ActiveUser) error {
	for _, au := range users {
		u := au.User
		if u.LastName == nil {
			return common.MissingFieldError("user", u.Record(), "last_name")
		}
		if u.FirstName == nil {
			return common.MissingFieldError("user", u.Record(), "first_name")
		}
		if u.Email == nil {
			return common.MissingFieldError("user", u.Record(), "email")
		}

		fmt.Fprintf(w, "%s%s, %s, %s\n", userIndent, *u.LastName, *u.FirstName, *u.Email)
		fmt.Fprintf(w, "%sPrevious Token Balance, %d\n", balanceIndent, au.Tokens)
		fmt.Fprintf(w, "%sNew Token Balance %d\n", balanceIndent, au.NewTokenBalance)
	}
	return nil
}

// Write renders accounts and replaces the file at path in one step: the
// text goes to a temp file in the same directory which is then renamed
// over path. A failure at any point leaves the previous file untouched.
func Write(path string, accounts []*models.CompanyAccount) error {
	text, err := Render(accounts)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	_, werr := w.WriteString(text)
	if werr == nil {
		werr = w.Flush()
	}
	if werr != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing report: %w", werr)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing report: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
