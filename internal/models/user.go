package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// User owns goals and carries the settings used for allocation.
type User struct {
	DefaultModel
	Email      string          `gorm:"uniqueIndex"`
	Currency   string          // ISO 4217 code, upper case
	BaseIncome decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Income per period used when no explicit income is given
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	code, err := NormalizeCurrency(u.Currency)
	if err != nil {
		return err
	}
	u.Currency = code

	if u.BaseIncome.IsNegative() {
		return ErrBaseIncomeNegative
	}

	return nil
}

// NormalizeCurrency validates an ISO 4217 currency code and returns it in
// its canonical, upper case form.
func NormalizeCurrency(code string) (string, error) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return "", ErrCurrencyInvalid
	}

	return unit.String(), nil
}

// GetOrCreateUser returns the user with the given email address and creates it
// with the given currency if it does not exist yet.
func GetOrCreateUser(db *gorm.DB, email, defaultCurrency string) (User, error) {
	var user User
	err := db.
		Where(User{Email: strings.ToLower(strings.TrimSpace(email))}).
		Attrs(User{Currency: defaultCurrency}).
		FirstOrCreate(&user).Error

	return user, err
}
