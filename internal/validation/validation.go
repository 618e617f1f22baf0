package validation

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Errors maps a form field to the message shown under it.
type Errors map[string]string

func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func (e Errors) Empty() bool {
	return len(e) == 0
}

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Err returns e as an error, or nil when there is nothing to report.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

type LoginForm struct {
	Email    string `form:"email" json:"email" binding:"notblank,emailaddr"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

func (f LoginForm) Validate() Errors {
	return Check(f)
}

type SignupForm struct {
	FullName        string `form:"full_name" json:"full_name" binding:"notblank"`
	CountryCode     string `form:"country_code" json:"country_code" binding:"omitempty,country"`
	Phone           string `form:"phone" json:"phone" binding:"notblank,number"`
	Email           string `form:"email" json:"email" binding:"notblank,emailaddr"`
	Password        string `form:"password" json:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"eqfield=Password"`
	InvitationCode  string `form:"invitation_code" json:"invitation_code"`
	AgreeToTerms    bool   `form:"agree_to_terms" json:"agree_to_terms" binding:"required"`
}

func (f SignupForm) Validate() Errors {
	return Check(f)
}

// PhoneNumber joins the selected country's dial code with the digits of the
// local number. Unknown or empty countries use the default country.
func (f SignupForm) PhoneNumber() string {
	c, ok := CountryByCode(f.CountryCode)
	if !ok {
		c = DefaultCountry()
	}
	return c.DialCode + nonDigits.ReplaceAllString(f.Phone, "")
}

// ReferralCode is nil when no invitation code was given.
func (f SignupForm) ReferralCode() *string {
	code := strings.TrimSpace(f.InvitationCode)
	if code == "" {
		return nil
	}
	return &code
}

type ForgotPasswordForm struct {
	Email string `form:"email" json:"email" binding:"notblank,emailaddr"`
}

func (f ForgotPasswordForm) Validate() Errors {
	return Check(f)
}

// ResetPasswordForm carries the reset key from the URL, never from the body.
type ResetPasswordForm struct {
	Key             string `form:"-" json:"-" binding:"notblank"`
	Password        string `form:"password" json:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required,eqfield=Password"`
}

func (f ResetPasswordForm) Validate() Errors {
	return Check(f)
}

type ChangePasswordForm struct {
	CurrentPassword string `form:"current_password" json:"current_password" binding:"required"`
	NewPassword     string `form:"new_password" json:"new_password" binding:"required,min=6,nefield=CurrentPassword"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

func (f ChangePasswordForm) Validate() Errors {
	return Check(f)
}

type SupportReportForm struct {
	Name        string `form:"name" json:"name" binding:"notblank"`
	Email       string `form:"email" json:"email" binding:"notblank,emailaddr"`
	Subject     string `form:"subject" json:"subject" binding:"notblank"`
	Description string `form:"description" json:"description" binding:"notblank"`
}

func (f SupportReportForm) Validate() Errors {
	return Check(f)
}

type RechargeForm struct {
	Amount        string `form:"amount" json:"amount" binding:"amount"`
	PaymentMethod string `form:"payment_method" json:"payment_method" binding:"notblank"`
	Narration     string `form:"narration" json:"narration"`
}

// Validate checks the recharge fields. hasProof reports whether a proof of
// payment file was attached.
func (f RechargeForm) Validate(hasProof bool) Errors {
	errs := Check(f)
	if !hasProof {
		errs.Add("proof", "Please upload a proof of payment.")
	}
	return errs
}

type WithdrawForm struct {
	Amount        string `form:"amount" json:"amount" binding:"amount"`
	PaymentMethod string `form:"payment_method" json:"payment_method" binding:"notblank"`
}

func (f WithdrawForm) Validate() (float64, Errors) {
	errs := Check(f)
	v, err := ParseAmount(f.Amount)
	if err != nil {
		v = 0
	}
	return v, errs
}

// ParseAmount reads a user typed money figure. Thousands separators and a
// leading "$" are allowed. Negative and non-finite figures are rejected.
func ParseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	s = strings.TrimPrefix(s, "$")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}

	v := d.InexactFloat64()
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
