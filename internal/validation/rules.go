package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		panic(err)
	}
	return v
}

// Register installs the form rules and json field naming on v. The router
// applies it to gin's binding engine so bound requests and Check agree.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(fieldName)

	rules := map[string]validator.Func{
		"notblank":  validators.NotBlank,
		"emailaddr": isEmailField,
		"country":   isCountryField,
		"amount":    isAmountField,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func fieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return strings.ToLower(fld.Name)
	}
	return name
}

func isEmailField(fl validator.FieldLevel) bool {
	return IsEmail(strings.TrimSpace(fl.Field().String()))
}

func isCountryField(fl validator.FieldLevel) bool {
	_, ok := CountryByCode(fl.Field().String())
	return ok
}

func isAmountField(fl validator.FieldLevel) bool {
	v, err := ParseAmount(fl.Field().String())
	return err == nil && v > 0
}

// messages is keyed by "<Form>.<field>.<rule>".
var messages = map[string]string{
	"LoginForm.email.notblank":    "Email address is required.",
	"LoginForm.email.emailaddr":   "Email address is invalid.",
	"LoginForm.password.required": "Password is required.",
	"LoginForm.password.min":      "Password must be at least 6 characters.",

	"SignupForm.full_name.notblank":       "Full Name is required.",
	"SignupForm.country_code.country":     "Select a valid country.",
	"SignupForm.phone.notblank":           "Phone number is required.",
	"SignupForm.phone.number":             "Only digits allowed.",
	"SignupForm.email.notblank":           "Email is required.",
	"SignupForm.email.emailaddr":          "Invalid email.",
	"SignupForm.password.required":        "Password is required.",
	"SignupForm.password.min":             "Minimum 6 characters.",
	"SignupForm.confirm_password.eqfield": "Passwords don't match.",
	"SignupForm.agree_to_terms.required":  "You must agree to the terms and conditions",

	"ForgotPasswordForm.email.notblank":  "Email address is required.",
	"ForgotPasswordForm.email.emailaddr": "Please enter a valid email address.",

	"ResetPasswordForm.key.notblank":              "Reset key is missing.",
	"ResetPasswordForm.password.required":         "Password is required.",
	"ResetPasswordForm.password.min":              "Password must be at least 6 characters.",
	"ResetPasswordForm.confirm_password.required": "Confirm Password is required.",
	"ResetPasswordForm.confirm_password.eqfield":  "Passwords do not match.",

	"ChangePasswordForm.current_password.required": "Current password is required.",
	"ChangePasswordForm.new_password.required":     "New password is required.",
	"ChangePasswordForm.new_password.min":          "Password must be at least 6 characters.",
	"ChangePasswordForm.new_password.nefield":      "New password must be different from current password.",
	"ChangePasswordForm.confirm_password.required": "Confirm password is required.",
	"ChangePasswordForm.confirm_password.eqfield":  "Passwords do not match.",

	"SupportReportForm.name.notblank":        "Name is required.",
	"SupportReportForm.email.notblank":       "Email is required.",
	"SupportReportForm.email.emailaddr":      "Invalid email.",
	"SupportReportForm.subject.notblank":     "Subject is required.",
	"SupportReportForm.description.notblank": "Description is required.",

	"RechargeForm.amount.amount":           "Please enter a valid amount.",
	"RechargeForm.payment_method.notblank": "Please select a payment method.",

	"WithdrawForm.amount.amount":           "Please enter a valid amount.",
	"WithdrawForm.payment_method.notblank": "Please select a payment method.",
}

// Check validates form against its binding rules.
func Check(form any) Errors {
	errs, ok := FromError(engine.Struct(form))
	if !ok {
		return Errors{}
	}
	return errs
}

// FromError turns validator failures into field messages. ok is false when
// err carries no field failures.
func FromError(err error) (Errors, bool) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, false
	}

	errs := Errors{}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs, true
}

func message(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	form := ""
	if len(parts) >= 2 {
		form = parts[len(parts)-2]
	}

	if msg, ok := messages[form+"."+fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return "This field is invalid."
}
