package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/RoyceAzure/lab/bookshop/internal/model"
)

const (
	MsgIncomplete       = "Incomplete information."
	MsgFirstNameTooLong = "First name is too long."
	MsgLastNameTooLong  = "Last name is too long."
	MsgAddressTooLong   = "Address is too long."
	MsgCityTooLong      = "City is too long."
	MsgPhoneTooLong     = "Phone number is too long."
	MsgEmailTooLong     = "Email is too long."
	MsgPasswordTooShort = "Password is too short."
	MsgPasswordTooLong  = "Password is too long."
	MsgInvalidZip       = "Invalid zip code."
	MsgInvalidEmail     = "Invalid e-mail address."
	MsgEmailNotUnique   = "Email address has to be unique."
)

const (
	maxNameLen     = 50
	maxAddressLen  = 50
	maxCityLen     = 30
	maxPhoneLen    = 15
	maxEmailLen    = 40
	minPasswordLen = 6
	maxPasswordLen = 200
	maxZip         = 99999
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizeEmail email 比對不分大小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidZip(zip int) bool {
	return zip > 0 && zip <= maxZip
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}

/*
ValidateRegistration 收集所有違規訊息, 不會遇到第一個就停
email 唯一性需要查 store, 由呼叫端補上 MsgEmailNotUnique
*/
func ValidateRegistration(in model.RegisterUserInput) []string {
	messages := make([]string, 0)

	if blank(in.FirstName) || blank(in.LastName) || blank(in.Address) || blank(in.City) ||
		in.Zip == 0 || blank(in.Email) || in.Password == "" {
		messages = append(messages, MsgIncomplete)
	}

	if tooLong(in.FirstName, maxNameLen) {
		messages = append(messages, MsgFirstNameTooLong)
	}
	if tooLong(in.LastName, maxNameLen) {
		messages = append(messages, MsgLastNameTooLong)
	}
	if tooLong(in.Address, maxAddressLen) {
		messages = append(messages, MsgAddressTooLong)
	}
	if tooLong(in.City, maxCityLen) {
		messages = append(messages, MsgCityTooLong)
	}
	if tooLong(in.Phone, maxPhoneLen) {
		messages = append(messages, MsgPhoneTooLong)
	}
	if tooLong(in.Email, maxEmailLen) {
		messages = append(messages, MsgEmailTooLong)
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		messages = append(messages, MsgPasswordTooShort)
	}
	if tooLong(in.Password, maxPasswordLen) {
		messages = append(messages, MsgPasswordTooLong)
	}

	if !IsValidZip(in.Zip) {
		messages = append(messages, MsgInvalidZip)
	}
	if !IsValidEmail(in.Email) {
		messages = append(messages, MsgInvalidEmail)
	}

	return messages
}

func JoinViolations(messages []string) string {
	return strings.Join(messages, "\n")
}
