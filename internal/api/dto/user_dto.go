package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// InvalidZip 無法解析的 zip, 交給 validator 回 "Invalid zip code."
const InvalidZip = -1

/*
ZipCode 接受 12345 或 "12345"
空字串與 null 視為未填 (0), 其他無法轉成整數的值為 InvalidZip
*/
type ZipCode int

func (z *ZipCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*z = 0
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*z = InvalidZip
			return nil
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*z = 0
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		*z = InvalidZip
		return nil
	}
	*z = ZipCode(n)
	return nil
}

type RegisterUserDTO struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       ZipCode `json:"zip"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Password  string  `json:"password"` //密碼明文
}

type RegisterUserResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"userId"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName"`
}

// MemberDTO 不含密碼
type MemberDTO struct {
	UserID    int     `json:"userId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       int     `json:"zip"`
	Phone     *string `json:"phone"`
	Email     string  `json:"email"`
}

type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Message string `json:"message,omitempty"`
}
