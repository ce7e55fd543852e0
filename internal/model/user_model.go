package model

type RegisterUserInput struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Zip       int
	Phone     string
	Email     string
	Password  string
}

// AuthResult 登入成功只回傳 id 與名字, 不含密碼
type AuthResult struct {
	UserID    int
	FirstName string
}

type Member struct {
	UserID    int
	FirstName string
	LastName  string
	Address   string
	City      string
	Zip       int
	Phone     *string
	Email     string
}
