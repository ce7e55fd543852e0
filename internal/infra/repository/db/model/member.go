package model

type Member struct {
	UserID   int     `gorm:"column:userid;primaryKey;autoIncrement"`
	FName    string  `gorm:"column:fname;not null;type:varchar(50)"`
	LName    string  `gorm:"column:lname;not null;type:varchar(50)"`
	Address  string  `gorm:"column:address;not null;type:varchar(50)"`
	City     string  `gorm:"column:city;not null;type:varchar(30)"`
	Zip      int     `gorm:"column:zip;not null"`
	Phone    *string `gorm:"column:phone;type:varchar(15)"`
	Email    string  `gorm:"column:email;unique;not null;type:varchar(40)"`
	Password string  `gorm:"column:password;not null;type:varchar(200)"`
}

func (Member) TableName() string {
	return "members"
}
