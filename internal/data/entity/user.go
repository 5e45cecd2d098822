package entity

const (
	UserStatusDisabled = 0
	UserStatusActive   = 1
)

type User struct {
	BaseSimple
	Name         *string `db:"name"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	Mobile       *string `db:"mobile"`
	CompanyName  *string `db:"company_name"`
	Address      *string `db:"address"`
	Status       int     `db:"status"`
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.Status != UserStatusDisabled
}
