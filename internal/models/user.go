package model

// User is a registered account. Users are immutable once created.
type User struct {
	ID            int     `json:"id"`
	Username      string  `json:"username"`
	Password      string  `json:"-"`
	WalletAddress *string `json:"walletAddress"`
}

// InsertUser is the signup payload accepted by POST /users.
type InsertUser struct {
	Username      string  `json:"username" validate:"required,max=64"`
	Password      string  `json:"password" validate:"required"`
	WalletAddress *string `json:"walletAddress,omitempty" validate:"omitempty,max=128"`
}
