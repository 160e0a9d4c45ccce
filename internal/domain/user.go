package domain

import "time"

// CustomerUser зарегистрированный клиент барбершопа
type CustomerUser struct {
	ID           int64
	Name         string
	Email        string
	Phone        *string
	PasswordHash string
	CreatedAt    time.Time
}
