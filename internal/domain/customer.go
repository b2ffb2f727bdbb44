package domain

import "time"

// Customer is a party that owes money for bills and settles them with payments.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
}
