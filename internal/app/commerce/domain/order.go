package domain

import "time"

// Address is a postal address value.
type Address struct {
	FirstName    string
	LastName     string
	StreetName   string
	StreetNumber string
	City         string
	State        string
	PostalCode   string
	Country      string
	Phone        string
}

// Order is the derived view of a platform order.
type Order struct {
	ID              string
	OrderNumber     string
	CreatedAt       time.Time
	Items           []CartItem
	TotalAmount     Money
	ShippingAddress Address
	BillingAddress  Address
	CustomerEmail   string
}
