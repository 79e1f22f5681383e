package graphql

import (
	"fmt"
	"strings"
)

func validateProductID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("productId is required")
	}
	return nil
}

// validateAddress checks the fields AddressInput marks required. The schema
// already rejects nulls, so only blank values are left to catch.
func validateAddress(field string, a *addressInput) error {
	if a == nil {
		return nil
	}
	required := []struct{ name, val string }{
		{"firstName", a.FirstName},
		{"lastName", a.LastName},
		{"streetName", a.StreetName},
		{"streetNumber", a.StreetNumber},
		{"postalCode", a.PostalCode},
		{"city", a.City},
		{"country", a.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return fmt.Errorf("%s.%s is required", field, r.name)
		}
	}
	return nil
}

func validatePlaceOrder(args placeOrderArgs) error {
	if strings.TrimSpace(args.CustomerEmail) == "" {
		return fmt.Errorf("customerEmail is required")
	}
	if err := validateAddress("shippingAddress", &args.ShippingAddress); err != nil {
		return err
	}
	return validateAddress("billingAddress", args.BillingAddress)
}
