package domain

// EmptyCartID identifies the canonical empty cart.
const EmptyCartID = "empty"

// CartItem is a line item joined with its product.
type CartItem struct {
	Product  *Product
	Quantity int
	Price    Money
}

// Cart is the derived view over the caller's shopping list.
type Cart struct {
	ID          string
	Items       []CartItem
	TotalAmount Money
}

// EmptyCart returns the canonical empty cart.
func EmptyCart() *Cart {
	return &Cart{
		ID:          EmptyCartID,
		Items:       []CartItem{},
		TotalAmount: ZeroMoney(DefaultCurrency),
	}
}

// BuildCart derives the cart total from its items. A list without items
// yields the canonical empty cart whatever its id.
func BuildCart(listID string, items []CartItem) *Cart {
	if len(items) == 0 {
		return EmptyCart()
	}
	return &Cart{
		ID:          listID,
		Items:       items,
		TotalAmount: Total(items),
	}
}

// Total sums price x quantity; the currency is the first item's.
func Total(items []CartItem) Money {
	if len(items) == 0 {
		return ZeroMoney(DefaultCurrency)
	}
	var sum int64
	for _, it := range items {
		sum += it.Price.MinorUnits * int64(it.Quantity)
	}
	return NewMoney(sum, items[0].Price.CurrencyCode)
}
