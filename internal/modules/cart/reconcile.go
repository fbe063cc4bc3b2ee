package cart

import (
	"errors"

	"github.com/google/uuid"

	"github.com/sarmstore/storefront-backend/internal/modules/catalog"
)

// Mutation errors surfaced to the shopper. Stock is never a hard
// reservation: two sessions can each believe the last unit is theirs, and
// the loser finds out at checkout. That limitation is architectural, not
// something this package papers over.
var (
	// ErrOutOfStock means the cart already holds every unit the catalog has.
	ErrOutOfStock = errors.New("cannot add more than available stock")

	// ErrUnavailable means the product was removed from the catalog after
	// the shopper added it.
	ErrUnavailable = errors.New("product is no longer available")

	// ErrNotInCart means a quantity change referenced a line that does not exist.
	ErrNotInCart = errors.New("product is not in the cart")
)

// QuantityOf returns how many units of productID the cart holds.
func QuantityOf(lines []Line, productID uuid.UUID) int {
	for _, l := range lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// AvailableStock is the catalog stock minus what the cart already reserves.
// UI affordances ("Add to Cart" enabled or not) key off this value, never
// off raw catalog stock.
func AvailableStock(p catalog.Product, lines []Line) int {
	return p.Stock - QuantityOf(lines, p.ID)
}

// Add puts one unit of p in the cart: an existing line is incremented, a new
// line starts at quantity 1 with the catalog name, price and image copied in.
func Add(lines []Line, p catalog.Product, image string) ([]Line, error) {
	if AvailableStock(p, lines) <= 0 {
		return lines, ErrOutOfStock
	}
	for i := range lines {
		if lines[i].ProductID == p.ID {
			lines[i].Quantity++
			return lines, nil
		}
	}
	return append(lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     image,
		Quantity:  1,
	}), nil
}

// ChangeQuantity adjusts an existing line by delta. A result of zero or less
// removes the line; an increment past the catalog stock is rejected. Zero or
// negative quantities never persist.
func ChangeQuantity(lines []Line, p catalog.Product, delta int) ([]Line, error) {
	for i := range lines {
		if lines[i].ProductID != p.ID {
			continue
		}
		next := lines[i].Quantity + delta
		if next < 1 {
			return Remove(lines, p.ID), nil
		}
		if next > p.Stock {
			return lines, ErrOutOfStock
		}
		lines[i].Quantity = next
		return lines, nil
	}
	return lines, ErrNotInCart
}

// Remove deletes the line for productID unconditionally.
func Remove(lines []Line, productID uuid.UUID) []Line {
	out := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			out = append(out, l)
		}
	}
	return out
}
