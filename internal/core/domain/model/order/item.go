package order

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// Item is one line of an order: a snapshot of a menu item frozen at
// placement time. Name and price never change afterwards, even if the
// underlying menu item is edited or removed — an order's displayed history
// is immutable.
type Item struct {
	foodID   kernel.UUID
	name     string
	price    float64
	quantity int
}

// NewItem creates a validated line-item snapshot.
func NewItem(foodID kernel.UUID, name string, price float64, quantity int) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setFoodID(foodID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// FoodID returns the referenced menu item's identifier.
func (i Item) FoodID() kernel.UUID {
	return i.foodID
}

// Name returns the name snapshot taken at placement time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price snapshot taken at placement time.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns price multiplied by quantity.
func (i Item) LineTotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setFoodID(foodID kernel.UUID) error {
	if err := foodID.Validate(); err != nil {
		return err
	}
	i.foodID = foodID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("item price", price, 0, nil)
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, nil)
	}
	i.quantity = quantity
	return nil
}

// Subtotal sums the line totals of a set of items.
func Subtotal(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}
	return sum
}
