package merchant

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrMenuItemNameIsRequired is returned when a menu item is created
	// without a name.
	ErrMenuItemNameIsRequired = errs.NewValueIsRequiredError("itemName")
	// ErrMenuIsEmpty is returned when a menu is created with no items.
	ErrMenuIsEmpty = errs.NewValueIsRequiredError("menu items")
	// ErrMenuItemIsNotConstructed is returned when using an improperly
	// initialized MenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
	// ErrMenuIsNotConstructed is returned when using an improperly
	// initialized Menu.
	ErrMenuIsNotConstructed = errors.New("Menu must be created via NewMenu constructor")
)

// MenuItem is one orderable position on a merchant's menu: a unique name and
// a non-negative unit price.
type MenuItem struct {
	name  string
	price int
	guard guard.ConstructorGuard
}

// NewMenuItem creates a validated MenuItem.
// The name must be non-empty and the price non-negative.
func NewMenuItem(name string, price int) (MenuItem, error) {
	if name == "" {
		return MenuItem{}, ErrMenuItemNameIsRequired
	}
	if price < 0 {
		return MenuItem{}, errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%d is negative", price))
	}

	return MenuItem{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the menu item name.
func (i MenuItem) Name() string {
	return i.name
}

// Price returns the unit price.
func (i MenuItem) Price() int {
	return i.price
}

// Validate ensures the item was created through NewMenuItem.
func (i MenuItem) Validate() error {
	return i.guard.Validate(ErrMenuItemIsNotConstructed)
}

// Menu is an ordered collection of menu items. The order is stable so items
// can be presented as a numbered list, and names are unique so a name
// identifies exactly one price.
type Menu struct {
	items []MenuItem
	guard guard.ConstructorGuard
}

// NewMenu creates a Menu from the given items.
//
// The menu must contain at least one item, every item must be constructed
// through NewMenuItem, and item names must be unique. The items slice is
// copied so the caller cannot mutate the menu afterwards.
func NewMenu(items []MenuItem) (Menu, error) {
	if len(items) == 0 {
		return Menu{}, ErrMenuIsEmpty
	}

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Menu{}, err
		}
		if _, ok := seen[item.name]; ok {
			return Menu{}, errs.NewValueIsInvalidErrorWithCause("menu is invalid",
				fmt.Errorf("duplicate item name %q", item.name))
		}
		seen[item.name] = struct{}{}
	}

	menu := Menu{
		items: make([]MenuItem, len(items)),
		guard: guard.NewConstructorGuard(),
	}
	copy(menu.items, items)

	return menu, nil
}

// Items returns a copy of the menu's items in presentation order.
func (m Menu) Items() []MenuItem {
	items := make([]MenuItem, len(m.items))
	copy(items, m.items)
	return items
}

// Len returns the number of items on the menu.
func (m Menu) Len() int {
	return len(m.items)
}

// ItemAt returns the item at the given zero-based position.
// Returns a range error if the position is outside the menu.
func (m Menu) ItemAt(position int) (MenuItem, error) {
	if position < 0 || position >= len(m.items) {
		return MenuItem{}, errs.NewValueIsOutOfRangeError("position", position, 0, len(m.items)-1)
	}
	return m.items[position], nil
}

// PriceOf returns the unit price of the named item.
// Returns an ObjectNotFoundError if the menu has no such item.
func (m Menu) PriceOf(name string) (int, error) {
	for _, item := range m.items {
		if item.name == name {
			return item.price, nil
		}
	}
	return 0, errs.NewObjectNotFoundError("itemName", name)
}

// Validate ensures the menu was created through NewMenu.
func (m Menu) Validate() error {
	return m.guard.Validate(ErrMenuIsNotConstructed)
}
