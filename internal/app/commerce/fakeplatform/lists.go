package fakeplatform

import (
	"context"

	"github.com/google/uuid"

	"github.com/murkotick/storefront-graph/internal/platform"
)

func copyList(l *platform.ShoppingList) *platform.ShoppingList {
	c := *l
	c.LineItems = append([]platform.ShoppingListLineItem(nil), l.LineItems...)
	return &c
}

func (f *Platform) findList(id string) (int, *platform.ShoppingList) {
	for i, l := range f.Lists {
		if l.ID == id {
			return i, l
		}
	}
	return -1, nil
}

// FindShoppingList matches the key exactly; an empty key only matches lists
// without a key.
func (f *Platform) FindShoppingList(_ context.Context, key string) (*platform.ShoppingList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("FindShoppingList"); err != nil {
		return nil, err
	}
	for _, l := range f.Lists {
		if l.Key == key {
			return copyList(l), nil
		}
	}
	return nil, nil
}

func (f *Platform) CreateShoppingList(_ context.Context, draft platform.ShoppingListDraft) (*platform.ShoppingList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateShoppingList"); err != nil {
		return nil, err
	}
	l := &platform.ShoppingList{
		ID:        uuid.NewString(),
		Key:       draft.Key,
		Version:   1,
		Name:      draft.Name,
		LineItems: append([]platform.ShoppingListLineItem{}, draft.LineItems...),
	}
	f.Lists = append(f.Lists, l)
	return copyList(l), nil
}

func (f *Platform) UpdateShoppingList(_ context.Context, id string, version int64, actions ...platform.ShoppingListUpdateAction) (*platform.ShoppingList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("UpdateShoppingList"); err != nil {
		return nil, err
	}
	_, l := f.findList(id)
	if l == nil {
		return nil, NotFound(id)
	}
	if l.Version != version {
		return nil, Conflict(version, l.Version)
	}

	for _, a := range actions {
		switch a.Action {
		case platform.ActionAddLineItem:
			l.LineItems = append(l.LineItems, platform.ShoppingListLineItem{
				ID:        uuid.NewString(),
				ProductID: a.ProductID,
				VariantID: a.VariantID,
				Quantity:  a.Quantity,
			})
		case platform.ActionChangeLineItemQuantity:
			for i := range l.LineItems {
				if l.LineItems[i].ID == a.LineItemID {
					l.LineItems[i].Quantity = a.Quantity
				}
			}
		case platform.ActionRemoveLineItem:
			kept := l.LineItems[:0]
			for _, li := range l.LineItems {
				if li.ID != a.LineItemID {
					kept = append(kept, li)
				}
			}
			l.LineItems = kept
		}
	}
	l.Version++
	return copyList(l), nil
}

func (f *Platform) DeleteShoppingList(_ context.Context, id string, version int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteShoppingList"); err != nil {
		return err
	}
	i, l := f.findList(id)
	if l == nil {
		return NotFound(id)
	}
	if l.Version != version {
		return Conflict(version, l.Version)
	}
	f.Lists = append(f.Lists[:i], f.Lists[i+1:]...)
	return nil
}
