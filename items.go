package nivesh

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Item is a generic record in the per-user data store, independent of the
// asset document.
type Item struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type itemDocument struct {
	Items []Item `json:"items"`
}

func newItemDocument() itemDocument { return itemDocument{Items: []Item{}} }

// InitItemStore provisions an empty item store for a user. Registering a
// user calls this so the file exists before the first read.
func InitItemStore(s *Store, userID string) error {
	_, err := updateDocument(s, s.itemsPath(userID), newItemDocument, func(*itemDocument) error {
		return nil
	})
	return err
}

// ReadItems returns all items of the user.
func ReadItems(s *Store, userID string) ([]Item, error) {
	doc, err := readDocument(s, s.itemsPath(userID), newItemDocument)
	if err != nil {
		return nil, err
	}
	return doc.Items, nil
}

// CreateItem appends a new item and persists the whole document.
func CreateItem(s *Store, userID string, item Item) (Item, error) {
	if item.Title == "" {
		return Item{}, fmt.Errorf("%w: item title is required", ErrValidation)
	}
	now := time.Now().UTC()
	item.ID = newRecordID()
	item.CreatedAt = now
	item.UpdatedAt = now
	_, err := updateDocument(s, s.itemsPath(userID), newItemDocument, func(d *itemDocument) error {
		d.Items = append(d.Items, item)
		return nil
	})
	return item, err
}

// UpdateItem applies a partial patch to the item with the given id and
// refreshes its UpdatedAt stamp.
func UpdateItem(s *Store, userID, id string, patch func(*Item)) (Item, error) {
	var out Item
	_, err := updateDocument(s, s.itemsPath(userID), newItemDocument, func(d *itemDocument) error {
		for i := range d.Items {
			if d.Items[i].ID != id {
				continue
			}
			patch(&d.Items[i])
			d.Items[i].UpdatedAt = time.Now().UTC()
			out = d.Items[i]
			return nil
		}
		return fmt.Errorf("item %q: %w", id, ErrNotFound)
	})
	return out, err
}

// DeleteItem removes the item with the given id.
func DeleteItem(s *Store, userID, id string) error {
	_, err := updateDocument(s, s.itemsPath(userID), newItemDocument, func(d *itemDocument) error {
		kept := d.Items[:0]
		found := false
		for _, it := range d.Items {
			if it.ID == id {
				found = true
				continue
			}
			kept = append(kept, it)
		}
		if !found {
			return fmt.Errorf("item %q: %w", id, ErrNotFound)
		}
		d.Items = kept
		return nil
	})
	return err
}
