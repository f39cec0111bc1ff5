package nivesh

import (
	"errors"
	"testing"
)

func TestItemLifecycle(t *testing.T) {
	s := newTestStore(t)

	created, err := CreateItem(s, "u1", Item{Title: "insurance premium", Amount: dec(4500), Category: "insurance"})
	if err != nil {
		t.Fatalf("CreateItem() failed: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("created item missing stamps: %+v", created)
	}

	updated, err := UpdateItem(s, "u1", created.ID, func(it *Item) {
		it.Amount = dec(4800)
	})
	if err != nil {
		t.Fatalf("UpdateItem() failed: %v", err)
	}
	if !eq(updated.Amount, dec(4800)) {
		t.Errorf("amount = %s, want 4800", updated.Amount)
	}
	if updated.Title != "insurance premium" {
		t.Errorf("patch clobbered title: %q", updated.Title)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Error("UpdatedAt not refreshed")
	}

	if err := DeleteItem(s, "u1", created.ID); err != nil {
		t.Fatalf("DeleteItem() failed: %v", err)
	}
	items, err := ReadItems(s, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("items after delete = %+v, want none", items)
	}
}

func TestItemValidation(t *testing.T) {
	s := newTestStore(t)
	if _, err := CreateItem(s, "u1", Item{Amount: dec(10)}); !errors.Is(err, ErrValidation) {
		t.Errorf("CreateItem(no title) = %v, want ErrValidation", err)
	}
	if _, err := UpdateItem(s, "u1", "nope", func(*Item) {}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateItem(unknown) = %v, want ErrNotFound", err)
	}
	if err := DeleteItem(s, "u1", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteItem(unknown) = %v, want ErrNotFound", err)
	}
}

func TestInitItemStoreIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := InitItemStore(s, "u1"); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateItem(s, "u1", Item{Title: "first"}); err != nil {
		t.Fatal(err)
	}
	// A second init must not wipe existing items.
	if err := InitItemStore(s, "u1"); err != nil {
		t.Fatal(err)
	}
	items, err := ReadItems(s, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Errorf("items after re-init = %d, want 1", len(items))
	}
}
