package service

import (
	"context"
	"errors"
	"testing"
)

func TestCreateClass(t *testing.T) {
	svc := NewClassService(&fakeClassStore{})

	class, err := svc.Create(context.Background(), 8, "A")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if class.Standard != 8 || class.Section != "A" {
		t.Errorf("class = %d%s, want 8A", class.Standard, class.Section)
	}
}

func TestCreateClassDuplicatePair(t *testing.T) {
	store := &fakeClassStore{}
	svc := NewClassService(store)

	if _, err := svc.Create(context.Background(), 8, "A"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), 8, "A"); !errors.Is(err, ErrConflict) {
		t.Errorf("Create(duplicate pair) = %v, want ErrConflict", err)
	}

	// Sharing only one half of the pair is fine.
	if _, err := svc.Create(context.Background(), 8, "B"); err != nil {
		t.Errorf("Create(8B) = %v", err)
	}
	if _, err := svc.Create(context.Background(), 9, "A"); err != nil {
		t.Errorf("Create(9A) = %v", err)
	}
	if len(store.classes) != 3 {
		t.Errorf("stored %d classes, want 3", len(store.classes))
	}
}

func TestListClasses(t *testing.T) {
	svc := NewClassService(&fakeClassStore{})

	for _, section := range []string{"A", "B", "C"} {
		if _, err := svc.Create(context.Background(), 6, section); err != nil {
			t.Fatalf("Create(6%s): %v", section, err)
		}
	}

	classes, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(classes) != 3 {
		t.Errorf("listed %d classes, want 3", len(classes))
	}
}

func TestDeleteClass(t *testing.T) {
	svc := NewClassService(&fakeClassStore{})

	class, err := svc.Create(context.Background(), 8, "A")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), class.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), class.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) = %v, want ErrNotFound", err)
	}
}
