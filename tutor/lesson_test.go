package tutor

import "testing"

func TestRegistryOrderAndLookup(t *testing.T) {
	registry, err := NewRegistry(
		Lesson{Name: "First", Slug: "first"},
		Lesson{Name: "Second", Slug: "second"},
		Lesson{Name: "Third", Slug: "third"},
	)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	lessons := registry.Lessons()
	if len(lessons) != 3 {
		t.Fatalf("expected 3 lessons, got %d", len(lessons))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if lessons[i].Name != want {
			t.Errorf("lesson %d = %q, want %q (registration order)", i, lessons[i].Name, want)
		}
	}

	if lesson, ok := registry.Lookup("second"); !ok || lesson.Name != "Second" {
		t.Errorf("Lookup(second) = %v, %v", lesson.Name, ok)
	}
	if _, ok := registry.Lookup("missing"); ok {
		t.Error("Lookup of an unregistered slug should miss")
	}

	first, ok := registry.First()
	if !ok || first.Slug != "first" {
		t.Errorf("First() = %v, %v", first.Slug, ok)
	}
}

func TestRegistryRejectsDuplicateSlugs(t *testing.T) {
	_, err := NewRegistry(
		Lesson{Name: "A", Slug: "same"},
		Lesson{Name: "B", Slug: "same"},
	)
	if err == nil {
		t.Error("expected an error for duplicate slugs")
	}
}

func TestRegistryRejectsMissingSlug(t *testing.T) {
	_, err := NewRegistry(Lesson{Name: "No Slug"})
	if err == nil {
		t.Error("expected an error for a lesson without a slug")
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry failed: %v", err)
	}

	first, ok := registry.First()
	if !ok || first.Name != "Welcome" {
		t.Errorf("first lesson = %q, want Welcome", first.Name)
	}

	lesson, ok := registry.Lookup("lesson-1")
	if !ok {
		t.Fatal("lesson-1 should be registered")
	}
	if lesson.Task == nil || lesson.Task.Reference != "SELECT * FROM Employees" {
		t.Error("lesson-1 should carry the SELECT task")
	}
	if !lesson.Task.Ordered {
		t.Error("lesson-1 grades order-sensitively")
	}

	lesson, ok = registry.Lookup("lesson-2")
	if !ok {
		t.Fatal("lesson-2 should be registered")
	}
	if lesson.Task == nil || lesson.Task.Ordered {
		t.Error("lesson-2 grades order-insensitively")
	}
}
