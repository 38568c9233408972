package tutor

import (
	"context"
	"fmt"
)

// Lesson is one named, independently renderable tutorial unit. Every
// render builds a fresh session store, so there is no state carried
// between visits.
type Lesson struct {
	Name   string
	Slug   string
	Intro  string // markdown shown above the editor
	Tables []string
	HR     bool // load the HR dataset into the session store
	Editor bool // show a free try-it editor
	Task   *Task
}

// Task is a graded exercise: the learner's query output is compared
// against the reference query's output on the lesson's session store.
type Task struct {
	Title     string
	Prompt    string // markdown
	Reference string
	Ordered   bool
}

// Registry is the ordered set of lessons known to the navigation shell. It
// is built once at startup and immutable afterwards; registration order is
// presentation order.
type Registry struct {
	lessons []Lesson
	bySlug  map[string]int
}

// NewRegistry builds a registry from an explicit lesson list. Duplicate
// slugs are a programming error and rejected.
func NewRegistry(lessons ...Lesson) (*Registry, error) {
	r := &Registry{bySlug: make(map[string]int, len(lessons))}
	for _, lesson := range lessons {
		if lesson.Slug == "" {
			return nil, fmt.Errorf("lesson %q has no slug", lesson.Name)
		}
		if _, dup := r.bySlug[lesson.Slug]; dup {
			return nil, fmt.Errorf("duplicate lesson slug %q", lesson.Slug)
		}
		r.bySlug[lesson.Slug] = len(r.lessons)
		r.lessons = append(r.lessons, lesson)
	}
	return r, nil
}

// Lessons returns the registered lessons in registration order.
func (r *Registry) Lessons() []Lesson {
	return r.lessons
}

// Lookup finds a lesson by slug.
func (r *Registry) Lookup(slug string) (Lesson, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Lesson{}, false
	}
	return r.lessons[i], true
}

// First returns the first registered lesson, the landing page of the shell.
func (r *Registry) First() (Lesson, bool) {
	if len(r.lessons) == 0 {
		return Lesson{}, false
	}
	return r.lessons[0], true
}

// newStore builds the session store a lesson render runs against.
func (l Lesson) newStore(ctx context.Context, dataDir string) (*Store, error) {
	if l.HR {
		return NewHRStore(ctx, dataDir)
	}
	return NewStore(ctx)
}
