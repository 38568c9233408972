package tutor

import (
	"bytes"
	"errors"
	"html/template"
	"log"
	"net/http"
)

// Banner is an inline status message: success, warning, or error.
type Banner struct {
	Kind string
	Text string
}

type navItem struct {
	Name   string
	Slug   string
	Active bool
}

type tableView struct {
	Name string
	Snap *Snapshot
}

// editorView is one editor form plus the outcome of its last submission.
// The submitted text travels in the form itself and is echoed back here,
// so no per-key server-side editor state exists.
type editorView struct {
	Field   string
	Label   string
	Text    string
	Banners []Banner
	Result  *Snapshot
}

type taskView struct {
	Title  string
	Prompt template.HTML
	Editor *editorView
}

type lessonPage struct {
	Title  string
	Nav    []navItem
	Intro  template.HTML
	Tables []tableView
	Editor *editorView
	Task   *taskView
}

const (
	editorFree = "free"
	editorTask = "task"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	first, ok := s.registry.First()
	if !ok {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/lessons/"+first.Slug, http.StatusFound)
}

// handleLesson renders a lesson page and, on POST, runs the submitted
// editor text against a fresh session store for that lesson.
func (s *Server) handleLesson(w http.ResponseWriter, r *http.Request) {
	lesson, ok := s.registry.Lookup(r.PathValue("slug"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	store, err := lesson.newStore(ctx, s.dataDir)
	if err != nil {
		log.Printf("lesson %q: session store: %v", lesson.Name, err)
		http.Error(w, "failed to initialize lesson data", http.StatusInternalServerError)
		return
	}
	defer store.Close()

	page, err := s.newLessonPage(r, lesson, store)
	if err != nil {
		log.Printf("lesson %q: %v", lesson.Name, err)
		http.Error(w, "failed to render lesson", http.StatusInternalServerError)
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		text := r.PostFormValue("sql")
		switch r.PostFormValue("editor") {
		case editorFree:
			if lesson.Editor {
				page.Editor = s.runEditor(r, store, editorFree, text)
			}
		case editorTask:
			if lesson.Task != nil {
				ev := s.runEditor(r, store, editorTask, text)
				ev.Banners = append(ev.Banners, s.gradeTask(r, store, lesson.Task, text)...)
				page.Task.Editor = ev
			}
		}
	}

	s.renderPage(w, page)
}

// newLessonPage builds the static parts of a lesson page: navigation,
// instructional text, displayed tables, and empty editors.
func (s *Server) newLessonPage(r *http.Request, lesson Lesson, store *Store) (*lessonPage, error) {
	intro, err := renderMarkdown(lesson.Intro)
	if err != nil {
		return nil, err
	}

	page := &lessonPage{Title: lesson.Name, Intro: intro}
	for _, l := range s.registry.Lessons() {
		page.Nav = append(page.Nav, navItem{Name: l.Name, Slug: l.Slug, Active: l.Slug == lesson.Slug})
	}

	for _, table := range lesson.Tables {
		snap, err := store.Snapshot(r.Context(), table)
		if err != nil {
			return nil, err
		}
		page.Tables = append(page.Tables, tableView{Name: table, Snap: snap})
	}

	if lesson.Editor {
		page.Editor = &editorView{Field: editorFree, Label: "Run Query"}
	}
	if lesson.Task != nil {
		prompt, err := renderMarkdown(lesson.Task.Prompt)
		if err != nil {
			return nil, err
		}
		page.Task = &taskView{
			Title:  lesson.Task.Title,
			Prompt: prompt,
			Editor: &editorView{Field: editorTask, Label: "Run Task Query"},
		}
	}
	return page, nil
}

// runEditor executes one editor submission and folds the outcome into
// banners plus an optional result table. All failure paths end here; the
// handler never sees an execution error.
func (s *Server) runEditor(r *http.Request, store *Store, field, text string) *editorView {
	label := "Run Query"
	if field == editorTask {
		label = "Run Task Query"
	}
	ev := &editorView{Field: field, Label: label, Text: text}

	snap, err := Run(r.Context(), store, text)
	switch {
	case errors.Is(err, ErrEmptyQuery):
		ev.Banners = append(ev.Banners, Banner{"warning", "Please enter a SQL query to execute."})
	case err != nil:
		ev.Banners = append(ev.Banners, Banner{"error", "An error occurred: " + err.Error()})
	default:
		ev.Banners = append(ev.Banners, Banner{"success", "Query executed successfully!"})
		ev.Result = snap
		if report := Inspect(text); report.Statements > 1 {
			ev.Banners = append(ev.Banners, Banner{"warning", "Your submission contains multiple statements; the lessons expect one at a time."})
		} else if report.Mutates {
			ev.Banners = append(ev.Banners, Banner{"warning", "This lesson expects a read-only SELECT query."})
		}
	}
	return ev
}

// gradeTask compares the learner's query against the task's reference
// query and returns the verdict banners.
func (s *Server) gradeTask(r *http.Request, store *Store, task *Task, text string) []Banner {
	var banners []Banner
	correct, err := Validate(r.Context(), store, text, task.Reference, task.Ordered)
	if err != nil {
		banners = append(banners, Banner{"error", "Error executing queries: " + err.Error()})
	}
	if correct {
		banners = append(banners, Banner{"success", "Correct! You have solved this task."})
	} else {
		banners = append(banners, Banner{"error", "Incorrect answer. Please try again."})
	}
	return banners
}

// renderPage writes the page template, buffering so a template fault turns
// into a 500 instead of a half-written response.
func (s *Server) renderPage(w http.ResponseWriter, page *lessonPage) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "lesson.html", page); err != nil {
		log.Printf("render %q: %v", page.Title, err)
		http.Error(w, "failed to render lesson", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
