package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/pep299/learntube/internal/service"
	"github.com/pep299/learntube/internal/ui"
)

var errBadForm = errors.New("bad form value")

// SessionStore keeps presentation sessions between requests.
type SessionStore interface {
	Get(key string) (*ui.Session, error)
	Set(key string, value *ui.Session)
}

// Pages serves the server-rendered course UI. Every interaction is a form
// POST that mutates the session state and redirects back to the course.
type Pages struct {
	generator CourseGenerator
	sessions  SessionStore
	renderer  *ui.Renderer
	newID     func() string
}

func NewPages(generator CourseGenerator, sessions SessionStore, renderer *ui.Renderer) *Pages {
	return &Pages{
		generator: generator,
		sessions:  sessions,
		renderer:  renderer,
		newID:     uuid.NewString,
	}
}

// Home renders the URL entry form.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusOK, func(w http.ResponseWriter) error {
		return p.renderer.RenderHome(w, ui.HomeData{})
	})
}

// Create generates a course from the submitted URL and opens a session for it.
func (p *Pages) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	rawURL := r.PostFormValue("url")

	result, err := p.generator.Generate(r.Context(), rawURL)
	if err != nil {
		data := ui.NewFailureHome(rawURL, service.Message(err))
		p.render(w, r, service.StatusCode(err), func(w http.ResponseWriter) error {
			return p.renderer.RenderHome(w, data)
		})
		return
	}

	id := p.newID()
	p.sessions.Set(id, ui.NewSession(id, result.Course, result.VideoID, result.VideoThumbnail))
	http.Redirect(w, r, coursePath(id), http.StatusSeeOther)
}

// Show renders the active view of a course.
func (p *Pages) Show(w http.ResponseWriter, r *http.Request) {
	sess, ok := p.session(w, r)
	if !ok {
		return
	}
	page := sess.Page()
	p.render(w, r, http.StatusOK, func(w http.ResponseWriter) error {
		return p.renderer.RenderCourse(w, page)
	})
}

func (p *Pages) SelectTab(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		tab, ok := ui.ParseTab(r.PostFormValue("tab"))
		if !ok {
			return "", errBadForm
		}
		st.SetTab(tab)
		return "", nil
	})
}

func (p *Pages) TogglePoint(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		ci, pi, err := pointVars(r, sess)
		if err != nil {
			return "", err
		}
		st.TogglePoint(ci, pi)
		return "", nil
	})
}

// LearnPoint focuses a key point and jumps to its module in the learn view.
func (p *Pages) LearnPoint(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		ci, pi, err := pointVars(r, sess)
		if err != nil {
			return "", err
		}
		st.LearnPoint(ci, pi)
		return fmt.Sprintf("#learning-module-%d", ci), nil
	})
}

func (p *Pages) ToggleConcept(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		index, err := indexVar(r, "index", len(sess.Course.KeyConcepts))
		if err != nil {
			return "", err
		}
		st.ToggleConcept(index)
		return "", nil
	})
}

func (p *Pages) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		option, err := strconv.Atoi(r.PostFormValue("option"))
		if err != nil || !st.Quiz().Select(option) {
			return "", errBadForm
		}
		return "", nil
	})
}

func (p *Pages) NextQuestion(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		st.Quiz().Next()
		return "", nil
	})
}

func (p *Pages) PrevQuestion(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		st.Quiz().Prev()
		return "", nil
	})
}

func (p *Pages) ResetQuiz(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		st.Quiz().Reset()
		return "", nil
	})
}

// CopyCommand acknowledges a command the browser copied to the clipboard.
func (p *Pages) CopyCommand(w http.ResponseWriter, r *http.Request) {
	p.act(w, r, func(sess *ui.Session, st *ui.State) (string, error) {
		command := r.PostFormValue("command")
		if command == "" {
			return "", errBadForm
		}
		st.Copied().Acknowledge(command)
		return "", nil
	})
}

// NotFound renders the 404 page for unknown routes and sessions.
func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusNotFound, func(w http.ResponseWriter) error {
		return p.renderer.RenderNotFound(w)
	})
}

func (p *Pages) act(w http.ResponseWriter, r *http.Request, fn func(sess *ui.Session, st *ui.State) (string, error)) {
	sess, ok := p.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var anchor string
	var err error
	sess.Update(func(st *ui.State) {
		anchor, err = fn(sess, st)
	})
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, coursePath(sess.ID)+anchor, http.StatusSeeOther)
}

func (p *Pages) session(w http.ResponseWriter, r *http.Request) (*ui.Session, bool) {
	sess, err := p.sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		p.NotFound(w, r)
		return nil, false
	}
	return sess, true
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, fn func(w http.ResponseWriter) error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := fn(w); err != nil {
		logger := log.New(funcframework.LogWriter(r.Context()), "", 0)
		logger.Printf("Page render failed path=%s error=%v", r.URL.Path, err)
	}
}

func coursePath(id string) string {
	return "/courses/" + id
}

func pointVars(r *http.Request, sess *ui.Session) (int, int, error) {
	ci, err := indexVar(r, "chapter", len(sess.Course.Chapters))
	if err != nil {
		return 0, 0, err
	}
	pi, err := indexVar(r, "point", len(sess.Course.Chapters[ci].KeyPoints))
	if err != nil {
		return 0, 0, err
	}
	return ci, pi, nil
}

func indexVar(r *http.Request, name string, n int) (int, error) {
	i, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || i < 0 || i >= n {
		return 0, errBadForm
	}
	return i, nil
}
