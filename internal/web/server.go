// Package web serves the learning tracker's screens as server-rendered HTML.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/conorfennell/learntrack/internal/domain"
	"github.com/conorfennell/learntrack/internal/progress"
	"github.com/conorfennell/learntrack/internal/seed"
	"github.com/conorfennell/learntrack/internal/session"
)

//go:embed all:static
var staticFiles embed.FS

//go:embed all:templates
var templateFiles embed.FS

// CompletionHistory lists logged completions in a half-open time range.
type CompletionHistory interface {
	CompletionsBetween(ctx context.Context, from, to time.Time) ([]domain.CompletionLog, error)
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	ctrl      *session.Controller
	history   CompletionHistory
	logger    *slog.Logger
	now       func() time.Time
	router    *http.ServeMux
	templates *template.Template
}

// NewServer creates and configures a new server.
func NewServer(ctrl *session.Controller, history CompletionHistory, logger *slog.Logger) (*Server, error) {
	tpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		ctrl:      ctrl,
		history:   history,
		logger:    logger,
		now:       time.Now,
		router:    http.NewServeMux(),
		templates: tpl,
	}
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// routes sets up the routing for the server.
func (s *Server) routes() error {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create sub-filesystem for static assets: %w", err)
	}
	s.router.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.router.HandleFunc("/", s.handleHome())
	s.router.HandleFunc("/items/", s.handleItems())
	s.router.HandleFunc("/profile", s.handleProfile())
	s.router.HandleFunc("/performance", s.handlePerformance())
	s.router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return nil
}

type itemView struct {
	Item      domain.LearningItem
	Status    domain.Status
	Color     domain.Color
	SlotLabel string
}

type progressView struct {
	Done, Total int
	Fraction    float64
}

func (s *Server) itemViews(state session.State) []itemView {
	views := make([]itemView, 0, len(state.Items))
	for _, item := range state.Items {
		status := progress.DeriveStatus(item)
		views = append(views, itemView{
			Item:      item,
			Status:    status,
			Color:     progress.StatusColor(status),
			SlotLabel: state.Schedule[item.TimeSlot],
		})
	}
	return views
}

// handleHome renders the item list with daily and weekly progress.
func (s *Server) handleHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		state := s.ctrl.Navigate(session.HomeScreen{})
		now := s.now()

		today := progress.Daily(progress.StartOfDay(now), state.Items)
		weekStart := progress.WeekStart(now)
		entries, err := s.history.CompletionsBetween(r.Context(), weekStart, weekStart.AddDate(0, 0, progress.DaysPerWeek))
		if err != nil {
			s.logger.Error("Error loading weekly completions", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		week := progress.WeekFromLog(weekStart, state.Items, entries)

		s.render(w, "home", map[string]interface{}{
			"Profile": state.Profile,
			"Items":   s.itemViews(state),
			"Daily": progressView{
				Done:     today.CompletedItems,
				Total:    today.TotalItems,
				Fraction: progress.Fraction(today.CompletedItems, today.TotalItems),
			},
			"Weekly": progressView{
				Done:     week.Completed(),
				Total:    week.Total(),
				Fraction: progress.Fraction(week.Completed(), week.Total()),
			},
		})
	}
}

// handleItems serves /items/{id} and /items/{id}/complete.
func (s *Server) handleItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/items/")
		id, action, _ := strings.Cut(rest, "/")
		if id == "" {
			http.NotFound(w, r)
			return
		}

		switch action {
		case "":
			if r.Method != http.MethodGet {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
				return
			}
			s.handleGetItem(w, r, id)
		case "complete":
			if r.Method != http.MethodPost {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
				return
			}
			s.handleCompleteItem(w, r, id)
		default:
			http.NotFound(w, r)
		}
	}
}

// handleGetItem renders the detail screen of one item.
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request, id string) {
	state, err := s.ctrl.OpenItem(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	detail := state.Screen.(session.ItemDetailScreen)
	status := progress.DeriveStatus(detail.Item)

	s.render(w, "item", map[string]interface{}{
		"Item":      detail.Item,
		"Status":    status,
		"Color":     progress.StatusColor(status),
		"SlotLabel": state.Schedule[detail.Item.TimeSlot],
		"Content":   seed.ContentFor(detail.Item.Category),
	})
}

// handleCompleteItem marks an item completed and redirects back.
func (s *Server) handleCompleteItem(w http.ResponseWriter, r *http.Request, id string) {
	_, err := s.ctrl.MarkCompleted(r.Context(), id)
	if errors.Is(err, session.ErrItemNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		// The item is completed in the session even if the log write failed.
		s.logger.Error("Error recording completion", "id", id, "error", err)
	}

	target := "/"
	if r.FormValue("from") == "detail" {
		target = "/items/" + id
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// handleProfile handles both GET and POST for the profile page.
func (s *Server) handleProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			state := s.ctrl.Navigate(session.ProfileScreen{})
			s.render(w, "profile", map[string]interface{}{
				"Profile":  state.Profile,
				"Schedule": scheduleRows(state.Schedule),
			})
		case http.MethodPost:
			s.handlePostProfile(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

type scheduleRow struct {
	Slot  domain.TimeSlot
	Label string
}

func scheduleRows(schedule domain.Schedule) []scheduleRow {
	rows := make([]scheduleRow, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		rows = append(rows, scheduleRow{Slot: slot, Label: schedule[slot]})
	}
	return rows
}

// handlePostProfile saves the profile form and returns to the home screen.
func (s *Server) handlePostProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := session.ProfileForm{
		Name:       r.PostFormValue("name"),
		DailyGoal:  r.PostFormValue("daily_goal"),
		WeeklyGoal: r.PostFormValue("weekly_goal"),
		Schedule:   make(map[domain.TimeSlot]string),
	}
	for _, slot := range domain.TimeSlots {
		if v, ok := r.PostForm["slot_"+slot.String()]; ok && len(v) > 0 {
			form.Schedule[slot] = v[0]
		}
	}

	s.ctrl.SaveProfile(form)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handlePerformance renders today's star rating.
func (s *Server) handlePerformance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		state := s.ctrl.Navigate(session.PerformanceScreen{})
		rating := state.Performance()

		s.render(w, "performance", map[string]interface{}{
			"Rating":        rating,
			"Color":         progress.ColorFor(rating.Stars),
			"Encouragement": progress.EncouragementFor(rating.Stars),
		})
	}
}

// render executes a template into a buffer and writes it only on success.
func (s *Server) render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("Error rendering template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
