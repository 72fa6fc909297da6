package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/learntrack/internal/domain"
	"github.com/conorfennell/learntrack/internal/seed"
	"github.com/conorfennell/learntrack/internal/session"
	"github.com/conorfennell/learntrack/internal/storage"
)

var testNow = time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC)

type failingHistory struct{}

func (failingHistory) CompletionsBetween(context.Context, time.Time, time.Time) ([]domain.CompletionLog, error) {
	return nil, errors.New("database is closed")
}

func newTestServer(t *testing.T) (*Server, *session.Controller) {
	t.Helper()
	db, err := storage.Open(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := session.NewController(
		session.NewState(seed.Items()),
		session.WithRecorder(db),
		session.WithClock(func() time.Time { return testNow }),
	)
	srv, err := NewServer(ctrl, db, nil)
	require.NoError(t, err)
	srv.now = func() time.Time { return testNow }
	return srv, ctrl
}

func do(t *testing.T, h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome(t *testing.T) {
	srv, ctrl := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	for _, item := range seed.Items() {
		assert.Contains(t, body, item.Title)
	}
	assert.Contains(t, body, `data-status="upcoming"`)
	assert.Contains(t, body, `data-status="due"`)
	assert.Contains(t, body, `data-status="overdue"`)
	assert.Contains(t, body, "0/4")
	assert.Contains(t, body, "0/28")
	assert.Contains(t, body, "English Words • Morning (8:00 AM - 10:00 AM)")
	assert.Equal(t, "home", ctrl.Snapshot().Screen.Name())
}

func TestHomeUnknownPath(t *testing.T) {
	srv, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/nope", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, srv, http.MethodPost, "/", nil).Code)
}

func TestHomeWeeklyIncludesEarlierDays(t *testing.T) {
	ctx := context.Background()
	db, err := storage.Open(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	monday := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	for _, at := range []time.Time{monday.AddDate(0, 0, -1), monday, monday.Add(30 * time.Minute)} {
		_, err := db.RecordCompletion(ctx, domain.CompletionLog{
			ItemID:      "1",
			Category:    domain.CategoryEnglishWords,
			TimeSlot:    domain.SlotMorning,
			CompletedAt: at,
		})
		require.NoError(t, err)
	}

	ctrl := session.NewController(session.NewState(seed.Items()))
	srv, err := NewServer(ctrl, db, nil)
	require.NoError(t, err)
	srv.now = func() time.Time { return testNow }

	body := do(t, srv, http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, body, "0/4")
	assert.Contains(t, body, "2/28")
}

func TestHomeHistoryFailure(t *testing.T) {
	ctrl := session.NewController(session.NewState(seed.Items()))
	srv, err := NewServer(ctrl, failingHistory{}, nil)
	require.NoError(t, err)

	rec := do(t, srv, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCompleteItem(t *testing.T) {
	srv, ctrl := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/items/2/complete", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	item, _ := ctrl.Snapshot().Item("2")
	assert.True(t, item.Completed)

	body := do(t, srv, http.MethodGet, "/", nil).Body.String()
	assert.Contains(t, body, "1/4")
	assert.Contains(t, body, "1/28")
	assert.Contains(t, body, `data-status="completed"`)
}

func TestCompleteItemFromDetail(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/items/3/complete", url.Values{"from": {"detail"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/items/3", rec.Header().Get("Location"))

	body := do(t, srv, http.MethodGet, "/items/3", nil).Body.String()
	assert.Contains(t, body, "✓ Completed")
	assert.NotContains(t, body, "Mark as Completed")
}

func TestCompleteItemErrors(t *testing.T) {
	srv, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/items/99/complete", url.Values{}).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, srv, http.MethodGet, "/items/1/complete", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodPost, "/items/1/explode", url.Values{}).Code)
}

func TestItemDetail(t *testing.T) {
	srv, ctrl := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/items/4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Poem - Nature")
	assert.Contains(t, body, "Nature Poem:")
	assert.Contains(t, body, "Dancing gently in the breeze.")
	assert.Contains(t, body, "Overdue")
	assert.Contains(t, body, "Mark as Completed")

	detail, ok := ctrl.Snapshot().Screen.(session.ItemDetailScreen)
	require.True(t, ok)
	assert.Equal(t, "4", detail.Item.ID)

	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/items/99", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, srv, http.MethodGet, "/items/", nil).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, srv, http.MethodDelete, "/items/4", nil).Code)
}

func TestProfile(t *testing.T) {
	srv, ctrl := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="8:00 PM - 10:00 PM"`)
	assert.Equal(t, "profile", ctrl.Snapshot().Screen.Name())

	rec = do(t, srv, http.MethodPost, "/profile", url.Values{
		"name":         {"Amina"},
		"daily_goal":   {"five"},
		"weekly_goal":  {"30"},
		"slot_morning": {"7:00 AM - 9:00 AM"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	state := ctrl.Snapshot()
	assert.Equal(t, domain.ChildProfile{Name: "Amina", DailyGoal: 4, WeeklyGoal: 30}, state.Profile)
	assert.Equal(t, "7:00 AM - 9:00 AM", state.Schedule[domain.SlotMorning])
	assert.Equal(t, "home", state.Screen.Name())

	assert.Contains(t, do(t, srv, http.MethodGet, "/", nil).Body.String(), "Amina")
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, srv, http.MethodPut, "/profile", nil).Code)
}

func TestPerformance(t *testing.T) {
	srv, _ := newTestServer(t)

	body := do(t, srv, http.MethodGet, "/performance", nil).Body.String()
	assert.Contains(t, body, "Very Poor")
	assert.Contains(t, body, "0% Complete")

	for _, id := range []string{"1", "2", "3"} {
		do(t, srv, http.MethodPost, "/items/"+id+"/complete", url.Values{})
	}

	rec := do(t, srv, http.MethodGet, "/performance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Good Job!")
	assert.Contains(t, body, "75% Complete")
	assert.Equal(t, 4, strings.Count(body, `class="on"`))
	assert.Contains(t, body, "Keep pushing forward!")
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestStatic(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/static/style.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
