package web

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vogue360/studio/internal/auth"
	"github.com/vogue360/studio/internal/clock"
	"github.com/vogue360/studio/internal/console"
	"github.com/vogue360/studio/internal/imaging"
	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/store"
)

const (
	testEmail    = "admin@vogue360.com"
	testPassword = "admin123"
)

type fixture struct {
	router   chi.Router
	bookings *store.Bookings
	catalog  *store.Catalog
	consoles *console.Registry
	clock    *clock.Manual
}

func newFixture(t *testing.T, bookingDelay time.Duration) *fixture {
	t.Helper()
	c := clock.NewManual(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))

	manager, err := auth.NewManager(auth.Config{
		Email:    testEmail,
		Password: testPassword,
		Secret:   "test-secret",
		Cost:     bcrypt.MinCost,
		Now:      c.Now,
	})
	require.NoError(t, err)

	f := &fixture{bookings: store.NewBookings(), catalog: store.NewCatalog(), clock: c}
	f.consoles = console.NewRegistry(console.Deps{
		Bookings:        f.bookings,
		Catalog:         f.catalog,
		NotificationTTL: 3 * time.Second,
		Now:             c.Now,
		Logger:          quiet,
	})

	f.router, err = NewRouter(Deps{
		Bookings:     f.bookings,
		Catalog:      f.catalog,
		Images:       store.NewImages(),
		Auth:         manager,
		Consoles:     f.consoles,
		Imaging:      imaging.Processor{MaxDimension: 64},
		BookingDelay: bookingDelay,
		Now:          c.Now,
		Logger:       quiet,
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	return f.do(httptest.NewRequest(http.MethodGet, path, nil), cookie)
}

func (f *fixture) post(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return f.do(req, cookie)
}

func (f *fixture) login(t *testing.T) *http.Cookie {
	t.Helper()
	rec := f.post("/admin/login", url.Values{"email": {testEmail}, "password": {testPassword}}, nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestPublicPages(t *testing.T) {
	f := newFixture(t, 0)

	rec := f.get("/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Evening Elegance")

	rec = f.get("/gallery?category=tops&q=silk", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Silk Blouse")
	assert.NotContains(t, rec.Body.String(), "Slim Fit Chinos")

	rec = f.get("/booking", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "2024-06-02", "first bookable day is tomorrow")
	assert.Contains(t, body, "2024-06-15")
	assert.NotContains(t, body, "2024-06-16")
	assert.Contains(t, body, "5:00 PM")
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	f := newFixture(t, 0)

	rec := f.get("/no-such-page", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

func TestBookingSubmitFilesPendingBooking(t *testing.T) {
	f := newFixture(t, 0)
	before := f.bookings.Len()

	rec := f.post("/booking", url.Values{
		"name":  {"Ava Chen"},
		"email": {"ava@example.com"},
		"phone": {"(555) 000-1111"},
		"date":  {"2024-06-03"},
		"time":  {"10:00 AM"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking Successful!")
	require.Equal(t, before+1, f.bookings.Len())

	list := f.bookings.List()
	filed := list[len(list)-1]
	assert.Equal(t, "Ava Chen", filed.Name)
	assert.Equal(t, model.BookingPending, filed.Status)
	assert.Equal(t, f.clock.Now(), filed.CreatedAt)
}

func TestBookingSubmitRejectsMissingFields(t *testing.T) {
	f := newFixture(t, 0)
	before := f.bookings.Len()

	rec := f.post("/booking", url.Values{"name": {"Ava Chen"}, "email": {"ava@example.com"}}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill in all required fields")
	assert.Contains(t, rec.Body.String(), "ava@example.com", "the form keeps what was typed")
	assert.Equal(t, before, f.bookings.Len())
}

func TestAbandonedBookingFilesNothing(t *testing.T) {
	f := newFixture(t, time.Hour)
	before := f.bookings.Len()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	form := url.Values{
		"name": {"Ava Chen"}, "email": {"ava@example.com"}, "phone": {"1"},
		"date": {"2024-06-03"}, "time": {"10:00 AM"},
	}
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(form.Encode())).WithContext(ctx)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	f.do(req, nil)

	assert.Equal(t, before, f.bookings.Len())
}

func TestAdminRequiresSession(t *testing.T) {
	f := newFixture(t, 0)

	for _, path := range []string{"/admin/dashboard", "/admin/dashboard/bookings", "/admin/dashboard/gallery"} {
		rec := f.get(path, nil)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, "/admin", rec.Header().Get("Location"), path)
	}

	rec := f.get("/admin/dashboard", &http.Cookie{Name: auth.CookieName, Value: "forged"})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestLoginFailureRendersInline(t *testing.T) {
	f := newFixture(t, 0)

	rec := f.post("/admin/login", url.Values{"email": {testEmail}, "password": {"nope"}}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
	assert.Empty(t, rec.Result().Cookies())
}

func TestLoginPageRedirectsWhenLoggedIn(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)

	rec := f.get("/admin", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))
}

func TestDashboardOverview(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)

	rec := f.get("/admin/dashboard", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Dashboard Overview")
	assert.Contains(t, body, "Isabella Garcia", "newest booking is listed")
	assert.NotContains(t, body, "Emma Wilson", "only the three newest bookings are listed")
}

func TestBookingStatusFlow(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)

	rec := f.get("/admin/dashboard/bookings/3", cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = f.post("/admin/dashboard/bookings/3/status", url.Values{"status": {"confirmed"}}, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	b, ok := f.bookings.Get(3)
	require.True(t, ok)
	assert.Equal(t, model.BookingConfirmed, b.Status)

	rec = f.get("/admin/dashboard/bookings", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Booking marked as confirmed")
	assert.Contains(t, body, "Booking Details")
	assert.Contains(t, body, "sophia@example.com")

	// The notification expires on its own.
	f.clock.Advance(3 * time.Second)
	rec = f.get("/admin/dashboard/bookings", cookie)
	assert.NotContains(t, rec.Body.String(), "Booking marked as confirmed")
}

func TestBookingFilterPersistsInSession(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)

	rec := f.get("/admin/dashboard/bookings?status=pending&q=", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sophia Lee")
	assert.NotContains(t, rec.Body.String(), "Emma Wilson")

	rec = f.get("/admin/dashboard/bookings", cookie)
	assert.NotContains(t, rec.Body.String(), "Emma Wilson")
	assert.Contains(t, rec.Body.String(), "Showing 2 of 5 bookings")
}

func TestDeleteSelectedBookingClosesDetail(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)

	f.get("/admin/dashboard/bookings/2", cookie)
	f.post("/admin/dashboard/bookings/2/delete", nil, cookie)

	_, ok := f.bookings.Get(2)
	assert.False(t, ok)

	rec := f.get("/admin/dashboard/bookings", cookie)
	body := rec.Body.String()
	assert.Contains(t, body, "Booking deleted successfully")
	assert.NotContains(t, body, "Booking Details")
}

func TestCatalogEditorValidationKeepsEditorOpen(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)
	before := f.catalog.Len()

	f.post("/admin/dashboard/gallery/new", nil, cookie)
	f.post("/admin/dashboard/gallery/editor", url.Values{"name": {"Wrap Coat"}, "category": {"outerwear"}}, cookie)

	assert.Equal(t, before, f.catalog.Len())
	rec := f.get("/admin/dashboard/gallery", cookie)
	body := rec.Body.String()
	assert.Contains(t, body, "Please fill in all fields")
	assert.Contains(t, body, "Add New Item", "editor is still open")
	assert.Contains(t, body, "Wrap Coat", "draft is kept")
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for x := 0; x < 200; x++ {
		for y := 0; y < 100; y++ {
			img.Set(x, y, color.RGBA{200, 20, 60, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCatalogEditorUploadsImage(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)

	f.post("/admin/dashboard/gallery/new", nil, cookie)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("name", "Wrap Coat")
	mw.WriteField("category", "outerwear")
	mw.WriteField("price", "249.5")
	fw, err := mw.CreateFormFile("image_file", "coat.png")
	require.NoError(t, err)
	fw.Write(testPNG(t))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/dashboard/gallery/editor", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := f.do(req, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	list := f.catalog.List()
	added := list[len(list)-1]
	require.Equal(t, "Wrap Coat", added.Name)
	assert.Equal(t, 249.5, added.Price)
	require.True(t, strings.HasPrefix(added.Image, "/images/"), added.Image)

	rec = f.get(added.Image, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	img, _, err := image.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx(), "upload is scaled to the max dimension")

	rec = f.get("/admin/dashboard/gallery", cookie)
	assert.Contains(t, rec.Body.String(), "Item added successfully")
}

func TestCatalogEditorRejectsBadUpload(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)
	before := f.catalog.Len()

	f.post("/admin/dashboard/gallery/new", nil, cookie)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("name", "Wrap Coat")
	fw, err := mw.CreateFormFile("image_file", "coat.txt")
	require.NoError(t, err)
	fw.Write([]byte("not an image"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/dashboard/gallery/editor", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	f.do(req, cookie)

	assert.Equal(t, before, f.catalog.Len())
	rec := f.get("/admin/dashboard/gallery", cookie)
	assert.Contains(t, rec.Body.String(), "Please upload a JPEG or PNG image")
	assert.Contains(t, rec.Body.String(), "Add New Item", "editor is still open")
}

func TestSessionsHaveSeparateScreens(t *testing.T) {
	f := newFixture(t, 0)
	first := f.login(t)
	second := f.login(t)

	f.post("/admin/dashboard/gallery/new", nil, first)

	assert.Contains(t, f.get("/admin/dashboard/gallery", first).Body.String(), "Add New Item")
	assert.NotContains(t, f.get("/admin/dashboard/gallery", second).Body.String(), "Add New Item")
}

func TestLogoutEndsSession(t *testing.T) {
	f := newFixture(t, 0)
	cookie := f.login(t)
	require.Equal(t, 1, f.consoles.Len())

	rec := f.post("/admin/logout", nil, cookie)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.Equal(t, 0, f.consoles.Len())

	rec = f.get("/admin/dashboard", cookie)
	assert.Equal(t, http.StatusSeeOther, rec.Code, "revoked token no longer authenticates")
}

func TestPlaceholderImage(t *testing.T) {
	f := newFixture(t, 0)

	rec := f.get("/placeholder.jpg", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))

	rec = f.get("/images/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSlogLoggerLogsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := NewSlogLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id"))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/gallery", entry["path"])
	require.EqualValues(t, http.StatusTeapot, entry["status"])
	require.Equal(t, "test-req-id", entry["request_id"])
}
