package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sessionRepo "slotbook/database/repository/session"
	timeslotRepo "slotbook/database/repository/timeslot"
	userRepo "slotbook/database/repository/user"
	"slotbook/middleware"
	"slotbook/models"
	"slotbook/services/booking"
	"slotbook/services/user"
	"slotbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetLogger(zap.NewNop())
}

func newUserService() *user.DefaultUserService {
	return &user.DefaultUserService{
		Repo:           userRepo.NewMemoryUserRepo(),
		Sessions:       sessionRepo.NewMemorySessionRepo(),
		TokenTTL:       24 * time.Hour,
		AdminUsernames: []string{"admin"},
		BcryptCost:     bcrypt.MinCost,
	}
}

func doJSON(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func newUserRouter(svc user.UserService) *gin.Engine {
	h := NewUserHandler(svc)
	r := gin.New()
	r.POST("/register", h.RegisterHandler)
	r.POST("/login", h.LoginHandler)
	r.POST("/verify-token", h.VerifyTokenHandler)
	return r
}

func TestRegisterHandler(t *testing.T) {
	r := newUserRouter(newUserService())

	w := doJSON(r, http.MethodPost, "/register", `{"username":"alice","password":"pw1"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"success": true, "message": "Registration successful"}, decode(t, w))

	w = doJSON(r, http.MethodPost, "/register", `{"username":"alice","password":"pw2"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already exists", decode(t, w)["message"])

	w = doJSON(r, http.MethodPost, "/register", `{"username":"bob"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username and password are required", decode(t, w)["message"])

	w = doJSON(r, http.MethodPost, "/register", `{not json`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestLoginAndVerifyTokenHandlers(t *testing.T) {
	svc := newUserService()
	require.NoError(t, svc.Register(context.Background(), "alice", "pw1"))
	r := newUserRouter(svc)

	w := doJSON(r, http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", decode(t, w)["message"])

	w = doJSON(r, http.MethodPost, "/login", `{"username":"","password":""}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/login", `{"username":"alice","password":"pw1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "alice", body["username"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(r, http.MethodPost, "/verify-token", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"valid": true, "username": "alice"}, decode(t, w))

	w = doJSON(r, http.MethodPost, "/verify-token", "", "bogus")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"valid": false}, decode(t, w))

	w = doJSON(r, http.MethodPost, "/verify-token", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"valid": false}, decode(t, w))
}

type fakeBookingService struct {
	slots []models.Slot
	err   error

	gotActor models.Principal
	gotTime  string
	gotName  string
}

func (f *fakeBookingService) ListSlots(context.Context) ([]models.Slot, error) {
	return f.slots, f.err
}

func (f *fakeBookingService) Book(_ context.Context, actor models.Principal, time, name string) (models.Slot, error) {
	f.gotActor, f.gotTime, f.gotName = actor, time, name
	return models.Slot{}, f.err
}

func (f *fakeBookingService) Cancel(_ context.Context, actor models.Principal, time string) (models.Slot, error) {
	f.gotActor, f.gotTime = actor, time
	return models.Slot{}, f.err
}

func newBookingRouter(svc booking.BookingService, actor *models.Principal) *gin.Engine {
	h := NewBookingHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			c.Set(middleware.PrincipalContextKey, *actor)
		}
		c.Next()
	})
	r.GET("/slots", h.GetSlotsHandler)
	r.POST("/book", h.BookSlotHandler)
	r.POST("/cancel", h.CancelSlotHandler)
	return r
}

func TestGetSlotsHandler(t *testing.T) {
	svc := &fakeBookingService{slots: []models.Slot{
		{Time: "10:00 AM", Booked: true, Name: "Alice", BookedBy: "alice"},
		{Time: "11:00 AM"},
	}}
	r := newBookingRouter(svc, &models.Principal{Username: "alice"})

	w := doJSON(r, http.MethodGet, "/slots", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Slot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, svc.slots, got)
	assert.Contains(t, w.Body.String(), `"bookedBy":"alice"`)
}

func TestBookSlotHandler(t *testing.T) {
	alice := models.Principal{Username: "alice", Role: models.RoleUser}

	t.Run("success passes caller through", func(t *testing.T) {
		svc := &fakeBookingService{}
		r := newBookingRouter(svc, &alice)

		w := doJSON(r, http.MethodPost, "/book", `{"name":"Alice","time":"10:00 AM"}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"success": true, "message": "Slot booked successfully."}, decode(t, w))
		assert.Equal(t, alice, svc.gotActor)
		assert.Equal(t, "10:00 AM", svc.gotTime)
		assert.Equal(t, "Alice", svc.gotName)
	})

	t.Run("no principal", func(t *testing.T) {
		r := newBookingRouter(&fakeBookingService{}, nil)
		w := doJSON(r, http.MethodPost, "/book", `{"name":"Alice","time":"10:00 AM"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		r := newBookingRouter(&fakeBookingService{}, &alice)
		w := doJSON(r, http.MethodPost, "/book", `[`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", decode(t, w)["message"])
	})
}

func TestBookingErrorMapping(t *testing.T) {
	alice := models.Principal{Username: "alice", Role: models.RoleUser}

	tests := []struct {
		name    string
		path    string
		body    string
		err     error
		status  int
		message string
	}{
		{"book missing fields", "/book", `{}`, booking.ErrMissingFields, http.StatusBadRequest, "Name and time are required."},
		{"book unknown slot", "/book", `{"name":"A","time":"x"}`, booking.ErrSlotNotFound, http.StatusNotFound, "Slot not found."},
		{"book taken", "/book", `{"name":"A","time":"10:00 AM"}`, booking.ErrSlotAlreadyBooked, http.StatusBadRequest, "Slot already booked."},
		{"book store failure", "/book", `{"name":"A","time":"10:00 AM"}`, errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
		{"cancel missing time", "/cancel", `{}`, booking.ErrMissingTime, http.StatusBadRequest, "Time is required."},
		{"cancel unknown slot", "/cancel", `{"time":"x"}`, booking.ErrSlotNotFound, http.StatusNotFound, "Slot not found."},
		{"cancel open slot", "/cancel", `{"time":"10:00 AM"}`, booking.ErrSlotNotBooked, http.StatusBadRequest, "Slot is not booked."},
		{"cancel not owner", "/cancel", `{"time":"10:00 AM"}`, booking.ErrNotSlotOwner, http.StatusForbidden, "You can only cancel your own bookings."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newBookingRouter(&fakeBookingService{err: tt.err}, &alice)
			w := doJSON(r, http.MethodPost, tt.path, tt.body, "")

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["message"])
		})
	}
}

func TestCancelSlotHandler_Success(t *testing.T) {
	admin := models.Principal{Username: "admin", Role: models.RoleAdmin}
	svc := &fakeBookingService{}
	r := newBookingRouter(svc, &admin)

	w := doJSON(r, http.MethodPost, "/cancel", `{"time":"10:00 AM"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"success": true, "message": "Booking cancelled."}, decode(t, w))
	assert.Equal(t, admin, svc.gotActor)
}

func TestEmptyBodyIsValidatedAsEmptyObject(t *testing.T) {
	alice := models.Principal{Username: "alice", Role: models.RoleUser}
	bookingRouter := newBookingRouter(&booking.DefaultBookingService{
		Repo: timeslotRepo.NewMemoryTimeSlotRepo(models.DefaultSlotTimes),
	}, &alice)
	userRouter := newUserRouter(newUserService())

	tests := []struct {
		name    string
		router  http.Handler
		path    string
		message string
	}{
		{"register", userRouter, "/register", "Username and password are required"},
		{"login", userRouter, "/login", "Username and password are required"},
		{"book", bookingRouter, "/book", "Name and time are required."},
		{"cancel", bookingRouter, "/cancel", "Time is required."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(tt.router, http.MethodPost, tt.path, "", "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.message, decode(t, w)["message"])
		})
	}
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealthCheckHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := NewHealthHandler(utils.NewHealthMonitor("memory", stubPinger{}))
		r := gin.New()
		r.GET("/health", h.HealthCheckHandler)

		w := doJSON(r, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "memory", body["sessionStore"])
		assert.NotEmpty(t, body["checkedAt"])
	})

	t.Run("unreachable store", func(t *testing.T) {
		h := NewHealthHandler(utils.NewHealthMonitor("redis", stubPinger{err: errors.New("refused")}))
		r := gin.New()
		r.GET("/health", h.HealthCheckHandler)

		w := doJSON(r, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "degraded", decode(t, w)["status"])
	})
}

func TestGetLogger_FallsBackToProcessLogger(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Same(t, utils.GetLogger(), getLogger(c))

	l := zap.NewNop()
	c.Set(utils.LoggerContextKey, l)
	assert.Same(t, l, getLogger(c))
}
