//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomly/internal/handler/api"
	"roomly/internal/usecase/commands"
	"roomly/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBookingCommands struct {
	createView   *queries.BookingView
	createErr    error
	createParams *commands.CreateBookingParams
	cancelErr    error
	redirectURL  string
	initiateErr  error
	confirmErr   error
}

func (s *stubBookingCommands) CreateBooking(_ context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
	s.createParams = &params
	return s.createView, s.createErr
}

func (s *stubBookingCommands) CancelBooking(_ context.Context, _, _ uuid.UUID) error {
	return s.cancelErr
}

func (s *stubBookingCommands) InitiatePayment(_ context.Context, _, _ uuid.UUID) (string, error) {
	return s.redirectURL, s.initiateErr
}

func (s *stubBookingCommands) ConfirmPayment(_ context.Context, _ uuid.UUID, _ string) error {
	return s.confirmErr
}

type stubBookingQueries struct {
	view  *queries.BookingView
	views []*queries.BookingView
	err   error
}

func (s *stubBookingQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.err
}

func (s *stubBookingQueries) ListByUser(_ context.Context, _ uuid.UUID) ([]*queries.BookingView, error) {
	return s.views, s.err
}

func sampleView(userID uuid.UUID) *queries.BookingView {
	checkIn, _ := time.Parse(time.RFC3339, "2025-06-20T14:00:00Z")
	return &queries.BookingView{
		ID:              uuid.New(),
		Reference:       "A1B2C3",
		RoomID:          uuid.New(),
		RoomName:        "Skyline Loft",
		UserID:          userID,
		CheckIn:         checkIn,
		CheckOut:        checkIn.Add(2 * time.Hour),
		Guests:          4,
		TotalPriceCents: 48000,
		Status:          "pending",
		CreatedAt:       checkIn,
	}
}

func newBookingRouter(cmds commands.BookingCommands, q queries.BookingQueries, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewBookingHandler(cmds, q)

	authStub := func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_email", "guest@example.com")
		c.Next()
	}

	router.POST("/api/bookings", authStub, handler.Create)
	router.GET("/api/bookings", authStub, handler.List)
	router.GET("/api/bookings/:id", authStub, handler.Get)
	router.DELETE("/api/bookings/:id", authStub, handler.Cancel)
	router.POST("/api/bookings/:id/payment", authStub, handler.InitiatePayment)
	return router
}

func createBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"room_id":        uuid.New().String(),
		"check_in":       "2025-06-20T14:00:00Z",
		"duration_hours": 2,
		"guests":         4,
	})
	require.NoError(t, err)
	return body
}

func TestBookingHandlerCreate(t *testing.T) {
	userID := uuid.New()

	t.Run("created", func(t *testing.T) {
		view := sampleView(userID)
		cmds := &stubBookingCommands{createView: view}
		router := newBookingRouter(cmds, &stubBookingQueries{}, userID)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(createBody(t)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"reference":"A1B2C3"`)
		assert.Contains(t, rec.Body.String(), `"totalPrice":"480.00"`)

		// The verified claims travel with the command so notifications can
		// address the booker directly.
		require.NotNil(t, cmds.createParams)
		assert.Equal(t, userID, cmds.createParams.UserID)
		assert.Equal(t, "guest@example.com", cmds.createParams.UserEmail)
	})

	t.Run("command errors map to status codes", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
		}{
			{name: "room missing", err: commands.ErrRoomNotFound, want: http.StatusNotFound},
			{name: "slot taken", err: commands.ErrSlotUnavailable, want: http.StatusConflict},
			{name: "validation", err: commands.ErrValidation, want: http.StatusBadRequest},
			{name: "database failure", err: commands.ErrDatabaseOperationFailed, want: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				router := newBookingRouter(&stubBookingCommands{createErr: tc.err}, &stubBookingQueries{}, userID)

				req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(createBody(t)))
				req.Header.Set("Content-Type", "application/json")
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)

				assert.Equal(t, tc.want, rec.Code)
			})
		}
	})

	t.Run("binding rejects zero duration", func(t *testing.T) {
		router := newBookingRouter(&stubBookingCommands{}, &stubBookingQueries{}, userID)
		body, err := json.Marshal(map[string]any{
			"room_id":        uuid.New().String(),
			"check_in":       "2025-06-20T14:00:00Z",
			"duration_hours": 0,
			"guests":         4,
		})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandlerGet(t *testing.T) {
	userID := uuid.New()

	t.Run("own booking", func(t *testing.T) {
		view := sampleView(userID)
		router := newBookingRouter(&stubBookingCommands{}, &stubBookingQueries{view: view}, userID)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+view.ID.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("someone else's booking is hidden", func(t *testing.T) {
		view := sampleView(uuid.New())
		router := newBookingRouter(&stubBookingCommands{}, &stubBookingQueries{view: view}, userID)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+view.ID.String(), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router := newBookingRouter(&stubBookingCommands{}, &stubBookingQueries{}, userID)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandlerCancel(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "cancelled", err: nil, want: http.StatusNoContent},
		{name: "not found", err: commands.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "forbidden", err: commands.ErrForbidden, want: http.StatusForbidden},
		{name: "already paid", err: commands.ErrAlreadyPaid, want: http.StatusConflict},
		{name: "already cancelled", err: commands.ErrBookingCancelled, want: http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newBookingRouter(&stubBookingCommands{cancelErr: tc.err}, &stubBookingQueries{}, userID)

			req := httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID.String(), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestBookingHandlerInitiatePayment(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()

	t.Run("redirect url", func(t *testing.T) {
		router := newBookingRouter(&stubBookingCommands{redirectURL: "https://pay.example/checkout/abc"}, &stubBookingQueries{}, userID)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID.String()+"/payment", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://pay.example/checkout/abc")
	})

	t.Run("provider down", func(t *testing.T) {
		router := newBookingRouter(&stubBookingCommands{initiateErr: commands.ErrPaymentProviderFailed}, &stubBookingQueries{}, userID)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+bookingID.String()+"/payment", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
