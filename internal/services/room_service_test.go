package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
)

func newRoomService(t *testing.T, handler http.Handler) RoomService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gateway.NewClient(srv.URL, 5*time.Second, func() string { return "tok" })
	return RoomService{Rooms: gateway.RoomGateway{Client: client}}
}

func TestCreateRoomValidation(t *testing.T) {
	s := newRoomService(t, http.NotFoundHandler())
	ok := models.CreateRoom{RoomNumber: "101", RoomName: "Forest view", Beds: 2, PriceForNight: 80}

	broken := []func(dto *models.CreateRoom){
		func(dto *models.CreateRoom) { dto.RoomNumber = " " },
		func(dto *models.CreateRoom) { dto.RoomName = "" },
		func(dto *models.CreateRoom) { dto.Beds = 0 },
		func(dto *models.CreateRoom) { dto.PriceForNight = 0 },
	}
	for i, mutate := range broken {
		dto := ok
		mutate(&dto)
		if _, err := s.Create(context.Background(), dto); !domain.IsValidation(err) {
			t.Fatalf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestUploadPhotoRefusesWhenRoomIsFull(t *testing.T) {
	var uploads atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/room/room-1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.RoomDetail{
			ID: "room-1",
			Photos: []models.RoomPhoto{
				{ID: "ph1"}, {ID: "ph2"}, {ID: "ph3"},
			},
		})
	})
	mux.HandleFunc("POST /api/room/room-1/photos", func(w http.ResponseWriter, r *http.Request) {
		uploads.Add(1)
		w.WriteHeader(http.StatusCreated)
	})
	s := newRoomService(t, mux)

	err := s.UploadPhoto(context.Background(), "room-1", "fourth.jpg", strings.NewReader("jpeg"), false)
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error at the photo cap, got %v", err)
	}
	if uploads.Load() != 0 {
		t.Fatal("full room must be refused before the upload request is sent")
	}
}

func TestUploadPhotoBelowCap(t *testing.T) {
	var uploads atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/room/room-1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.RoomDetail{
			ID:     "room-1",
			Photos: []models.RoomPhoto{{ID: "ph1"}},
		})
	})
	mux.HandleFunc("POST /api/room/room-1/photos", func(w http.ResponseWriter, r *http.Request) {
		uploads.Add(1)
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart parse: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	})
	s := newRoomService(t, mux)

	if err := s.UploadPhoto(context.Background(), "room-1", "second.jpg", strings.NewReader("jpeg"), true); err != nil {
		t.Fatalf("UploadPhoto error: %v", err)
	}
	if uploads.Load() != 1 {
		t.Fatalf("uploads = %d, want 1", uploads.Load())
	}
}
