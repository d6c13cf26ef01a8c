package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

func testClient(t *testing.T, token string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, func() string { return token }), srv
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client, _ := testClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"r1","guests":[],"payments":[],"charges":[],"invoices":[]}`))
	})

	if _, err := (ReservationGateway{Client: client}).GetByID(context.Background(), "r1"); err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestMissingTokenFailsBeforeNetwork(t *testing.T) {
	var hits int64
	client, _ := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
	})

	_, err := (ReservationGateway{Client: client}).GetByID(context.Background(), "r1")
	if !domain.IsUnauthenticated(err) {
		t.Fatalf("expected UnauthenticatedError, got %v", err)
	}
	if atomic.LoadInt64(&hits) != 0 {
		t.Fatalf("request reached the server despite missing token")
	}
}

func TestOptionalAuthSkipsHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	client, _ := testClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"r1","guests":[],"payments":[],"charges":[],"invoices":[]}`))
	})

	dto := models.CreateReservation{FirstName: "Ada", LastName: "Rossi", RoomID: "room-1"}
	if _, err := (ReservationGateway{Client: client}).Create(context.Background(), dto); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("anonymous booking must not carry an Authorization header, got %q", gotAuth)
	}
}

func TestAPIErrorMessageSurfacedVerbatim(t *testing.T) {
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"room already booked for those dates"}`))
	})

	_, err := (ReservationGateway{Client: client}).Update(context.Background(), "r1", models.UpdateReservation{})
	if err == nil {
		t.Fatal("expected error")
	}
	if status, ok := domain.APIStatus(err); !ok || status != http.StatusConflict {
		t.Fatalf("expected APIError with 409, got %v", err)
	}
	if got := domain.UserMessage(err); got != "room already booked for those dates" {
		t.Fatalf("server message not surfaced verbatim: %q", got)
	}
}

func TestAPIErrorFallsBackToGenericMessage(t *testing.T) {
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream exploded`))
	})

	err := (ChargeGateway{Client: client}).Delete(context.Background(), "c1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("expected generic status message, got %q", err.Error())
	}
}

func TestRoomUpdateStripsEmptyFields(t *testing.T) {
	var payload map[string]any
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Errorf("bad payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":"room-1","photos":[]}`))
	})

	dto := models.UpdateRoom{RoomName: "  Sea View  ", Description: "   ", BedsTypes: ""}
	if _, err := (RoomGateway{Client: client}).Update(context.Background(), "room-1", dto); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if payload["roomName"] != "Sea View" {
		t.Fatalf("roomName not trimmed: %v", payload["roomName"])
	}
	for _, field := range []string{"description", "bedsTypes", "roomNumber", "beds", "priceForNight"} {
		if _, present := payload[field]; present {
			t.Fatalf("empty field %q must be stripped from the payload", field)
		}
	}
}

func TestAddPhotoSendsMultipart(t *testing.T) {
	var isCover, fileContent string
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("multipart parse: %v", err)
			return
		}
		isCover = r.FormValue("isCover")
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
			return
		}
		defer file.Close()
		raw, _ := io.ReadAll(file)
		fileContent = string(raw)
		w.WriteHeader(http.StatusCreated)
	})

	err := (RoomGateway{Client: client}).AddPhoto(context.Background(), "room-1", "front.jpg", strings.NewReader("jpeg-bytes"), true)
	if err != nil {
		t.Fatalf("AddPhoto error: %v", err)
	}
	if isCover != "true" || fileContent != "jpeg-bytes" {
		t.Fatalf("multipart fields not forwarded: isCover=%q content=%q", isCover, fileContent)
	}
}

func TestInvoicePDFPassthrough(t *testing.T) {
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	})

	raw, contentType, err := (InvoiceGateway{Client: client}).PDF(context.Background(), "inv-1")
	if err != nil {
		t.Fatalf("PDF error: %v", err)
	}
	if contentType != "application/pdf" || len(raw) == 0 {
		t.Fatalf("pdf passthrough broken: type=%q len=%d", contentType, len(raw))
	}
}

func TestListActiveFiltersCatalog(t *testing.T) {
	client, _ := testClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"pm1","code":"CASH","description":"Cash","isActive":true},
			{"id":"pm2","code":"OLDCARD","description":"Legacy card","isActive":false}
		]`))
	})

	active, err := (PaymentMethodGateway{Client: client}).ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if len(active) != 1 || active[0].Code != "CASH" {
		t.Fatalf("inactive methods must be filtered out, got %+v", active)
	}
}
