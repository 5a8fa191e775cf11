package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"chat-server/internal/domain/room"
	"chat-server/internal/infrastructure/hashing"
	"chat-server/internal/infrastructure/store"
	"chat-server/internal/interfaces/httpserver/handlers"
	"chat-server/internal/interfaces/httpserver/routes/api"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	svc := room.NewService(
		store.NewMemoryDirectory(),
		store.NewMemoryMessageStore(),
		nil,
		hashing.NewBcrypt(4),
		zerolog.Nop(),
	)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api.RegisterRoomRoutes(engine.Group("/api"), handlers.NewRoomHandler(svc))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %s: %v", rec.Body.String(), err)
	}
	return out
}

func createRoom(t *testing.T, engine *gin.Engine, name, password string) int64 {
	t.Helper()
	rec := doJSON(t, engine, http.MethodPost, "/api/rooms", map[string]string{
		"name":     name,
		"password": password,
		"username": "alice",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create room status = %d, body %s", rec.Code, rec.Body.String())
	}
	return int64(decode(t, rec)["id"].(float64))
}

func TestRoomRoutes_CreateAndList(t *testing.T) {
	engine := newTestRouter(t)

	id := createRoom(t, engine, "general", "")
	if id <= 0 {
		t.Fatalf("room id = %d, want positive", id)
	}

	rec := doJSON(t, engine, http.MethodGet, "/api/rooms", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var rooms []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &rooms); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(rooms) != 1 || rooms[0]["name"] != "general" {
		t.Errorf("list = %v, want the created room", rooms)
	}
}

func TestRoomRoutes_CreateValidation(t *testing.T) {
	engine := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"username": "alice"}},
		{"missing username", map[string]string{"name": "general"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, engine, http.MethodPost, "/api/rooms", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestRoomRoutes_GetRoom(t *testing.T) {
	engine := newTestRouter(t)
	id := createRoom(t, engine, "gated", "hunter2")

	rec := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/rooms/%d", id), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["has_password"] != true {
		t.Errorf("has_password = %v, want true", body["has_password"])
	}
	if _, leaked := body["password"]; leaked {
		t.Error("password hash leaked in response")
	}

	if rec := doJSON(t, engine, http.MethodGet, "/api/rooms/9999", nil); rec.Code != http.StatusNotFound {
		t.Errorf("missing room status = %d, want 404", rec.Code)
	}
	if rec := doJSON(t, engine, http.MethodGet, "/api/rooms/abc", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}
}

func TestRoomRoutes_CheckPassword(t *testing.T) {
	engine := newTestRouter(t)
	gated := createRoom(t, engine, "gated", "hunter2")
	open := createRoom(t, engine, "open", "")

	tests := []struct {
		name      string
		roomID    int64
		password  string
		wantValid bool
	}{
		{"correct", gated, "hunter2", true},
		{"wrong", gated, "nope", false},
		{"open room", open, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("/api/rooms/%d/check-password", tt.roomID)
			rec := doJSON(t, engine, http.MethodPost, path, map[string]string{"password": tt.password})
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := decode(t, rec)["valid"]; got != tt.wantValid {
				t.Errorf("valid = %v, want %v", got, tt.wantValid)
			}
		})
	}

	rec := doJSON(t, engine, http.MethodPost, "/api/rooms/9999/check-password", map[string]string{"password": "x"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing room status = %d, want 404", rec.Code)
	}
}

func TestRoomRoutes_DeleteRoom(t *testing.T) {
	engine := newTestRouter(t)
	id := createRoom(t, engine, "gated", "hunter2")

	rec := doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", id), map[string]string{"password": "wrong"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrong password status = %d, want 403", rec.Code)
	}

	rec = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", id), map[string]string{"password": "hunter2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", rec.Code, rec.Body.String())
	}

	if rec := doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/rooms/%d", id), nil); rec.Code != http.StatusNotFound {
		t.Errorf("room still reachable after delete, status = %d", rec.Code)
	}
}
