package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHandleHealth(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealth(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
	if _, err := time.Parse(time.RFC3339, body["timestamp"].(string)); err != nil {
		t.Errorf("timestamp is not RFC3339: %v", err)
	}
}

func TestHandleReadiness(t *testing.T) {
	w := httptest.NewRecorder()
	HandleReadiness(w, httptest.NewRequest("GET", "/readiness", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body["ready"] != true {
		t.Errorf("ready = %v, want true", body["ready"])
	}
}

func TestHandleRoot(t *testing.T) {
	w := httptest.NewRecorder()
	HandleRoot(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Service   string            `json:"service"`
		Version   string            `json:"version"`
		Endpoints map[string]string `json:"endpoints"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}

	if body.Service != "AI Agent API" {
		t.Errorf("service = %v, want AI Agent API", body.Service)
	}
	if body.Version != "1.0.0" {
		t.Errorf("version = %v, want 1.0.0", body.Version)
	}
	if body.Endpoints["chat"] != "/chat" {
		t.Errorf("endpoints[chat] = %v, want /chat", body.Endpoints["chat"])
	}
	if body.Endpoints["ui"] != "/chat-ui" {
		t.Errorf("endpoints[ui] = %v, want /chat-ui", body.Endpoints["ui"])
	}
}
