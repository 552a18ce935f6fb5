package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/osuit/ai-agent/internal/infrastructure/osuweb"
)

func TestHandleScrapeMajors(t *testing.T) {
	page := `<html><body>
<a href="/majors-and-academics/majors/detail/accounting">Accounting</a>
<a href="/majors-and-academics/majors/detail/biology">Biology</a>
</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	t.Setenv("MAJORS_SOURCE_URL", server.URL)

	w := httptest.NewRecorder()
	HandleScrapeMajors(osuweb.NewService(), w, httptest.NewRequest("GET", "/scrape/majors", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Source    string   `json:"source"`
		Count     int      `json:"count"`
		Majors    []string `json:"majors"`
		Timestamp string   `json:"timestamp"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}

	if body.Source != server.URL {
		t.Errorf("source = %v, want %v", body.Source, server.URL)
	}
	if body.Count != 2 {
		t.Errorf("count = %v, want 2", body.Count)
	}
	if len(body.Majors) != 2 || body.Majors[0] != "Accounting" {
		t.Errorf("majors = %v", body.Majors)
	}
	if body.Timestamp == "" {
		t.Error("timestamp should be set")
	}
}

func TestHandleScrapeMajorsFailure(t *testing.T) {
	t.Setenv("MAJORS_SOURCE_URL", "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	HandleScrapeMajors(osuweb.NewService(), w, httptest.NewRequest("GET", "/scrape/majors", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when the scrape fails", w.Code)
	}

	if !strings.Contains(w.Body.String(), `"majors":[]`) {
		t.Errorf("majors should be an empty list, got %s", w.Body.String())
	}

	var body struct {
		Count int `json:"count"`
	}
	json.NewDecoder(w.Body).Decode(&body)
	if body.Count != 0 {
		t.Errorf("count = %v, want 0", body.Count)
	}
}
