package osuweb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

const majorsPage = `<html><body>
<nav><a href="/about">About</a></nav>
<ul>
  <li><a href="/majors-and-academics/majors/detail/accounting">Accounting</a></li>
  <li><a href="/majors-and-academics/majors/detail/astronomy"> Astronomy
      and   Astrophysics </a></li>
  <li><a href="/majors-and-academics/majors/detail/accounting">Accounting</a></li>
  <li><a href="/majors-and-academics/majors/detail/ai"><span>AI</span></a></li>
  <li><a href="/majors-and-academics/majors/detail/zoology">Zoology</a></li>
</ul>
</body></html>`

func TestFetchMajors(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, majorsPage)
	}))
	defer server.Close()

	t.Setenv("MAJORS_SOURCE_URL", server.URL)

	service := NewService()
	majors, err := service.FetchMajors(context.Background())
	if err != nil {
		t.Fatalf("FetchMajors() error = %v", err)
	}

	want := []string{"Accounting", "Astronomy and Astrophysics", "Zoology"}
	if !reflect.DeepEqual(majors, want) {
		t.Errorf("FetchMajors() = %v, want %v", majors, want)
	}
	if gotUserAgent != "OSU-AI-Agent/1.0 (internal assistant)" {
		t.Errorf("User-Agent = %v, want OSU-AI-Agent/1.0 (internal assistant)", gotUserAgent)
	}
}

func TestFetchMajorsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	t.Setenv("MAJORS_SOURCE_URL", server.URL)

	service := NewService()
	if _, err := service.FetchMajors(context.Background()); err == nil {
		t.Error("FetchMajors() should fail on non-200 status")
	}
}

func TestFetchMajorsUnreachable(t *testing.T) {
	t.Setenv("MAJORS_SOURCE_URL", "http://127.0.0.1:1")

	service := NewService()
	if _, err := service.FetchMajors(context.Background()); err == nil {
		t.Error("FetchMajors() should fail when the site is unreachable")
	}
}

func TestParseMajorsRegexFallback(t *testing.T) {
	// a page the tree walk finds no anchors in, but the raw scan does
	page := `<script>var links = '<a href="/majors-and-academics/majors/detail/biology" class="m">Biology</a><a href="/majors-and-academics/majors/detail/chemistry">Chemistry</a>';</script>`

	majors := parseMajors([]byte(page))
	want := []string{"Biology", "Chemistry"}
	if !reflect.DeepEqual(majors, want) {
		t.Errorf("parseMajors() = %v, want %v", majors, want)
	}
}

func TestParseMajorsCapsResults(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 120; i++ {
		fmt.Fprintf(&sb, `<a href="/majors-and-academics/majors/detail/m%d">Major %03d</a>`, i, i)
	}
	sb.WriteString("</body></html>")

	majors := parseMajors([]byte(sb.String()))
	if len(majors) != 80 {
		t.Errorf("parseMajors() returned %d majors, want 80", len(majors))
	}
}

func TestParseMajorsSkipsShortNames(t *testing.T) {
	page := `<html><body><a href="/majors-and-academics/majors/detail/x">IT</a><a href="/majors-and-academics/majors/detail/art">Art</a></body></html>`

	majors := parseMajors([]byte(page))
	want := []string{"Art"}
	if !reflect.DeepEqual(majors, want) {
		t.Errorf("parseMajors() = %v, want %v", majors, want)
	}
}
