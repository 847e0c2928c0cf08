package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Tiliavir/topup/internal/source"
	"github.com/Tiliavir/topup/internal/timesheet"
)

const portalPage = `<!DOCTYPE html>
<html><head><title>Attendance</title><style>.x{color:red}</style></head>
<body>
  <div class="day">
    <h3>Tue, 02 Dec</h3>
    <p>Planned Shift : 11:00-21:00</p>
    <span>05h 29m</span>
    <ul><li>02:36 PM<br>PUN-CDC</li><li>08:06 PM <em>PUN-CDC</em></li></ul>
    <script>var punches = [];</script>
  </div>
</body></html>`

const wantPortalText = "Tue, 02 Dec\nPlanned Shift : 11:00-21:00\n05h 29m\n02:36 PM\nPUN-CDC\n08:06 PM\nPUN-CDC"

func TestHTMLText(t *testing.T) {
	got, err := source.HTMLText(strings.NewReader(portalPage))
	if err != nil {
		t.Fatalf("HTMLText: %v", err)
	}
	if got != wantPortalText {
		t.Errorf("HTMLText =\n%s\nwant\n%s", got, wantPortalText)
	}
}

func TestReadStdinAndFile(t *testing.T) {
	ctx := context.Background()

	got, err := source.Read(ctx, source.Options{Path: "-"}, strings.NewReader("Mon, 01 Dec\n09:59 AM"))
	if err != nil {
		t.Fatalf("Read stdin: %v", err)
	}
	if got != "Mon, 01 Dec\n09:59 AM" {
		t.Errorf("Read stdin = %q", got)
	}

	path := filepath.Join(t.TempDir(), "week.html")
	if err := os.WriteFile(path, []byte(portalPage), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err = source.Read(ctx, source.Options{Path: path}, nil)
	if err != nil {
		t.Fatalf("Read file: %v", err)
	}
	if got != wantPortalText {
		t.Errorf("Read html file = %q", got)
	}

	if _, err := source.Read(ctx, source.Options{Path: filepath.Join(t.TempDir(), "nope.txt")}, nil); err == nil {
		t.Error("Read of missing file: expected error")
	}
}

func TestFetchSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(portalPage))
	}))
	defer srv.Close()

	got, err := source.Read(context.Background(), source.Options{URL: srv.URL, Token: "s3cret"}, nil)
	if err != nil {
		t.Fatalf("Read url: %v", err)
	}
	if gotAuth != "Bearer s3cret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer s3cret")
	}
	if got != wantPortalText {
		t.Errorf("Fetch text = %q", got)
	}
}

func TestFetchPlainTextWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("unexpected Authorization header %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Mon, 01 Dec\n09:59 AM\n08:08 PM"))
	}))
	defer srv.Close()

	got, err := source.Fetch(context.Background(), srv.URL, "", false)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "Mon, 01 Dec\n09:59 AM\n08:08 PM" {
		t.Errorf("Fetch = %q", got)
	}
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := source.Fetch(context.Background(), srv.URL, "old", false)
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Errorf("Fetch error = %v, want 401", err)
	}
}

func TestHTMLTextNbspFeedsParser(t *testing.T) {
	page := `<html><body><div>Tue,&nbsp;28&nbsp;Oct</div>` +
		`<div>09:19&nbsp;AM</div><div>PUN-CDC</div>` +
		`<div>08:05&nbsp;PM</div><div>PUN-CDC</div></body></html>`

	text, err := source.HTMLText(strings.NewReader(page))
	if err != nil {
		t.Fatalf("HTMLText: %v", err)
	}
	days := timesheet.Parse(text, timesheet.DefaultConfig())
	if len(days) != 1 {
		t.Fatalf("Parse returned %d days from %q, want 1", len(days), text)
	}
	if days[0].WorkedMinutes == nil || *days[0].WorkedMinutes != 646 {
		t.Errorf("worked = %v, want 646", days[0].WorkedMinutes)
	}
}
