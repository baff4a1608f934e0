package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestGet_EncodesQueryAndDecodes(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"year":2020,"tree_cover_loss_ha":12.5}]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	var out []struct {
		Year int     `json:"year"`
		Loss float64 `json:"tree_cover_loss_ha"`
	}
	q := url.Values{"country": {"Côte d'Ivoire"}}
	if err := c.Get(context.Background(), "/loss-trend", q, &out); err != nil {
		t.Fatalf("Get: %v", err)
	}

	if gotPath != "/loss-trend" {
		t.Fatalf("path: %q", gotPath)
	}
	if gotQuery != q.Encode() {
		t.Fatalf("query: %q", gotQuery)
	}
	if len(out) != 1 || out[0].Year != 2020 || out[0].Loss != 12.5 {
		t.Fatalf("decoded: %+v", out)
	}
}

func TestGet_HTTPErrorMessage(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
		code   int
	}{
		{"api message", http.StatusNotFound, `{"error":{"message":"country not found"}}`, "country not found", http.StatusNotFound},
		{"plain body", http.StatusInternalServerError, "oops", "HTTP 500: Internal Server Error", http.StatusBadGateway},
		{"empty message", http.StatusBadRequest, `{"error":{"message":"  "}}`, "HTTP 400: Bad Request", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			var out interface{}
			err := NewClient(srv.URL).Get(context.Background(), "/summary", nil, &out)

			var he *HTTPError
			if !errors.As(err, &he) {
				t.Fatalf("want *HTTPError, got %T: %v", err, err)
			}
			if he.Status != tc.status || he.Error() != tc.want || he.Code() != tc.code {
				t.Fatalf("got status=%d msg=%q code=%d", he.Status, he.Error(), he.Code())
			}
			if IsTimeoutClass(err) {
				t.Fatal("HTTP error classified as timeout")
			}
		})
	}
}

func TestPost_SendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method: %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type: %q", ct)
		}
		b, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(b), `"country":"Peru"`) {
			t.Errorf("body: %s", b)
		}
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	err := NewClient(srv.URL).Post(context.Background(), "/predict", map[string]string{"country": "Peru"}, &out, 0)
	if err != nil || !out.OK {
		t.Fatalf("Post: %v %+v", err, out)
	}
}

func TestPost_LocalDeadlineIsTimeoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	var out interface{}
	err := NewClient(srv.URL).Post(context.Background(), "/recommendations", struct{}{}, &out, 30*time.Millisecond)

	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Fatalf("want *TimeoutError, got %T: %v", err, err)
	}
	if !IsTimeoutClass(err) {
		t.Fatal("not timeout class")
	}
	if !strings.Contains(err.Error(), "taking longer than expected") {
		t.Fatalf("message: %q", err.Error())
	}
}

func TestPost_Upstream504IsGatewayTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	var out interface{}
	err := NewClient(srv.URL).Post(context.Background(), "/insights", struct{}{}, &out, 0)

	var ge *GatewayTimeoutError
	if !errors.As(err, &ge) {
		t.Fatalf("want *GatewayTimeoutError, got %T: %v", err, err)
	}
	if !IsTimeoutClass(err) {
		t.Fatal("not timeout class")
	}
	if !strings.Contains(err.Error(), "high demand") {
		t.Fatalf("message: %q", err.Error())
	}
	if err.Error() == (&TimeoutError{}).Error() {
		t.Fatal("gateway timeout and local timeout share a message")
	}
}

func TestGet_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	var out interface{}
	err := NewClient(base).Get(context.Background(), "/countries", nil, &out)

	var ne *NetworkError
	if !errors.As(err, &ne) {
		t.Fatalf("want *NetworkError, got %T: %v", err, err)
	}
	if IsTimeoutClass(err) {
		t.Fatal("network error classified as timeout")
	}
}

func TestGet_CallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	var out interface{}
	err := NewClient(srv.URL).Get(ctx, "/summary", nil, &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %T: %v", err, err)
	}
	if IsTimeoutClass(err) {
		t.Fatal("cancellation classified as timeout")
	}
}
