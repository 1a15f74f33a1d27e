package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/handiism/beatport-downloader/internal/beatport"
)

// newTestProvider spins up an httptest API and a Provider with a valid
// session pointed at it.
func newTestProvider(t *testing.T, handler http.Handler) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := beatport.NewClient(
		beatport.WithBaseURL(srv.URL+"/"),
		beatport.WithHTTPClient(srv.Client()),
	)
	client.SetSession(beatport.Session{
		AccessToken: "test-token",
		Expires:     time.Now().Add(time.Hour),
	})
	return New(client, 800)
}

func introspectHandler(t *testing.T, body string) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/o/introspect", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
	return mux
}

func TestValidateAccount(t *testing.T) {
	valid := `{
		"scope": "app:locker user:dj",
		"subscription": "bp_link_pro",
		"feature": ["feature:fulltrackplayback", "feature:cdnfulfillment", "feature:cdnfulfillment-link"],
		"username": "dj"
	}`

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "valid account",
			body: valid,
		},
		{
			name:    "missing dj scope",
			body:    `{"scope": "app:locker", "subscription": "bp_link", "feature": []}`,
			wantErr: "DJ/streaming permissions",
		},
		{
			name:    "no subscription",
			body:    `{"scope": "user:dj", "subscription": "", "feature": []}`,
			wantErr: "no active subscription",
		},
		{
			name:    "streaming-only subscription",
			body:    `{"scope": "user:dj", "subscription": "bp_basic", "feature": []}`,
			wantErr: "LINK or LINK PRO",
		},
		{
			name: "missing feature flags",
			body: `{"scope": "user:dj", "subscription": "bp_link",
				"feature": ["feature:fulltrackplayback"]}`,
			wantErr: "feature:cdnfulfillment",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, introspectHandler(t, tt.body))
			err := p.ValidateAccount(context.Background())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateAccount() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("ValidateAccount() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
