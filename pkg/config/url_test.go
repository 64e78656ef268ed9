package config

import (
	"errors"
	"testing"
)

func TestSettings_RequestURL(t *testing.T) {
	tests := []struct {
		name     string
		settings func() Settings
		path     string
		want     string
	}{
		{
			name:     "mainnet no parameters",
			settings: NewSettings,
			path:     "blocks/latest",
			want:     "https://cardano-mainnet.blockfrost.io/api/v0/blocks/latest",
		},
		{
			name:     "empty path",
			settings: NewSettings,
			path:     "",
			want:     CardanoMainnetNetwork,
		},
		{
			name: "testnet with parameters",
			settings: func() Settings {
				return NewSettings().UseTestnet().Configure(func(q *QueryParameters) {
					q.SetCount(10).SetPage(2).SetOrder(Descending)
				})
			},
			path: "/epochs/latest/stakes",
			want: "https://cardano-testnet.blockfrost.io/api/v0/epochs/latest/stakes?count=10&order=desc&page=2",
		},
		{
			name: "custom endpoint with trailing slash",
			settings: func() Settings {
				s := NewSettings()
				s.SetNetwork("http://localhost:3000/api/v0/")
				return s
			},
			path: "txs/abc",
			want: "http://localhost:3000/api/v0/txs/abc",
		},
		{
			name: "endpoint query is merged",
			settings: func() Settings {
				s := NewSettings().Configure(func(q *QueryParameters) { q.SetFrom("100") })
				s.SetNetwork("http://localhost:3000/api?from=1&key=x")
				return s
			},
			path: "blocks",
			want: "http://localhost:3000/api/blocks?from=100&key=x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.settings().RequestURL(tt.path)
			if err != nil {
				t.Fatalf("RequestURL error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("RequestURL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSettings_RequestURLInvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{"not a url", "://missing-scheme", "/relative/only"} {
		t.Run(endpoint, func(t *testing.T) {
			s := NewSettings()
			s.SetNetwork(endpoint)
			if _, err := s.RequestURL("blocks"); !errors.Is(err, ErrInvalidEndpoint) {
				t.Fatalf("expected ErrInvalidEndpoint, got %v", err)
			}
		})
	}
}
