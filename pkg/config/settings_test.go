package config

import "testing"

// TestNewSettings_Defaults verifies that fresh settings target mainnet and
// carry no query parameters.
func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings()

	if got := s.CurrentNetwork(); got != CardanoMainnetNetwork {
		t.Fatalf("CurrentNetwork() = %q, want %q", got, CardanoMainnetNetwork)
	}
	if !s.QueryParameters().IsEmpty() {
		t.Fatalf("expected no query parameters, got %+v", s.QueryParameters())
	}
}

func TestSettings_ZeroValueTargetsMainnet(t *testing.T) {
	var s Settings
	if got := s.CurrentNetwork(); got != CardanoMainnetNetwork {
		t.Fatalf("CurrentNetwork() = %q, want %q", got, CardanoMainnetNetwork)
	}
}

// TestSettings_NetworkSwitching verifies that the last preset applied wins.
func TestSettings_NetworkSwitching(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     string
	}{
		{
			name:     "testnet",
			settings: NewSettings().UseTestnet(),
			want:     CardanoTestnetNetwork,
		},
		{
			name:     "mainnet then testnet",
			settings: NewSettings().UseMainnet().UseTestnet(),
			want:     CardanoTestnetNetwork,
		},
		{
			name:     "testnet then mainnet",
			settings: NewSettings().UseTestnet().UseMainnet(),
			want:     CardanoMainnetNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.CurrentNetwork(); got != tt.want {
				t.Fatalf("CurrentNetwork() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSettings_UseTestnetLeavesOriginalUntouched(t *testing.T) {
	base := NewSettings()
	_ = base.UseTestnet()

	if got := base.CurrentNetwork(); got != CardanoMainnetNetwork {
		t.Fatalf("base settings changed: %q", got)
	}
}

// TestSettings_SetNetwork verifies that any endpoint is accepted verbatim.
func TestSettings_SetNetwork(t *testing.T) {
	s := NewSettings()
	s.SetNetwork("http://localhost:3000/api/v0")
	if got := s.CurrentNetwork(); got != "http://localhost:3000/api/v0" {
		t.Fatalf("CurrentNetwork() = %q", got)
	}

	s.SetNetwork("not a url")
	if got := s.CurrentNetwork(); got != "not a url" {
		t.Fatalf("CurrentNetwork() = %q, want unvalidated value", got)
	}
}

// TestSettings_Configure verifies that Configure applies the function once and
// keeps the endpoint.
func TestSettings_Configure(t *testing.T) {
	calls := 0
	s := NewSettings().UseTestnet().Configure(func(q *QueryParameters) {
		calls++
		q.SetOrder(Descending)
	})

	if calls != 1 {
		t.Fatalf("configure function called %d times, want 1", calls)
	}
	order, ok := s.QueryParameters().Order()
	if !ok || order != Descending {
		t.Fatalf("Order() = %v, %v; want desc, true", order, ok)
	}
	if got := s.CurrentNetwork(); got != CardanoTestnetNetwork {
		t.Fatalf("Configure changed network to %q", got)
	}
}

// TestSettings_SetNetworkEmptyFallsBackToMainnet verifies that clearing the
// endpoint never leaves CurrentNetwork empty.
func TestSettings_SetNetworkEmptyFallsBackToMainnet(t *testing.T) {
	s := NewSettings().UseTestnet()
	s.SetNetwork("")

	if got := s.CurrentNetwork(); got != CardanoMainnetNetwork {
		t.Fatalf("CurrentNetwork() = %q, want %q", got, CardanoMainnetNetwork)
	}

	u, err := s.RequestURL("blocks/latest")
	if err != nil {
		t.Fatalf("RequestURL error: %v", err)
	}
	if u != CardanoMainnetNetwork+"/blocks/latest" {
		t.Fatalf("RequestURL() = %q", u)
	}
}

func TestSettings_ConfigureNil(t *testing.T) {
	s := NewSettings().Configure(nil)
	if !s.QueryParameters().IsEmpty() {
		t.Fatal("nil configure function changed parameters")
	}
}

// TestSettings_QueryParametersIsCopy verifies that the accessor cannot be
// used to mutate the settings.
func TestSettings_QueryParametersIsCopy(t *testing.T) {
	s := NewSettings()
	q := s.QueryParameters()
	q.SetCount(5)

	if _, ok := s.QueryParameters().Count(); ok {
		t.Fatal("mutating the returned parameters changed the settings")
	}
}

func TestSettings_CopiesDoNotShareParameters(t *testing.T) {
	a := NewSettings().Configure(func(q *QueryParameters) { q.SetFrom("100") })
	b := a.Configure(func(q *QueryParameters) { q.SetFrom("200") })

	if from, _ := a.QueryParameters().From(); from != "100" {
		t.Fatalf("a.From() = %q, want 100", from)
	}
	if from, _ := b.QueryParameters().From(); from != "200" {
		t.Fatalf("b.From() = %q, want 200", from)
	}
}
