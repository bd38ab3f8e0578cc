package webhook

import "testing"

func TestVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		signature string
		secret    string
		wantErr   string
	}{
		{
			name:      "match",
			signature: "shared-secret",
			secret:    "shared-secret",
		},
		{
			name:    "missing signature",
			secret:  "shared-secret",
			wantErr: "Missing X-PATHAO-Signature header",
		},
		{
			name:      "unconfigured secret",
			signature: "shared-secret",
			wantErr:   "webhook secret is not configured",
		},
		{
			name:      "length mismatch",
			signature: "shared",
			secret:    "shared-secret",
			wantErr:   "webhook signature length mismatch",
		},
		{
			name:      "same length wrong value",
			signature: "shared-secreT",
			secret:    "shared-secret",
			wantErr:   "invalid webhook signature",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Verify(tt.signature, tt.secret, []byte(`{}`))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Verify() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Verify() error = nil, want error")
			}
			if got := err.Error(); got != tt.wantErr {
				t.Errorf("Verify() error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}
