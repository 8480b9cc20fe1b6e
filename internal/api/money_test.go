package api

import "testing"

func TestParseAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{name: "integer", in: "150", want: 15000},
		{name: "two decimals", in: "10.15", want: 1015},
		{name: "one decimal", in: "0.5", want: 50},
		{name: "zero", in: "0", want: 0},
		{name: "negative passes through", in: "-3.50", want: -350},
		{name: "three decimals", in: "1.234", wantErr: true},
		{name: "not a number", in: "abc", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseAmount(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseAmount(%q): want error, got %d", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAmount(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("parseAmount(%q): want %d, got %d", tt.in, tt.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{1015, "10.15"},
		{50000000, "500000.00"},
		{5, "0.05"},
	}

	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Fatalf("formatAmount(%d): want %s, got %s", tt.in, tt.want, got)
		}
	}
}
