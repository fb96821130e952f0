package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr error
	}{
		{"500.00", "500", nil},
		{"-120.00", "-120", nil},
		{"1,234.56", "1234.56", nil},
		{"-$1,234.56", "-1234.56", nil},
		{"$45", "45", nil},
		{"(45.00)", "-45", nil},
		{"£12.50", "12.5", nil},
		{"0", "0", nil},
		{"", "", ErrEmptyAmount},
		{"  ", "", ErrEmptyAmount},
		{"-", "", ErrEmptyAmount},
		{"abc", "", ErrInvalidAmount},
		{"12.34.56", "", ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseAmount(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseAmount(%q): expected %v, got %v", tt.input, tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseAmount(%q): unexpected error %v", tt.input, err)
			}

			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Fatalf("parseAmount(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"03/05/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"3/5/2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"05 Mar 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"Mar 5, 2024", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"Total", time.Time{}, true},
		{"", time.Time{}, true},
		{"Beginning balance as of 03/01/2024", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := parseDate(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("parseDate(%q): expected ErrInvalidDate, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDate(%q): unexpected error %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
