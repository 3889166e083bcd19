package database_test

import (
	"testing"
	"time"

	"kongenga_back_end/internal/database"
)

func TestMonthStart(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{
			time.Date(2025, 3, 15, 14, 30, 45, 123, time.UTC),
			time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		if got := database.MonthStart(tt.in); !got.Equal(tt.want) {
			t.Errorf("MonthStart(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
