package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"us slash", "03/14/2026", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"short year", "03/14/26", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"iso dash", "2026-03-14", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"year first slash", "2026/03/14", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.value, nil, nil)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v", got)
		})
	}

	_, err := Date("the 14th", nil, nil)
	require.Error(t, err)
	assert.Equal(t, "'the 14th' is not a valid date.", err.Error())
}

func TestDate_CustomLayouts(t *testing.T) {
	got, err := Date("14.03.2026", []string{"02.01.2006"}, nil)
	require.NoError(t, err)
	assert.Equal(t, time.March, got.Month())

	// Custom layouts replace the defaults rather than extending them.
	_, err = Date("03/14/2026", []string{"02.01.2006"}, nil)
	assert.Error(t, err)
}

func TestTime(t *testing.T) {
	got, err := Time("14:30", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())

	got, err = Time("09:15:42", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Second())

	_, err = Time("half past two", nil, nil)
	assert.Error(t, err)
}

func TestDatetime(t *testing.T) {
	got, err := Datetime("2026-03-14 14:30", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, 14, got.Hour())

	_, err = Datetime("2026-03-14", nil, nil)
	assert.Error(t, err)
}

func TestMonth(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"number", "3", "March", false},
		{"full name", "march", "March", false},
		{"abbreviation", "MAR", "March", false},
		{"december by number", "12", "December", false},
		{"zero", "0", "", true},
		{"thirteen", "13", "", true},
		{"gibberish", "snowuary", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Month(tt.value, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	got, err := DayOfWeek("tue", nil)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday", got)

	got, err = DayOfWeek("SUNDAY", nil)
	require.NoError(t, err)
	assert.Equal(t, "Sunday", got)

	_, err = DayOfWeek("someday", nil)
	assert.Error(t, err)
}

func TestDayOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		year    int
		month   int
		want    int
		wantErr bool
	}{
		{"mid month", "15", 2026, 6, 15, false},
		{"last day of january", "31", 2026, 1, 31, false},
		{"february leap year", "29", 2024, 2, 29, false},
		{"february non leap year", "29", 2026, 2, 0, true},
		{"thirty first of april", "31", 2026, 4, 0, true},
		{"zero", "0", 2026, 6, 0, true},
		{"not a number", "ides", 2026, 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayOfMonth(tt.value, tt.year, tt.month, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayOfMonth_ErrorNamesMonth(t *testing.T) {
	_, err := DayOfMonth("30", 2026, 2, nil)
	require.Error(t, err)
	assert.Equal(t, "'30' is not a day in the month of February 2026.", err.Error())
}
