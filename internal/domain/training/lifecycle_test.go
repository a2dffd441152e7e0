package training

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(2024, 1, 1), day(2024, 1, 1), 1},
		{"whole january", day(2024, 1, 1), day(2024, 1, 31), 31},
		{"leap february", day(2024, 2, 1), day(2024, 2, 29), 29},
		{"time of day ignored", day(2024, 1, 1).Add(23 * time.Hour), day(2024, 1, 2).Add(time.Hour), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DurationDays(Training{ID: "t", StartDate: c.start, EndDate: c.end})
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDurationDays_InvalidRange(t *testing.T) {
	_, err := DurationDays(Training{ID: "t-1", StartDate: day(2024, 1, 2), EndDate: day(2024, 1, 1)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))

	var rangeErr *InvalidRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "t-1", rangeErr.TrainingID)
	assert.Contains(t, err.Error(), "2024-01-01")
}

func TestDaysUntilStart(t *testing.T) {
	today := day(2024, 5, 10)

	assert.Equal(t, -1, DaysUntilStart(Training{StartDate: day(2024, 5, 9)}, today))
	assert.Equal(t, 0, DaysUntilStart(Training{StartDate: day(2024, 5, 10)}, today))
	assert.Equal(t, 21, DaysUntilStart(Training{StartDate: day(2024, 5, 31)}, today))
	// a late-evening "today" still counts as the same calendar day
	assert.Equal(t, -1, DaysUntilStart(Training{StartDate: day(2024, 5, 9)}, today.Add(22*time.Hour)))
}

func TestDaysBetween_BeyondDurationRange(t *testing.T) {
	today := day(2024, 5, 10)

	assert.Equal(t, -739015, DaysUntilStart(Training{}, today), "zero start date counts from 0001-01-01")
	assert.Equal(t, 739015, DaysBetween(time.Time{}, today))
	assert.Equal(t, 365*400+97, DaysBetween(day(2000, 1, 1), day(2400, 1, 1)))
}

func TestIsOverdue(t *testing.T) {
	today := day(2024, 5, 10)
	past := day(2024, 5, 9)

	assert.True(t, IsOverdue(Training{Status: StatusInProgress, EndDate: past}, today))
	assert.True(t, IsOverdue(Training{Status: StatusPending, EndDate: past}, today))
	assert.False(t, IsOverdue(Training{Status: StatusInProgress, EndDate: today}, today), "ending today is not overdue yet")
	assert.False(t, IsOverdue(Training{Status: StatusPending, EndDate: day(2024, 6, 1)}, today))
}

func TestCompletedIsNeverOverdue(t *testing.T) {
	today := day(2024, 5, 10)
	ends := []time.Time{day(2000, 1, 1), day(2024, 5, 9), today, day(2030, 1, 1)}
	for _, end := range ends {
		tr := Training{Status: StatusCompleted, StartDate: day(1999, 1, 1), EndDate: end, ProgressPercentage: 10}
		assert.True(t, IsCompleted(tr))
		assert.False(t, IsOverdue(tr, today), "end=%s", end.Format("2006-01-02"))
		assert.Equal(t, StatusCompleted, EffectiveStatus(tr, today))
	}
}

func TestIsCompleted_IgnoresProgress(t *testing.T) {
	assert.False(t, IsCompleted(Training{Status: StatusInProgress, ProgressPercentage: 100}))
	assert.True(t, IsCompleted(Training{Status: StatusCompleted, ProgressPercentage: 0}))
}

func TestHasCertificate(t *testing.T) {
	assert.False(t, HasCertificate(Training{}))
	assert.False(t, HasCertificate(Training{CertificateFileName: "cert.pdf"}))
	assert.True(t, HasCertificate(Training{CertificateURL: "https://x/cert"}))
	assert.True(t, HasCertificate(Training{CertificatePdfURL: "https://x/cert.pdf"}))
}

func TestEffectiveStatusAndActive(t *testing.T) {
	today := day(2024, 5, 10)
	overdue := Training{Status: StatusInProgress, EndDate: day(2024, 5, 1)}
	running := Training{Status: StatusInProgress, EndDate: day(2024, 5, 20)}
	pending := Training{Status: StatusPending, EndDate: day(2024, 5, 20)}

	assert.Equal(t, StatusOverdue, EffectiveStatus(overdue, today))
	assert.Equal(t, StatusInProgress, EffectiveStatus(running, today))
	assert.False(t, IsActive(overdue, today))
	assert.True(t, IsActive(running, today))
	assert.True(t, IsActive(pending, today))
	assert.False(t, HasProgress(pending))
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "in_progress", "completed"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	got, err := ParseStatus("overdue")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, got)

	_, err = ParseStatus("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
