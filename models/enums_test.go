package models_test

import (
	"testing"

	"bitbucket.org/mmdatafocus/spaces_backend/models"
)

// Bucket boundaries are exclusive on the lower bound of each higher bucket:
// 30 days is still "1-30 Days", 31 tips into "31-60 Days".
func TestAgingBucketBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want models.AgingBucket
	}{
		{-5, models.AgingBucketCurrent},
		{0, models.AgingBucketCurrent},
		{1, models.AgingBucket1To30},
		{30, models.AgingBucket1To30},
		{31, models.AgingBucket31To60},
		{60, models.AgingBucket31To60},
		{61, models.AgingBucket61To90},
		{90, models.AgingBucket61To90},
		{91, models.AgingBucket90Plus},
		{400, models.AgingBucket90Plus},
	}
	for _, tc := range cases {
		if got := models.AgingBucketForDays(tc.days); got != tc.want {
			t.Errorf("AgingBucketForDays(%d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestMonthKey(t *testing.T) {
	d, err := models.DateString("2024-03-15").Parse()
	if err != nil {
		t.Fatal(err)
	}
	if got := models.MonthKey(d); got != "2024-03" {
		t.Errorf("MonthKey = %q, want 2024-03", got)
	}
}

func TestDateStringRangeAnchors(t *testing.T) {
	start, err := models.DateString("2024-03-15").StartOfDayUTC()
	if err != nil {
		t.Fatal(err)
	}
	end, err := models.DateString("2024-03-15").EndOfDayUTC()
	if err != nil {
		t.Fatal(err)
	}
	if !start.Before(end) {
		t.Error("start of day is not before end of day")
	}
	if start.Hour() != 0 || end.Hour() != 23 {
		t.Errorf("anchors wrong: start=%s end=%s", start, end)
	}
	if _, err := models.DateString("").Parse(); err == nil {
		t.Error("empty date string should not parse")
	}
}
