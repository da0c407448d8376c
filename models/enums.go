package models

import (
	"errors"
	"time"
)

type SpaceCategory string

const (
	SpaceCategoryCabin         SpaceCategory = "Cabin"
	SpaceCategoryDesk          SpaceCategory = "Desk"
	SpaceCategoryMeetingRoom   SpaceCategory = "Meeting Room"
	SpaceCategoryVirtualOffice SpaceCategory = "Virtual Office"
	SpaceCategoryDayPass       SpaceCategory = "Day Pass"
)

func (c SpaceCategory) Valid() bool {
	switch c {
	case SpaceCategoryCabin, SpaceCategoryDesk, SpaceCategoryMeetingRoom,
		SpaceCategoryVirtualOffice, SpaceCategoryDayPass:
		return true
	}
	return false
}

type LeaseStatus string

const (
	LeaseStatusActive LeaseStatus = "active"
	LeaseStatusEnded  LeaseStatus = "ended"
)

type RegistrationType string

const (
	RegistrationTypeIndividual RegistrationType = "individual"
	RegistrationTypeCompany    RegistrationType = "company"
)

type ReconStatus string

const (
	ReconStatusMatch        ReconStatus = "match"
	ReconStatusMismatch     ReconStatus = "mismatch"
	ReconStatusInternalOnly ReconStatus = "internal_only"
	ReconStatusZohoOnly     ReconStatus = "zoho_only"
)

type AgingBucket string

const (
	AgingBucketCurrent  AgingBucket = "Current"
	AgingBucket1To30    AgingBucket = "1-30 Days"
	AgingBucket31To60   AgingBucket = "31-60 Days"
	AgingBucket61To90   AgingBucket = "61-90 Days"
	AgingBucket90Plus   AgingBucket = "90+ Days"
)

// AgingBucketOrder fixes the presentation order of bucket summaries.
var AgingBucketOrder = []AgingBucket{
	AgingBucketCurrent,
	AgingBucket1To30,
	AgingBucket31To60,
	AgingBucket61To90,
	AgingBucket90Plus,
}

// AgingBucketForDays classifies days overdue; evaluated highest first so
// the lower bound of each higher bucket stays exclusive (30 days is still
// "1-30 Days", 31 is "31-60 Days").
func AgingBucketForDays(daysOverdue int) AgingBucket {
	switch {
	case daysOverdue > 90:
		return AgingBucket90Plus
	case daysOverdue > 60:
		return AgingBucket61To90
	case daysOverdue > 30:
		return AgingBucket31To60
	case daysOverdue > 0:
		return AgingBucket1To30
	default:
		return AgingBucketCurrent
	}
}

type ReportType string

const (
	ReportTypeProfitLoss         ReportType = "profit-loss"
	ReportTypeBalanceSheet       ReportType = "balance-sheet"
	ReportTypeCashFlow           ReportType = "cash-flow"
	ReportTypeAccountsReceivable ReportType = "accounts-receivable"
	ReportTypeTaxReport          ReportType = "tax-report"
	ReportTypeAgingReport        ReportType = "aging-report"
	ReportTypeRevenueByCustomer  ReportType = "revenue-by-customer"
	ReportTypeRevenueBySpace     ReportType = "revenue-by-space"
	ReportTypeExpenseReport      ReportType = "expense-report"
)

// MonthKey renders the billing month of a date as "YYYY-MM".
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// DateString is the "2006-01-02" wire format for report ranges.
type DateString string

func (d DateString) Parse() (time.Time, error) {
	if d == "" {
		return time.Time{}, errors.New("date is required")
	}
	return time.Parse("2006-01-02", string(d))
}

// StartOfDayUTC anchors the inclusive start of a report range.
func (d DateString) StartOfDayUTC() (time.Time, error) {
	t, err := d.Parse()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// EndOfDayUTC anchors the end of a report range at the last instant of the day.
func (d DateString) EndOfDayUTC() (time.Time, error) {
	t, err := d.Parse()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), nil
}
