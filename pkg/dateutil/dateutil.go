package dateutil

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DaysPerYear is the average year length used for service computation
	DaysPerYear = 365.25
	// DaysPerMonth is the average month length used for service computation
	DaysPerMonth = 30.44
	// HoursPerDay converts leave hours to workdays
	HoursPerDay = 8
)

// Duration is an elapsed span broken into whole years, months and days
type Duration struct {
	Years  int `yaml:"years" json:"years"`
	Months int `yaml:"months" json:"months"`
	Days   int `yaml:"days" json:"days"`
}

// TotalMonths returns the duration in whole months, ignoring days
func (d Duration) TotalMonths() int {
	return d.Years*12 + d.Months
}

// Add sums two durations, carrying months into years. Days are not carried.
func (d Duration) Add(other Duration) Duration {
	months := d.TotalMonths() + other.TotalMonths()
	return Duration{
		Years:  months / 12,
		Months: months % 12,
		Days:   d.Days + other.Days,
	}
}

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// BirthYear estimates the birth year from an age in whole years at a given date
func BirthYear(age int, atDate time.Time) int {
	return atDate.Year() - age
}

// YearsOfService calculates fractional years of service at a given date
func YearsOfService(scd, atDate time.Time) float64 {
	return atDate.Sub(scd).Hours() / 24 / DaysPerYear
}

// CompletedYearsOfService returns whole years of service, floored and never negative
func CompletedYearsOfService(scd, atDate time.Time) int {
	years := math.Floor(YearsOfService(scd, atDate))
	if years < 0 {
		return 0
	}
	return int(years)
}

// ServiceDuration breaks the elapsed time between two dates into
// years, months and days using average year and month lengths.
func ServiceDuration(scd, atDate time.Time) Duration {
	diff := atDate.Sub(scd)
	if diff < 0 {
		diff = -diff
	}
	diffDays := math.Floor(diff.Hours() / 24)

	years := math.Floor(diffDays / DaysPerYear)
	remaining := diffDays - years*DaysPerYear
	months := math.Floor(remaining / DaysPerMonth)
	remaining = math.Floor(remaining - months*DaysPerMonth)

	return Duration{
		Years:  int(years),
		Months: int(months),
		Days:   int(remaining),
	}
}

// SickLeaveCredit converts unused sick leave hours into creditable service.
// Hours become workdays, workdays are rounded to the nearest month.
func SickLeaveCredit(hours int) Duration {
	if hours <= 0 {
		return Duration{}
	}
	days := float64(hours) / HoursPerDay
	months := int(math.Floor(days/DaysPerMonth + 0.5))
	return Duration{
		Years:  months / 12,
		Months: months % 12,
	}
}

var (
	mraFloor   = decimal.NewFromInt(55)
	mraCeiling = decimal.NewFromInt(57)
)

// MinimumRetirementAgeForBirthYear returns the Minimum Retirement Age in
// fractional years. Born 1947 or earlier: 55. Born 1970 or later: 57.
// In between the MRA rises by two months for every year past 1947.
func MinimumRetirementAgeForBirthYear(birthYear int) decimal.Decimal {
	switch {
	case birthYear <= 1947:
		return mraFloor
	case birthYear >= 1970:
		return mraCeiling
	default:
		months := int64(birthYear-1947) * 2
		return mraFloor.Add(decimal.NewFromInt(months).Div(decimal.NewFromInt(12)))
	}
}

// MinimumRetirementAge calculates the Minimum Retirement Age from a birth date
func MinimumRetirementAge(birthDate time.Time) decimal.Decimal {
	return MinimumRetirementAgeForBirthYear(birthDate.Year())
}

// StartOfDay truncates a time to midnight in its own location
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
