package cfn

import (
	"fmt"
	"math"
	"time"
)

// Duration is an amount of time that renders into whole units for CloudFormation.
type Duration struct {
	d time.Duration
}

func Duration_Seconds(n float64) *Duration { return &Duration{d: time.Duration(n * float64(time.Second))} }
func Duration_Minutes(n float64) *Duration { return &Duration{d: time.Duration(n * float64(time.Minute))} }
func Duration_Hours(n float64) *Duration   { return &Duration{d: time.Duration(n * float64(time.Hour))} }
func Duration_Days(n float64) *Duration    { return &Duration{d: time.Duration(n * 24 * float64(time.Hour))} }

// DurationOf wraps a time.Duration.
func DurationOf(d time.Duration) *Duration { return &Duration{d: d} }

// ToSeconds returns the duration in whole seconds; fractional seconds are rejected.
func (d *Duration) ToSeconds() (float64, error) {
	secs := d.d.Seconds()
	if secs != math.Trunc(secs) {
		return 0, Errorf(CodeValidationFailed, "'%s' cannot be converted into a whole number of seconds", d.d)
	}
	return secs, nil
}

// ToMinutes returns the duration in whole minutes.
func (d *Duration) ToMinutes() (float64, error) {
	mins := d.d.Minutes()
	if mins != math.Trunc(mins) {
		return 0, Errorf(CodeValidationFailed, "'%s' cannot be converted into a whole number of minutes", d.d)
	}
	return mins, nil
}

// Std returns the underlying time.Duration.
func (d *Duration) Std() time.Duration {
	return d.d
}

func (d *Duration) String() string {
	return fmt.Sprintf("Duration.seconds(%v)", d.d.Seconds())
}
