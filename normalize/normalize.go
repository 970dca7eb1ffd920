// Package normalize derives the cleaned fields used by both reports from raw
// activity-log values.
package normalize

import (
	"activity-log/errors"
	"fmt"
	"strings"
	"time"
)

// GivenName returns the first whitespace-delimited token of a full name.
func GivenName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// AccessCode applies the same first-token rule to an access descriptor,
// so "Collector (All Accounts)" becomes "Collector".
func AccessCode(access string) string {
	return GivenName(access)
}

// ClockString formats the time-of-day of t as HH:MM:SS, or "" when ok is false.
func ClockString(t time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return t.Format("15:04:05")
}

// SinceMidnight returns the time-of-day component of t.
func SinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// AccessPolicy selects how the access descriptor is reported.
type AccessPolicy int

const (
	// FirstToken keeps every record and reports the first token of Access.
	FirstToken AccessPolicy = iota
	// AllowList keeps only records whose Access exactly matches an entry.
	AllowList
)

func (p AccessPolicy) String() string {
	switch p {
	case AllowList:
		return "allow-list"
	default:
		return "first-token"
	}
}

// ParseAccessPolicy maps a flag value to an AccessPolicy.
func ParseAccessPolicy(s string) (AccessPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first-token":
		return FirstToken, nil
	case "allow-list":
		return AllowList, nil
	default:
		return FirstToken, fmt.Errorf("%w: %s", errors.ErrInvalidAccessPolicy, s)
	}
}

// DefaultAllowList holds the access levels reported under the AllowList policy.
var DefaultAllowList = []string{
	"Collector (All Accounts)",
	"Collector",
	"Collector (All Accounts No SMS and Email)",
}

// AccessFilter applies one access policy to descriptors.
type AccessFilter struct {
	Policy    AccessPolicy
	AllowList []string
}

// Apply returns the reported access value and whether the record is kept.
func (f AccessFilter) Apply(access string) (string, bool) {
	if f.Policy != AllowList {
		return AccessCode(access), true
	}
	access = strings.TrimSpace(access)
	for _, allowed := range f.AllowList {
		if access == strings.TrimSpace(allowed) {
			return access, true
		}
	}
	return "", false
}
