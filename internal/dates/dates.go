// Package dates converts the two textual date formats the service deals
// with into calendar dates: the provider's localized "02 Jan 2006" form and
// the ISO "2006-01-02" form used by query parameters.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Zone anchors parsed ISO dates so that day boundaries in ranking windows
// line up with the timestamps the service writes. Fixed offset, no DST.
var Zone = time.FixedZone("UTC+2", 2*60*60)

var monthAbbrev = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ParseError reports a date string that could not be interpreted.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse date %q: %s", e.Input, e.Reason)
}

// ParseEnglishDate parses dates like "01 Jul 2019": exactly three
// space-separated tokens with a 3-letter English month abbreviation.
// The result is a calendar date at midnight UTC.
func ParseEnglishDate(text string) (time.Time, error) {
	tokens := strings.Split(text, " ")
	if len(tokens) != 3 {
		return time.Time{}, &ParseError{Input: text, Reason: "want <day> <Mon> <year>"}
	}
	day, err := strconv.Atoi(tokens[0])
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Reason: "day is not numeric"}
	}
	month, ok := monthAbbrev[tokens[1]]
	if !ok {
		return time.Time{}, &ParseError{Input: text, Reason: "unknown month abbreviation"}
	}
	year, err := strconv.Atoi(tokens[2])
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Reason: "year is not numeric"}
	}
	if day < 1 || day > daysIn(year, month) {
		return time.Time{}, &ParseError{Input: text, Reason: "day out of range"}
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// ParseISODate parses dates like "2019-12-31": exactly three
// hyphen-separated numeric tokens. The result is midnight in Zone so that
// adjacent window boundaries compare correctly against stored timestamps.
func ParseISODate(text string) (time.Time, error) {
	tokens := strings.Split(text, "-")
	if len(tokens) != 3 {
		return time.Time{}, &ParseError{Input: text, Reason: "want yyyy-mm-dd"}
	}
	year, err := strconv.Atoi(tokens[0])
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Reason: "year is not numeric"}
	}
	monthNum, err := strconv.Atoi(tokens[1])
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Reason: "month is not numeric"}
	}
	if monthNum < 1 || monthNum > 12 {
		return time.Time{}, &ParseError{Input: text, Reason: "month out of range"}
	}
	month := time.Month(monthNum)
	day, err := strconv.Atoi(tokens[2])
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Reason: "day is not numeric"}
	}
	if day < 1 || day > daysIn(year, month) {
		return time.Time{}, &ParseError{Input: text, Reason: "day out of range"}
	}
	return time.Date(year, month, day, 0, 0, 0, 0, Zone), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
