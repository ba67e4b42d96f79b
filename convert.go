package ofxevent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/rockstardevs/decimal"
)

var (
	amountPattern  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	integerPattern = regexp.MustCompile(`^[+-]?\d+`)
	offsetPattern  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)
)

// controlWhitespace is removed anywhere inside a value, not only at its ends.
const controlWhitespace = "\b\f\n\r\t\v"

// stripWhitespace trims spaces and control whitespace from both ends of s and removes control
// whitespace (backspace, form feed, newline, carriage return and tabs) everywhere else.
func stripWhitespace(s string) string {
	s = strings.Trim(s, " "+controlWhitespace)
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(controlWhitespace, r) {
			return -1
		}
		return r
	}, s)
}

// ParseAmount converts an OFX amount to a float64.
// OFX amounts use either '.' or ',' as the decimal separator and never a thousands separator, so
// the first ',' (or the first '.' when there is none) is the decimal point. Anything after the
// longest numeric prefix is ignored.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = s[:i] + "." + s[i+1:]
	}
	match := amountPattern.FindString(s)
	if match == "" {
		return 0, fmt.Errorf("error - amount %q can not be parsed", s)
	}
	d, err := decimal.NewFromString(match)
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}

// parseInt parses the leading integer of s the way atoi does.
func parseInt(s string) (int, error) {
	match := integerPattern.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if match == "" {
		return 0, fmt.Errorf("error - integer %q can not be parsed", s)
	}
	return strconv.Atoi(match)
}

// ParseDate parses an OFX date (YYYYMMDDHHMMSS.XXX[gmt offset:tz name]) into a time in loc.
//
// A date without a time and without a timezone is set to 11:59:00 in loc, which keeps the day
// stable whatever the difference between the server and the local timezone. A date with a timezone
// is converted from that offset to loc. An exact time without a timezone is taken to be GMT.
// Milliseconds are ignored.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	digits := len(s) - len(strings.TrimLeft(s, "0123456789"))
	if digits < 8 {
		return time.Time{}, fmt.Errorf("error - date %q is not in YYYYMMDDHHMMSS.XXX[gmt offset:tz name] format", s)
	}
	if loc == nil {
		loc = time.Local
	}

	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:8])
	var hour, minute, second int
	exact := false
	if digits == 14 {
		exact = true
		hour, _ = strconv.Atoi(s[8:10])
		minute, _ = strconv.Atoi(s[10:12])
		second, _ = strconv.Atoi(s[12:14])
	} else if digits > 8 {
		message(msgWarning, "ParseDate(): parsed the date of %q but not its time part", s)
	}

	offset, zoned := parseGMTOffset(s)
	if !zoned && !exact {
		return time.Date(year, time.Month(month), day, 11, 59, 0, 0, loc), nil
	}
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	_, localOffset := t.Zone()
	correction := time.Duration(float64(localOffset)-offset*3600) * time.Second
	return t.Add(correction), nil
}

// parseGMTOffset returns the offset in fractional hours of the [offset:name] suffix of an OFX date.
func parseGMTOffset(s string) (float64, bool) {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return 0, false
	}
	match := offsetPattern.FindString(s[start+1:])
	if match == "" {
		message(msgWarning, "ParseDate(): timezone of %q can not be parsed, assuming GMT", s)
		return 0, true
	}
	offset, err := strconv.ParseFloat(match, 64)
	if err != nil {
		message(msgWarning, "ParseDate(): timezone of %q can not be parsed, assuming GMT", s)
		return 0, true
	}
	return offset, true
}
