package repository

import (
	"encoding/base64"
	"time"
)

const (
	timeFormat = time.RFC3339Nano

	MinPageNum     = 5
	MaxPageNum     = 50
	DefaultPageNum = 10
)

// EncodeCursor will encode the last row's timestamp into an opaque cursor
func EncodeCursor(t time.Time) string {
	timeString := t.Format(timeFormat)
	return base64.StdEncoding.EncodeToString([]byte(timeString))
}

// DecodeCursor will decode the cursor provided by the client back to a time.Time
func DecodeCursor(encodedTime string) (time.Time, error) {
	byt, err := base64.StdEncoding.DecodeString(encodedTime)
	if err != nil {
		return time.Time{}, err
	}

	timeString := string(byt)
	t, err := time.Parse(timeFormat, timeString)
	return t, err
}

// PageVerify clamps the requested page size into the allowed window.
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = DefaultPageNum
	}
	if *num < MinPageNum {
		*num = MinPageNum
	}
	if *num > MaxPageNum {
		*num = MaxPageNum
	}
}
