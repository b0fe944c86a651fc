package domain

import (
	"strconv"
	"time"
)

// Millis is a timestamp encoded on the wire as Unix milliseconds.
type Millis time.Time

func (m Millis) Time() time.Time { return time.Time(m) }

func (m Millis) Equal(o Millis) bool { return time.Time(m).Equal(time.Time(o)) }

func (m Millis) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, time.Time(m).UnixMilli(), 10), nil
}

func (m *Millis) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	ms, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*m = Millis(time.UnixMilli(ms))
	return nil
}
