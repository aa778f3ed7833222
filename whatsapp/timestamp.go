package whatsapp

import (
	"strconv"
	"time"
)

// Timestamp is the Unix epoch seconds moment, string-encoded on the wire.
type Timestamp time.Time

func (ts *Timestamp) Time() (tm time.Time) {
	if ts != nil {
		tm = (time.Time)(*ts)
	}
	return // tm
}

func (ts *Timestamp) IsZero() bool {
	return ts.Time().IsZero()
}

func (ts *Timestamp) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	tsec, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*(ts) = Timestamp(time.Unix(tsec, 0).UTC())
	return nil
}

func (ts *Timestamp) MarshalText() ([]byte, error) {
	tm := ts.Time()
	if tm.IsZero() {
		return nil, nil
	}
	return strconv.AppendInt(nil, tm.Unix(), 10), nil
}
