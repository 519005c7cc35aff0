package util

import "time"

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// Clock 便于测试中固定“今天”
type Clock func() time.Time

func (c Clock) Today() string {
	if c == nil {
		return time.Now().Format(DateFormat)
	}
	return c().Format(DateFormat)
}
