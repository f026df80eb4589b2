// Package timex has small time helpers shared by the polling service.
package timex

import "time"

// NowMs returns Unix milliseconds as int64. Sample timestamps on the wire
// use this unit.
func NowMs() int64 { return time.Now().UnixMilli() }
