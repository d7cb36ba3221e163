// Package record implements the comma-separated device record that flows
// through the string queue as an opaque text line: which BLE
// characteristic to read, under what tag, and how often.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error bits reported in the Errors bitmask.
const (
	ErrorDeviceNotFound = 1 << 0
	ErrorConnectFail    = 1 << 1
)

// Interval bounds in minutes. One read per day is the slowest schedule.
const (
	MinIntervalMinutes = 1
	MaxIntervalMinutes = 1440
)

// Field byte limits. Over-long input truncates silently at these.
const (
	maxTagLen   = 63
	maxFieldLen = 37
)

// ErrFormat indicates a configuration line with too few comma-separated
// fields.
var ErrFormat = errors.New("record: format error")

// Record describes one value to read from a remote device.
type Record struct {
	Tag                string // identifies the measurement in logs
	IntervalMinutes    int    // minutes between reads, within [1, 1440]
	DeviceID           string // advertised name or MAC address
	ServiceUUID        string // service to read from
	CharacteristicUUID string // characteristic to read
	DeviceAddr         string // MAC address, set once seen advertising
	Connects           int    // 0 means never connected
	Errors             int    // bitmask of Error* bits, 0 means clean
}

// New returns a record with the default read interval and no history.
func New() *Record {
	return &Record{
		IntervalMinutes: 60,
	}
}

// String renders the full diagnostic encoding:
// tag,interval,deviceId,serviceUuid,characteristicUuid,deviceAddr,connects,errors
// with errors in hex. This is the line that gets enqueued.
func (r *Record) String() string {
	return fmt.Sprintf("%s,%d,%s,%s,%s,%s,%d,%x",
		r.Tag,
		r.IntervalMinutes,
		r.DeviceID,
		r.ServiceUUID,
		r.CharacteristicUUID,
		r.DeviceAddr,
		r.Connects,
		r.Errors,
	)
}

// Parse reads a configuration line into a fresh record. See Set.
func Parse(s string) (*Record, error) {
	r := New()
	if err := r.Set(s); err != nil {
		return nil, err
	}

	return r, nil
}

// Set fills the configurable fields from a comma-separated line:
// tag,interval,deviceId,serviceUuid,characteristicUuid. The first four
// commas delimit fields; everything after the fourth comma belongs to the
// characteristic UUID. A non-numeric interval parses as zero and is then
// clamped into [MinIntervalMinutes, MaxIntervalMinutes]. Device address
// and the counters are runtime state and stay untouched.
func (r *Record) Set(s string) error {
	fields := strings.SplitN(s, ",", 5)
	if len(fields) < 5 {
		return fmt.Errorf("%w: comma %d not found", ErrFormat, len(fields))
	}

	minutes, _ := strconv.Atoi(fields[1])
	if minutes < MinIntervalMinutes {
		minutes = MinIntervalMinutes
	}
	if minutes > MaxIntervalMinutes {
		minutes = MaxIntervalMinutes
	}

	r.Tag = clip(fields[0], maxTagLen)
	r.IntervalMinutes = minutes
	r.DeviceID = clip(fields[2], maxFieldLen)
	r.ServiceUUID = clip(fields[3], maxFieldLen)
	r.CharacteristicUUID = clip(fields[4], maxFieldLen)

	return nil
}

func clip(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}

	return s
}
