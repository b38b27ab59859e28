package native

import "time"

// FiletimeEpochOffset is the number of 100-nanosecond intervals between the
// Windows FILETIME epoch (1601-01-01T00:00:00Z) and the Unix epoch.
const FiletimeEpochOffset int64 = 11644473600 * filetimeTicksPerSecond

const filetimeTicksPerSecond = 10_000_000

// FiletimeToTime converts a FILETIME value (100ns ticks since 1601) to a
// time.Time.
func FiletimeToTime(ft int64) time.Time {
	ticks := ft - FiletimeEpochOffset
	return time.Unix(ticks/filetimeTicksPerSecond, (ticks%filetimeTicksPerSecond)*100)
}

// TimeToFiletime converts t to a FILETIME value, truncating to 100ns.
func TimeToFiletime(t time.Time) int64 {
	return t.Unix()*filetimeTicksPerSecond + int64(t.Nanosecond())/100 + FiletimeEpochOffset
}

// FiletimeFromParts assembles a FILETIME from its high and low 32-bit words.
func FiletimeFromParts(high, low uint32) int64 {
	return int64(high)<<32 | int64(low)
}

// TimespecToTime converts a POSIX timespec to a time.Time.
func TimespecToTime(sec, nsec int64) time.Time {
	return time.Unix(sec, nsec)
}
