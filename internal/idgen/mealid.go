package idgen

import (
	"strconv"
	"time"
)

// EntryID formats a meal history ID as "<unix-ms>-<base62 snowflake>". The
// millisecond prefix is the capture time; the suffix keeps IDs captured in
// the same millisecond apart.
func (g *Generator) EntryID(capturedAt time.Time) string {
	return strconv.FormatInt(capturedAt.UnixMilli(), 10) + "-" + Encode(g.NextID())
}
