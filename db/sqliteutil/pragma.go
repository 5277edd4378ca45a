package sqliteutil

import (
	"fmt"
	"strings"
)

// DSN decorates a SQLite DSN with the pragmas the score store relies on:
// WAL journaling and a busy timeout. Pragmas already present in the DSN are
// left alone; in-memory databases are returned as is.
func DSN(dsn string, busyTimeoutMS int) string {
	if dsn == "" || isMemory(dsn) {
		return dsn
	}
	pragmas := []string{"journal_mode(WAL)"}
	if busyTimeoutMS > 0 {
		pragmas = append(pragmas, fmt.Sprintf("busy_timeout(%d)", busyTimeoutMS))
	}
	lower := strings.ToLower(dsn)
	for _, pragma := range pragmas {
		name := pragma[:strings.IndexByte(pragma, '(')]
		if strings.Contains(lower, "_pragma="+name) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=" + pragma
	}
	return dsn
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(strings.ToLower(dsn), "file::memory:")
}
