package store

import (
	"fmt"
	"strings"
)

// MsgTaskNotFound is the fixed failure text for a lookup or mutation that
// did not match an active row. The exact wording is part of the public
// contract; transports map it to their not-found representation.
const MsgTaskNotFound = "Task not found."

// databaseErrorPrefix starts every storage-fault failure message.
const databaseErrorPrefix = "Database error: "

// DatabaseError converts an unexpected storage error into the fixed-format
// failure message carried inside a Result. The underlying detail is kept so
// operators can diagnose from the message alone; callers must not let it
// reach end users unredacted.
func DatabaseError(err error) string {
	return fmt.Sprintf("%s%v", databaseErrorPrefix, err)
}

// IsNotFound reports whether a failure message list signals a missing task.
func IsNotFound(errs []string) bool {
	for _, msg := range errs {
		if msg == MsgTaskNotFound {
			return true
		}
	}
	return false
}

// IsDatabaseError reports whether a single failure message came from a
// wrapped storage fault.
func IsDatabaseError(msg string) bool {
	return strings.HasPrefix(msg, databaseErrorPrefix)
}
