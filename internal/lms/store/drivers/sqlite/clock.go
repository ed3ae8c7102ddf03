package sqlite

import "time"

// now is the timestamp written by updates that do not carry one.
func now() time.Time { return time.Now().UTC() }
