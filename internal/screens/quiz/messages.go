package quiz

import "time"

// tickMsg drives the elapsed-time accumulator while a question is open.
type tickMsg time.Time
