package entry

import (
	"fmt"
)

const layoutLong = "Monday, January 2, 2006"

// Title is the long form of the entry's date, or its key when the key is not
// a valid date.
func (e Entry) Title() string {
	if e.Date.IsZero() {
		return e.Key
	}
	return e.Date.Format(layoutLong)
}

// Row returns the columns used for tabular output.
func (e Entry) Row() (string, string) {
	if e.Date.IsZero() {
		return e.Key, e.Content
	}
	return e.Date.Format("Mon Jan _2 2006"), e.Content
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Content)
}
