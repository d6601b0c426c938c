package helpers

import (
	"fmt"
	"strings"
	"time"

	"github.com/jakehl/goid"
)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func LocationTaipei() *time.Location {
	location, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		fmt.Println(err)
	}
	return location
}

func GetCurrentTime() time.Time {
	return time.Now().In(LocationTaipei())
}

// GroupDigits inserts a space every size characters, trailing space trimmed.
// Used for the on-canvas account display, eg "1234 5678 90".
func GroupDigits(s string, size int) string {
	if size <= 0 || len(s) <= size {
		return s
	}
	var b strings.Builder
	for i, r := range []rune(s) {
		if i > 0 && i%size == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
