package utils

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Room numbers are free-form strings ("9", "10", "A12-3"), so ordering uses a
// numeric-aware collator: "9" sorts before "10". The collator keeps internal
// iterator state between calls, so access is serialized.
var (
	roomMu       sync.Mutex
	roomCollator = collate.New(language.Und, collate.Numeric)
)

func CompareRoomNumbers(a, b string) int {
	roomMu.Lock()
	defer roomMu.Unlock()
	return roomCollator.CompareString(a, b)
}
