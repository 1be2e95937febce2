package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareRoomNumbers(t *testing.T) {
	assert.Negative(t, CompareRoomNumbers("9", "10"))
	assert.Positive(t, CompareRoomNumbers("10", "9"))
	assert.Zero(t, CompareRoomNumbers("101", "101"))
}

func TestCompareRoomNumbersMixed(t *testing.T) {
	// Alphanumeric room labels sort numerically within the digit runs.
	assert.Negative(t, CompareRoomNumbers("A9", "A10"))
	assert.Negative(t, CompareRoomNumbers("B2", "B11"))
	assert.Negative(t, CompareRoomNumbers("A10", "B2"))
}

func TestCompareRoomNumbersEmpty(t *testing.T) {
	assert.Negative(t, CompareRoomNumbers("", "1"))
	assert.Zero(t, CompareRoomNumbers("", ""))
}

func TestCompareRoomNumbersConcurrent(t *testing.T) {
	// Roster listings sort concurrently across requests; comparisons must
	// stay correct under parallel use.
	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				assert.Negative(t, CompareRoomNumbers("9", "10"))
				assert.Positive(t, CompareRoomNumbers("102", "21"))
			}
		}()
	}
	wg.Wait()
}
