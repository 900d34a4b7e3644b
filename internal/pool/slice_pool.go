package pool

import (
	"sync"

	"github.com/qoifgo/qoif/pixel"
)

var pixelSlicePool = sync.Pool{
	New: func() any { return &[]pixel.Pixel{} },
}

// GetPixelSlice retrieves a pixel slice of length size from the pool.
//
// The caller must call the returned cleanup function, typically with defer,
// to give the slice back. The slice must not be used after cleanup.
func GetPixelSlice(size int) ([]pixel.Pixel, func()) {
	ptr, _ := pixelSlicePool.Get().(*[]pixel.Pixel)
	s := *ptr

	if cap(s) < size {
		s = make([]pixel.Pixel, size)
	} else {
		s = s[:size]
	}

	return s, func() {
		*ptr = s[:0]
		pixelSlicePool.Put(ptr)
	}
}
