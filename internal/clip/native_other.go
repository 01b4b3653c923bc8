//go:build !windows && !darwin && (!linux || android)

package clip

import (
	"fmt"
	"runtime"
)

func newNative() (Backend, error) {
	return nil, fmt.Errorf("no native clipboard on %s", runtime.GOOS)
}
