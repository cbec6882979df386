//go:build !term3ddebug

package math

import "testing"

func TestFastInvertAffineUncheckedOnProjection(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("FastInvertAffine panicked without term3ddebug: %v", r)
		}
	}()
	Perspective(1, 1, 1, 10).FastInvertAffine()
}
