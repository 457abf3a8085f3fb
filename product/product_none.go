//go:build !teensy40 && !teensy41

package product

// HasStringProduct reports whether this build defines StringProduct.
const HasStringProduct = false
