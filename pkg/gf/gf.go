// Package gf implements byte arithmetic in GF(2^8), the finite field
// underlying the AES mix-columns diffusion step.
package gf

// Xtime multiplies b by x in GF(2^8). The product is reduced by the
// AES polynomial x^8 + x^4 + x^3 + x + 1 whenever the high bit is set
// before the shift.
func Xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

// Mul multiplies a and b in GF(2^8) by repeated doubling: a is
// doubled once per bit position of b, and doubled values selected by
// the bits of b are summed with XOR.
func Mul(a, b byte) byte {
	var product byte
	for mask := byte(0x01); mask != 0; mask <<= 1 {
		if b&mask != 0 {
			product ^= a
		}
		a = Xtime(a)
	}
	return product
}
