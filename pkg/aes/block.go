package aes

import "github.com/kargakis/goaes/pkg/gf"

// state is the 4x4 byte matrix the round pipeline operates on. Bytes
// are loaded column-major: input byte i maps to row i%4, column i/4.
type state [4][4]byte

func loadState(in []byte) state {
	var s state
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = in[r+4*c]
		}
	}
	return s
}

func (s *state) store(out []byte) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r+4*c] = s[r][c]
		}
	}
}

// addRoundKey XORs four round-key words into the state. Word c
// supplies column c, byte r of the word landing in row r.
func (s *state) addRoundKey(w [][4]byte) {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[r][c] ^= w[c][r]
		}
	}
}

func (s *state) subBytes() {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = sbox0[s[r][c]]
		}
	}
}

func (s *state) invSubBytes() {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = sbox1[s[r][c]]
		}
	}
}

// shiftRows rotates row r left by r positions; row 0 is untouched.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[c] = s[r][(c+r)%4]
		}
		s[r] = row
	}
}

func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		var row [4]byte
		for c := 0; c < 4; c++ {
			row[(c+r)%4] = s[r][c]
		}
		s[r] = row
	}
}

// mixColumns multiplies each state column by the fixed circulant
// matrix over GF(2^8) with first row {2, 3, 1, 1}.
func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gf.Mul(0x02, a0) ^ gf.Mul(0x03, a1) ^ a2 ^ a3
		s[1][c] = a0 ^ gf.Mul(0x02, a1) ^ gf.Mul(0x03, a2) ^ a3
		s[2][c] = a0 ^ a1 ^ gf.Mul(0x02, a2) ^ gf.Mul(0x03, a3)
		s[3][c] = gf.Mul(0x03, a0) ^ a1 ^ a2 ^ gf.Mul(0x02, a3)
	}
}

// invMixColumns applies the inverse matrix, first row {14, 11, 13, 9}.
func (s *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gf.Mul(0x0e, a0) ^ gf.Mul(0x0b, a1) ^ gf.Mul(0x0d, a2) ^ gf.Mul(0x09, a3)
		s[1][c] = gf.Mul(0x09, a0) ^ gf.Mul(0x0e, a1) ^ gf.Mul(0x0b, a2) ^ gf.Mul(0x0d, a3)
		s[2][c] = gf.Mul(0x0d, a0) ^ gf.Mul(0x09, a1) ^ gf.Mul(0x0e, a2) ^ gf.Mul(0x0b, a3)
		s[3][c] = gf.Mul(0x0b, a0) ^ gf.Mul(0x0d, a1) ^ gf.Mul(0x09, a2) ^ gf.Mul(0x0e, a3)
	}
}

// Encrypt encrypts the first 16 bytes of src into dst. It panics on
// short buffers, matching the crypto/cipher Block contract.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	s := loadState(src)
	s.addRoundKey(c.w[0:4])
	for round := 0; round < c.nr; round++ {
		s.subBytes()
		s.shiftRows()
		if round < c.nr-1 {
			s.mixColumns()
		}
		s.addRoundKey(c.w[(round+1)*4 : (round+2)*4])
	}
	s.store(dst)
}

// Decrypt decrypts the first 16 bytes of src into dst, consuming the
// round keys from last to first. It panics on short buffers.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes: output not full block")
	}
	s := loadState(src)
	s.addRoundKey(c.w[c.nr*4 : (c.nr+1)*4])
	for round := c.nr; round > 0; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(c.w[(round-1)*4 : round*4])
		if round > 1 {
			s.invMixColumns()
		}
	}
	s.store(dst)
}
