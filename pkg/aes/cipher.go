// Package aes implements the Advanced Encryption Standard block
// cipher from scratch, together with the ECB, CBC and CTR modes of
// operation built on top of it and a heuristic ECB-mode detector.
//
// Note that this implementation has neither been verified to be
// correct, nor to be secure: it makes no constant-time guarantees.
// It is a vehicle for studying the cipher. Do not use it for
// production!
package aes

import "crypto/cipher"

// The AES block size in bytes.
const BlockSize = 16

// A Cipher is an instance of AES using a particular key. The key
// schedule is derived once at construction and never written again,
// so a Cipher is safe for concurrent block operations.
type Cipher struct {
	// w holds the round-key words, exactly 4*(nr+1) of them.
	w [][4]byte
	// nr is the number of rounds: 10, 12 or 14 depending on key size.
	nr int
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher creates and returns a new Cipher. The key argument should
// be the AES key, either 16, 24, or 32 bytes to select AES-128,
// AES-192, or AES-256. The key is only read; the caller keeps
// ownership of it.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}
	nr := len(key)/4 + 6
	c := &Cipher{
		w:  make([][4]byte, 4*(nr+1)),
		nr: nr,
	}
	expandKey(key, c.w)
	return c, nil
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// rotWord cyclically shifts the bytes of w left by one.
func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// subWord substitutes every byte of w through the forward sbox.
func subWord(w [4]byte) [4]byte {
	for i, b := range w {
		w[i] = sbox0[b]
	}
	return w
}

// expandKey derives the round-key words from the raw key. The first
// keywords words are the key itself; every later word starts from the
// previous word, is rotated, substituted and XORed with the round
// constant on key-length boundaries (substituted only at the midpoint
// of each 256-bit key period), and is finally XORed with the word
// keywords positions back. The round constant doubles per period; the
// reset to 0x1b at word 36 is 0x80 doubled and reduced in GF(2^8).
func expandKey(key []byte, w [][4]byte) {
	keywords := len(key) / 4
	for i, b := range key {
		w[i/4][i%4] = b
	}
	rcon := byte(0x01)
	for i := keywords; i < len(w); i++ {
		w[i] = w[i-1]
		if i%keywords == 0 {
			w[i] = subWord(rotWord(w[i]))
			if i%36 == 0 {
				rcon = 0x1b
			}
			w[i][0] ^= rcon
			rcon <<= 1
		} else if keywords > 6 && i%keywords == 4 {
			w[i] = subWord(w[i])
		}
		for j := 0; j < 4; j++ {
			w[i][j] ^= w[i-keywords][j]
		}
	}
}
