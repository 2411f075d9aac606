package aes

import (
	"github.com/kargakis/goaes/pkg/padding"
	"github.com/kargakis/goaes/pkg/utils/bits"
)

// The mode functions take a constructed *Cipher so the key schedule
// is derived once per key and shared across any number of calls.

// EncryptECB encrypts an arbitrary-length plaintext in ECB mode: the
// input is PKCS#7-padded to a multiple of the block size and each
// block is encrypted independently. The ciphertext is always strictly
// longer than the plaintext.
func EncryptECB(c *Cipher, plaintext []byte) []byte {
	padded := padding.Pad(plaintext, BlockSize)
	ciphertext := make([]byte, len(padded))
	for i := 0; i < len(padded); i += BlockSize {
		c.Encrypt(ciphertext[i:i+BlockSize], padded[i:i+BlockSize])
	}
	return ciphertext
}

// DecryptECB decrypts an ECB-mode ciphertext and strips the padding.
// It returns a BlockSizeError when the ciphertext is not a whole
// number of blocks, and padding.ErrInvalidPadding when the trailing
// padding byte is out of range.
func DecryptECB(c *Cipher, ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%BlockSize != 0 {
		return nil, BlockSizeError(len(ciphertext))
	}
	plaintext := make([]byte, len(ciphertext))
	for i := 0; i < len(ciphertext); i += BlockSize {
		c.Decrypt(plaintext[i:i+BlockSize], ciphertext[i:i+BlockSize])
	}
	return padding.Unpad(plaintext, BlockSize)
}

// EncryptCBC encrypts an arbitrary-length plaintext in CBC mode. Each
// padded plaintext block is XORed with the previous ciphertext block
// (the IV for the first) before encryption. iv must be exactly one
// block; like the standard library mode constructors, a wrong-sized
// IV panics.
func EncryptCBC(c *Cipher, iv, plaintext []byte) []byte {
	if len(iv) != BlockSize {
		panic("aes: IV length must equal block size")
	}
	padded := padding.Pad(plaintext, BlockSize)
	ciphertext := make([]byte, len(padded))
	var chain, in [BlockSize]byte
	copy(chain[:], iv)
	for i := 0; i < len(padded); i += BlockSize {
		for j := 0; j < BlockSize; j++ {
			in[j] = padded[i+j] ^ chain[j]
		}
		c.Encrypt(ciphertext[i:i+BlockSize], in[:])
		copy(chain[:], ciphertext[i:i+BlockSize])
	}
	return ciphertext
}

// DecryptCBC decrypts a CBC-mode ciphertext and strips the padding.
// Each decrypted block is XORed with the previous ciphertext block
// (the IV for the first); the chaining value is the consumed
// ciphertext block, not the recovered plaintext.
func DecryptCBC(c *Cipher, iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		panic("aes: IV length must equal block size")
	}
	if len(ciphertext)%BlockSize != 0 {
		return nil, BlockSizeError(len(ciphertext))
	}
	plaintext := make([]byte, len(ciphertext))
	var chain, out [BlockSize]byte
	copy(chain[:], iv)
	for i := 0; i < len(ciphertext); i += BlockSize {
		c.Decrypt(out[:], ciphertext[i:i+BlockSize])
		for j := 0; j < BlockSize; j++ {
			plaintext[i+j] = out[j] ^ chain[j]
		}
		copy(chain[:], ciphertext[i:i+BlockSize])
	}
	return padding.Unpad(plaintext, BlockSize)
}

// EncryptCTR encrypts (or decrypts) data in CTR mode. The most
// significant 8 bytes of the IV are a fixed big-endian nonce and the
// least significant 8 bytes are the initial counter value,
// incremented once per keystream block. No padding is applied: the
// output length equals the input length exactly, and any input
// length is valid.
func EncryptCTR(c *Cipher, iv, data []byte) []byte {
	if len(iv) != BlockSize {
		panic("aes: IV length must equal block size")
	}
	nonce := bits.BytesToUint64(iv[:8])
	ctr := bits.BytesToUint64(iv[8:])
	out := make([]byte, len(data))
	var counter, keystream [BlockSize]byte
	bits.PutUint64(counter[:8], nonce)
	for i := 0; i < len(data); i += BlockSize {
		bits.PutUint64(counter[8:], ctr)
		ctr++
		c.Encrypt(keystream[:], counter[:])
		n := len(data) - i
		if n > BlockSize {
			n = BlockSize
		}
		for j := 0; j < n; j++ {
			out[i+j] = data[i+j] ^ keystream[j]
		}
	}
	return out
}

// DecryptCTR decrypts data in CTR mode. CTR is an XOR stream, so
// decryption is the same operation as encryption.
func DecryptCTR(c *Cipher, iv, data []byte) []byte {
	return EncryptCTR(c, iv, data)
}
