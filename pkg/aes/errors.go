package aes

import "strconv"

// KeySizeError records an attempt to build a cipher from a key whose
// length is not 16, 24 or 32 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes: invalid key size " + strconv.Itoa(int(k))
}

// BlockSizeError records a buffer whose length is not a multiple of
// the block size where full blocks are required.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "aes: input length " + strconv.Itoa(int(b)) + " is not a multiple of the block size"
}
