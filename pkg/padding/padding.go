// Package padding implements the PKCS#7 padding scheme consumed by
// the block cipher modes.
package padding

import "errors"

// ErrInvalidPadding is returned by Unpad when the trailing padding
// length byte is zero, exceeds the buffer length, or exceeds the
// block size.
var ErrInvalidPadding = errors.New("padding: invalid PKCS#7 padding")

// Pad appends n bytes of value n to data, where n is the distance to
// the next multiple of blockSize. An input that is already
// block-aligned (including an empty one) gains a full extra block, so
// the result is always strictly longer than the input.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, 0, len(data)+n)
	padded = append(padded, data...)
	for i := 0; i < n; i++ {
		padded = append(padded, byte(n))
	}
	return padded
}

// Unpad reads the last byte of data as the padding length and
// truncates that many bytes. Only the length byte is validated; the
// padding byte values themselves are trusted.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > len(data) || n > blockSize {
		return nil, ErrInvalidPadding
	}
	return data[:len(data)-n], nil
}
