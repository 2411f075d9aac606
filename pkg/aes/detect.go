package aes

// DetectECB reports whether data carries the ECB fingerprint: a whole
// number of blocks containing the same 16-byte chunk at two different
// offsets. Identical plaintext blocks encrypt to identical ciphertext
// blocks under ECB, so a repeat never goes unnoticed; for CBC or CTR
// output a repeat is possible but vanishingly unlikely, which makes
// this a heuristic rather than a proof.
func DetectECB(data []byte) bool {
	if len(data)%BlockSize != 0 {
		return false
	}
	seen := make(map[[BlockSize]byte]struct{}, len(data)/BlockSize)
	var block [BlockSize]byte
	for i := 0; i < len(data); i += BlockSize {
		copy(block[:], data[i:i+BlockSize])
		if _, ok := seen[block]; ok {
			return true
		}
		seen[block] = struct{}{}
	}
	return false
}
