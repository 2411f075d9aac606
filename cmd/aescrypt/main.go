package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/kargakis/goaes/pkg/aes"
	fsutil "github.com/kargakis/goaes/pkg/utils/fs"
)

var (
	keyHex  = flag.String("key", "", "Cipher key as a hex string; must decode to 16, 24 or 32 bytes")
	ivHex   = flag.String("iv", "", "Initialization vector as a hex string; must decode to 16 bytes (CBC and CTR only)")
	mode    = flag.String("mode", "cbc", "Mode of operation: ecb, cbc or ctr")
	decrypt = flag.Bool("d", false, "Decrypt instead of encrypt")
	inPath  = flag.String("in", "", "Path to the input file")
	outPath = flag.String("out", "", "Path to the output file")
	fsType  = flag.String("fs", fsutil.OsType, "Filesystem type to use")
)

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	key, err := hex.DecodeString(*keyHex)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot decode key")
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up cipher")
	}

	var iv []byte
	if *mode != "ecb" {
		iv, err = hex.DecodeString(*ivHex)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot decode IV")
		}
		if len(iv) != aes.BlockSize {
			log.Fatal().Int("length", len(iv)).Msg("IV must decode to exactly one block")
		}
	}

	fs, err := fsutil.GetFs(*fsType)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up filesystem")
	}
	input, err := afero.ReadFile(fs, *inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read input")
	}

	output, err := run(c, iv, input, *mode, *decrypt)
	if err != nil {
		log.Fatal().Err(err).Msg("cipher operation failed")
	}

	if err := afero.WriteFile(fs, *outPath, output, 0644); err != nil {
		log.Fatal().Err(err).Msg("cannot write output")
	}
	log.Info().Str("mode", *mode).Bool("decrypt", *decrypt).Int("bytes", len(output)).Msg("done")
}

// run dispatches one buffer through the selected mode.
func run(c *aes.Cipher, iv, input []byte, mode string, decrypt bool) ([]byte, error) {
	switch mode {
	case "ecb":
		if decrypt {
			return aes.DecryptECB(c, input)
		}
		return aes.EncryptECB(c, input), nil
	case "cbc":
		if decrypt {
			return aes.DecryptCBC(c, iv, input)
		}
		return aes.EncryptCBC(c, iv, input), nil
	case "ctr":
		if decrypt {
			return aes.DecryptCTR(c, iv, input), nil
		}
		return aes.EncryptCTR(c, iv, input), nil
	}
	return nil, fmt.Errorf("unknown mode: %s (supported modes: ecb, cbc, ctr)", mode)
}
