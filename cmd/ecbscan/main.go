package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/kargakis/goaes/pkg/aes"
	fsutil "github.com/kargakis/goaes/pkg/utils/fs"
)

var (
	inPath = flag.String("in", "", "Path to a file of hex-encoded ciphertexts, one per line")
	fsType = flag.String("fs", fsutil.OsType, "Filesystem type to use")
)

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	fs, err := fsutil.GetFs(*fsType)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up filesystem")
	}
	file, err := fs.Open(*inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open input")
	}
	defer file.Close()

	var line, found int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line++
		data, err := hex.DecodeString(scanner.Text())
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("skipping line that does not decode as hex")
			continue
		}
		if aes.DetectECB(data) {
			found++
			log.Info().Int("line", line).Msg("repeated ciphertext block, looks like ECB")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal().Err(err).Msg("cannot read input")
	}
	log.Info().Int("lines", line).Int("matches", found).Msg("scan complete")
}
