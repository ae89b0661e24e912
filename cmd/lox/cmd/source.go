package cmd

import (
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readSource reads path and strips a leading UTF-8 BOM using x/text's
// decoder, the I/O-boundary counterpart to internal/lexer's own raw
// 3-byte BOM check on in-memory source.
func readSource(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
