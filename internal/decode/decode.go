// Package decode projects arbitrary bytes onto text.
package decode

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Lossy returns raw as a string, silently dropping every byte sequence that is not valid UTF-8.
// It never fails: should the decoder itself error out, the quoted form of raw is returned instead.
func Lossy(raw []byte) string {
	if text, err := Strict(raw); err == nil {
		return text
	}

	return fmt.Sprintf("%q", raw)
}

// Strict is the primary strategy of Lossy, exposing the decoder error.
func Strict(raw []byte) (string, error) {
	text, _, err := transform.Bytes(dropIllFormed{}, raw)
	if err != nil {
		return "", fmt.Errorf("decoding utf-8: %w", err)
	}

	return string(text), nil
}

// dropIllFormed copies valid UTF-8 and skips every byte that does not start a valid encoding.
// A well-formed U+FFFD is kept.
type dropIllFormed struct {
	transform.NopResetter
}

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0

	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}

			nSrc++

			continue
		}

		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}

	return nDst, nSrc, nil
}
