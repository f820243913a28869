package combine

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadTextFile returns the content of a candidate decoded as UTF-8.
// Malformed sequences are replaced with U+FFFD instead of failing the file,
// and CRLF or lone CR line endings become LF.
// It returns ErrBinary without reading past the probe when the probe holds a NUL byte.
func ReadTextFile(fsys afero.Fs, filePath string, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := fsys.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	probe, err := readProbe(file)
	if err != nil {
		return "", err
	}
	if looksBinary(probe) {
		return "", ErrBinary
	}

	decoder := transform.NewReader(
		io.MultiReader(bytes.NewReader(probe), file),
		transform.Chain(unicode.UTF8.NewDecoder(), newlineNormalizer{}),
	)
	content, err := io.ReadAll(decoder)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", filePath),
		zap.Int("contentSizeBytes", len(content)))
	return string(content), nil
}

// fileHeader is the label written before each file's content.
func fileHeader(filePath string) string {
	return fmt.Sprintf("--- File: %s ---\n\n", filePath)
}

const fileSeparator = "\n\n"

// newlineNormalizer rewrites "\r\n" and lone "\r" to "\n".
type newlineNormalizer struct{ transform.NopResetter }

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst == len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		c, size := src[nSrc], 1
		if c == '\r' {
			if nSrc+1 == len(src) && !atEOF {
				// The next byte decides between CRLF and a lone CR.
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				size = 2
			}
			c = '\n'
		}
		dst[nDst] = c
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}
