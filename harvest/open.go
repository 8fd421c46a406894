package harvest

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Open reads the harv_processed file at path, expanding a leading ~ and
// transparently decompressing gzip/zip/xz/bzip2 payloads.
func Open(path string) ([]Marker, []float64, error) {
	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, nil, pfx.Err(err)
	}
	defer f.Close()

	r, err := maybeDecompress(bufio.NewReader(f))
	if err != nil {
		return nil, nil, pfx.Err(err)
	}

	return ReadHarvProcessed(r)
}

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return path
		}
		path = filepath.Join(usr.HomeDir, path[2:])
	}

	return path
}

type compression byte

const (
	compressionNone compression = iota
	compressionGzip
	compressionZip
	compressionXZ
	compressionBZip2
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var magicBytes = map[compression][]byte{
	compressionGzip:  {0x1f, 0x8b, 0x08},
	compressionZip:   {0x50, 0x4b, 0x03, 0x04},
	compressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	compressionBZip2: {0x42, 0x5a, 0x68},
}

// maybeDecompress sniffs the stream's magic bytes and wraps it in the
// matching decompressor. Streams with no recognized signature pass through
// unchanged. For zip archives the first member is read.
func maybeDecompress(br *bufio.Reader) (io.Reader, error) {
	head, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch detectCompression(head) {
	case compressionGzip:
		return gzip.NewReader(br)
	case compressionZip:
		zs := zipstream.NewReader(br)
		if _, err := zs.Next(); err != nil {
			return nil, err
		}
		return zs, nil
	case compressionXZ:
		return xz.NewReader(br, 0)
	case compressionBZip2:
		return bzip2.NewReader(br), nil
	}

	return br, nil
}

func detectCompression(head []byte) compression {
	for c, sig := range magicBytes {
		if bytes.HasPrefix(head, sig) {
			return c
		}
	}

	return compressionNone
}
