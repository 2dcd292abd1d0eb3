/*
 * compressed.go, part of chemtraj
 *
 * Copyright 2012 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package dcd

import (
	"bufio"
	"compress/lzw"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
)

const (
	lzwOrder        = lzw.MSB
	lzwLitwidth int = 8
)

// zstdReadCloser makes a *zstd.Decoder an io.ReadCloser
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// formatOf returns the compression format for fname: format itself if not
// empty, otherwise the file extension.
func formatOf(fname, format string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	temp := strings.Split(fname, ".")
	return strings.ToLower(temp[len(temp)-1])
}

// openSource opens fname and returns the file and an object that will read
// DCD data from it, either 'as is' or decompressing first, depending on the
// format string. If the format string is empty, it is deduced from the file
// extension: .dcd (not compressed), .gz (gzip), .zst (zstd) and .lzw. An
// unknown extension is logged and the file is assumed to be a plain DCD.
// compressed is false only when the returned reader is the file itself.
func openSource(fname, format string, logger zerolog.Logger) (f *os.File, src io.ReadCloser, compressed bool, err error) {
	f, err = os.Open(fname)
	if err != nil {
		return nil, nil, false, err
	}
	reader := bufio.NewReader(f)
	fk := formatOf(fname, format)
	switch fk {
	case "dcd":
		return f, f, false, nil
	case "gz", "gzip":
		src, err = gzip.NewReader(reader)
	case "zst", "zstd":
		var d *zstd.Decoder
		d, err = zstd.NewReader(reader)
		if err == nil {
			src = zstdReadCloser{d}
		}
	case "lzw":
		src = lzw.NewReader(reader, lzwOrder, lzwLitwidth)
	default:
		//if it's not a plain DCD, you'll get an error later.
		logger.Warn().Str("file", fname).Str("format", fk).Msg("unsupported format, assuming a plain DCD file")
		return f, f, false, nil
	}
	if err != nil {
		f.Close()
		return nil, nil, false, err
	}
	return f, src, true, nil
}

// uncompressedSize reads the whole of fname through its decompressor and
// returns the number of bytes obtained.
func uncompressedSize(fname, format string, logger zerolog.Logger) (int64, error) {
	f, src, _, err := openSource(fname, format, logger)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	defer src.Close()
	return io.Copy(io.Discard, src)
}
