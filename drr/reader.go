/*
 *
 * hisview - a legacy .drr/.his histogram catalog viewer
 * Copyright (C) 2024 hisview contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package drr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/spf13/afero"
)

const (
	catalogSignature  = "HISDRR01"
	catalogHeaderSize = 128
	recordSize        = 130

	xlabelOff, xlabelFieldLen = 66, 12
	ylabelOff, ylabelFieldLen = 78, 12
	titleOff, titleFieldLen   = 90, 40
)

// Reader decodes a <base>.drr / <base>.his pair. All headers are parsed once
// at Open; bins are read lazily per call to ReadBins. The .his file handle is
// held open between calls and released by Close, matching the "file handles
// are scoped resources" rule.
type Reader struct {
	his    afero.File
	hisLen int64

	order   []int
	headers map[int]HistogramHeader
}

// Open reads and validates the directory file and opens the data file for
// later ReadBins calls. Both <base>.drr and <base>.his must exist on fs.
func Open(fs afero.Fs, base string) (*Reader, error) {
	drrFile, err := fs.Open(base + ".drr")
	if err != nil {
		return nil, fmt.Errorf("opening directory file: %w", err)
	}
	defer drrFile.Close()

	drrBytes, err := io.ReadAll(drrFile)
	if err != nil {
		return nil, fmt.Errorf("reading directory file: %w", err)
	}

	hisFile, err := fs.Open(base + ".his")
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}

	hisInfo, err := hisFile.Stat()
	if err != nil {
		hisFile.Close()
		return nil, fmt.Errorf("statting data file: %w", err)
	}

	headers, order, err := parseDirectory(drrBytes, hisInfo.Size())
	if err != nil {
		hisFile.Close()
		return nil, err
	}

	return &Reader{
		his:     hisFile,
		hisLen:  hisInfo.Size(),
		order:   order,
		headers: headers,
	}, nil
}

// Close releases the underlying .his file handle.
func (r *Reader) Close() error {
	return r.his.Close()
}

func parseDirectory(data []byte, hisLen int64) (map[int]HistogramHeader, []int, error) {
	if len(data) < catalogHeaderSize {
		return nil, nil, fmt.Errorf("%w: directory file shorter than catalog header", ErrBadHeader)
	}
	if !bytes.Equal(data[:len(catalogSignature)], []byte(catalogSignature)) {
		return nil, nil, fmt.Errorf("%w: bad catalog signature", ErrBadHeader)
	}
	count := int(binary.LittleEndian.Uint32(data[len(catalogSignature) : len(catalogSignature)+4]))
	if count < 0 {
		return nil, nil, fmt.Errorf("%w: negative histogram count %d", ErrBadHeader, count)
	}

	want := catalogHeaderSize + count*recordSize
	if len(data) < want {
		return nil, nil, fmt.Errorf("%w: directory file too short for %d histograms", ErrBadHeader, count)
	}

	headers := make(map[int]HistogramHeader, count)
	order := make([]int, 0, count)
	for i := 0; i < count; i++ {
		rec := data[catalogHeaderSize+i*recordSize : catalogHeaderSize+(i+1)*recordSize]
		h := decodeRecord(rec)
		if err := h.validate(hisLen); err != nil {
			return nil, nil, err
		}
		if _, dup := headers[h.ID]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate histogram id %d", ErrBadHeader, h.ID)
		}
		headers[h.ID] = h
		order = append(order, h.ID)
	}
	return headers, order, nil
}

func decodeRecord(rec []byte) HistogramHeader {
	le := binary.LittleEndian
	var h HistogramHeader

	h.ID = int(int16(le.Uint16(rec[0:2])))
	h.Dim = int(int16(le.Uint16(rec[2:4])))
	h.HalfWords = int(int16(le.Uint16(rec[4:6])))

	readAxisWords(&h.Params, rec[6:14])
	readAxisWords(&h.Raw, rec[14:22])
	readAxisWords(&h.Scaled, rec[22:30])
	readAxisWords(&h.MinCh, rec[30:38])
	readAxisWords(&h.MaxCh, rec[38:46])

	h.Offset = int64(le.Uint32(rec[46:50]))

	for i := 0; i < 4; i++ {
		bits := le.Uint32(rec[50+i*4 : 54+i*4])
		h.CalibrationConstants[i] = float64(math.Float32frombits(bits))
	}

	h.XLabel = trimField(rec[xlabelOff : xlabelOff+xlabelFieldLen])
	h.YLabel = trimField(rec[ylabelOff : ylabelOff+ylabelFieldLen])
	h.Title = trimField(rec[titleOff : titleOff+titleFieldLen])

	return h
}

func readAxisWords(dst *[MaxAxes]int, field []byte) {
	le := binary.LittleEndian
	for i := 0; i < MaxAxes; i++ {
		dst[i] = int(int16(le.Uint16(field[i*2 : i*2+2])))
	}
}

// trimField strips the trailing spaces/NULs legacy ASCII fields are padded with.
func trimField(b []byte) string {
	end := len(b)
	for end > 0 && (b[end-1] == 0 || b[end-1] == ' ') {
		end--
	}
	return string(b[:end])
}

// ListIDs returns every histogram id, in directory order.
func (r *Reader) ListIDs() []int {
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

// SortedIDs returns every histogram id in ascending numeric order, useful for
// deterministic list-mode output independent of directory order.
func (r *Reader) SortedIDs() []int {
	out := r.ListIDs()
	sort.Ints(out)
	return out
}

// HeaderOf returns the header for id, or ErrUnknownID if absent.
func (r *Reader) HeaderOf(id int) (HistogramHeader, error) {
	h, ok := r.headers[id]
	if !ok {
		return HistogramHeader{}, fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return h, nil
}

// ReadBins decodes and widens the stored bin counts for id to signed 64-bit,
// in row-major order for 2D histograms.
func (r *Reader) ReadBins(id int) (BinArray, error) {
	h, err := r.HeaderOf(id)
	if err != nil {
		return nil, err
	}

	n := h.BinCount()
	bytesPerBin := int64(2)
	if h.HalfWords == 2 {
		bytesPerBin = 4
	}
	span := n * bytesPerBin
	offsetBytes := h.Offset * 2

	if offsetBytes+span > r.hisLen {
		return nil, fmt.Errorf("%w: histogram %d needs bytes [%d,%d), data file has %d",
			ErrShortRead, id, offsetBytes, offsetBytes+span, r.hisLen)
	}

	buf := make([]byte, span)
	if _, err := r.his.ReadAt(buf, offsetBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShortRead, err)
	}

	bins := make(BinArray, n)
	le := binary.LittleEndian
	if h.HalfWords == 1 {
		for i := int64(0); i < n; i++ {
			bins[i] = int64(le.Uint16(buf[i*2 : i*2+2]))
		}
	} else {
		for i := int64(0); i < n; i++ {
			bins[i] = int64(le.Uint32(buf[i*4 : i*4+4]))
		}
	}
	return bins, nil
}
