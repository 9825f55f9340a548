package transform

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/element"
	"github.com/codeninja55/dcmfx/dicom/tag"
)

// itemHeaderSize is the byte length of a pixel-data item's tag+length
// header (0xFFFE,0xE000 + a 4-byte length), which offset tables count
// alongside item payloads.
const itemHeaderSize = 8

// Frame is one recovered pixel-data frame. BitOffset is the number of
// leading bits of Data[0] that belong to the previous frame; nonzero only
// for native 1-bit-per-pixel data whose frame boundaries don't land on a
// byte boundary.
type Frame struct {
	Data      []byte
	BitOffset int
}

// PixelDataFrame recovers individual frames from a token stream's Pixel
// Data element, for both encapsulated (compressed, fragmented) and native
// (uncompressed) pixel data, and invokes onFrame once per frame as soon as
// it is complete. It passes every token through unchanged, unless the
// offset table driving frame boundaries turns out to be malformed, in
// which case Apply returns an error and stops.
//
// For native pixel data it needs Rows, Columns, SamplesPerPixel,
// BitsAllocated and (optionally) NumberOfFrames; for encapsulated pixel
// data it additionally consults the Extended Offset Table pair
// (7FE0,0001)/(7FE0,0002) when the Basic Offset Table item is empty. All of
// these must appear earlier in the stream than PixelData - true of every
// conformant data set, since Image Pixel module attributes (group 0028)
// always precede Pixel Data (group 7FE0).
type PixelDataFrame struct {
	onFrame func(Frame)
	gather  *CustomType

	rows, columns, samplesPerPixel, bitsAllocated uint16
	numberOfFrames                                int

	extendedOffsets []uint64
	extendedLengths []uint64

	depth int

	inPixelData  bool
	encapsulated bool

	plainValue bytes.Buffer

	haveBOT           bool
	offsetTable       []uint32
	fragments         [][]byte
	fragmentOffsets   []uint32
	cumulativeOffset  uint32
	awaitingItemValue bool
	itemValue         bytes.Buffer
}

// NewPixelDataFrame returns a PixelDataFrame transform invoking onFrame for
// each recovered frame, in order.
func NewPixelDataFrame(onFrame func(Frame)) *PixelDataFrame {
	p := &PixelDataFrame{onFrame: onFrame, samplesPerPixel: 1, numberOfFrames: 1}
	p.gather = NewCustomType(p.onContextElement,
		tag.Rows, tag.Columns, tag.SamplesPerPixel, tag.BitsAllocated, tag.NumberOfFrames,
		tag.ExtendedOffsetTable, tag.ExtendedOffsetTableLengths)
	return p
}

func (p *PixelDataFrame) onContextElement(el *element.Element) {
	switch {
	case el.Tag().Equals(tag.Rows):
		p.rows = uint16(atoiSafe(el.Value().String()))
	case el.Tag().Equals(tag.Columns):
		p.columns = uint16(atoiSafe(el.Value().String()))
	case el.Tag().Equals(tag.SamplesPerPixel):
		p.samplesPerPixel = uint16(atoiSafe(el.Value().String()))
	case el.Tag().Equals(tag.BitsAllocated):
		p.bitsAllocated = uint16(atoiSafe(el.Value().String()))
	case el.Tag().Equals(tag.NumberOfFrames):
		if n := atoiSafe(el.Value().String()); n > 0 {
			p.numberOfFrames = n
		}
	case el.Tag().Equals(tag.ExtendedOffsetTable):
		p.extendedOffsets = decodeUint64ArrayLE(el.Value().Bytes())
	case el.Tag().Equals(tag.ExtendedOffsetTableLengths):
		p.extendedLengths = decodeUint64ArrayLE(el.Value().Bytes())
	}
}

func decodeUint64ArrayLE(raw []byte) []uint64 {
	if len(raw)%8 != 0 {
		return nil
	}
	out := make([]uint64, len(raw)/8)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(raw[i*8 : i*8+8])
	}
	return out
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func (p *PixelDataFrame) Apply(tok dicom.Token) ([]dicom.Token, error) {
	if _, err := p.gather.Apply(tok); err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case dicom.DataElementHeaderToken:
		p.inPixelData = p.depth == 0 && t.Tag.Equals(tag.PixelData)
		if p.inPixelData {
			p.plainValue.Reset()
		}

	case dicom.DataElementValueBytesToken:
		switch {
		case p.awaitingItemValue:
			p.itemValue.Write(t.Data)
			if t.Final {
				p.finishItem()
			}
		case p.inPixelData:
			p.plainValue.Write(t.Data)
			if t.Final {
				if err := p.emitNativeFrames(p.plainValue.Bytes()); err != nil {
					return nil, err
				}
				p.inPixelData = false
			}
		}

	case dicom.SequenceStartToken:
		if p.depth == 0 && t.Tag.Equals(tag.PixelData) {
			p.encapsulated = true
			p.haveBOT = false
			p.offsetTable = nil
			p.fragments = nil
			p.fragmentOffsets = nil
			p.cumulativeOffset = 0
		}
		p.depth++

	case dicom.PixelDataItemToken:
		if p.encapsulated {
			if t.Length == 0 {
				p.finishItemBytes(nil)
			} else {
				p.awaitingItemValue = true
				p.itemValue.Reset()
			}
		}

	case dicom.SequenceDelimiterToken:
		p.depth--
		if p.depth == 0 && p.encapsulated {
			if err := p.emitEncapsulatedFrames(); err != nil {
				return nil, err
			}
			p.encapsulated = false
			p.inPixelData = false
		}
	}

	return []dicom.Token{tok}, nil
}

func (p *PixelDataFrame) finishItem() {
	raw := append([]byte(nil), p.itemValue.Bytes()...)
	p.itemValue.Reset()
	p.awaitingItemValue = false
	p.finishItemBytes(raw)
}

func (p *PixelDataFrame) finishItemBytes(raw []byte) {
	if !p.haveBOT {
		p.haveBOT = true
		p.offsetTable = decodeOffsetTableLE(raw)
		return
	}
	p.fragmentOffsets = append(p.fragmentOffsets, p.cumulativeOffset)
	p.fragments = append(p.fragments, raw)
	p.cumulativeOffset += itemHeaderSize + uint32(len(raw))
}

// emitNativeFrames splits length-validated, byte-aligned-or-bit-packed
// pixel data into exactly NumberOfFrames frames.
func (p *PixelDataFrame) emitNativeFrames(data []byte) error {
	pixelCount := int(p.rows) * int(p.columns) * int(p.samplesPerPixel)

	var frameSizeBits int
	if p.bitsAllocated == 1 {
		frameSizeBits = int(p.rows) * int(p.columns)
	} else {
		bitsAllocated := int(p.bitsAllocated)
		if bitsAllocated == 0 {
			bitsAllocated = 8
		}
		frameSizeBits = pixelCount * bitsAllocated
	}

	if frameSizeBits == 0 {
		p.onFrame(Frame{Data: data})
		return nil
	}

	expectedBits := frameSizeBits * p.numberOfFrames
	expectedLen := (expectedBits + 7) / 8
	if expectedLen != len(data) {
		return fmt.Errorf("pixel data length %d does not match expected %d bytes for %d frame(s)",
			len(data), expectedLen, p.numberOfFrames)
	}

	for i := 0; i < p.numberOfFrames; i++ {
		startBit := i * frameSizeBits
		endBit := startBit + frameSizeBits
		startByte := startBit / 8
		endByte := (endBit + 7) / 8
		p.onFrame(Frame{Data: data[startByte:endByte], BitOffset: startBit % 8})
	}
	return nil
}

func (p *PixelDataFrame) emitEncapsulatedFrames() error {
	switch {
	case len(p.offsetTable) > 0:
		return p.emitFromOffsets(p.offsetTable32ToUint64(), nil)
	case len(p.extendedOffsets) > 0:
		if len(p.extendedOffsets) != len(p.extendedLengths) {
			return fmt.Errorf("pixel data offset table is malformed: extended offset table has %d offsets but %d lengths",
				len(p.extendedOffsets), len(p.extendedLengths))
		}
		return p.emitFromOffsets(p.extendedOffsets, p.extendedLengths)
	case p.numberOfFrames > 1:
		for _, f := range p.fragments {
			p.onFrame(Frame{Data: f})
		}
		return nil
	default:
		var all []byte
		for _, f := range p.fragments {
			all = append(all, f...)
		}
		p.onFrame(Frame{Data: all})
		return nil
	}
}

func (p *PixelDataFrame) offsetTable32ToUint64() []uint64 {
	out := make([]uint64, len(p.offsetTable))
	for i, v := range p.offsetTable {
		out[i] = uint64(v)
	}
	return out
}

// emitFromOffsets delimits frames using offsets counting item headers plus
// payloads, starting right after the BOT item. When lengths is non-nil
// (Extended Offset Table), each frame's trailing padding bytes beyond its
// declared length are dropped.
func (p *PixelDataFrame) emitFromOffsets(offsets []uint64, lengths []uint64) error {
	if offsets[0] != 0 {
		return fmt.Errorf("pixel data offset table is malformed: first offset %d is not 0", offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			return fmt.Errorf("pixel data offset table is malformed: offsets are not strictly ascending")
		}
	}

	boundaries := append([]uint64(nil), offsets...)
	boundaries = append(boundaries, uint64(p.cumulativeOffset))

	frameIdx := 0
	var buf []byte
	for i, frag := range p.fragments {
		buf = append(buf, frag...)

		nextFragOffset := uint64(p.cumulativeOffset)
		if i+1 < len(p.fragmentOffsets) {
			nextFragOffset = uint64(p.fragmentOffsets[i+1])
		}

		if frameIdx+1 < len(boundaries) && nextFragOffset == boundaries[frameIdx+1] {
			if lengths != nil && frameIdx < len(lengths) && uint64(len(buf)) > lengths[frameIdx] {
				buf = buf[:lengths[frameIdx]]
			}
			p.onFrame(Frame{Data: buf})
			buf = nil
			frameIdx++
		}
	}

	if frameIdx != len(boundaries)-1 {
		return fmt.Errorf("pixel data offset table is malformed: accumulated offset %d never reached declared boundary %d",
			p.cumulativeOffset, boundaries[frameIdx+1])
	}
	return nil
}

func decodeOffsetTableLE(raw []byte) []uint32 {
	if len(raw)%4 != 0 {
		return nil
	}
	out := make([]uint32, len(raw)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
	}
	return out
}
