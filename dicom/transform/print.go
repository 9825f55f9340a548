package transform

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

var (
	tagStyle   = lipgloss.NewStyle().Bold(true)
	vrStyle    = lipgloss.NewStyle().Faint(true)
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	valueStyle = lipgloss.NewStyle()
)

// Print renders each element a token stream carries as one human-readable
// line, indented by nesting depth, to w. It passes every token through
// unchanged, so it composes into a pipeline purely for its side effect
// (e.g. between a reader and a writer, to log what is being re-encoded).
type Print struct {
	w     io.Writer
	depth int

	curHeader *dicom.DataElementHeaderToken
	curValue  bytes.Buffer
}

// NewPrint returns a Print transform writing formatted lines to w.
func NewPrint(w io.Writer) *Print {
	return &Print{w: w}
}

func (p *Print) Apply(tok dicom.Token) ([]dicom.Token, error) {
	switch t := tok.(type) {
	case dicom.FilePreambleAndDICMPrefixToken:
		fmt.Fprintln(p.w, tagStyle.Render("Preamble"))

	case dicom.FileMetaInformationToken:
		fmt.Fprintln(p.w, tagStyle.Render("File Meta Information"))
		for _, el := range t.DataSet.Elements() {
			p.printLine(0, el.Tag(), el.VR(), el.Value().String())
		}

	case dicom.DataElementHeaderToken:
		h := t
		p.curHeader = &h
		p.curValue.Reset()

	case dicom.DataElementValueBytesToken:
		if p.curHeader != nil {
			p.curValue.Write(t.Data)
			if t.Final {
				p.printLine(p.depth, p.curHeader.Tag, p.curHeader.VR, previewValue(p.curHeader.VR, p.curValue.Bytes()))
				p.curHeader = nil
			}
		}

	case dicom.SequenceStartToken:
		p.printLine(p.depth, t.Tag, t.VR, "")
		p.depth++

	case dicom.SequenceDelimiterToken:
		p.depth--

	case dicom.SequenceItemStartToken:
		fmt.Fprintf(p.w, "%sItem\n", indent(p.depth))
		p.depth++

	case dicom.SequenceItemDelimiterToken:
		p.depth--

	case dicom.PixelDataItemToken:
		fmt.Fprintf(p.w, "%sItem (%d bytes)\n", indent(p.depth), t.Length)
	}

	return []dicom.Token{tok}, nil
}

func (p *Print) printLine(depth int, t tag.Tag, v vr.VR, rendered string) {
	name := ""
	if info, err := tagLookup(t); err == nil {
		name = info
	}
	line := fmt.Sprintf("%s%s %s %s %s",
		indent(depth),
		tagStyle.Render(t.String()),
		vrStyle.Render(v.String()),
		nameStyle.Render(name),
		valueStyle.Render(rendered),
	)
	fmt.Fprintln(p.w, strings.TrimRight(line, " "))
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// previewValue renders a value's bytes for display without needing the
// full typed decode p10build performs: strings print as-is (trimmed of
// padding), everything else as a byte count, since Print is for quick
// visual inspection, not round-tripping.
func previewValue(v vr.VR, raw []byte) string {
	if v.IsStringType() {
		return strings.TrimRight(string(raw), " \x00")
	}
	if v.IsNumericType() {
		return previewNumeric(v, raw)
	}
	return fmt.Sprintf("<%d bytes>", len(raw))
}

func previewNumeric(v vr.VR, raw []byte) string {
	width := v.ElementWidth()
	if width == 0 || len(raw)%width != 0 {
		return fmt.Sprintf("<%d bytes>", len(raw))
	}
	var parts []string
	for i := 0; i < len(raw); i += width {
		chunk := raw[i : i+width]
		if v == vr.FloatingPointSingle || v == vr.FloatingPointDouble {
			parts = append(parts, fmt.Sprintf("%g", decodeFloatWidth(v, chunk, binary.LittleEndian)))
		} else {
			parts = append(parts, fmt.Sprintf("%d", decodeIntWidth(v, chunk, binary.LittleEndian)))
		}
	}
	return strings.Join(parts, "\\")
}

func tagLookup(t tag.Tag) (string, error) {
	info, err := tag.Find(t)
	if err != nil {
		return "", err
	}
	return info.Name, nil
}
