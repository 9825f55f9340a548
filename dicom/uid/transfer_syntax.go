package uid

import "fmt"

// TransferSyntax describes how a Transfer Syntax UID encodes the main data
// set: byte order, VR explicitness, stream compression, and whether pixel
// data (and only pixel data) is carried as an encapsulated, fragmented
// byte stream rather than a plain value.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#chapter_10
type TransferSyntax struct {
	UID          string
	Name         string
	LittleEndian bool
	ExplicitVR   bool
	Deflated     bool
	Encapsulated bool
}

// transferSyntaxTable holds the transfer syntaxes this codec knows how to
// frame. Syntaxes neither listed here nor added from
// encapsulatedPixelDataSyntaxes below are rejected by TransferSyntaxFor.
var transferSyntaxTable = map[string]TransferSyntax{
	ImplicitVRLittleEndian.value: {
		UID: ImplicitVRLittleEndian.value, Name: "Implicit VR Little Endian",
		LittleEndian: true, ExplicitVR: false,
	},
	ExplicitVRLittleEndian.value: {
		UID: ExplicitVRLittleEndian.value, Name: "Explicit VR Little Endian",
		LittleEndian: true, ExplicitVR: true,
	},
	DeflatedExplicitVRLittleEndian.value: {
		UID: DeflatedExplicitVRLittleEndian.value, Name: "Deflated Explicit VR Little Endian",
		LittleEndian: true, ExplicitVR: true, Deflated: true,
	},
	ExplicitVRBigEndian.value: {
		UID: ExplicitVRBigEndian.value, Name: "Explicit VR Big Endian",
		LittleEndian: false, ExplicitVR: true,
	},
	EncapsulatedUncompressedExplicitVRLittleEndian.value: {
		UID: EncapsulatedUncompressedExplicitVRLittleEndian.value, Name: "Encapsulated Uncompressed Explicit VR Little Endian",
		LittleEndian: true, ExplicitVR: true, Encapsulated: true,
	},
}

// encapsulatedPixelDataSyntaxes lists the remaining standard transfer
// syntaxes that always encapsulate pixel data (JPEG family, JPEG 2000,
// JPEG-LS, RLE, MPEG, HEVC, JPEG XL, HTJ2K, JPIP). Their frame syntax is
// otherwise Explicit VR Little Endian; actual pixel decode is out of scope.
var encapsulatedPixelDataSyntaxes = []UID{
	JPEGBaselineProcess1, JPEGExtendedProcess2And4, RLELossless,
	JPEGLosslessNonHierarchicalProcess14, JPEGLosslessNonHierarchicalFirstOrderPredictionProcess14SelectionValue1,
	JPEGLsLosslessImageCompression, JPEGLsLossyNearLosslessImageCompression,
	JPEG2000ImageCompressionLosslessOnly, JPEG2000ImageCompression,
	JPEG2000Part2MultiComponentImageCompressionLosslessOnly, JPEG2000Part2MultiComponentImageCompression,
	JPEGXlLossless, JPEGXlJPEGRecompression, JPEGXl,
	HighThroughputJPEG2000ImageCompressionLosslessOnly, HighThroughputJPEG2000WithRpclOptionsImageCompressionLosslessOnly,
	HighThroughputJPEG2000ImageCompression,
	Mpeg2MainProfileMainLevel, FragmentableMpeg2MainProfileMainLevel,
	Mpeg2MainProfileHighLevel, FragmentableMpeg2MainProfileHighLevel,
	MPEG4AvcH264HighProfileLevel41, FragmentableMPEG4AvcH264HighProfileLevel41,
	MPEG4AvcH264BdCompatibleHighProfileLevel41, FragmentableMPEG4AvcH264BdCompatibleHighProfileLevel41,
	MPEG4AvcH264HighProfileLevel42For2dVideo, FragmentableMPEG4AvcH264HighProfileLevel42For2dVideo,
	MPEG4AvcH264HighProfileLevel42For3dVideo, FragmentableMPEG4AvcH264HighProfileLevel42For3dVideo,
	MPEG4AvcH264StereoHighProfileLevel42, FragmentableMPEG4AvcH264StereoHighProfileLevel42,
	HevcH265MainProfileLevel51, HevcH265Main10ProfileLevel51,
	JpipReferenced, JpipReferencedDeflate, JpipHtj2kReferenced, JpipHtj2kReferencedDeflate,
	DeflatedImageFrameCompression,
}

func init() {
	for _, u := range encapsulatedPixelDataSyntaxes {
		info, ok := uidMap[u.value]
		name := u.value
		if ok {
			name = info.Name
		}
		transferSyntaxTable[u.value] = TransferSyntax{
			UID: u.value, Name: name,
			LittleEndian: true, ExplicitVR: true, Encapsulated: true,
		}
	}
}

// TransferSyntaxFor returns framing metadata for the given Transfer Syntax
// UID string (trailing NUL padding and surrounding whitespace tolerated).
// Returns an error if the UID is not one this codec frames.
func TransferSyntaxFor(uidStr string) (TransferSyntax, error) {
	normalized := normalizeUID(uidStr)
	if ts, ok := transferSyntaxTable[normalized]; ok {
		return ts, nil
	}
	return TransferSyntax{}, fmt.Errorf("unsupported transfer syntax %q", uidStr)
}

// normalizeUID strips the NUL padding byte DICOM uses to keep UIDs even
// length, so lookups succeed regardless of whether a trailing pad is still
// attached to the raw element value.
func normalizeUID(s string) string {
	for len(s) > 0 && (s[len(s)-1] == 0x00 || s[len(s)-1] == ' ') {
		s = s[:len(s)-1]
	}
	return s
}
