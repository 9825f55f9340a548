// Package tag: curated DICOM data element dictionary.
//
// The complete PS3.6 Part 6 data dictionary (5000+ entries) is generated
// tooling output and is not hand-maintained here; this file carries the subset
// of tags exercised by this package and its callers (file meta information,
// patient/study/series identifiers, Image Pixel module attributes, sequence
// tags used in nested data sets, and the clarifying elements the location
// stack consults for ambiguous-VR resolution). Extend TagDict to widen coverage;
// the map shape matches a full-dictionary generator's output.
package tag

import "github.com/codeninja55/dcmfx/dicom/vr"

// Well-known tag variables for the entries in TagDict, for convenient
// reference from calling code without a dictionary lookup.
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion = New(0x0002, 0x0001)
	MediaStorageSOPClassUID = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID = New(0x0002, 0x0003)
	TransferSyntaxUID = New(0x0002, 0x0010)
	ImplementationClassUID = New(0x0002, 0x0012)
	ImplementationVersionName = New(0x0002, 0x0013)
	SourceApplicationEntityTitle = New(0x0002, 0x0016)
	SendingApplicationEntityTitle = New(0x0002, 0x0017)
	ReceivingApplicationEntityTitle = New(0x0002, 0x0018)
	PrivateInformationCreatorUID = New(0x0002, 0x0100)
	PrivateInformation = New(0x0002, 0x0102)
	SpecificCharacterSet = New(0x0008, 0x0005)
	ImageType = New(0x0008, 0x0008)
	SOPClassUID = New(0x0008, 0x0016)
	SOPInstanceUID = New(0x0008, 0x0018)
	StudyDate = New(0x0008, 0x0020)
	SeriesDate = New(0x0008, 0x0021)
	AcquisitionDate = New(0x0008, 0x0022)
	ContentDate = New(0x0008, 0x0023)
	StudyTime = New(0x0008, 0x0030)
	SeriesTime = New(0x0008, 0x0031)
	AccessionNumber = New(0x0008, 0x0050)
	Modality = New(0x0008, 0x0060)
	Manufacturer = New(0x0008, 0x0070)
	InstitutionName = New(0x0008, 0x0080)
	ReferringPhysicianName = New(0x0008, 0x0090)
	StationName = New(0x0008, 0x1010)
	StudyDescription = New(0x0008, 0x1030)
	SeriesDescription = New(0x0008, 0x103E)
	ManufacturerModelName = New(0x0008, 0x1090)
	ReferencedImageSequence = New(0x0008, 0x1140)
	ReferencedStudySequence = New(0x0008, 0x1110)
	ReferencedSeriesSequence = New(0x0008, 0x1115)
	ReferencedSOPClassUID = New(0x0008, 0x1150)
	ReferencedSOPInstanceUID = New(0x0008, 0x1155)
	SourceImageSequence = New(0x0008, 0x2112)
	PatientName = New(0x0010, 0x0010)
	PatientID = New(0x0010, 0x0020)
	PatientBirthDate = New(0x0010, 0x0030)
	PatientSex = New(0x0010, 0x0040)
	PatientAge = New(0x0010, 0x1010)
	PatientWeight = New(0x0010, 0x1030)
	StudyInstanceUID = New(0x0020, 0x000D)
	SeriesInstanceUID = New(0x0020, 0x000E)
	StudyID = New(0x0020, 0x0010)
	SeriesNumber = New(0x0020, 0x0011)
	InstanceNumber = New(0x0020, 0x0013)
	PatientOrientation = New(0x0020, 0x0020)
	SamplesPerPixel = New(0x0028, 0x0002)
	PhotometricInterpretation = New(0x0028, 0x0004)
	PlanarConfiguration = New(0x0028, 0x0006)
	NumberOfFrames = New(0x0028, 0x0008)
	Rows = New(0x0028, 0x0010)
	Columns = New(0x0028, 0x0011)
	PixelAspectRatio = New(0x0028, 0x0034)
	BitsAllocated = New(0x0028, 0x0100)
	BitsStored = New(0x0028, 0x0101)
	HighBit = New(0x0028, 0x0102)
	PixelRepresentation = New(0x0028, 0x0103)
	SmallestImagePixelValue = New(0x0028, 0x0106)
	LargestImagePixelValue = New(0x0028, 0x0107)
	PixelPaddingValue = New(0x0028, 0x0120)
	RedPaletteColorLUTDescriptor = New(0x0028, 0x1101)
	GreenPaletteColorLUTDescriptor = New(0x0028, 0x1102)
	BluePaletteColorLUTDescriptor = New(0x0028, 0x1103)
	RedPaletteColorLUTData = New(0x0028, 0x1201)
	GreenPaletteColorLUTData = New(0x0028, 0x1202)
	BluePaletteColorLUTData = New(0x0028, 0x1203)
	ICCProfile = New(0x0028, 0x2000)
	LossyImageCompression = New(0x0028, 0x2110)
	OverlayRows = New(0x6000, 0x0010)
	OverlayColumns = New(0x6000, 0x0011)
	OverlayType = New(0x6000, 0x0040)
	OverlayOrigin = New(0x6000, 0x0050)
	OverlayBitsAllocated = New(0x6000, 0x0100)
	OverlayData = New(0x6000, 0x3000)
	WaveformBitsAllocated = New(0x003A, 0x021A)
	WaveformSampleInterpretation = New(0x003A, 0x0220)
	SharedFunctionalGroupsSequence = New(0x5200, 0x9229)
	PerFrameFunctionalGroupsSequence = New(0x5200, 0x9230)
	PixelData = New(0x7FE0, 0x0010)
	ExtendedOffsetTable = New(0x7FE0, 0x0001)
	ExtendedOffsetTableLengths = New(0x7FE0, 0x0002)
	CurveDimensions = New(0x5000, 0x0005)
	CurveData = New(0x5000, 0x3000)

	// De-identification attributes (PS3.15 Annex E Table E.1-1) not already
	// covered above.
	InstanceCreationDate = New(0x0008, 0x0012)
	InstanceCreationTime = New(0x0008, 0x0013)
	InstanceCreatorUID = New(0x0008, 0x0014)
	TimezoneOffsetFromUTC = New(0x0008, 0x0201)
	IssuerOfAccessionNumberSequence = New(0x0008, 0x0051)
	ReferringPhysicianAddress = New(0x0008, 0x0092)
	ReferringPhysicianTelephoneNumbers = New(0x0008, 0x0094)
	AcquisitionDateTime = New(0x0008, 0x002A)
	AcquisitionTime = New(0x0008, 0x0032)
	ContentTime = New(0x0008, 0x0033)
	ConsultingPhysicianName = New(0x0008, 0x009C)
	InstitutionAddress = New(0x0008, 0x0081)
	InstitutionalDepartmentName = New(0x0008, 0x1040)
	PhysiciansOfRecord = New(0x0008, 0x1048)
	NameOfPhysiciansReadingStudy = New(0x0008, 0x1060)
	PerformingPhysicianName = New(0x0008, 0x1050)
	OperatorsName = New(0x0008, 0x1070)
	AdmittingDiagnosesDescription = New(0x0008, 0x1080)
	DerivationDescription = New(0x0008, 0x2111)
	PatientBirthTime = New(0x0010, 0x0032)
	OtherPatientIDs = New(0x0010, 0x1000)
	OtherPatientNames = New(0x0010, 0x1001)
	PatientBirthName = New(0x0010, 0x1005)
	PatientSize = New(0x0010, 0x1020)
	MilitaryRank = New(0x0010, 0x1080)
	BranchOfService = New(0x0010, 0x1081)
	PatientMotherBirthName = New(0x0010, 0x1060)
	MedicalRecordLocator = New(0x0010, 0x1090)
	CountryOfResidence = New(0x0010, 0x2150)
	RegionOfResidence = New(0x0010, 0x2152)
	EthnicGroup = New(0x0010, 0x2160)
	Occupation = New(0x0010, 0x2180)
	PatientSpeciesDescription = New(0x0010, 0x2201)
	PatientSexNeutered = New(0x0010, 0x2203)
	PatientBreedDescription = New(0x0010, 0x2292)
	ResponsiblePerson = New(0x0010, 0x2297)
	ResponsibleOrganization = New(0x0010, 0x2299)
	AdditionalPatientHistory = New(0x0010, 0x21B0)
	PatientComments = New(0x0010, 0x4000)
	PatientIdentityRemoved = New(0x0012, 0x0062)
	DeviceSerialNumber = New(0x0018, 0x1000)
	ProtocolName = New(0x0018, 0x1030)
	TextString = New(0x2030, 0x0020)
	FrameComments = New(0x0020, 0x9158)
	RequestingPhysician = New(0x0032, 0x1032)
	RequestedProcedureDescription = New(0x0032, 0x1060)
	PerformedProcedureStepStartDate = New(0x0040, 0x0244)
	PerformedProcedureStepStartTime = New(0x0040, 0x0245)
	PerformedProcedureStepEndDate = New(0x0040, 0x0250)
	PerformedProcedureStepEndTime = New(0x0040, 0x0251)
	PerformedProcedureStepDescription = New(0x0040, 0x0254)
	RequestAttributesSequence = New(0x0040, 0x0275)
	PersonName = New(0x0040, 0xA123)
	PersonAddress = New(0x0040, 0xA353)
	PersonTelephoneNumbers = New(0x0040, 0xA354)
	CurrentPatientLocation = New(0x0038, 0x0300)
	PatientInstitutionResidence = New(0x0038, 0x0400)
	ModifiedAttributesSequence = New(0x0400, 0x0550)
	OriginalAttributesSequence = New(0x0400, 0x0561)
	DigitalSignaturesSequence = New(0xFFFA, 0xFFFA)
	RequestingService = New(0x0032, 0x1033)
	ImageComments = New(0x0020, 0x4000)
	TextComments = New(0x4000, 0x4000)
)

// TagDict is the standard DICOM data element dictionary, keyed by Tag.
var TagDict = map[Tag]Info{
	FileMetaInformationGroupLength: {Tag: FileMetaInformationGroupLength, VRs: []vr.VR{vr.UnsignedLong}, Name: "File Meta Information Group Length", Keyword: "FileMetaInformationGroupLength", VM: "1", Retired: false},
	FileMetaInformationVersion: {Tag: FileMetaInformationVersion, VRs: []vr.VR{vr.OtherByte}, Name: "File Meta Information Version", Keyword: "FileMetaInformationVersion", VM: "1", Retired: false},
	MediaStorageSOPClassUID: {Tag: MediaStorageSOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Class UID", Keyword: "MediaStorageSOPClassUID", VM: "1", Retired: false},
	MediaStorageSOPInstanceUID: {Tag: MediaStorageSOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Media Storage SOP Instance UID", Keyword: "MediaStorageSOPInstanceUID", VM: "1", Retired: false},
	TransferSyntaxUID: {Tag: TransferSyntaxUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Transfer Syntax UID", Keyword: "TransferSyntaxUID", VM: "1", Retired: false},
	ImplementationClassUID: {Tag: ImplementationClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Implementation Class UID", Keyword: "ImplementationClassUID", VM: "1", Retired: false},
	ImplementationVersionName: {Tag: ImplementationVersionName, VRs: []vr.VR{vr.ShortString}, Name: "Implementation Version Name", Keyword: "ImplementationVersionName", VM: "1", Retired: false},
	SourceApplicationEntityTitle: {Tag: SourceApplicationEntityTitle, VRs: []vr.VR{vr.ApplicationEntity}, Name: "Source Application Entity Title", Keyword: "SourceApplicationEntityTitle", VM: "1", Retired: false},
	SendingApplicationEntityTitle: {Tag: SendingApplicationEntityTitle, VRs: []vr.VR{vr.ApplicationEntity}, Name: "Sending Application Entity Title", Keyword: "SendingApplicationEntityTitle", VM: "1", Retired: false},
	ReceivingApplicationEntityTitle: {Tag: ReceivingApplicationEntityTitle, VRs: []vr.VR{vr.ApplicationEntity}, Name: "Receiving Application Entity Title", Keyword: "ReceivingApplicationEntityTitle", VM: "1", Retired: false},
	PrivateInformationCreatorUID: {Tag: PrivateInformationCreatorUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Private Information Creator UID", Keyword: "PrivateInformationCreatorUID", VM: "1", Retired: false},
	PrivateInformation: {Tag: PrivateInformation, VRs: []vr.VR{vr.OtherByte}, Name: "Private Information", Keyword: "PrivateInformation", VM: "1", Retired: false},
	SpecificCharacterSet: {Tag: SpecificCharacterSet, VRs: []vr.VR{vr.CodeString}, Name: "Specific Character Set", Keyword: "SpecificCharacterSet", VM: "1-n", Retired: false},
	ImageType: {Tag: ImageType, VRs: []vr.VR{vr.CodeString}, Name: "Image Type", Keyword: "ImageType", VM: "2-n", Retired: false},
	SOPClassUID: {Tag: SOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Class UID", Keyword: "SOPClassUID", VM: "1", Retired: false},
	SOPInstanceUID: {Tag: SOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "SOP Instance UID", Keyword: "SOPInstanceUID", VM: "1", Retired: false},
	StudyDate: {Tag: StudyDate, VRs: []vr.VR{vr.Date}, Name: "Study Date", Keyword: "StudyDate", VM: "1", Retired: false},
	SeriesDate: {Tag: SeriesDate, VRs: []vr.VR{vr.Date}, Name: "Series Date", Keyword: "SeriesDate", VM: "1", Retired: false},
	AcquisitionDate: {Tag: AcquisitionDate, VRs: []vr.VR{vr.Date}, Name: "Acquisition Date", Keyword: "AcquisitionDate", VM: "1", Retired: false},
	ContentDate: {Tag: ContentDate, VRs: []vr.VR{vr.Date}, Name: "Content Date", Keyword: "ContentDate", VM: "1", Retired: false},
	StudyTime: {Tag: StudyTime, VRs: []vr.VR{vr.Time}, Name: "Study Time", Keyword: "StudyTime", VM: "1", Retired: false},
	SeriesTime: {Tag: SeriesTime, VRs: []vr.VR{vr.Time}, Name: "Series Time", Keyword: "SeriesTime", VM: "1", Retired: false},
	AccessionNumber: {Tag: AccessionNumber, VRs: []vr.VR{vr.ShortString}, Name: "Accession Number", Keyword: "AccessionNumber", VM: "1", Retired: false},
	Modality: {Tag: Modality, VRs: []vr.VR{vr.CodeString}, Name: "Modality", Keyword: "Modality", VM: "1", Retired: false},
	Manufacturer: {Tag: Manufacturer, VRs: []vr.VR{vr.LongString}, Name: "Manufacturer", Keyword: "Manufacturer", VM: "1", Retired: false},
	InstitutionName: {Tag: InstitutionName, VRs: []vr.VR{vr.LongString}, Name: "Institution Name", Keyword: "InstitutionName", VM: "1", Retired: false},
	ReferringPhysicianName: {Tag: ReferringPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Referring Physician's Name", Keyword: "ReferringPhysicianName", VM: "1", Retired: false},
	StationName: {Tag: StationName, VRs: []vr.VR{vr.ShortString}, Name: "Station Name", Keyword: "StationName", VM: "1", Retired: false},
	StudyDescription: {Tag: StudyDescription, VRs: []vr.VR{vr.LongString}, Name: "Study Description", Keyword: "StudyDescription", VM: "1", Retired: false},
	SeriesDescription: {Tag: SeriesDescription, VRs: []vr.VR{vr.LongString}, Name: "Series Description", Keyword: "SeriesDescription", VM: "1", Retired: false},
	ManufacturerModelName: {Tag: ManufacturerModelName, VRs: []vr.VR{vr.LongString}, Name: "Manufacturer's Model Name", Keyword: "ManufacturerModelName", VM: "1", Retired: false},
	ReferencedImageSequence: {Tag: ReferencedImageSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Image Sequence", Keyword: "ReferencedImageSequence", VM: "1", Retired: false},
	ReferencedStudySequence: {Tag: ReferencedStudySequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Study Sequence", Keyword: "ReferencedStudySequence", VM: "1", Retired: false},
	ReferencedSeriesSequence: {Tag: ReferencedSeriesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Referenced Series Sequence", Keyword: "ReferencedSeriesSequence", VM: "1", Retired: false},
	ReferencedSOPClassUID: {Tag: ReferencedSOPClassUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Referenced SOP Class UID", Keyword: "ReferencedSOPClassUID", VM: "1", Retired: false},
	ReferencedSOPInstanceUID: {Tag: ReferencedSOPInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Referenced SOP Instance UID", Keyword: "ReferencedSOPInstanceUID", VM: "1", Retired: false},
	SourceImageSequence: {Tag: SourceImageSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Source Image Sequence", Keyword: "SourceImageSequence", VM: "1", Retired: false},
	PatientName: {Tag: PatientName, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Name", Keyword: "PatientName", VM: "1", Retired: false},
	PatientID: {Tag: PatientID, VRs: []vr.VR{vr.LongString}, Name: "Patient ID", Keyword: "PatientID", VM: "1", Retired: false},
	PatientBirthDate: {Tag: PatientBirthDate, VRs: []vr.VR{vr.Date}, Name: "Patient's Birth Date", Keyword: "PatientBirthDate", VM: "1", Retired: false},
	PatientSex: {Tag: PatientSex, VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex", Keyword: "PatientSex", VM: "1", Retired: false},
	PatientAge: {Tag: PatientAge, VRs: []vr.VR{vr.AgeString}, Name: "Patient's Age", Keyword: "PatientAge", VM: "1", Retired: false},
	PatientWeight: {Tag: PatientWeight, VRs: []vr.VR{vr.DecimalString}, Name: "Patient's Weight", Keyword: "PatientWeight", VM: "1", Retired: false},
	StudyInstanceUID: {Tag: StudyInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Study Instance UID", Keyword: "StudyInstanceUID", VM: "1", Retired: false},
	SeriesInstanceUID: {Tag: SeriesInstanceUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Series Instance UID", Keyword: "SeriesInstanceUID", VM: "1", Retired: false},
	StudyID: {Tag: StudyID, VRs: []vr.VR{vr.ShortString}, Name: "Study ID", Keyword: "StudyID", VM: "1", Retired: false},
	SeriesNumber: {Tag: SeriesNumber, VRs: []vr.VR{vr.IntegerString}, Name: "Series Number", Keyword: "SeriesNumber", VM: "1", Retired: false},
	InstanceNumber: {Tag: InstanceNumber, VRs: []vr.VR{vr.IntegerString}, Name: "Instance Number", Keyword: "InstanceNumber", VM: "1", Retired: false},
	PatientOrientation: {Tag: PatientOrientation, VRs: []vr.VR{vr.CodeString}, Name: "Patient Orientation", Keyword: "PatientOrientation", VM: "2-n", Retired: false},
	SamplesPerPixel: {Tag: SamplesPerPixel, VRs: []vr.VR{vr.UnsignedShort}, Name: "Samples per Pixel", Keyword: "SamplesPerPixel", VM: "1", Retired: false},
	PhotometricInterpretation: {Tag: PhotometricInterpretation, VRs: []vr.VR{vr.CodeString}, Name: "Photometric Interpretation", Keyword: "PhotometricInterpretation", VM: "1", Retired: false},
	PlanarConfiguration: {Tag: PlanarConfiguration, VRs: []vr.VR{vr.UnsignedShort}, Name: "Planar Configuration", Keyword: "PlanarConfiguration", VM: "1", Retired: false},
	NumberOfFrames: {Tag: NumberOfFrames, VRs: []vr.VR{vr.IntegerString}, Name: "Number of Frames", Keyword: "NumberOfFrames", VM: "1", Retired: false},
	Rows: {Tag: Rows, VRs: []vr.VR{vr.UnsignedShort}, Name: "Rows", Keyword: "Rows", VM: "1", Retired: false},
	Columns: {Tag: Columns, VRs: []vr.VR{vr.UnsignedShort}, Name: "Columns", Keyword: "Columns", VM: "1", Retired: false},
	PixelAspectRatio: {Tag: PixelAspectRatio, VRs: []vr.VR{vr.IntegerString}, Name: "Pixel Aspect Ratio", Keyword: "PixelAspectRatio", VM: "2", Retired: false},
	BitsAllocated: {Tag: BitsAllocated, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Allocated", Keyword: "BitsAllocated", VM: "1", Retired: false},
	BitsStored: {Tag: BitsStored, VRs: []vr.VR{vr.UnsignedShort}, Name: "Bits Stored", Keyword: "BitsStored", VM: "1", Retired: false},
	HighBit: {Tag: HighBit, VRs: []vr.VR{vr.UnsignedShort}, Name: "High Bit", Keyword: "HighBit", VM: "1", Retired: false},
	PixelRepresentation: {Tag: PixelRepresentation, VRs: []vr.VR{vr.UnsignedShort}, Name: "Pixel Representation", Keyword: "PixelRepresentation", VM: "1", Retired: false},
	SmallestImagePixelValue: {Tag: SmallestImagePixelValue, VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Smallest Image Pixel Value", Keyword: "SmallestImagePixelValue", VM: "1", Retired: false},
	LargestImagePixelValue: {Tag: LargestImagePixelValue, VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Largest Image Pixel Value", Keyword: "LargestImagePixelValue", VM: "1", Retired: false},
	PixelPaddingValue: {Tag: PixelPaddingValue, VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Pixel Padding Value", Keyword: "PixelPaddingValue", VM: "1", Retired: false},
	RedPaletteColorLUTDescriptor: {Tag: RedPaletteColorLUTDescriptor, VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Red Palette Color LUT Descriptor", Keyword: "RedPaletteColorLUTDescriptor", VM: "3", Retired: false},
	GreenPaletteColorLUTDescriptor: {Tag: GreenPaletteColorLUTDescriptor, VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Green Palette Color LUT Descriptor", Keyword: "GreenPaletteColorLUTDescriptor", VM: "3", Retired: false},
	BluePaletteColorLUTDescriptor: {Tag: BluePaletteColorLUTDescriptor, VRs: []vr.VR{vr.UnsignedShort, vr.SignedShort}, Name: "Blue Palette Color LUT Descriptor", Keyword: "BluePaletteColorLUTDescriptor", VM: "3", Retired: false},
	RedPaletteColorLUTData: {Tag: RedPaletteColorLUTData, VRs: []vr.VR{vr.OtherWord}, Name: "Red Palette Color LUT Data", Keyword: "RedPaletteColorLUTData", VM: "1", Retired: false},
	GreenPaletteColorLUTData: {Tag: GreenPaletteColorLUTData, VRs: []vr.VR{vr.OtherWord}, Name: "Green Palette Color LUT Data", Keyword: "GreenPaletteColorLUTData", VM: "1", Retired: false},
	BluePaletteColorLUTData: {Tag: BluePaletteColorLUTData, VRs: []vr.VR{vr.OtherWord}, Name: "Blue Palette Color LUT Data", Keyword: "BluePaletteColorLUTData", VM: "1", Retired: false},
	ICCProfile: {Tag: ICCProfile, VRs: []vr.VR{vr.OtherByte}, Name: "ICC Profile", Keyword: "ICCProfile", VM: "1", Retired: false},
	LossyImageCompression: {Tag: LossyImageCompression, VRs: []vr.VR{vr.CodeString}, Name: "Lossy Image Compression", Keyword: "LossyImageCompression", VM: "1", Retired: false},
	OverlayRows: {Tag: OverlayRows, VRs: []vr.VR{vr.UnsignedShort}, Name: "Overlay Rows", Keyword: "OverlayRows", VM: "1", Retired: false},
	OverlayColumns: {Tag: OverlayColumns, VRs: []vr.VR{vr.UnsignedShort}, Name: "Overlay Columns", Keyword: "OverlayColumns", VM: "1", Retired: false},
	OverlayType: {Tag: OverlayType, VRs: []vr.VR{vr.CodeString}, Name: "Overlay Type", Keyword: "OverlayType", VM: "1", Retired: false},
	OverlayOrigin: {Tag: OverlayOrigin, VRs: []vr.VR{vr.SignedShort}, Name: "Overlay Origin", Keyword: "OverlayOrigin", VM: "2", Retired: false},
	OverlayBitsAllocated: {Tag: OverlayBitsAllocated, VRs: []vr.VR{vr.UnsignedShort}, Name: "Overlay Bits Allocated", Keyword: "OverlayBitsAllocated", VM: "1", Retired: false},
	OverlayData: {Tag: OverlayData, VRs: []vr.VR{vr.OtherWord, vr.OtherByte}, Name: "Overlay Data", Keyword: "OverlayData", VM: "1", Retired: false},
	WaveformBitsAllocated: {Tag: WaveformBitsAllocated, VRs: []vr.VR{vr.UnsignedShort}, Name: "Waveform Bits Allocated", Keyword: "WaveformBitsAllocated", VM: "1", Retired: false},
	WaveformSampleInterpretation: {Tag: WaveformSampleInterpretation, VRs: []vr.VR{vr.CodeString}, Name: "Waveform Sample Interpretation", Keyword: "WaveformSampleInterpretation", VM: "1", Retired: false},
	SharedFunctionalGroupsSequence: {Tag: SharedFunctionalGroupsSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Shared Functional Groups Sequence", Keyword: "SharedFunctionalGroupsSequence", VM: "1", Retired: false},
	PerFrameFunctionalGroupsSequence: {Tag: PerFrameFunctionalGroupsSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Per-frame Functional Groups Sequence", Keyword: "PerFrameFunctionalGroupsSequence", VM: "1", Retired: false},
	PixelData: {Tag: PixelData, VRs: []vr.VR{vr.OtherByte, vr.OtherWord}, Name: "Pixel Data", Keyword: "PixelData", VM: "1", Retired: false},
	ExtendedOffsetTable: {Tag: ExtendedOffsetTable, VRs: []vr.VR{vr.OtherVeryLong}, Name: "Extended Offset Table", Keyword: "ExtendedOffsetTable", VM: "1", Retired: false},
	ExtendedOffsetTableLengths: {Tag: ExtendedOffsetTableLengths, VRs: []vr.VR{vr.OtherVeryLong}, Name: "Extended Offset Table Lengths", Keyword: "ExtendedOffsetTableLengths", VM: "1", Retired: false},
	CurveDimensions: {Tag: CurveDimensions, VRs: []vr.VR{vr.UnsignedShort}, Name: "Curve Dimensions", Keyword: "CurveDimensions", VM: "1", Retired: true},
	CurveData: {Tag: CurveData, VRs: []vr.VR{vr.OtherByte, vr.OtherWord}, Name: "Curve Data", Keyword: "CurveData", VM: "1", Retired: true},
	InstanceCreationDate: {Tag: InstanceCreationDate, VRs: []vr.VR{vr.Date}, Name: "Instance Creation Date", Keyword: "InstanceCreationDate", VM: "1", Retired: false},
	InstanceCreationTime: {Tag: InstanceCreationTime, VRs: []vr.VR{vr.Time}, Name: "Instance Creation Time", Keyword: "InstanceCreationTime", VM: "1", Retired: false},
	InstanceCreatorUID: {Tag: InstanceCreatorUID, VRs: []vr.VR{vr.UniqueIdentifier}, Name: "Instance Creator UID", Keyword: "InstanceCreatorUID", VM: "1", Retired: false},
	TimezoneOffsetFromUTC: {Tag: TimezoneOffsetFromUTC, VRs: []vr.VR{vr.ShortString}, Name: "Timezone Offset From UTC", Keyword: "TimezoneOffsetFromUTC", VM: "1", Retired: false},
	IssuerOfAccessionNumberSequence: {Tag: IssuerOfAccessionNumberSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Issuer of Accession Number Sequence", Keyword: "IssuerOfAccessionNumberSequence", VM: "1", Retired: false},
	ReferringPhysicianAddress: {Tag: ReferringPhysicianAddress, VRs: []vr.VR{vr.ShortText}, Name: "Referring Physician's Address", Keyword: "ReferringPhysicianAddress", VM: "1", Retired: false},
	ReferringPhysicianTelephoneNumbers: {Tag: ReferringPhysicianTelephoneNumbers, VRs: []vr.VR{vr.ShortString}, Name: "Referring Physician's Telephone Numbers", Keyword: "ReferringPhysicianTelephoneNumbers", VM: "1-n", Retired: false},
	AcquisitionDateTime: {Tag: AcquisitionDateTime, VRs: []vr.VR{vr.DateTime}, Name: "Acquisition DateTime", Keyword: "AcquisitionDateTime", VM: "1", Retired: false},
	AcquisitionTime: {Tag: AcquisitionTime, VRs: []vr.VR{vr.Time}, Name: "Acquisition Time", Keyword: "AcquisitionTime", VM: "1", Retired: false},
	ContentTime: {Tag: ContentTime, VRs: []vr.VR{vr.Time}, Name: "Content Time", Keyword: "ContentTime", VM: "1", Retired: false},
	ConsultingPhysicianName: {Tag: ConsultingPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Consulting Physician's Name", Keyword: "ConsultingPhysicianName", VM: "1-n", Retired: false},
	InstitutionAddress: {Tag: InstitutionAddress, VRs: []vr.VR{vr.ShortText}, Name: "Institution Address", Keyword: "InstitutionAddress", VM: "1", Retired: false},
	InstitutionalDepartmentName: {Tag: InstitutionalDepartmentName, VRs: []vr.VR{vr.LongString}, Name: "Institutional Department Name", Keyword: "InstitutionalDepartmentName", VM: "1", Retired: false},
	PhysiciansOfRecord: {Tag: PhysiciansOfRecord, VRs: []vr.VR{vr.PersonName}, Name: "Physician(s) of Record", Keyword: "PhysiciansOfRecord", VM: "1-n", Retired: false},
	NameOfPhysiciansReadingStudy: {Tag: NameOfPhysiciansReadingStudy, VRs: []vr.VR{vr.PersonName}, Name: "Name of Physician(s) Reading Study", Keyword: "NameOfPhysiciansReadingStudy", VM: "1-n", Retired: false},
	PerformingPhysicianName: {Tag: PerformingPhysicianName, VRs: []vr.VR{vr.PersonName}, Name: "Performing Physician's Name", Keyword: "PerformingPhysicianName", VM: "1-n", Retired: false},
	OperatorsName: {Tag: OperatorsName, VRs: []vr.VR{vr.PersonName}, Name: "Operators' Name", Keyword: "OperatorsName", VM: "1-n", Retired: false},
	AdmittingDiagnosesDescription: {Tag: AdmittingDiagnosesDescription, VRs: []vr.VR{vr.LongString}, Name: "Admitting Diagnoses Description", Keyword: "AdmittingDiagnosesDescription", VM: "1-n", Retired: false},
	DerivationDescription: {Tag: DerivationDescription, VRs: []vr.VR{vr.ShortText}, Name: "Derivation Description", Keyword: "DerivationDescription", VM: "1", Retired: false},
	PatientBirthTime: {Tag: PatientBirthTime, VRs: []vr.VR{vr.Time}, Name: "Patient's Birth Time", Keyword: "PatientBirthTime", VM: "1", Retired: false},
	OtherPatientIDs: {Tag: OtherPatientIDs, VRs: []vr.VR{vr.LongString}, Name: "Other Patient IDs", Keyword: "OtherPatientIDs", VM: "1-n", Retired: true},
	OtherPatientNames: {Tag: OtherPatientNames, VRs: []vr.VR{vr.PersonName}, Name: "Other Patient Names", Keyword: "OtherPatientNames", VM: "1-n", Retired: false},
	PatientBirthName: {Tag: PatientBirthName, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Birth Name", Keyword: "PatientBirthName", VM: "1", Retired: true},
	PatientSize: {Tag: PatientSize, VRs: []vr.VR{vr.DecimalString}, Name: "Patient's Size", Keyword: "PatientSize", VM: "1", Retired: false},
	MilitaryRank: {Tag: MilitaryRank, VRs: []vr.VR{vr.LongString}, Name: "Military Rank", Keyword: "MilitaryRank", VM: "1", Retired: false},
	BranchOfService: {Tag: BranchOfService, VRs: []vr.VR{vr.LongString}, Name: "Branch of Service", Keyword: "BranchOfService", VM: "1", Retired: false},
	PatientMotherBirthName: {Tag: PatientMotherBirthName, VRs: []vr.VR{vr.PersonName}, Name: "Patient's Mother's Birth Name", Keyword: "PatientMotherBirthName", VM: "1", Retired: false},
	MedicalRecordLocator: {Tag: MedicalRecordLocator, VRs: []vr.VR{vr.LongString}, Name: "Medical Record Locator", Keyword: "MedicalRecordLocator", VM: "1", Retired: false},
	CountryOfResidence: {Tag: CountryOfResidence, VRs: []vr.VR{vr.LongString}, Name: "Country of Residence", Keyword: "CountryOfResidence", VM: "1", Retired: false},
	RegionOfResidence: {Tag: RegionOfResidence, VRs: []vr.VR{vr.LongString}, Name: "Region of Residence", Keyword: "RegionOfResidence", VM: "1-n", Retired: false},
	EthnicGroup: {Tag: EthnicGroup, VRs: []vr.VR{vr.ShortString}, Name: "Ethnic Group", Keyword: "EthnicGroup", VM: "1", Retired: false},
	Occupation: {Tag: Occupation, VRs: []vr.VR{vr.ShortString}, Name: "Occupation", Keyword: "Occupation", VM: "1", Retired: false},
	PatientSpeciesDescription: {Tag: PatientSpeciesDescription, VRs: []vr.VR{vr.LongString}, Name: "Patient Species Description", Keyword: "PatientSpeciesDescription", VM: "1", Retired: false},
	PatientSexNeutered: {Tag: PatientSexNeutered, VRs: []vr.VR{vr.CodeString}, Name: "Patient's Sex Neutered", Keyword: "PatientSexNeutered", VM: "1", Retired: false},
	PatientBreedDescription: {Tag: PatientBreedDescription, VRs: []vr.VR{vr.LongString}, Name: "Patient Breed Description", Keyword: "PatientBreedDescription", VM: "1", Retired: false},
	ResponsiblePerson: {Tag: ResponsiblePerson, VRs: []vr.VR{vr.PersonName}, Name: "Responsible Person", Keyword: "ResponsiblePerson", VM: "1", Retired: false},
	ResponsibleOrganization: {Tag: ResponsibleOrganization, VRs: []vr.VR{vr.LongString}, Name: "Responsible Organization", Keyword: "ResponsibleOrganization", VM: "1", Retired: false},
	AdditionalPatientHistory: {Tag: AdditionalPatientHistory, VRs: []vr.VR{vr.LongText}, Name: "Additional Patient History", Keyword: "AdditionalPatientHistory", VM: "1", Retired: false},
	PatientComments: {Tag: PatientComments, VRs: []vr.VR{vr.LongText}, Name: "Patient Comments", Keyword: "PatientComments", VM: "1", Retired: false},
	PatientIdentityRemoved: {Tag: PatientIdentityRemoved, VRs: []vr.VR{vr.CodeString}, Name: "Patient Identity Removed", Keyword: "PatientIdentityRemoved", VM: "1", Retired: false},
	DeviceSerialNumber: {Tag: DeviceSerialNumber, VRs: []vr.VR{vr.LongString}, Name: "Device Serial Number", Keyword: "DeviceSerialNumber", VM: "1", Retired: false},
	ProtocolName: {Tag: ProtocolName, VRs: []vr.VR{vr.LongString}, Name: "Protocol Name", Keyword: "ProtocolName", VM: "1", Retired: false},
	TextString: {Tag: TextString, VRs: []vr.VR{vr.ShortText}, Name: "Text String", Keyword: "TextString", VM: "1", Retired: false},
	FrameComments: {Tag: FrameComments, VRs: []vr.VR{vr.LongText}, Name: "Frame Comments", Keyword: "FrameComments", VM: "1", Retired: false},
	RequestingPhysician: {Tag: RequestingPhysician, VRs: []vr.VR{vr.PersonName}, Name: "Requesting Physician", Keyword: "RequestingPhysician", VM: "1", Retired: false},
	RequestedProcedureDescription: {Tag: RequestedProcedureDescription, VRs: []vr.VR{vr.LongString}, Name: "Requested Procedure Description", Keyword: "RequestedProcedureDescription", VM: "1", Retired: false},
	PerformedProcedureStepStartDate: {Tag: PerformedProcedureStepStartDate, VRs: []vr.VR{vr.Date}, Name: "Performed Procedure Step Start Date", Keyword: "PerformedProcedureStepStartDate", VM: "1", Retired: false},
	PerformedProcedureStepStartTime: {Tag: PerformedProcedureStepStartTime, VRs: []vr.VR{vr.Time}, Name: "Performed Procedure Step Start Time", Keyword: "PerformedProcedureStepStartTime", VM: "1", Retired: false},
	PerformedProcedureStepEndDate: {Tag: PerformedProcedureStepEndDate, VRs: []vr.VR{vr.Date}, Name: "Performed Procedure Step End Date", Keyword: "PerformedProcedureStepEndDate", VM: "1", Retired: false},
	PerformedProcedureStepEndTime: {Tag: PerformedProcedureStepEndTime, VRs: []vr.VR{vr.Time}, Name: "Performed Procedure Step End Time", Keyword: "PerformedProcedureStepEndTime", VM: "1", Retired: false},
	PerformedProcedureStepDescription: {Tag: PerformedProcedureStepDescription, VRs: []vr.VR{vr.LongString}, Name: "Performed Procedure Step Description", Keyword: "PerformedProcedureStepDescription", VM: "1", Retired: false},
	RequestAttributesSequence: {Tag: RequestAttributesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Request Attributes Sequence", Keyword: "RequestAttributesSequence", VM: "1", Retired: false},
	PersonName: {Tag: PersonName, VRs: []vr.VR{vr.PersonName}, Name: "Person Name", Keyword: "PersonName", VM: "1", Retired: false},
	PersonAddress: {Tag: PersonAddress, VRs: []vr.VR{vr.ShortText}, Name: "Person's Address", Keyword: "PersonAddress", VM: "1", Retired: false},
	PersonTelephoneNumbers: {Tag: PersonTelephoneNumbers, VRs: []vr.VR{vr.LongString}, Name: "Person's Telephone Numbers", Keyword: "PersonTelephoneNumbers", VM: "1-n", Retired: false},
	CurrentPatientLocation: {Tag: CurrentPatientLocation, VRs: []vr.VR{vr.LongString}, Name: "Current Patient Location", Keyword: "CurrentPatientLocation", VM: "1", Retired: false},
	PatientInstitutionResidence: {Tag: PatientInstitutionResidence, VRs: []vr.VR{vr.LongString}, Name: "Patient's Institution Residence", Keyword: "PatientInstitutionResidence", VM: "1", Retired: false},
	ModifiedAttributesSequence: {Tag: ModifiedAttributesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Modified Attributes Sequence", Keyword: "ModifiedAttributesSequence", VM: "1", Retired: false},
	OriginalAttributesSequence: {Tag: OriginalAttributesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Original Attributes Sequence", Keyword: "OriginalAttributesSequence", VM: "1", Retired: false},
	DigitalSignaturesSequence: {Tag: DigitalSignaturesSequence, VRs: []vr.VR{vr.SequenceOfItems}, Name: "Digital Signatures Sequence", Keyword: "DigitalSignaturesSequence", VM: "1", Retired: false},
	RequestingService: {Tag: RequestingService, VRs: []vr.VR{vr.LongString}, Name: "Requesting Service", Keyword: "RequestingService", VM: "1", Retired: false},
	ImageComments: {Tag: ImageComments, VRs: []vr.VR{vr.LongText}, Name: "Image Comments", Keyword: "ImageComments", VM: "1", Retired: false},
	TextComments: {Tag: TextComments, VRs: []vr.VR{vr.ShortText}, Name: "Text Comments", Keyword: "TextComments", VM: "1", Retired: false},
}
