// Package anonymize implements DICOM PS3.15 compliant de-identification profiles.
package anonymize

import (
	"github.com/codeninja55/dcmfx/dicom/tag"
)

// initializeBasicProfile sets up actions for the Basic Application Level Confidentiality Profile.
//
// This implements DICOM PS3.15 Annex E Table E.1-1:
// Application Level Confidentiality Profile Attributes
//
// Reference: https://dicom.nema.org/medical/dicom/current/output/html/part15.html#table_E.1-1
func (a *Anonymizer) initializeBasicProfile() {
	// Patient Module attributes
	a.actions[tag.PatientName] = ActionDummy                // D
	a.actions[tag.PatientID] = ActionDummy                  // D
	a.actions[tag.PatientBirthDate] = ActionEmpty           // Z
	a.actions[tag.PatientBirthTime] = ActionRemove          // X
	a.actions[tag.PatientSex] = ActionKeep                  // Keep if RetainPatientCharacteristics
	a.actions[tag.PatientAge] = ActionKeep                  // Keep if RetainPatientCharacteristics
	a.actions[tag.PatientSize] = ActionKeep                 // Keep if RetainPatientCharacteristics
	a.actions[tag.PatientWeight] = ActionKeep               // Keep if RetainPatientCharacteristics
	a.actions[tag.OtherPatientIDs] = ActionRemove           // X
	a.actions[tag.OtherPatientNames] = ActionRemove         // X
	a.actions[tag.PatientBirthName] = ActionRemove          // X
	a.actions[tag.PatientMotherBirthName] = ActionRemove    // X
	a.actions[tag.MedicalRecordLocator] = ActionRemove      // X
	a.actions[tag.EthnicGroup] = ActionRemove               // X
	a.actions[tag.PatientComments] = ActionRemove           // X
	a.actions[tag.PatientSpeciesDescription] = ActionRemove // X
	a.actions[tag.PatientBreedDescription] = ActionRemove   // X
	a.actions[tag.ResponsiblePerson] = ActionRemove         // X
	a.actions[tag.ResponsibleOrganization] = ActionRemove   // X
	a.actions[tag.PatientIdentityRemoved] = ActionDummy     // Set to YES

	// General Study Module
	a.actions[tag.StudyInstanceUID] = ActionUID                      // U
	a.actions[tag.StudyDate] = ActionEmpty                           // Z/D
	a.actions[tag.StudyTime] = ActionEmpty                           // Z/D
	a.actions[tag.ReferringPhysicianName] = ActionEmpty              // Z
	a.actions[tag.ReferringPhysicianAddress] = ActionRemove          // X
	a.actions[tag.ReferringPhysicianTelephoneNumbers] = ActionRemove // X
	a.actions[tag.StudyID] = ActionEmpty                             // Z
	a.actions[tag.AccessionNumber] = ActionEmpty                     // Z
	a.actions[tag.IssuerOfAccessionNumberSequence] = ActionRemove    // X
	a.actions[tag.StudyDescription] = ActionClean                    // C - Clean descriptors
	a.actions[tag.PhysiciansOfRecord] = ActionRemove                 // X
	a.actions[tag.NameOfPhysiciansReadingStudy] = ActionRemove       // X
	a.actions[tag.RequestingPhysician] = ActionRemove                // X
	a.actions[tag.ConsultingPhysicianName] = ActionRemove            // X
	a.actions[tag.AdmittingDiagnosesDescription] = ActionRemove      // X
	a.actions[tag.ReferencedStudySequence] = ActionKeep              // Keep UIDs handled separately

	// General Series Module
	a.actions[tag.SeriesInstanceUID] = ActionUID            // U
	a.actions[tag.SeriesNumber] = ActionKeep                // K
	a.actions[tag.SeriesDate] = ActionEmpty                 // Z/D
	a.actions[tag.SeriesTime] = ActionEmpty                 // Z/D
	a.actions[tag.SeriesDescription] = ActionClean          // C
	a.actions[tag.PerformingPhysicianName] = ActionEmpty    // Z
	a.actions[tag.OperatorsName] = ActionEmpty              // Z
	a.actions[tag.ProtocolName] = ActionClean               // C
	a.actions[tag.RequestAttributesSequence] = ActionRemove // X

	// General Equipment Module
	a.actions[tag.InstitutionName] = ActionRemove             // X/D based on RetainDeviceIdentity
	a.actions[tag.InstitutionAddress] = ActionRemove          // X
	a.actions[tag.InstitutionalDepartmentName] = ActionRemove // X
	a.actions[tag.StationName] = ActionKeep                   // Keep if RetainDeviceIdentity
	a.actions[tag.DeviceSerialNumber] = ActionRemove          // X/D

	// General Image Module
	a.actions[tag.SOPInstanceUID] = ActionUID          // U
	a.actions[tag.AcquisitionDate] = ActionEmpty       // Z/D
	a.actions[tag.AcquisitionTime] = ActionEmpty       // Z/D
	a.actions[tag.AcquisitionDateTime] = ActionEmpty   // Z/D
	a.actions[tag.ContentDate] = ActionEmpty           // Z
	a.actions[tag.ContentTime] = ActionEmpty           // Z
	a.actions[tag.InstanceCreationDate] = ActionEmpty  // Z
	a.actions[tag.InstanceCreationTime] = ActionEmpty  // Z
	a.actions[tag.InstanceCreatorUID] = ActionRemove   // X
	a.actions[tag.DerivationDescription] = ActionClean // C

	// SOP Common Module
	a.actions[tag.InstanceNumber] = ActionKeep              // K
	a.actions[tag.TimezoneOffsetFromUTC] = ActionRemove     // X
	a.actions[tag.DigitalSignaturesSequence] = ActionRemove // X

	// Patient Study Module
	a.actions[tag.PatientSexNeutered] = ActionRemove // X

	// Overlay Identification (if present)
	// Note: Overlays are handled via RemoveOverlays option

	// Curve Identification (if present)
	// Note: Curves are handled via RemoveCurves option

	// Additional identifying attributes
	a.actions[tag.ImageComments] = ActionRemove               // X
	a.actions[tag.FrameComments] = ActionRemove               // X
	a.actions[tag.RequestingService] = ActionRemove           // X
	a.actions[tag.CurrentPatientLocation] = ActionRemove      // X
	a.actions[tag.PatientInstitutionResidence] = ActionRemove // X

	// Modified Attributes Sequence
	a.actions[tag.ModifiedAttributesSequence] = ActionRemove // X

	// Original Attributes Sequence
	a.actions[tag.OriginalAttributesSequence] = ActionRemove // X

	// Person Identification
	a.actions[tag.PersonName] = ActionRemove             // X
	a.actions[tag.PersonAddress] = ActionRemove          // X
	a.actions[tag.PersonTelephoneNumbers] = ActionRemove // X

	// Text observations and comments
	a.actions[tag.TextComments] = ActionRemove // X
	a.actions[tag.TextString] = ActionRemove   // X

	// Study and series comments
	a.actions[tag.AdditionalPatientHistory] = ActionRemove // X
	a.actions[tag.Occupation] = ActionRemove               // X
	a.actions[tag.MilitaryRank] = ActionRemove             // X
	a.actions[tag.BranchOfService] = ActionRemove          // X
	a.actions[tag.CountryOfResidence] = ActionRemove       // X
	a.actions[tag.RegionOfResidence] = ActionRemove        // X

	// Dates and times that may identify temporal patterns
	a.actions[tag.PerformedProcedureStepStartDate] = ActionEmpty // Z/D
	a.actions[tag.PerformedProcedureStepStartTime] = ActionEmpty // Z/D
	a.actions[tag.PerformedProcedureStepEndDate] = ActionEmpty   // Z/D
	a.actions[tag.PerformedProcedureStepEndTime] = ActionEmpty   // Z/D

	// File metadata that may contain identifying information
	a.actions[tag.MediaStorageSOPInstanceUID] = ActionUID // U - should match SOPInstanceUID

	// Apply options-based modifications
	if a.config.Options.RetainDeviceIdentity {
		a.actions[tag.InstitutionName] = ActionKeep
		a.actions[tag.StationName] = ActionKeep
		a.actions[tag.DeviceSerialNumber] = ActionKeep
		a.actions[tag.InstitutionalDepartmentName] = ActionKeep
	}

	if a.config.Options.RetainPatientCharacteristics {
		a.actions[tag.PatientAge] = ActionKeep
		a.actions[tag.PatientSex] = ActionKeep
		a.actions[tag.PatientSize] = ActionKeep
		a.actions[tag.PatientWeight] = ActionKeep
	} else {
		a.actions[tag.PatientAge] = ActionEmpty
		a.actions[tag.PatientSex] = ActionEmpty
		a.actions[tag.PatientSize] = ActionRemove
		a.actions[tag.PatientWeight] = ActionRemove
	}

	if a.config.Options.RetainUIDs {
		a.actions[tag.StudyInstanceUID] = ActionKeep
		a.actions[tag.SeriesInstanceUID] = ActionKeep
		a.actions[tag.SOPInstanceUID] = ActionKeep
		a.actions[tag.MediaStorageSOPInstanceUID] = ActionKeep
	}

	if a.config.Options.CleanDescriptors {
		a.initializeCleanDescriptorsProfile()
	}

	if a.config.Options.RetainLongitudinalTemporalInfo {
		// Shift instead of blanking out, to preserve longitudinal spacing.
		a.actions[tag.StudyDate] = ActionDateShift
		a.actions[tag.StudyTime] = ActionDateShift
		a.actions[tag.SeriesDate] = ActionDateShift
		a.actions[tag.SeriesTime] = ActionDateShift
		a.actions[tag.AcquisitionDate] = ActionDateShift
		a.actions[tag.AcquisitionTime] = ActionDateShift
		a.actions[tag.AcquisitionDateTime] = ActionDateShift
		a.actions[tag.ContentDate] = ActionDateShift
		a.actions[tag.ContentTime] = ActionDateShift
	}
}

// initializeCleanPixelDataProfile adds actions for the Clean Pixel Data Option.
//
// It adds no actions: pixel data, including burned-in annotations, is not
// modified.
func (a *Anonymizer) initializeCleanPixelDataProfile() {
}

// initializeCleanDescriptorsProfile adds actions for the Clean Descriptors Option.
//
// This cleans text fields of identifying information while preserving clinical content.
func (a *Anonymizer) initializeCleanDescriptorsProfile() {
	// Text fields that should be cleaned rather than removed
	a.actions[tag.StudyDescription] = ActionClean
	a.actions[tag.SeriesDescription] = ActionClean
	a.actions[tag.ProtocolName] = ActionClean
	a.actions[tag.DerivationDescription] = ActionClean
	a.actions[tag.ImageComments] = ActionClean
	a.actions[tag.RequestedProcedureDescription] = ActionClean
	a.actions[tag.PerformedProcedureStepDescription] = ActionClean
}
