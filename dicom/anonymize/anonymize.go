// Package anonymize implements DICOM PS3.15 compliant de-identification.
package anonymize

import (
	"fmt"
	"time"

	"github.com/codeninja55/dcmfx/dicom"
	"github.com/codeninja55/dcmfx/dicom/element"
	"github.com/codeninja55/dcmfx/dicom/tag"
	"github.com/codeninja55/dcmfx/dicom/transform"
	"github.com/codeninja55/dcmfx/dicom/uid"
	"github.com/codeninja55/dcmfx/dicom/value"
	"github.com/codeninja55/dcmfx/dicom/vr"
)

// Profile represents a DICOM PS3.15 de-identification profile.
type Profile int

const (
	// ProfileBasic is the Basic Application Level Confidentiality Profile (PS3.15 E.1).
	ProfileBasic Profile = iota

	// ProfileClean includes Basic profile with Clean Pixel Data and Clean Descriptors options.
	ProfileClean

	// ProfileRetainUIDs includes Basic profile but retains UIDs for longitudinal studies.
	ProfileRetainUIDs

	// ProfileRetainDeviceIdentity includes Basic profile but retains device/institution information.
	ProfileRetainDeviceIdentity

	// ProfileCustom allows full customization of anonymization actions.
	ProfileCustom
)

// Action represents the action to take for a DICOM attribute during anonymization.
//
// These actions follow DICOM PS3.15 Table E.1-1 notation.
type Action int

const (
	// ActionKeep preserves the attribute unchanged (K).
	ActionKeep Action = iota

	// ActionRemove deletes the attribute from the data set (X).
	ActionRemove

	// ActionEmpty replaces the value with a zero-length placeholder of the
	// same VR (Z).
	ActionEmpty

	// ActionDummy replaces the value with a fixed dummy value of the same
	// VR (D).
	ActionDummy

	// ActionClean replaces values of similar meaning without identification
	// (C). The token stream never exposes the original value to a
	// compiled-ahead-of-time substitution, so this currently resolves to
	// the same fixed placeholder as ActionDummy.
	ActionClean

	// ActionUID replaces UIDs with a freshly generated value (U).
	ActionUID

	// ActionHash replaces the value with a one-way hash for consistency
	// without identification. Same streaming limitation as ActionClean:
	// resolves to a fixed placeholder.
	ActionHash

	// ActionDateShift shifts dates/times by a secret per-study offset to
	// retain longitudinal relationships. Not implemented: behaves as
	// ActionKeep until a date-shift transform exists.
	ActionDateShift
)

// Options configures anonymization behavior beyond the base profile.
type Options struct {
	// RetainUIDs preserves original UIDs (for longitudinal studies).
	RetainUIDs bool

	// RetainDeviceIdentity preserves device and institution information.
	RetainDeviceIdentity bool

	// RetainPatientCharacteristics preserves age, sex, size, weight.
	RetainPatientCharacteristics bool

	// RetainLongitudinalTemporalInfo selects ActionDateShift instead of
	// ActionEmpty for dates/times. See ActionDateShift: currently a stub.
	RetainLongitudinalTemporalInfo bool

	// DateOffset is the offset ActionDateShift would apply, once implemented.
	DateOffset time.Duration

	// CleanPixelData would scrub burned-in annotations from pixel data.
	// Not implemented: doing so needs image-level analysis, not a token
	// transform, and is tracked as an open question rather than built here.
	CleanPixelData bool

	// CleanDescriptors routes descriptive text fields through ActionClean
	// instead of ActionRemove.
	CleanDescriptors bool

	// RemovePrivateTags drops every tag with an odd group number that has
	// no explicit action.
	RemovePrivateTags bool

	// RemoveOverlays drops the repeating overlay-plane group (60xx).
	RemoveOverlays bool

	// RemoveCurves drops the retired repeating curve-data group (50xx).
	RemoveCurves bool
}

// Config contains the complete configuration for an Anonymizer.
type Config struct {
	// Profile is the base de-identification profile to use.
	Profile Profile

	// Options provides additional configuration.
	Options Options

	// PatientName is the replacement value for patient name.
	PatientName string

	// PatientID is the replacement value for patient ID.
	PatientID string

	// InstitutionName is the replacement value for institution name.
	InstitutionName string

	// CustomActions overrides the action for specific tags.
	CustomActions map[tag.Tag]Action
}

// Anonymizer compiles a profile and its options into a table of per-tag
// actions, which Transform then turns into a streaming token transform.
type Anonymizer struct {
	config  Config
	actions map[tag.Tag]Action
}

// NewAnonymizer creates an anonymizer with the specified profile.
//
// Example:
//
//	anonymizer := anonymize.NewAnonymizer(anonymize.ProfileBasic)
func NewAnonymizer(profile Profile) *Anonymizer {
	config := Config{
		Profile:     profile,
		PatientName: "ANONYMOUS",
		PatientID:   fmt.Sprintf("ANON%d", time.Now().Unix()),
		Options:     defaultOptionsForProfile(profile),
	}
	return NewAnonymizerWithConfig(config)
}

// NewAnonymizerWithConfig creates an anonymizer with custom configuration.
//
// Example:
//
//	config := anonymize.Config{
//	    Profile: anonymize.ProfileBasic,
//	    Options: anonymize.Options{
//	        RetainUIDs: true,
//	        CleanDescriptors: true,
//	    },
//	    PatientName: "STUDY_001",
//	}
//	anonymizer := anonymize.NewAnonymizerWithConfig(config)
func NewAnonymizerWithConfig(config Config) *Anonymizer {
	a := &Anonymizer{
		config:  config,
		actions: make(map[tag.Tag]Action),
	}

	a.initializeActions()

	for t, action := range config.CustomActions {
		a.actions[t] = action
	}

	return a
}

// Transform compiles the configured actions into a token-stream transform.
//
// Tags acting X (ActionRemove) or matching a Remove*/private-tag option are
// dropped by a transform.Filter; everything else needing a substitute value
// (Z/D/C/U/HASH) is handled by a single transform.Insert layered on top, so
// anonymization stays O(1) in data set size like every other transform in
// this package - no whole-dataset buffering.
//
// Example:
//
//	tr, err := anonymizer.Transform()
//	out, err := transform.Run(tokens, tr)
func (a *Anonymizer) Transform() (transform.Transform, error) {
	var toInsert []*element.Element
	for t, action := range a.actions {
		// File Meta Information (group 0002) is a separate data set from
		// the main one Insert patches; a substitute value for one of its
		// tags belongs in FileMetaInformationToken, not here.
		if t.Group == tag.MetadataGroup {
			continue
		}
		switch action {
		case ActionEmpty, ActionDummy, ActionClean, ActionUID, ActionHash:
			el, err := a.replacementElement(t, action)
			if err != nil {
				return nil, err
			}
			toInsert = append(toInsert, el)
		}
	}

	return &pipeline{stages: []transform.Transform{
		transform.NewFilter(a.keepFunc()),
		transform.NewInsert(toInsert...),
	}}, nil
}

// pipeline runs a fixed chain of transforms over each token in turn,
// threading the output of one stage into the input of the next.
type pipeline struct {
	stages []transform.Transform
}

func (p *pipeline) Apply(tok dicom.Token) ([]dicom.Token, error) {
	cur := []dicom.Token{tok}
	for _, stage := range p.stages {
		var next []dicom.Token
		for _, t := range cur {
			out, err := stage.Apply(t)
			if err != nil {
				return nil, err
			}
			next = append(next, out...)
		}
		cur = next
	}
	return cur, nil
}

// keepFunc returns the predicate the Filter stage uses to decide which
// elements survive.
func (a *Anonymizer) keepFunc() transform.KeepFunc {
	return func(_ []tag.Tag, t tag.Tag) bool {
		if action, explicit := a.actions[t]; explicit {
			return action != ActionRemove
		}
		if a.config.Options.RemovePrivateTags && isPrivateTag(t) {
			return false
		}
		if a.config.Options.RemoveOverlays && t.Group&0xFF00 == 0x6000 {
			return false
		}
		if a.config.Options.RemoveCurves && t.Group&0xFF00 == 0x5000 {
			return false
		}
		return true
	}
}

// replacementElement builds the element Insert should substitute for tag t
// under action.
func (a *Anonymizer) replacementElement(t tag.Tag, action Action) (*element.Element, error) {
	v := vr.Unknown
	if info, ok := tag.TagDict[t]; ok && len(info.VRs) > 0 {
		v = info.VRs[0]
	}

	switch t {
	case tag.PatientName:
		return stringElement(t, vr.PersonName, a.config.PatientName)
	case tag.PatientID:
		return stringElement(t, vr.LongString, a.config.PatientID)
	case tag.InstitutionName:
		return stringElement(t, vr.LongString, a.config.InstitutionName)
	case tag.PatientIdentityRemoved:
		return stringElement(t, vr.CodeString, "YES")
	}

	switch action {
	case ActionEmpty:
		return emptyElement(t, v)
	case ActionUID:
		return stringElement(t, vr.UniqueIdentifier, uid.Generate())
	default: // ActionDummy, ActionClean, ActionHash
		return dummyElement(t, v)
	}
}

func stringElement(t tag.Tag, v vr.VR, s string) (*element.Element, error) {
	val, err := value.NewStringValue(v, []string{s})
	if err != nil {
		return nil, fmt.Errorf("anonymize: build replacement for %s: %w", t, err)
	}
	return element.NewElement(t, v, val)
}

func emptyElement(t tag.Tag, v vr.VR) (*element.Element, error) {
	var val value.Value
	var err error

	switch v {
	case vr.PersonName, vr.LongString, vr.ShortString, vr.UnlimitedText,
		vr.ShortText, vr.LongText, vr.CodeString, vr.Date, vr.Time,
		vr.DateTime, vr.AgeString, vr.ApplicationEntity:
		val, err = value.NewStringValue(v, []string{""})
	case vr.IntegerString:
		val, err = value.NewIntValue(v, []int64{})
	case vr.DecimalString:
		val, err = value.NewFloatValue(v, []float64{})
	default:
		val, err = value.NewBytesValue(v, []byte{})
	}

	if err != nil {
		return nil, fmt.Errorf("anonymize: build empty replacement for %s: %w", t, err)
	}
	return element.NewElement(t, v, val)
}

func dummyElement(t tag.Tag, v vr.VR) (*element.Element, error) {
	switch v {
	case vr.PersonName:
		return stringElement(t, v, "ANONYMOUS")
	case vr.Date:
		return stringElement(t, v, "19000101")
	case vr.Time:
		return stringElement(t, v, "000000")
	case vr.DateTime:
		return stringElement(t, v, "19000101000000")
	case vr.AgeString:
		return stringElement(t, v, "000Y")
	case vr.LongString, vr.ShortString, vr.LongText, vr.ShortText,
		vr.UnlimitedText, vr.CodeString:
		return stringElement(t, v, "REMOVED")
	default:
		return emptyElement(t, v)
	}
}

func defaultOptionsForProfile(profile Profile) Options {
	switch profile {
	case ProfileBasic:
		return Options{RemovePrivateTags: true}
	case ProfileClean:
		return Options{
			RemovePrivateTags: true,
			CleanPixelData:    true,
			CleanDescriptors:  true,
		}
	case ProfileRetainUIDs:
		return Options{RemovePrivateTags: true, RetainUIDs: true}
	case ProfileRetainDeviceIdentity:
		return Options{RemovePrivateTags: true, RetainDeviceIdentity: true}
	default:
		return Options{}
	}
}

func isPrivateTag(t tag.Tag) bool {
	return t.Group%2 == 1
}

// initializeActions sets up the action map based on the profile.
func (a *Anonymizer) initializeActions() {
	switch a.config.Profile {
	case ProfileBasic:
		a.initializeBasicProfile()

	case ProfileClean:
		a.initializeBasicProfile()
		a.initializeCleanDescriptorsProfile()
		// initializeCleanPixelDataProfile is intentionally a no-op; see
		// Options.CleanPixelData.
		a.initializeCleanPixelDataProfile()

	case ProfileRetainUIDs, ProfileRetainDeviceIdentity:
		a.initializeBasicProfile()

	case ProfileCustom:
		// Only CustomActions apply; no automatic initialization.

	default:
		a.initializeBasicProfile()
	}
}
