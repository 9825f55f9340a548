package uid

// Type categorizes what kind of entity a UID identifies in the DICOM standard
// dictionary (PS3.6 Annex A).
type Type string

const (
	// TypeTransferSyntax identifies a Transfer Syntax UID.
	TypeTransferSyntax Type = "Transfer Syntax"
	// TypeSOPClass identifies a SOP Class UID.
	TypeSOPClass Type = "SOP Class"
	// TypeMetaSOPClass identifies a Meta SOP Class UID.
	TypeMetaSOPClass Type = "Meta SOP Class"
)

// Info describes a single entry in the standard UID dictionary.
type Info struct {
	// UID is the parsed, validated identifier.
	UID UID
	// Name is the human-readable name assigned by the standard.
	Name string
	// Type categorizes the UID (Transfer Syntax, SOP Class, ...).
	Type Type
	// Retired is true if the standard has withdrawn this UID.
	Retired bool
}
