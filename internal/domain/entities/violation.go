package entities

// ViolationKind groups violations by the kind of inconsistency found.
type ViolationKind string

const (
	ViolationMissingFrameworkReference ViolationKind = "missing-framework-reference"
	ViolationMissingNugetReference     ViolationKind = "missing-nuget-reference"
	ViolationVersionMismatch           ViolationKind = "version-mismatch"
)

// Violation is one inconsistency between the references a project needs and
// the ones its nuspec file declares.
type Violation struct {
	Kind      ViolationKind
	Reference string
	Message   string
}

// NewMissingFrameworkReferenceViolation reports a framework reference absent from the nuspec.
func NewMissingFrameworkReferenceViolation(frameworkReference string) Violation {
	return Violation{
		Kind:      ViolationMissingFrameworkReference,
		Reference: frameworkReference,
		Message:   "missing framework reference `" + frameworkReference + "`.",
	}
}

// NewMissingNugetReferenceViolation reports a resolved package absent from the nuspec.
func NewMissingNugetReferenceViolation(nugetReference string) Violation {
	return Violation{
		Kind:      ViolationMissingNugetReference,
		Reference: nugetReference,
		Message:   "missing reference in nuspec file `" + nugetReference + "`.",
	}
}

// NewVersionMismatchViolation reports a package whose resolved version does
// not satisfy the version declared in the nuspec.
func NewVersionMismatchViolation(nugetReference, versionCheckerErrorMessage string) Violation {
	return Violation{
		Kind:      ViolationVersionMismatch,
		Reference: nugetReference,
		Message:   "wrong version found for `" + nugetReference + "`: " + versionCheckerErrorMessage,
	}
}

func (v Violation) String() string {
	return v.Message
}
