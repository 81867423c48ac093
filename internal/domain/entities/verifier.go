package entities

// Verifier reconciles the references a project needs with those its nuspec
// file declares.
type Verifier struct {
	versionMatcher VersionMatcher
}

// NewVerifier creates a Verifier that checks versions with versionMatcher.
func NewVerifier(versionMatcher VersionMatcher) *Verifier {
	return &Verifier{versionMatcher: versionMatcher}
}

// Verify returns every violation found, framework references first and
// package references second, each in the order they appear in their source
// document. Nuspec files marked as development dependencies are exempt.
//
// Malformed project references still take part with their raw name; callers
// that want to report them use ProjectDocument.References directly.
func (it *Verifier) Verify(
	project *ProjectDocument,
	nuspec *ManifestDocument,
	packages *PackagesConfigDocument,
) []Violation {
	if nuspec.IsDevelopmentDependency() {
		return nil
	}

	neededFrameworkReferences, _ := project.References()
	neededNugetReferences := packages.Packages()

	declared := nuspec.References()

	var violations []Violation

	for _, needed := range neededFrameworkReferences {
		if _, found := firstByName(declared.FrameworkAssemblies, needed.Name); !found {
			violations = append(violations, NewMissingFrameworkReferenceViolation(needed.Name))
		}
	}

	for _, needed := range neededNugetReferences {
		match, found := firstByName(declared.NugetDependencies, needed.Name)
		if !found {
			violations = append(violations, NewMissingNugetReferenceViolation(needed.Name))
			continue
		}

		result := it.versionMatcher.MatchVersion(needed.Version, match.Version)
		if !result.Success() {
			violations = append(violations, NewVersionMismatchViolation(needed.Name, result.ErrorMessage()))
		}
	}

	return violations
}
