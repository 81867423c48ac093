package entities

// Reference is a named, optionally versioned, reference found in one of the
// checked documents. An empty Version means the document declared none.
type Reference struct {
	Name    string
	Version string
}

// ManifestReferences holds everything a nuspec file declares.
type ManifestReferences struct {
	FrameworkAssemblies []Reference
	NugetDependencies   []Reference
}

// firstByName returns the first reference called name, if any.
func firstByName(references []Reference, name string) (Reference, bool) {
	for _, reference := range references {
		if reference.Name == name {
			return reference, true
		}
	}
	return Reference{}, false
}
