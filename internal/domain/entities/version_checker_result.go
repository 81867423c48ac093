package entities

// VersionCheckerResult is the outcome of matching a reference version against
// a nuspec version expression. The error message is set iff the check failed.
type VersionCheckerResult struct {
	success      bool
	errorMessage string
}

// NewSuccessfulResult creates a result for a matching version.
func NewSuccessfulResult() VersionCheckerResult {
	return VersionCheckerResult{success: true}
}

// NewFailedResult creates a result for a failed check with the given message.
func NewFailedResult(errorMessage string) VersionCheckerResult {
	return VersionCheckerResult{success: false, errorMessage: errorMessage}
}

func (r VersionCheckerResult) Success() bool { return r.success }

func (r VersionCheckerResult) ErrorMessage() string { return r.errorMessage }
