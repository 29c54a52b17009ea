package entities

// ProcessOutput is what a process collaborator reports back after running a
// command to completion or until the timeout fired.
type ProcessOutput struct {
	Started                bool
	CompletedWithinTimeout bool
	ExitCode               int
	Output                 string
	ErrorOutput            string
}

// Succeeded reports a clean completion: started, finished in time, exit 0.
func (p ProcessOutput) Succeeded() bool {
	return p.Started && p.CompletedWithinTimeout && p.ExitCode == 0
}

// CompileResultType classifies a single build attempt.
type CompileResultType string

const (
	CompileSuccess            CompileResultType = "Success"
	CompileProcessDidNotStart CompileResultType = "ProcessDidNotStart"
	CompileBuildTimeout       CompileResultType = "BuildTimeout"
	CompileBuildErrors        CompileResultType = "BuildErrors"
)

// CompileResult is the build outcome of one project file or package directory.
type CompileResult struct {
	Path   string
	Result CompileResultType
}

// CompileResults bundles every build attempted by the verifier.
type CompileResults struct {
	Projects           []CompileResult
	PackageDirectories []CompileResult
}

// DependencyUpdateResult is the outcome of bumping one dependency.
type DependencyUpdateResult struct {
	ProjectFile string
	ID          string
	Succeeded   bool
}

// DependencyUpdateResults is the outcome of updating the dependencies of one
// project file.
type DependencyUpdateResults struct {
	RetrievedListSuccessfully bool
	Updates                   []DependencyUpdateResult
}

// StyleResultType is the outcome of running the formatter.
type StyleResultType string

const (
	StyleDidNotRun       StyleResultType = "DidNotRun"
	StyleRanSuccessfully StyleResultType = "RanSuccessfully"
	StyleErrored         StyleResultType = "Errored"
)

// ProjectFileUpdateResult holds the reduced outcome of every attribute
// tracked for one project file.
type ProjectFileUpdateResult struct {
	ProjectFile string
	Attributes  []AttributeResult
}

// Result returns the reduced outcome of the named attribute, Unknown when
// the attribute was not tracked.
func (r ProjectFileUpdateResult) Result(name string) ValueUpdateResultType {
	for _, attribute := range r.Attributes {
		if attribute.Name == name {
			return attribute.Result
		}
	}
	return ValueUpdateUnknown
}

// CSharpUpdateResult bundles every mutation applied to one project file.
type CSharpUpdateResult struct {
	ProjectFile       string
	DependencyUpdates DependencyUpdateResults
	ProjectFileUpdate ProjectFileUpdateResult
	StyleUpdate       StyleResultType
}

// PackageManagerUpdates lists the package directories that were processed.
type PackageManagerUpdates struct {
	Directories []string
}

// RegexSearchResult is a free-text match found in one file.
type RegexSearchResult struct {
	Description    string
	FilePath       string
	MatchedStrings []string
}

// RunResults is everything one run produced, fed to the report.
type RunResults struct {
	Work          UpdateWork
	CSharpUpdates []CSharpUpdateResult
	PackageUpdate PackageManagerUpdates
	Compile       CompileResults
	Searches      []RegexSearchResult
}
