package entities

import "strings"

// Failure markers searched in captured build output.
const (
	DotnetBuildFailureMarker = "Build FAILED"
	NpmBuildFailureMarker    = "ERROR"
)

// ClassifyBuild maps a process outcome to a CompileResultType.
//
// Precedence: did-not-start, then the failure marker in the captured output,
// then the timeout, then a non-zero exit code. A marker found in the output
// of a timed-out build is reported as BuildErrors.
func ClassifyBuild(output ProcessOutput, failureMarker string) CompileResultType {
	switch {
	case !output.Started:
		return CompileProcessDidNotStart
	case failureMarker != "" && strings.Contains(output.Output, failureMarker):
		return CompileBuildErrors
	case !output.CompletedWithinTimeout:
		return CompileBuildTimeout
	case output.ExitCode != 0:
		return CompileBuildErrors
	default:
		return CompileSuccess
	}
}
