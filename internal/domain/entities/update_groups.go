package entities

import "strconv"

// BuildUpdateGroups returns fresh trackers for every enabled attribute group.
// Trackers accumulate state, so a new set is needed for each file.
func BuildUpdateGroups(options *CSharpOptions) []UpdateGroupTracker {
	if options == nil {
		return nil
	}

	var groups []UpdateGroupTracker

	if v := options.CsProjVersioningOptions; v != nil {
		groups = append(groups,
			UpdateGroupTracker{
				NotFoundAction: NotFoundDoNothing,
				Trackers: []*UpdateTracker{
					NewMonikerTracker(TargetFramework, TargetFrameworks, v.TargetFramework,
						v.ProtectedTargetFrameworkPrefixes...),
				},
			},
			UpdateGroupTracker{
				NotFoundAction: NotFoundAddToFirstBlock,
				Trackers: []*UpdateTracker{
					NewUpdateTracker(LangVersion, v.LangVersion, true),
					NewUpdateTracker(TreatWarningsAsErrors, strconv.FormatBool(v.TreatWarningsAsErrors), true),
				},
			},
		)
	}

	if a := options.CsProjDotNetAnalyzerOptions; a != nil {
		groups = append(groups, UpdateGroupTracker{
			NotFoundAction: NotFoundAddToNewBlock,
			Trackers: []*UpdateTracker{
				NewUpdateTracker(EnableNETAnalyzers, strconv.FormatBool(a.EnableNetAnalyzers), true),
				NewUpdateTracker(EnforceCodeStyleInBuild, strconv.FormatBool(a.EnforceCodeStyleInBuild), true),
			},
		})
	}

	if n := options.NugetAuditOptions; n != nil {
		groups = append(groups, UpdateGroupTracker{
			NotFoundAction: NotFoundAddToNewBlock,
			Trackers: []*UpdateTracker{
				NewUpdateTracker(NuGetAudit, strconv.FormatBool(n.NuGetAudit), true),
				NewUpdateTracker(NuGetAuditMode, n.AuditMode, true),
				NewUpdateTracker(NuGetAuditLevel, n.AuditLevel, true),
			},
		})
	}

	return groups
}
