package entities

import "strings"

// ValueUpdateResultType is the outcome of applying one tracked attribute to
// one property block (or to the whole file, once reduced).
type ValueUpdateResultType string

const (
	ValueUpdateUnknown           ValueUpdateResultType = "Unknown"
	ValueUpdateNotFound          ValueUpdateResultType = "NotFound"
	ValueUpdateAlreadyCorrect    ValueUpdateResultType = "AlreadyCorrect"
	ValueUpdateHasProtectedValue ValueUpdateResultType = "HasProtectedValue"
	ValueUpdateUpdated           ValueUpdateResultType = "Updated"
	ValueUpdateInserted          ValueUpdateResultType = "Inserted"
)

// AttributeKind selects how a tracked attribute is located inside a block.
type AttributeKind int

const (
	// AttributePlain is a single element holding the whole value.
	AttributePlain AttributeKind = iota
	// AttributeMoniker is a single-value moniker that falls back to its
	// plural list form when the singular element is absent.
	AttributeMoniker
	// AttributePluralMoniker is a semicolon separated list of
	// "value-qualifier" tokens.
	AttributePluralMoniker
)

// Project file attribute names.
const (
	TargetFramework         = "TargetFramework"
	TargetFrameworks        = "TargetFrameworks"
	LangVersion             = "LangVersion"
	TreatWarningsAsErrors   = "TreatWarningsAsErrors"
	EnableNETAnalyzers      = "EnableNETAnalyzers"
	EnforceCodeStyleInBuild = "EnforceCodeStyleInBuild"
	NuGetAudit              = "NuGetAudit"
	NuGetAuditMode          = "NuGetAuditMode"
	NuGetAuditLevel         = "NuGetAuditLevel"
)

// UpdateTracker accumulates the per-block outcomes for one attribute.
type UpdateTracker struct {
	Name              string
	PluralName        string
	Kind              AttributeKind
	DesiredValue      string
	InsertIfAbsent    bool
	ProtectedPrefixes []string

	results []ValueUpdateResultType
}

// NewUpdateTracker creates a tracker for a plain attribute.
func NewUpdateTracker(name, desired string, insertIfAbsent bool, protectedPrefixes ...string) *UpdateTracker {
	return &UpdateTracker{
		Name:              name,
		Kind:              AttributePlain,
		DesiredValue:      desired,
		InsertIfAbsent:    insertIfAbsent,
		ProtectedPrefixes: protectedPrefixes,
	}
}

// NewMonikerTracker creates a tracker for a moniker attribute with a plural
// fallback element.
func NewMonikerTracker(name, pluralName, desired string, protectedPrefixes ...string) *UpdateTracker {
	return &UpdateTracker{
		Name:              name,
		PluralName:        pluralName,
		Kind:              AttributeMoniker,
		DesiredValue:      desired,
		ProtectedPrefixes: protectedPrefixes,
	}
}

// Record appends one observed outcome.
func (t *UpdateTracker) Record(result ValueUpdateResultType) {
	t.results = append(t.results, result)
}

// Results returns the outcomes recorded so far, in scan order.
func (t *UpdateTracker) Results() []ValueUpdateResultType {
	return append([]ValueUpdateResultType{}, t.results...)
}

// FinalResult reduces the recorded outcomes. See ReduceResults.
func (t *UpdateTracker) FinalResult() ValueUpdateResultType {
	return ReduceResults(t.results)
}

// HasMadeRequiredUpdate reports whether any block yielded a definite outcome.
func (t *UpdateTracker) HasMadeRequiredUpdate() bool {
	for _, result := range t.results {
		if result != ValueUpdateNotFound && result != ValueUpdateUnknown {
			return true
		}
	}
	return false
}

// NeedsInsert reports whether the attribute was missing everywhere and may
// be inserted.
func (t *UpdateTracker) NeedsInsert() bool {
	return t.InsertIfAbsent && !t.HasMadeRequiredUpdate()
}

// IsProtected reports whether value starts with one of the protected prefixes.
func (t *UpdateTracker) IsProtected(value string) bool {
	for _, prefix := range t.ProtectedPrefixes {
		if prefix != "" && strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// ReduceResults returns the first outcome that is not NotFound, NotFound if
// every outcome was NotFound, and Unknown when nothing was recorded.
func ReduceResults(results []ValueUpdateResultType) ValueUpdateResultType {
	if len(results) == 0 {
		return ValueUpdateUnknown
	}
	for _, result := range results {
		if result != ValueUpdateNotFound {
			return result
		}
	}
	return ValueUpdateNotFound
}

// NotFoundAction decides where missing attributes of a group are inserted.
type NotFoundAction int

const (
	NotFoundDoNothing NotFoundAction = iota
	NotFoundAddToFirstBlock
	NotFoundAddToNewBlock
)

// UpdateGroupTracker groups trackers whose missing attributes should land in
// the same property block.
type UpdateGroupTracker struct {
	NotFoundAction NotFoundAction
	Trackers       []*UpdateTracker
}

// Missing returns the trackers eligible for insertion.
func (g UpdateGroupTracker) Missing() []*UpdateTracker {
	var missing []*UpdateTracker
	for _, tracker := range g.Trackers {
		if tracker.NeedsInsert() {
			missing = append(missing, tracker)
		}
	}
	return missing
}

// AttributeResult is the reduced outcome of one attribute for one file.
type AttributeResult struct {
	Name   string
	Value  string
	Result ValueUpdateResultType
}

// FinalResults flattens the groups into reduced per-attribute outcomes,
// preserving group and tracker order.
func FinalResults(groups []UpdateGroupTracker) []AttributeResult {
	var results []AttributeResult
	for _, group := range groups {
		for _, tracker := range group.Trackers {
			results = append(results, AttributeResult{
				Name:   tracker.Name,
				Value:  tracker.DesiredValue,
				Result: tracker.FinalResult(),
			})
		}
	}
	return results
}

// UnknownResults marks every tracked attribute as Unknown. Used when the
// file could not be processed at all.
func UnknownResults(groups []UpdateGroupTracker) []AttributeResult {
	results := FinalResults(groups)
	for i := range results {
		results[i].Result = ValueUpdateUnknown
	}
	return results
}

// PluralMonikerUpdate rewrites a semicolon separated "value-qualifier" list.
// Tokens of that shape get their value replaced by desired unless the value
// is protected; other tokens pass through. It returns the new list and
// whether a protected token blocked a change.
func PluralMonikerUpdate(current, desired string, isProtected func(string) bool) (string, bool) {
	tokens := strings.Split(current, ";")
	updated := make([]string, 0, len(tokens))
	protectedHit := false

	for _, token := range tokens {
		parts := strings.Split(token, "-")
		if len(parts) != 2 { //nolint:mnd // value-qualifier
			updated = append(updated, token)
			continue
		}
		if parts[0] != desired && isProtected(parts[0]) {
			protectedHit = true
			updated = append(updated, token)
			continue
		}
		updated = append(updated, desired+"-"+parts[1])
	}

	return strings.TrimRight(strings.Join(updated, ";"), ";"), protectedHit
}
