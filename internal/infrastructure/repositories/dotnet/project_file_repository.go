package dotnet

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/beevik/etree"
	logger "github.com/sirupsen/logrus"

	"github.com/programmeral/codeupdater/internal/domain/entities"
)

const (
	propertyGroupTag = "PropertyGroup"
	defaultIndent    = "  "
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF} //nolint:gochecknoglobals // byte order mark

// ProjectFileRepository edits the property blocks of MSBuild project files.
type ProjectFileRepository struct {
	log logger.FieldLogger
}

// NewProjectFileRepository creates a project file editor.
func NewProjectFileRepository(log logger.FieldLogger) *ProjectFileRepository {
	return &ProjectFileRepository{log: log}
}

// UpdateProjectFile applies every tracker in groups to every PropertyGroup of
// the file, inserts what is missing according to each group's policy, and
// replaces the file when anything changed.
func (it *ProjectFileRepository) UpdateProjectFile(path string, groups []entities.UpdateGroupTracker) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	hasBOM := bytes.HasPrefix(data, utf8BOM)
	data = bytes.TrimPrefix(data, utf8BOM)

	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.WriteSettings.CanonicalAttrVal = true
	if err = doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("failed to parse %q: %w", path, err)
	}

	root := doc.Root()
	if root == nil {
		return fmt.Errorf("failed to parse %q: no root element", path)
	}

	spans, err := scanSpans(data, root)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", path, err)
	}

	editor := &projectEditor{
		root:   root,
		blocks: root.FindElements(".//" + propertyGroupTag),
		added:  make(map[etree.Token]bool),
	}

	for _, group := range groups {
		for _, tracker := range group.Trackers {
			for _, block := range editor.blocks {
				result := editor.apply(block, tracker)
				tracker.Record(result)
				if result == entities.ValueUpdateUpdated {
					editor.changed = true
				}
			}
			if len(editor.blocks) == 0 {
				tracker.Record(entities.ValueUpdateNotFound)
			}
		}
		editor.insertMissing(group)
	}

	for _, result := range entities.FinalResults(groups) {
		it.log.Debugf("[csproj] %s: %s -> %s", filepath.Base(path), result.Name, result.Result)
	}

	if !editor.changed {
		it.log.Infof("[csproj] %q already up to date", path)
		return nil
	}

	newline := "\n"
	if usesCRLF(data) {
		newline = "\r\n"
	}
	out := editor.render(data, spans, &doc.WriteSettings, newline)
	if hasBOM {
		out = append(append([]byte{}, utf8BOM...), out...)
	}

	if err = writeFileAtomically(path, out); err != nil {
		return err
	}
	it.log.Infof("[csproj] Updated %q", path)
	return nil
}

type projectEditor struct {
	root    *etree.Element
	blocks  []*etree.Element
	changed bool

	// edited holds source elements whose content was replaced, grown the
	// source elements that received new children. added marks every token
	// that does not exist in the source.
	edited []*etree.Element
	grown  []*etree.Element
	added  map[etree.Token]bool
}

// apply dispatches on the attribute kind and returns the outcome for block.
func (e *projectEditor) apply(block *etree.Element, tracker *entities.UpdateTracker) entities.ValueUpdateResultType {
	switch tracker.Kind {
	case entities.AttributeMoniker:
		if element := block.SelectElement(tracker.Name); hasValue(element) {
			return e.applyPlain(element, tracker)
		}
		if plural := block.SelectElement(tracker.PluralName); hasValue(plural) {
			return e.applyPlural(plural, tracker)
		}
		return entities.ValueUpdateNotFound
	case entities.AttributePluralMoniker:
		if element := block.SelectElement(tracker.Name); hasValue(element) {
			return e.applyPlural(element, tracker)
		}
		return entities.ValueUpdateNotFound
	default:
		if element := block.SelectElement(tracker.Name); hasValue(element) {
			return e.applyPlain(element, tracker)
		}
		return entities.ValueUpdateNotFound
	}
}

func hasValue(element *etree.Element) bool {
	return element != nil && strings.TrimSpace(element.Text()) != ""
}

func (e *projectEditor) applyPlain(
	element *etree.Element,
	tracker *entities.UpdateTracker,
) entities.ValueUpdateResultType {
	current := strings.TrimSpace(element.Text())
	switch {
	case current == tracker.DesiredValue:
		return entities.ValueUpdateAlreadyCorrect
	case tracker.IsProtected(current):
		return entities.ValueUpdateHasProtectedValue
	default:
		e.setText(element, tracker.DesiredValue)
		return entities.ValueUpdateUpdated
	}
}

func (e *projectEditor) applyPlural(
	element *etree.Element,
	tracker *entities.UpdateTracker,
) entities.ValueUpdateResultType {
	current := strings.TrimSpace(element.Text())
	updated, protectedHit := entities.PluralMonikerUpdate(current, tracker.DesiredValue, tracker.IsProtected)
	switch {
	case updated != current:
		e.setText(element, updated)
		return entities.ValueUpdateUpdated
	case protectedHit:
		return entities.ValueUpdateHasProtectedValue
	default:
		return entities.ValueUpdateAlreadyCorrect
	}
}

func (e *projectEditor) setText(element *etree.Element, text string) {
	element.SetText(text)
	if !e.added[element] {
		e.edited = append(e.edited, element)
	}
}

// insertMissing adds the group's missing attributes to the first block or to
// a new block. A file without any block gets a new one either way.
func (e *projectEditor) insertMissing(group entities.UpdateGroupTracker) {
	if group.NotFoundAction == entities.NotFoundDoNothing {
		return
	}
	missing := group.Missing()
	if len(missing) == 0 {
		return
	}

	var target *etree.Element
	if group.NotFoundAction == entities.NotFoundAddToFirstBlock && len(e.blocks) > 0 {
		target = e.blocks[0]
	} else {
		target = etree.NewElement(propertyGroupTag)
		e.appendChild(e.root, target)
		e.blocks = append(e.blocks, target)
	}

	for _, tracker := range missing {
		element := etree.NewElement(tracker.Name)
		element.SetText(tracker.DesiredValue)
		e.appendChild(target, element)
		tracker.Record(entities.ValueUpdateInserted)
	}
	e.changed = true
}

// appendChild adds child as the last element of parent on its own line,
// keeping the whitespace that precedes the parent's closing tag.
func (e *projectEditor) appendChild(parent, child *etree.Element) {
	indent := e.childIndent(parent)

	index := len(parent.Child)
	hasClosingWhitespace := index > 0 && isBlank(parent.Child[index-1])
	if hasClosingWhitespace {
		index--
	}

	if !e.added[parent] && !slices.Contains(e.grown, parent) {
		e.grown = append(e.grown, parent)
	}

	separator := etree.NewText("\n" + indent)
	parent.InsertChildAt(index, child)
	parent.InsertChildAt(index, separator)
	e.added[separator] = true
	e.added[child] = true
	if !hasClosingWhitespace {
		closing := etree.NewText("\n" + lineIndent(parent))
		parent.AddChild(closing)
		e.added[closing] = true
	}
}

// childIndent is the indentation of the parent's existing child elements, or
// the parent's own indentation plus one level.
func (e *projectEditor) childIndent(parent *etree.Element) string {
	if children := parent.ChildElements(); len(children) > 0 {
		if indent := lineIndent(children[0]); indent != "" {
			return indent
		}
	}
	return lineIndent(parent) + e.indentUnit()
}

func (e *projectEditor) indentUnit() string {
	if children := e.root.ChildElements(); len(children) > 0 {
		if indent := lineIndent(children[0]); indent != "" {
			return indent
		}
	}
	return defaultIndent
}

// lineIndent returns the horizontal whitespace preceding element on its line.
func lineIndent(element *etree.Element) string {
	parent := element.Parent()
	if parent == nil {
		return ""
	}
	index := element.Index()
	if index <= 0 {
		return ""
	}
	if !isBlank(parent.Child[index-1]) {
		return ""
	}
	data := parent.Child[index-1].(*etree.CharData).Data //nolint:forcetypeassert // checked by isBlank
	if n := strings.LastIndex(data, "\n"); n >= 0 {
		return data[n+1:]
	}
	return ""
}

// isBlank reports whether token is plain text made only of whitespace. Text
// created with etree.NewText never carries the decoder's whitespace flag, so
// the data itself is inspected.
func isBlank(token etree.Token) bool {
	text, ok := token.(*etree.CharData)
	return ok && !text.IsCData() && strings.TrimSpace(text.Data) == ""
}

// usesCRLF reports Windows line endings. The XML decoder normalizes them to
// "\n", so inserted lines are written with the source's line ending.
func usesCRLF(data []byte) bool {
	return bytes.Contains(data, []byte("\r\n"))
}

// writeFileAtomically replaces path with data through a sibling temp file,
// keeping the original permissions.
func writeFileAtomically(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %q: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write %q: %w", tmpName, err)
	}
	if err = tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions on %q: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close %q: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %q: %w", path, err)
	}
	return nil
}
