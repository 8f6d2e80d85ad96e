package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driven"
)

// Class markers of generated nodes.
const (
	classExperience = "job-experience"
	classEducation  = "education-experience"
	classJobTitle   = "job-title"
	classInterest   = "interest-item"
)

// Section anchors addressed by id.
const (
	anchorExperience = "experience"
	anchorEducation  = "education"
	anchorInterests  = "interests"
)

// surface is a container of labelled lists, such as the desktop sidebar
// or the mobile accordion.
type surface struct {
	name      string
	container string
	item      string
	label     string
	list      string
}

var (
	sidebarSurface = surface{
		name:      "sidebar",
		container: "aside#sidebar",
		item:      "section.sidebar-section",
		label:     "h4",
		list:      "ul",
	}
	accordionSurface = surface{
		name:      "accordion",
		container: "div.accordion-container",
		item:      "div.accordion-item",
		label:     "button.accordion-header span",
		list:      "div.accordion-panel ul",
	}
	listSurfaces = []surface{sidebarSurface, accordionSurface}
)

// ReplaceRegion removes every node carrying class from tree, then inserts
// els directly after anchor so they form a contiguous run in the given
// order. It returns the number of nodes removed.
func ReplaceRegion(tree driven.DocumentTree, anchor driven.Node, class string, els []domain.Element) int {
	removed := tree.RemoveAllWithClass(class)
	insertAfterInOrder(anchor, els)
	return removed
}

// insertAfterInOrder compensates for InsertAfter pushing earlier inserts
// further away from the anchor by inserting in reverse.
func insertAfterInOrder(anchor driven.Node, els []domain.Element) {
	for i := len(els) - 1; i >= 0; i-- {
		anchor.InsertAfter(els[i])
	}
}

// ReplaceList empties list and appends one li per value.
func ReplaceList(list driven.Node, values []string) int {
	removed := list.Clear()
	for _, v := range values {
		list.Append(domain.Element{Tag: "li", Text: v})
	}
	return removed
}

// locateByID returns the section anchor with the given id.
func locateByID(tree driven.DocumentTree, id string) (driven.Node, error) {
	anchor := tree.FindByID(id)
	if anchor == nil {
		return nil, fmt.Errorf("%w: #%s", domain.ErrRegionNotFound, id)
	}
	return anchor, nil
}

// locateLabeled returns the list of the first item on surface s whose
// label text equals label.
func locateLabeled(tree driven.DocumentTree, s surface, label string) (driven.Node, error) {
	container := tree.Find(s.container)
	if container == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRegionNotFound, s.container)
	}

	for _, item := range container.FindAll(s.item) {
		l := item.Find(s.label)
		if l == nil || strings.TrimSpace(l.Text()) != label {
			continue
		}
		list := item.Find(s.list)
		if list == nil {
			return nil, fmt.Errorf("%w: %s %q has no list", domain.ErrRegionNotFound, s.name, label)
		}
		return list, nil
	}

	return nil, fmt.Errorf("%w: %s section %q", domain.ErrRegionNotFound, s.name, label)
}

// RegionUpdater applies extracted records to the regions of a page.
type RegionUpdater struct {
	remapper *CategoryRemapper
}

// NewRegionUpdater creates an updater using remapper for skill buckets.
func NewRegionUpdater(remapper *CategoryRemapper) *RegionUpdater {
	return &RegionUpdater{remapper: remapper}
}

// Apply updates one region of tree from cv. A missing anchor yields an
// error wrapping domain.ErrRegionNotFound; the rest of the page is intact.
func (u *RegionUpdater) Apply(tree driven.DocumentTree, region domain.Region, cv *domain.CV) error {
	switch region {
	case domain.RegionMeta:
		return updateMeta(tree, cv.Personal)
	case domain.RegionHeader:
		return updateHeader(tree, cv.Personal)
	case domain.RegionAbout:
		return updateAbout(tree, cv.Personal)
	case domain.RegionExperience:
		return updateEntries(tree, anchorExperience, classExperience, cv.Experience, experienceElement)
	case domain.RegionEducation:
		return updateEntries(tree, anchorEducation, classEducation, cv.Education, educationElement)
	case domain.RegionSkills:
		return u.updateSkills(tree, cv.Skills)
	case domain.RegionCredentials:
		return updateCredentials(tree, cv.Credentials)
	case domain.RegionInterests:
		return updateInterests(tree, cv.Interests)
	default:
		return fmt.Errorf("%w: unknown region %q", domain.ErrInvalidInput, region)
	}
}

func updateMeta(tree driven.DocumentTree, p domain.PersonalInfo) error {
	title := p.FullName() + " - " + p.Position
	found := false

	if n := tree.Find("title"); n != nil {
		n.SetText(title + " CV")
		found = true
	}
	for _, sel := range []string{`meta[property="og:title"]`, `meta[name="twitter:title"]`} {
		if n := tree.Find(sel); n != nil {
			n.SetAttr("content", title)
			found = true
		}
	}
	for _, sel := range []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
		`meta[name="twitter:description"]`,
	} {
		n := tree.Find(sel)
		if n == nil {
			continue
		}
		found = true
		if p.Quote != "" {
			n.SetAttr("content", p.Quote)
		}
	}

	if !found {
		return fmt.Errorf("%w: title and meta tags", domain.ErrRegionNotFound)
	}
	return nil
}

func updateHeader(tree driven.DocumentTree, p domain.PersonalInfo) error {
	h2 := tree.Find("header.container h2")
	if h2 == nil {
		return fmt.Errorf("%w: header.container h2", domain.ErrRegionNotFound)
	}
	h2.SetText(p.Position)
	return nil
}

func updateAbout(tree driven.DocumentTree, p domain.PersonalInfo) error {
	para := tree.Find("div.about-me-section hgroup p")
	if para == nil {
		return fmt.Errorf("%w: div.about-me-section hgroup p", domain.ErrRegionNotFound)
	}
	if p.Quote != "" {
		para.SetText(p.Quote)
	}
	return nil
}

func updateEntries(
	tree driven.DocumentTree,
	anchorID, class string,
	entries []domain.Entry,
	build func(domain.Entry) domain.Element,
) error {
	anchor, err := locateByID(tree, anchorID)
	if err != nil {
		return err
	}

	els := make([]domain.Element, len(entries))
	for i, e := range entries {
		els[i] = build(e)
	}
	ReplaceRegion(tree, anchor, class, els)
	return nil
}

// experienceElement renders
// <strong>org,</strong> <span class="job-title">title</span><p>dates</p><ul>...</ul>.
func experienceElement(e domain.Entry) domain.Element {
	el := domain.Element{
		Tag:   "div",
		Class: classExperience,
		Children: []domain.Element{
			{Tag: "strong", Text: e.Org + ","},
			domain.TextNode(" "),
			{Tag: "span", Class: classJobTitle, Text: e.Title},
			{Tag: "p", Text: e.Dates},
		},
	}
	if ul, ok := itemList(e.Items); ok {
		el.Children = append(el.Children, ul)
	}
	return el
}

// educationElement renders <strong>title</strong><p>org</p><p>dates</p><ul>...</ul>.
func educationElement(e domain.Entry) domain.Element {
	el := domain.Element{
		Tag:   "div",
		Class: classEducation,
		Children: []domain.Element{
			{Tag: "strong", Text: e.Title},
			{Tag: "p", Text: e.Org},
			{Tag: "p", Text: e.Dates},
		},
	}
	if ul, ok := itemList(e.Items); ok {
		el.Children = append(el.Children, ul)
	}
	return el
}

func itemList(items []string) (domain.Element, bool) {
	if len(items) == 0 {
		return domain.Element{}, false
	}
	ul := domain.Element{Tag: "ul", Children: make([]domain.Element, len(items))}
	for i, item := range items {
		ul.Children[i] = domain.Element{Tag: "li", Text: item}
	}
	return ul, true
}

// updateSkills fills every bucket on both surfaces. Buckets without a
// matching section are reported; the others are still applied.
func (u *RegionUpdater) updateSkills(tree driven.DocumentTree, records []domain.SkillRecord) error {
	var errs []error
	for _, bucket := range u.remapper.Group(records) {
		errs = append(errs, replaceOnSurfaces(tree, bucket.Label, bucket.Values)...)
	}
	return errors.Join(errs...)
}

func updateCredentials(tree driven.DocumentTree, creds []domain.CredentialRecord) error {
	lines := make([]string, len(creds))
	for i, c := range creds {
		lines[i] = c.Line()
	}
	return errors.Join(replaceOnSurfaces(tree, domain.TrainingsLabel, lines)...)
}

func replaceOnSurfaces(tree driven.DocumentTree, label string, values []string) []error {
	var errs []error
	for _, s := range listSurfaces {
		list, err := locateLabeled(tree, s, label)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ReplaceList(list, values)
	}
	return errs
}

func updateInterests(tree driven.DocumentTree, interests []string) error {
	anchor, err := locateByID(tree, anchorInterests)
	if err != nil {
		return err
	}

	els := make([]domain.Element, len(interests))
	for i, interest := range interests {
		els[i] = domain.Element{Tag: "p", Class: classInterest, Text: interest}
	}

	// Once a page carries marked interests, the paragraphs after them belong
	// to the author.
	if tree.RemoveAllWithClass(classInterest) == 0 {
		removeLegacyParagraphs(anchor)
	}
	insertAfterInOrder(anchor, els)
	return nil
}

// removeLegacyParagraphs drops the unmarked paragraphs directly following
// anchor, left over from pages generated before interests carried a class.
func removeLegacyParagraphs(anchor driven.Node) int {
	removed := 0
	for n := anchor.Next(); n != nil && n.Tag() == "p"; {
		if _, ok := n.Attr("class"); ok {
			break
		}
		next := n.Next()
		n.Remove()
		removed++
		n = next
	}
	return removed
}
