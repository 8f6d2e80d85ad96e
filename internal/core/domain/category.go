package domain

// DefaultBucket is the destination label used for unmapped skill categories.
const DefaultBucket = "Skills"

// TrainingsLabel is the destination label for credentials on both surfaces.
const TrainingsLabel = "Trainings"

// DefaultCategoryMap maps source skill categories to destination bucket labels.
// Several source categories may share one bucket.
func DefaultCategoryMap() map[string]string {
	return map[string]string{
		"Product Management": "Skills",
		"Business Analysis":  "Skills",
		"Modeling":           "Skills",
		"Technical Skills":   "Technical Skills",
		"Tools & Platforms":  "Technical Skills",
		"Domain Knowledge":   "Skills",
		"Languages":          "Languages",
	}
}

// Bucket is an ordered list of skill values under one destination label.
type Bucket struct {
	Label  string
	Values []string
}

// Region identifies one generated-content category in the destination page.
type Region string

// Generated regions, in the order a sync applies them.
const (
	RegionMeta        Region = "meta"
	RegionHeader      Region = "header"
	RegionAbout       Region = "about"
	RegionExperience  Region = "experience"
	RegionEducation   Region = "education"
	RegionSkills      Region = "skills"
	RegionCredentials Region = "credentials"
	RegionInterests   Region = "interests"
)

// AllRegions returns every region in application order.
func AllRegions() []Region {
	return []Region{
		RegionMeta,
		RegionHeader,
		RegionAbout,
		RegionExperience,
		RegionEducation,
		RegionSkills,
		RegionCredentials,
		RegionInterests,
	}
}

// String returns the string representation.
func (r Region) String() string {
	return string(r)
}

// Description returns a human-readable name for progress output.
func (r Region) Description() string {
	switch r {
	case RegionMeta:
		return "Meta tags"
	case RegionHeader:
		return "Hero section"
	case RegionAbout:
		return "About section"
	case RegionExperience:
		return "Experience section"
	case RegionEducation:
		return "Education section"
	case RegionSkills:
		return "Skills sections"
	case RegionCredentials:
		return "Trainings section"
	case RegionInterests:
		return "Interests section"
	default:
		return "Unknown"
	}
}
