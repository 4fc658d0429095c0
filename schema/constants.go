package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// SubjectCategory represents a coarse subject grouping assigned by
	// keyword classification.
	SubjectCategory string

	// DeltaSortMode represents the ordering applied to delta rows.
	DeltaSortMode string

	// CategorySortMode represents the ordering applied to category stats.
	CategorySortMode string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// The closed set of subject categories. Classification always resolves to
// exactly one of these; anything unmatched falls back to CategoryOther.
const (
	CategoryComputerScience SubjectCategory = "Computer Science"
	CategoryMathematics     SubjectCategory = "Mathematics"
	CategoryMedicine        SubjectCategory = "Medicine & Health"
	CategoryScience         SubjectCategory = "Science"
	CategoryLawGovernment   SubjectCategory = "Law & Government"
	CategoryHumanities      SubjectCategory = "Humanities & Philosophy"
	CategoryBusiness        SubjectCategory = "Business & Economics"
	CategorySocialSciences  SubjectCategory = "Social Sciences"
	CategoryEducation       SubjectCategory = "Education"
	CategoryEngineering     SubjectCategory = "Engineering & Technical"
	CategoryVocationalArts  SubjectCategory = "Vocational & Arts"
	CategoryLanguages       SubjectCategory = "Languages & Literature"
	CategoryMiscellaneous   SubjectCategory = "Miscellaneous"
	CategoryOther           SubjectCategory = "Other"
)

// All delta sort modes supported.
const (
	AbsDescSort   DeltaSortMode = "abs-desc" // default
	DeltaDescSort DeltaSortMode = "delta-desc"
	DeltaAscSort  DeltaSortMode = "delta-asc"
	CategorySort  DeltaSortMode = "category"
)

// All category sort modes supported.
const (
	AvgSort      CategorySortMode = "avg" // default
	VarianceSort CategorySortMode = "variance"
	NameSort     CategorySortMode = "name"
	TestsSort    CategorySortMode = "tests"
)

// DefaultVariance marks a source that ran without a named ablation.
const DefaultVariance = "default"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDeltaSortModes lists all valid delta sort modes.
var ValidDeltaSortModes = map[DeltaSortMode]struct{}{
	AbsDescSort:   {},
	DeltaDescSort: {},
	DeltaAscSort:  {},
	CategorySort:  {},
}

// ValidCategorySortModes lists all valid category sort modes.
var ValidCategorySortModes = map[CategorySortMode]struct{}{
	AvgSort:      {},
	VarianceSort: {},
	NameSort:     {},
	TestsSort:    {},
}

// AllSubjectCategories returns the closed label set in classification
// precedence order, with the fallback last.
var AllSubjectCategories = []SubjectCategory{
	CategoryComputerScience,
	CategoryMathematics,
	CategoryMedicine,
	CategoryScience,
	CategoryLawGovernment,
	CategoryHumanities,
	CategoryBusiness,
	CategorySocialSciences,
	CategoryEducation,
	CategoryEngineering,
	CategoryVocationalArts,
	CategoryLanguages,
	CategoryMiscellaneous,
	CategoryOther,
}
