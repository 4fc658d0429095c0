package core

import (
	"testing"

	"github.com/benchview/benchview/schema"
	"github.com/stretchr/testify/assert"
)

func TestClassify_CommonSubjects(t *testing.T) {
	cases := map[string]schema.SubjectCategory{
		"mmlu/abstract_algebra":          schema.CategoryMathematics,
		"mmlu/high_school_statistics":    schema.CategoryMathematics,
		"mmlu/college_biology":           schema.CategoryScience,
		"mmlu/conceptual_physics":        schema.CategoryScience,
		"mmlu/college_medicine":          schema.CategoryMedicine,
		"mmlu/clinical_knowledge":        schema.CategoryMedicine,
		"mmlu/machine_learning":          schema.CategoryComputerScience,
		"mmlu/college_computer_science":  schema.CategoryComputerScience,
		"mmlu/professional_law":          schema.CategoryLawGovernment,
		"mmlu/jurisprudence":             schema.CategoryLawGovernment,
		"mmlu/philosophy":                schema.CategoryHumanities,
		"mmlu/world_religions":           schema.CategoryHumanities,
		"mmlu/marketing":                 schema.CategoryBusiness,
		"mmlu/econometrics":              schema.CategoryBusiness,
		"mmlu/high_school_psychology":    schema.CategorySocialSciences,
		"mmlu/sociology":                 schema.CategorySocialSciences,
		"mmlu/electrical_engineering":    schema.CategoryEngineering,
		"mmlu/miscellaneous":             schema.CategoryMiscellaneous,
		"mmlu/global_facts":              schema.CategoryMiscellaneous,
		"gsm8k/main":                     schema.CategoryOther,
	}
	for category, want := range cases {
		assert.Equal(t, want, Classify(category), "category %q", category)
	}
}

func TestClassify_PrecedenceOrder(t *testing.T) {
	// The rule table order decides ties; first matching rule wins.
	t.Run("computer_security is computer science, not law", func(t *testing.T) {
		assert.Equal(t, schema.CategoryComputerScience, Classify("mmlu/computer_security"))
	})

	t.Run("business_ethics is business, not humanities", func(t *testing.T) {
		assert.Equal(t, schema.CategoryBusiness, Classify("mmlu/business_ethics"))
	})

	t.Run("earth_science is science despite containing art", func(t *testing.T) {
		assert.Equal(t, schema.CategoryScience, Classify("mmlu/earth_science"))
	})

	t.Run("medical_genetics is medicine, not science", func(t *testing.T) {
		assert.Equal(t, schema.CategoryMedicine, Classify("mmlu/medical_genetics"))
	})

	t.Run("history of art stays in humanities", func(t *testing.T) {
		assert.Equal(t, schema.CategoryHumanities, Classify("mmlu/history_of_art"))
	})
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, schema.CategoryMathematics, Classify("MMLU/Abstract_Algebra"))
	assert.Equal(t, schema.CategoryScience, Classify("CHEMISTRY"))
}

func TestClassify_UnknownFallsBackToOther(t *testing.T) {
	assert.Equal(t, schema.CategoryOther, Classify(""))
	assert.Equal(t, schema.CategoryOther, Classify("xyzzy/quux"))
}

func TestClassify_TotalOverLabelSet(t *testing.T) {
	// Every classification lands inside the closed label set.
	valid := make(map[schema.SubjectCategory]struct{}, len(schema.AllSubjectCategories))
	for _, c := range schema.AllSubjectCategories {
		valid[c] = struct{}{}
	}

	inputs := []string{
		"mmlu/abstract_algebra", "mmlu/anatomy", "mmlu/astronomy",
		"mmlu/business_ethics", "mmlu/clinical_knowledge", "weird-input",
		"", "datasets/nested/deep/path", "ALLCAPS", "12345",
	}
	for _, in := range inputs {
		_, ok := valid[Classify(in)]
		assert.True(t, ok, "classification of %q must be a known label", in)
	}
}
