package core

import (
	"strings"

	"github.com/benchview/benchview/schema"
)

// subjectRule pairs a subject category with the keyword disjunction that
// selects it.
type subjectRule struct {
	label    schema.SubjectCategory
	keywords []string
}

// subjectRules is evaluated top to bottom against the lowercased category
// string; the first rule with any matching keyword wins. Precedence is
// load-bearing: "computer_security" must hit Computer Science before
// "security" can pull it into Law & Government, and "business_ethics" must
// reach Business & Economics without an earlier ethics keyword stealing it.
// Adding a subject is a data change here, not a control-flow change.
var subjectRules = []subjectRule{
	{schema.CategoryComputerScience, []string{
		"computer", "machine_learning", "programming", "algorithm",
		"data_structure", "software", "informatics", "database",
	}},
	{schema.CategoryMathematics, []string{
		"math", "algebra", "arithmetic", "calculus", "geometry",
		"probability", "statistic", "trigonometry", "combinatorics",
		"number_theory",
	}},
	{schema.CategoryMedicine, []string{
		"medic", "clinical", "anatomy", "nutrition", "virology", "pharma",
		"dental", "nursing", "health", "psychiatry", "epidemiolog",
		"surgery", "immunolog", "disease", "aging",
	}},
	{schema.CategoryScience, []string{
		"biology", "chemistry", "physics", "astronomy", "geolog",
		"earth_science", "genetics", "ecolog", "zoolog", "botany",
		"natural_science",
	}},
	{schema.CategoryLawGovernment, []string{
		"law", "jurisprudence", "legal", "government", "politic",
		"foreign_policy", "civics", "constitution", "security", "justice",
	}},
	{schema.CategoryHumanities, []string{
		"philosoph", "moral", "religio", "histor", "logic", "theolog",
		"classics", "mytholog", "fallac",
	}},
	{schema.CategoryBusiness, []string{
		"business", "econom", "account", "marketing", "management",
		"finance", "trade", "entrepreneur",
	}},
	{schema.CategorySocialSciences, []string{
		"psycholog", "sociolog", "anthropolog", "geograph", "social",
		"public_relations", "demograph", "culture", "sexuality",
	}},
	{schema.CategoryEducation, []string{
		"educat", "pedagog", "teaching", "curricul",
	}},
	{schema.CategoryEngineering, []string{
		"engineer", "electrical", "electronic", "mechanic", "technolog",
		"technical", "construction", "manufactur", "robotic",
	}},
	{schema.CategoryVocationalArts, []string{
		"art", "music", "design", "culinary", "craft", "vocational",
		"theater", "drama", "photograph", "fashion",
	}},
	{schema.CategoryLanguages, []string{
		"language", "linguistic", "literature", "writing", "reading",
		"grammar", "english", "french", "spanish", "chinese", "japanese",
		"german", "translation", "vocabulary",
	}},
	{schema.CategoryMiscellaneous, []string{
		"miscellaneous", "misc", "global_facts", "common_sense", "trivia",
		"general_knowledge",
	}},
}

// Classify maps a flat-record category string to one coarse subject
// category. Matching is case-insensitive substring matching with fixed
// precedence; any string matching no rule classifies as Other. The
// function is pure, so downstream grouping by its output is stable across
// call sites.
func Classify(category string) schema.SubjectCategory {
	lower := strings.ToLower(category)
	for _, rule := range subjectRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return schema.CategoryOther
}
