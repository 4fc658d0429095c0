package contract

import (
	"testing"

	"github.com/benchview/benchview/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation against a temp dir.
func validInput(t *testing.T) *ConfigRawInput {
	t.Helper()
	return &ConfigRawInput{
		ResultsDirStr: t.TempDir(),
		Limit:         DefaultResultLimit,
		Precision:     DefaultPrecision,
		Output:        "text",
		Color:         "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		cfg := &Config{}
		input := validInput(t)
		input.Filter = "mmlu"
		input.Exclude = "old/, .bak, scratch"
		input.Percent = true

		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, DefaultResultLimit, cfg.ResultLimit)
		assert.Equal(t, schema.TextOut, cfg.Output)
		assert.Equal(t, "mmlu", cfg.DatasetFilter)
		assert.Equal(t, []string{"old/", ".bak", "scratch"}, cfg.Excludes)
		assert.True(t, cfg.Percent)
		assert.True(t, cfg.UseColors)
	})

	t.Run("limit out of range", func(t *testing.T) {
		input := validInput(t)
		input.Limit = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input = validInput(t)
		input.Limit = MaxResultLimit + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("precision out of range", func(t *testing.T) {
		input := validInput(t)
		input.Precision = MaxPrecision + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid output mode", func(t *testing.T) {
		input := validInput(t)
		input.Output = "yaml"
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid output mode")
	})

	t.Run("output mode is case-insensitive", func(t *testing.T) {
		cfg := &Config{}
		input := validInput(t)
		input.Output = "JSON"
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.JSONOut, cfg.Output)
	})

	t.Run("invalid color string", func(t *testing.T) {
		input := validInput(t)
		input.Color = "maybe"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("missing results directory", func(t *testing.T) {
		input := validInput(t)
		input.ResultsDirStr = "/definitely/not/a/real/dir"
		err := ProcessAndValidate(&Config{}, input)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestRevalidateDeltas(t *testing.T) {
	t.Run("baseline required", func(t *testing.T) {
		err := RevalidateDeltas(&Config{}, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--baseline is required")
	})

	t.Run("negative threshold rejected", func(t *testing.T) {
		cfg := &Config{Baseline: "gpt-4", DeltaThreshold: -0.1}
		assert.Error(t, RevalidateDeltas(cfg, ""))
	})

	t.Run("empty sort defaults to abs-desc", func(t *testing.T) {
		cfg := &Config{Baseline: "gpt-4"}
		require.NoError(t, RevalidateDeltas(cfg, ""))
		assert.Equal(t, schema.AbsDescSort, cfg.DeltaSort)
	})

	t.Run("invalid sort mode", func(t *testing.T) {
		cfg := &Config{Baseline: "gpt-4"}
		err := RevalidateDeltas(cfg, "by-vibes")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid delta sort mode")
	})

	t.Run("valid sort modes accepted", func(t *testing.T) {
		for mode := range schema.ValidDeltaSortModes {
			cfg := &Config{Baseline: "gpt-4"}
			require.NoError(t, RevalidateDeltas(cfg, string(mode)))
			assert.Equal(t, mode, cfg.DeltaSort)
		}
	})
}

func TestRevalidateCategories(t *testing.T) {
	t.Run("empty sort defaults to avg", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, RevalidateCategories(cfg, ""))
		assert.Equal(t, schema.AvgSort, cfg.CategorySort)
	})

	t.Run("invalid sort mode", func(t *testing.T) {
		err := RevalidateCategories(&Config{}, "alphabetical")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid category sort mode")
	})

	t.Run("valid sort modes accepted", func(t *testing.T) {
		for mode := range schema.ValidCategorySortModes {
			cfg := &Config{}
			require.NoError(t, RevalidateCategories(cfg, string(mode)))
			assert.Equal(t, mode, cfg.CategorySort)
		}
	})
}

func TestConfigClone(t *testing.T) {
	orig := &Config{
		ResultsDir:  "/tmp/results",
		ResultLimit: 10,
		Excludes:    []string{"old/"},
	}

	clone := orig.Clone()
	clone.ResultLimit = 99
	clone.Excludes[0] = "changed/"

	assert.Equal(t, 10, orig.ResultLimit)
	assert.Equal(t, "old/", orig.Excludes[0], "clone must not share the excludes slice")
}
