package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cclicense "github.com/albertocavalcante/go-cclicense"
)

func TestNewRecord(t *testing.T) {
	l := cclicense.MustParse("https://creativecommons.org/licenses/by-nc-sa/4.0/")
	r := newRecord("https://creativecommons.org/licenses/by-nc-sa/4.0/", l)

	assert.Equal(t, "CC BY-NC-SA 4.0", r.Short)
	assert.Equal(t, "CC BY-NC-SA", r.Rights)
	assert.Equal(t, "Attribution-NonCommercial-ShareAlike", r.RightsFull)
	assert.Equal(t, "4.0", r.Version)
	assert.Equal(t, "International", r.Nomenclature)
	assert.Equal(t, "Creative Commons Attribution-NonCommercial-ShareAlike 4.0 International license (CC BY-NC-SA 4.0).", r.Canonical)
}

func TestEmit(t *testing.T) {
	records := []record{
		newRecord("https://creativecommons.org/licenses/by/4.0/", cclicense.MustParse("https://creativecommons.org/licenses/by/4.0/")),
		newRecord("https://creativecommons.org/publicdomain/zero/1.0/", cclicense.MustParse("https://creativecommons.org/publicdomain/zero/1.0/")),
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, emit(&buf, "text", records))
		assert.Equal(t,
			"Creative Commons Attribution 4.0 International license (CC BY 4.0).\n"+
				"Creative Commons CC0 1.0 Universal license (CC0 1.0).\n",
			buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, emit(&buf, "json", records))

		var decoded []record
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, records, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, emit(&buf, "yaml", records))

		var decoded []record
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, records, decoded)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, emit(&buf, "xml", records))
	})
}

func TestParseCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cmd := rootCmd()
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs([]string{"parse", "https://creativecommons.org/licenses/by/4.0/"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "Creative Commons Attribution 4.0 International license (CC BY 4.0).\n", out.String())
		assert.Empty(t, errOut.String())
	})

	t.Run("invalid URL fails", func(t *testing.T) {
		cmd := rootCmd()
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs([]string{"parse", "https://example.com/"})

		assert.Error(t, cmd.Execute())
		assert.Contains(t, errOut.String(), "invalid license URL")
	})
}

func TestListCommand(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"list", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var decoded []record
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Len(t, decoded, 31)
}
