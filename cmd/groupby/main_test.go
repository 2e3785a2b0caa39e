package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	groupby "github.com/marco-gagliardi/group-by"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b,"))
	assert.Nil(t, splitList(""))
}

func TestAggregationsFromFlags(t *testing.T) {
	spec, err := aggregationsFromFlags("n,m", "tag=concat,n=max")
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "m", "tag"}, spec.Fields())

	_, err = aggregationsFromFlags("", "tag")
	assert.ErrorIs(t, err, groupby.ErrInvalidAggregationSpec)

	_, err = aggregationsFromFlags("", "tag=median")
	assert.ErrorIs(t, err, groupby.ErrUnknownAggregation)
}

func TestRunWithInputFile(t *testing.T) {
	input := writeTemp(t, "input.json", `[{"cat":"a","n":"1"},{"cat":"a","n":"2"},{"cat":"b","n":"5"}]`)

	result, err := run(opts{inputFile: input, groupings: "cat", sumFields: "n"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, result, false))
	assert.JSONEq(t, `[{"cat":"a","n":3},{"cat":"b","n":"5"}]`, buf.String())
}

func TestRunWithRequestFile(t *testing.T) {
	request := writeTemp(t, "request.json", `{
		"input": [{"cat": "a", "n": "x"}, {"cat": "a", "n": "2"}, {"cat": "b"}],
		"groupings": ["cat"],
		"aggregatedFields": ["n"]
	}`)

	result, err := run(opts{requestFile: request})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeResult(&buf, result, true))
	assert.JSONEq(t, `[{"cat":"a","n":null},{"cat":"b"}]`, buf.String())
}

func TestRunErrors(t *testing.T) {
	_, err := run(opts{})
	assert.Error(t, err)

	_, err = run(opts{inputFile: filepath.Join(t.TempDir(), "absent.json")})
	assert.Error(t, err)

	input := writeTemp(t, "input.json", `{"cat":"a"}`)
	_, err = run(opts{inputFile: input})
	assert.ErrorIs(t, err, groupby.ErrInvalidInput)

	request := writeTemp(t, "request.json", `{"groupings": ["cat"]}`)
	_, err = run(opts{requestFile: request})
	assert.ErrorIs(t, err, groupby.ErrInvalidRequest)
}
