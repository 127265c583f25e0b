package fstree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	doc := `{
		"Documents": {
			"Projects": {
				"readme.txt": 1024
			},
			"report.pdf": 750000
		},
		"temp.txt": 2000
	}`

	root, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"Documents", "temp.txt"}, childNames(root))

	docs, ok := root.Child("Documents")
	require.True(t, ok)
	assert.Equal(t, []string{"Projects", "report.pdf"}, childNames(docs.(*Dir)))

	report, ok := docs.(*Dir).Child("report.pdf")
	require.True(t, ok)
	assert.Equal(t, int64(750000), report.(File).Size())
}

func TestDecode_PreservesDocumentOrder(t *testing.T) {
	doc := `{"zebra": 1, "apple": 2, "Middle": {"x.txt": 3}, "mango": 4}`

	root, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"zebra", "apple", "Middle", "mango"}, childNames(root))
}

func TestDecode_DuplicateNameLastWins(t *testing.T) {
	doc := `{"a.txt": 1, "b.txt": 2, "a.txt": 99}`

	root, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	require.Equal(t, 2, root.Len())
	assert.Equal(t, []string{"a.txt", "b.txt"}, childNames(root))

	child, _ := root.Child("a.txt")
	assert.Equal(t, int64(99), child.(File).Size())
}

func TestDecode_EmptyDocument(t *testing.T) {
	root, err := Decode(strings.NewReader(`{}`))
	require.NoError(t, err)

	assert.Equal(t, 0, root.Len())
}

func TestDecode_StructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{name: "root is an array", doc: `[1, 2]`, wantPath: ""},
		{name: "root is a number", doc: `42`, wantPath: ""},
		{name: "negative size", doc: `{"Documents": {"bad.bin": -5}}`, wantPath: "Documents/bad.bin"},
		{name: "fractional size", doc: `{"bad.bin": 2.5}`, wantPath: "bad.bin"},
		{name: "string value", doc: `{"bad.bin": "large"}`, wantPath: "bad.bin"},
		{name: "boolean value", doc: `{"bad.bin": true}`, wantPath: "bad.bin"},
		{name: "null value", doc: `{"bad.bin": null}`, wantPath: "bad.bin"},
		{name: "array value", doc: `{"Documents": {"bad": [1]}}`, wantPath: "Documents/bad"},
		{name: "name with separator", doc: `{"a/b": 1}`, wantPath: ""},
		{name: "empty name", doc: `{"": 1}`, wantPath: ""},
		{name: "trailing data", doc: `{} {}`, wantPath: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.doc))
			require.Error(t, err)

			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, tc.wantPath, decErr.Path)
		})
	}
}

func TestDecode_MalformedJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"a.txt": `))
	require.Error(t, err)

	var decErr *DecodeError
	assert.NotErrorAs(t, err, &decErr)
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Encode(&buf, Sample()))

	decoded, err := Decode(strings.NewReader(buf.String()))
	require.NoError(t, err)

	var again strings.Builder
	require.NoError(t, Encode(&again, decoded))

	assert.Equal(t, buf.String(), again.String())

	files, bytes := countTree(decoded)
	assert.Equal(t, 16, files)
	assert.Equal(t, int64(96417000), bytes)
}

func TestEncode_EmptyRoot(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Encode(&buf, NewRoot()))

	assert.Equal(t, "{}\n", buf.String())
}

func TestEncode_EscapesNames(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Encode(&buf, NewRoot(NewFile(`quo"te.txt`, 7))))

	decoded, err := Decode(strings.NewReader(buf.String()))
	require.NoError(t, err)

	child, ok := decoded.Child(`quo"te.txt`)
	require.True(t, ok)
	assert.Equal(t, int64(7), child.(File).Size())
}
