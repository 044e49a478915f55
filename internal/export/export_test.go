package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
	"todolist/internal/todolist"
)

func sampleSnapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()
	snap.Items["1"] = &domain.Item{ID: "1", Text: "orange", IsVisible: true}
	snap.Items["2"] = &domain.Item{ID: "2", Text: "Apple", IsVisible: true, IsDone: true}
	snap.Items["3"] = &domain.Item{ID: "3", Text: "Mango, ripe", IsVisible: false}
	return snap
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ExportFormat
		wantErr bool
	}{
		{input: "json", want: FormatJSON},
		{input: "YML", want: FormatYAML},
		{input: "md", want: FormatMarkdown},
		{input: " csv ", want: FormatCSV},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("backup.yaml"))
	assert.Equal(t, FormatMarkdown, FormatFromPath("list.md"))
	assert.Equal(t, FormatJSON, FormatFromPath("list"))
	assert.Equal(t, FormatJSON, FormatFromPath("list.txt"))
}

func TestJSONAndYAMLRoundTrip(t *testing.T) {
	for _, format := range []ExportFormat{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, sampleSnapshot()))

			got, err := Read(&buf, format)
			require.NoError(t, err)
			if diff := cmp.Diff(sampleSnapshot(), got); diff != "" {
				t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleSnapshot()))

	want := strings.Join([]string{
		"ID,Text,Visible,Done",
		"2,Apple,true,true",
		`3,"Mango, ripe",false,false`,
		"1,orange,true,false",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatMarkdown, sampleSnapshot()))

	out := buf.String()
	assert.Contains(t, out, "# To-do")
	assert.Contains(t, out, "_1/3 done (33%)_")
	assert.Contains(t, out, "- [x] Apple\n- [ ] Mango, ripe\n- [ ] orange\n")

	buf.Reset()
	require.NoError(t, Write(&buf, FormatMarkdown, nil))
	assert.Contains(t, buf.String(), domain.MessageNoItems)
}

func TestReadRejects(t *testing.T) {
	_, err := Read(strings.NewReader("{"), FormatJSON)
	assert.Error(t, err)

	_, err = Read(strings.NewReader(`{"items":{"a":{"id":"b","text":"x"}}}`), FormatJSON)
	assert.Error(t, err)

	_, err = Read(strings.NewReader("a,b"), FormatCSV)
	assert.Error(t, err)
}

func TestImporterReplace(t *testing.T) {
	list := todolist.New()
	_, err := list.Add("Pear")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleSnapshot()))

	result, err := NewImporter(list).Import(&buf, FormatJSON, ConflictStrategyReplace)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Added: 3}, result)
	assert.Equal(t, 3, list.GetItemsCount())
	assert.Empty(t, list.GetItemsByText("pear"))
}

func TestImporterMerge(t *testing.T) {
	list := todolist.New()
	_, err := list.Add("apple")
	require.NoError(t, err)
	list.Filter("o")

	result, err := NewImporter(list).Apply(sampleSnapshot(), ConflictStrategyMerge)
	require.NoError(t, err)

	assert.Equal(t, ImportResult{Added: 2, Skipped: 1}, result)
	assert.Equal(t, 3, list.GetItemsCount())
	// query "o" still applies to merged items
	assert.Equal(t, 1, list.GetVisibleItemsCount())

	apple := list.GetItemsByText("Apple")
	require.Len(t, apple, 1)
	assert.False(t, apple[0].IsDone, "existing item keeps its own state")
}

func TestImporterRejectsBlankText(t *testing.T) {
	const blank = `{"items":{"x":{"text":"   "}}}`

	for _, strategy := range []ConflictStrategy{ConflictStrategyMerge, ConflictStrategyReplace} {
		t.Run(string(strategy), func(t *testing.T) {
			var messages []string
			list := todolist.New(todolist.WithErrorHandler(func(msg string) {
				messages = append(messages, msg)
			}))
			_, err := list.Add("Pear")
			require.NoError(t, err)

			result, err := NewImporter(list).Import(strings.NewReader(blank), FormatJSON, strategy)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrEmptyInput)
			assert.Equal(t, ImportResult{}, result)

			assert.Equal(t, 1, list.GetItemsCount(), "list is left as it was")
			assert.Len(t, list.GetItemsByText("pear"), 1)
			assert.Empty(t, messages, "no input error is raised")
		})
	}

	// a snapshot handed to Apply directly is checked too
	list := todolist.New()
	snap := &domain.Snapshot{Items: map[string]*domain.Item{
		"a": {ID: "a", Text: "Apple"},
		"x": {ID: "x", Text: " "},
	}}
	_, err := NewImporter(list).Apply(snap, ConflictStrategyMerge)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Equal(t, 0, list.GetItemsCount())
}

func TestImporterUnknownStrategy(t *testing.T) {
	_, err := NewImporter(todolist.New()).Apply(sampleSnapshot(), ConflictStrategy("wipe"))
	assert.Error(t, err)
}

func TestParseConflictStrategy(t *testing.T) {
	s, err := ParseConflictStrategy("Merge")
	require.NoError(t, err)
	assert.Equal(t, ConflictStrategyMerge, s)

	_, err = ParseConflictStrategy("skip")
	assert.Error(t, err)
}
