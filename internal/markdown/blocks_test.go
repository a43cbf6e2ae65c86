package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dt-pm-tools/gitlab-jira-cli/internal/adf"
)

func TestConvertBody_HeadingListParagraph(t *testing.T) {
	blocks := ConvertBody("# Title\n\n- a\n- b\n\nPara text")

	require.Equal(t, []adf.Block{
		adf.Heading{Level: 1, Content: []adf.Span{adf.Text{Text: "Title"}}},
		adf.BulletList{Items: []adf.ListItem{
			{Content: []adf.Span{adf.Text{Text: "a"}}},
			{Content: []adf.Span{adf.Text{Text: "b"}}},
		}},
		adf.Paragraph{Content: []adf.Span{adf.Text{Text: "Para text"}}},
	}, blocks)
}

func TestConvertBody_EmptyInputs(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\n", "  \t \n ", "No description provided", "  No description provided\n"} {
		assert.Nil(t, ConvertBody(input), "input %q", input)
	}
}

func TestConvertBody_TrailingBlanksNeverAddBlocks(t *testing.T) {
	base := "# H\n\n- one\n\ntext"
	want := len(ConvertBody(base))
	for _, suffix := range []string{"\n", "\n\n", "\n   \n", "\n\n\n\n"} {
		assert.Len(t, ConvertBody(base+suffix), want, "suffix %q", suffix)
	}
}

func TestConvertBody_ListFlushedAtEOF(t *testing.T) {
	blocks := ConvertBody("- only\n- items")
	require.Len(t, blocks, 1)
	list, ok := blocks[0].(adf.BulletList)
	require.True(t, ok)
	assert.Len(t, list.Items, 2)
}

func TestConvertBody_ListFlushedByHeading(t *testing.T) {
	blocks := ConvertBody("- item\n## After")
	require.Len(t, blocks, 2)
	assert.IsType(t, adf.BulletList{}, blocks[0])
	require.IsType(t, adf.Heading{}, blocks[1])
	assert.Equal(t, 2, blocks[1].(adf.Heading).Level)
}

func TestConvertBody_BulletMarkersAndIndentation(t *testing.T) {
	blocks := ConvertBody("- dash\n* star\n+ plus\n  - indented")
	require.Len(t, blocks, 1)
	list := blocks[0].(adf.BulletList)
	require.Len(t, list.Items, 4)
	assert.Equal(t, []adf.Span{adf.Text{Text: "star"}}, list.Items[1].Content)
	assert.Equal(t, []adf.Span{adf.Text{Text: "indented"}}, list.Items[3].Content)
}

func TestConvertBody_HeadingLevels(t *testing.T) {
	blocks := ConvertBody("# a\n## b\n### c\n#### d\n##### e\n###### f")
	require.Len(t, blocks, 6)
	for i, b := range blocks {
		h, ok := b.(adf.Heading)
		require.True(t, ok)
		assert.Equal(t, i+1, h.Level)
	}
}

func TestConvertBody_SevenHashesIsAParagraph(t *testing.T) {
	blocks := ConvertBody("####### not a heading")
	require.Len(t, blocks, 1)
	assert.IsType(t, adf.Paragraph{}, blocks[0])
}

func TestConvertBody_HashWithoutSpaceIsAParagraph(t *testing.T) {
	blocks := ConvertBody("#tag")
	require.Len(t, blocks, 1)
	assert.IsType(t, adf.Paragraph{}, blocks[0])
}

func TestConvertBody_InlineMarkupInsideBlocks(t *testing.T) {
	blocks := ConvertBody("## See **docs**\n- uses `code`")
	require.Len(t, blocks, 2)

	h := blocks[0].(adf.Heading)
	require.Equal(t, []adf.Span{
		adf.Text{Text: "See "},
		adf.Styled{Text: "docs", Style: adf.StyleBold},
	}, h.Content)

	list := blocks[1].(adf.BulletList)
	require.Equal(t, []adf.Span{
		adf.Text{Text: "uses "},
		adf.Styled{Text: "code", Style: adf.StyleCode},
	}, list.Items[0].Content)
}

func TestConvertBody_WindowsLineEndings(t *testing.T) {
	blocks := ConvertBody("# Title\r\n\r\ntext\r\n")
	require.Len(t, blocks, 2)
	assert.IsType(t, adf.Heading{}, blocks[0])
	assert.Equal(t, adf.Paragraph{Content: []adf.Span{adf.Text{Text: "text"}}}, blocks[1])
}

func TestConvertBody_BlankLinesBetweenListRuns(t *testing.T) {
	// A blank line splits consecutive bullet runs into separate lists.
	blocks := ConvertBody("- a\n\n- b")
	require.Len(t, blocks, 2)
	assert.IsType(t, adf.BulletList{}, blocks[0])
	assert.IsType(t, adf.BulletList{}, blocks[1])
}
