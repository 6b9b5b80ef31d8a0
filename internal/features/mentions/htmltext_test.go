package mentions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"inline markup", `Hi <a href="/people/1">@john</a>, thanks`, "Hi @john, thanks"},
		{"paragraphs split", "<p>@alice</p><p>@bob</p>", "@alice\n\n@bob"},
		{"script dropped", "<script>var x='@evil'</script>ping @carol", "ping @carol"},
		{"entities decoded", "Tom &amp; @jerry", "Tom & @jerry"},
		{"plain text passes through", "just @dave", "just @dave"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlainText(tt.html)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPlainText_MentionsSurviveMarkup(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{"list items", `<ul><li>@alice</li><li>@bob said hi</li></ul>`, []string{"alice", "bob"}},
		{"paragraphs do not merge", `<p>Thanks @alice</p><p>Budget numbers attached</p>`, []string{"alice"}},
		{"line break tag", `cc @Alice Ng<br>Budget review`, []string{"Alice Ng"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := PlainText(tt.html)
			require.NoError(t, err)
			require.Equal(t, tt.want, ExtractMentions(text))
		})
	}
}
