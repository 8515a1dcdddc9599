package routehandlers

import "testing"

func TestComputeWordCount(t *testing.T) {
	cases := []struct {
		name    string
		content *string
		want    int
	}{
		{"Nil content", nil, 0},
		{"Empty content", strptr(""), 0},
		{"Plain Japanese prose", strptr("<p>これは本文です。</p>"), 8},
		{"Tags are not counted", strptr("<h2></h2><p><strong></strong></p>"), 0},
		{"Whitespace is not counted", strptr("<p>a b\nc</p>"), 3},
		{"Multiple paragraphs", strptr("<p>春</p><p>夏</p>"), 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := computeWordCount(tc.content); got != tc.want {
				t.Errorf("computeWordCount(%v) = %d, want %d", tc.content, got, tc.want)
			}
		})
	}
}

func strptr(s string) *string {
	return &s
}
