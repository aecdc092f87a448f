// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"reflect"
	"testing"

	"github.com/pdiddy/resumetex/pkg/types"
)

// fragments builds a fragment slice from bare text, with contiguous indices
// and no formatting signals.
func fragments(texts ...string) []types.Fragment {
	out := make([]types.Fragment, len(texts))
	for i, t := range texts {
		out[i] = types.Fragment{Text: t, Index: i}
	}
	return out
}

func TestClassifyResume(t *testing.T) {
	got := Classify(fragments(
		"Jane A. Doe",
		"jane@x.com",
		"EXPERIENCE",
		"- Did X",
		"- Did Y",
		"Built a thing.",
	))

	want := []types.Block{
		{Kind: types.BlockName, Text: "Jane A. Doe"},
		{Kind: types.BlockContact, Text: "jane@x.com"},
		{Kind: types.BlockSection, Text: "EXPERIENCE"},
		{Kind: types.BlockList, Items: []string{"Did X", "Did Y"}},
		{Kind: types.BlockParagraph, Text: "Built a thing."},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassifyNameOnlyFirstFragment(t *testing.T) {
	// A six-word capitalized first line is not a name even though every word
	// is capitalized.
	got := Classify(fragments("Managed Engineering Team Successfully For Years", "Body text follows here and continues."))
	if got[0].Kind == types.BlockName {
		t.Errorf("six-word fragment classified as name: %+v", got[0])
	}

	// A name-like fragment later in the sequence is never labeled name.
	got = Classify(fragments(
		"EXPERIENCE",
		"worked on the backend rewrite for two years",
		"Jane A. Doe",
	))
	for _, b := range got {
		if b.Kind == types.BlockName {
			t.Errorf("non-first fragment classified as name: %+v", b)
		}
	}
}

func TestClassifyConsecutiveSections(t *testing.T) {
	got := Classify(fragments("EXPERIENCE", "EDUCATION"))

	want := []types.Block{
		{Kind: types.BlockSection, Text: "EXPERIENCE"},
		{Kind: types.BlockSection, Text: "EDUCATION"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassifyTrailingListFlushed(t *testing.T) {
	got := Classify(fragments("EXPERIENCE", "- shipped the release"))

	want := []types.Block{
		{Kind: types.BlockSection, Text: "EXPERIENCE"},
		{Kind: types.BlockList, Items: []string{"shipped the release"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassifyEmpty(t *testing.T) {
	if got := Classify(nil); len(got) != 0 {
		t.Errorf("Classify(nil) = %+v, want empty", got)
	}
}

// TestClassifyTotality checks that every fragment lands in exactly one block:
// the item count of list blocks plus one per non-list block equals the input
// length.
func TestClassifyTotality(t *testing.T) {
	in := fragments(
		"Jane A. Doe",
		"jane@x.com | 555-123-4567",
		"SUMMARY",
		"worked on various backend services over several years",
		"SKILLS",
		"- Go",
		"- SQL",
		"1. shipped a platform",
		"closing remark text without any signal words",
	)

	got := Classify(in)

	covered := 0
	for _, b := range got {
		if b.Kind == types.BlockList {
			covered += len(b.Items)
		} else {
			covered++
		}
	}
	if covered != len(in) {
		t.Errorf("blocks cover %d fragments, want %d (blocks: %+v)", covered, len(in), got)
	}
}

func TestClassifyFontSizeHeading(t *testing.T) {
	in := []types.Fragment{
		{Text: "summary of a long career in infrastructure work", FontSize: 20, Index: 0},
		{Text: "kept the fleet healthy through three migrations", FontSize: 10, Index: 1},
		{Text: "wrote runbooks and dashboards for the on-call rotation", FontSize: 10, Index: 2},
		{Text: "mentored new hires on the deployment tooling", FontSize: 10, Index: 3},
	}
	// avg = 12.5, threshold = 13.75: only the first fragment is large.

	got := Classify(in)

	if got[0].Kind != types.BlockSection {
		t.Errorf("large fragment classified as %q, want section", got[0].Kind)
	}
	for i, b := range got[1:] {
		if b.Kind != types.BlockParagraph {
			t.Errorf("block %d classified as %q, want paragraph", i+1, b.Kind)
		}
	}
}

func TestClassifyNoFontSizesMeansNoLargeSignal(t *testing.T) {
	// Without any reported font size the relative-size rule never fires.
	got := Classify(fragments("an opening line about goals and background for context"))
	if got[0].Kind != types.BlockParagraph {
		t.Errorf("got %q, want paragraph", got[0].Kind)
	}
}

func TestClassifyStyleSignals(t *testing.T) {
	tests := []struct {
		name string
		frag types.Fragment
		want types.BlockKind
	}{
		{
			name: "heading style wins regardless of text",
			frag: types.Fragment{Text: "what i did at my last four jobs", HeadingStyle: true, StyleKnown: true, Index: 1},
			want: types.BlockSection,
		},
		{
			name: "short bold text is a section",
			frag: types.Fragment{Text: "selected projects overview", Bold: true, StyleKnown: true, Index: 1},
			want: types.BlockSection,
		},
		{
			name: "long bold text is not",
			frag: types.Fragment{Text: "delivered the migration on time despite the freeze", Bold: true, StyleKnown: true, Index: 1},
			want: types.BlockParagraph,
		},
		{
			name: "large font is ignored when style is known",
			frag: types.Fragment{Text: "a plain sentence set in a big font for emphasis", FontSize: 40, StyleKnown: true, Index: 1},
			want: types.BlockParagraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// A sized companion fragment gives the sequence a font-size average.
			in := []types.Fragment{
				{Text: "preceding body text that sets the average size", FontSize: 10, Index: 0},
				tt.frag,
			}
			got := Classify(in)
			if got[1].Kind != tt.want {
				t.Errorf("got %q, want %q", got[1].Kind, tt.want)
			}
		})
	}
}

func TestClassifyListNotSplitByFlush(t *testing.T) {
	got := Classify(fragments(
		"- first item",
		"- second item",
		"EXPERIENCE",
		"- third item",
	))

	want := []types.Block{
		{Kind: types.BlockList, Items: []string{"first item", "second item"}},
		{Kind: types.BlockSection, Text: "EXPERIENCE"},
		{Kind: types.BlockList, Items: []string{"third item"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		want  float64
	}{
		{name: "mean over reporting fragments", sizes: []float64{10, 0, 20}, want: 15},
		{name: "no reported sizes", sizes: []float64{0, 0}, want: 0},
		{name: "empty input", sizes: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]types.Fragment, len(tt.sizes))
			for i, s := range tt.sizes {
				in[i] = types.Fragment{Text: "x", FontSize: s, Index: i}
			}
			if got := ComputeStats(in); got.AvgFontSize != tt.want {
				t.Errorf("AvgFontSize = %v, want %v", got.AvgFontSize, tt.want)
			}
		})
	}
}
