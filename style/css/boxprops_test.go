package css

import (
	"testing"

	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestResolveBoxPropsFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.style")
	defer teardown()

	px20, _ := ParseDimen("20px")
	props := UnresolvedBoxProps{
		Margin: [4]DimenT{px20, px20, px20, px20},
	}
	rc := ResolutionContext{ContainingBlockWidth: 400 * dimen.PX}
	resolved := ResolveBoxProps(props, rc)
	for i, m := range resolved.Margin {
		if m != 20*dimen.PX {
			t.Errorf("margin[%d] = %v, want 20px", i, m)
		}
		if resolved.MarginIsAuto[i] {
			t.Errorf("margin[%d] should not be auto", i)
		}
	}
}

func TestResolveBoxPropsAutoMargin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.style")
	defer teardown()

	auto := Auto()
	props := UnresolvedBoxProps{
		Margin: [4]DimenT{{}, auto, {}, auto},
	}
	resolved := ResolveBoxProps(props, ResolutionContext{ContainingBlockWidth: 400 * dimen.PX})
	if !resolved.MarginIsAuto[Left] || !resolved.MarginIsAuto[Right] {
		t.Errorf("left/right margins should be flagged auto")
	}
	if resolved.Margin[Left] != 0 || resolved.Margin[Right] != 0 {
		t.Errorf("auto margins resolve to pixel 0 until space distribution runs")
	}
}

func TestResolveBoxPropsPercentResolvesAgainstInlineAxis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.style")
	defer teardown()

	pct, err := ParseDimen("10%")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	props := UnresolvedBoxProps{
		Margin: [4]DimenT{pct, {}, pct, {}}, // top and bottom margins, both 10%
	}
	rc := ResolutionContext{ContainingBlockWidth: 500 * dimen.PX, ContainingBlockHeight: 50 * dimen.PX}
	resolved := ResolveBoxProps(props, rc)
	// per §4.1, vertical margins resolve against the containing block's
	// *inline* (width) axis, not its height.
	want := 50 * dimen.PX // 10% of 500px
	if resolved.Margin[Top] != want {
		t.Errorf("top margin = %v, want %v (10%% of width, not height)", resolved.Margin[Top], want)
	}
	if resolved.Margin[Bottom] != want {
		t.Errorf("bottom margin = %v, want %v", resolved.Margin[Bottom], want)
	}
}

func TestResolveBoxPropsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.style")
	defer teardown()

	em, _ := ParseDimen("2em")
	props := UnresolvedBoxProps{
		Padding: [4]DimenT{em, em, em, em},
	}
	rc := ResolutionContext{ContainingBlockWidth: 300 * dimen.PX, FontSizePx: 16 * dimen.PX}
	first := ResolveBoxProps(props, rc)
	second := ResolveBoxProps(props, rc)
	if first != second {
		t.Errorf("resolution is not idempotent: %+v != %+v", first, second)
	}
}

func TestCollapseMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxkit.style")
	defer teardown()

	got := CollapseMargins(20*dimen.PX, 20*dimen.PX)
	if got != 20*dimen.PX {
		t.Errorf("collapsed positive margins = %v, want 20px", got)
	}
	got = CollapseMargins(-10*dimen.PX, -30*dimen.PX)
	if got != -30*dimen.PX {
		t.Errorf("collapsed negative margins = %v, want -30px", got)
	}
	got = CollapseMargins(20*dimen.PX, -5*dimen.PX)
	if got != 15*dimen.PX {
		t.Errorf("mixed collapse = %v, want 15px", got)
	}
}
