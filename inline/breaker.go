package inline

import (
	"github.com/npillmayer/boxkit/core/dimen"
	"github.com/npillmayer/boxkit/fontcap"
)

// LayoutInline implements the inline layout capability of §6.3:
// `layout_inline(words, scaled_words, options) → UnifiedLayout`. It is a
// first-fit greedy line breaker — simpler than the teacher's Knuth-Plass
// optimizer (engine/frame/khipu/linebreak/knuthplass), grounded instead
// on the shape the teacher's firstfit breaker must have had (its source
// did not survive retrieval; only firstfit_test.go did, which exercises
// exactly this greedy-pack-then-break behavior).
//
// font may be nil (§7: unresolved font → layout as if empty); in that
// case every word measures 0 wide, so the result has zero content width
// and a single line unless HasMaxWidth is set with a zero width, where
// each breakable whitespace word still ends a line.
func LayoutInline(words []Word, font fontcap.ParsedFont, opts Options) UnifiedLayout {
	lineWidth := effectiveLineWidth(opts)
	tabWidth := opts.TabWidth
	if tabWidth == 0 {
		tabWidth = 4 * spaceAdvance(font, opts)
	}
	lineHeight := opts.LineHeightPx
	if lineHeight == 0 {
		lineHeight = naturalLineHeight(font, opts.FontSizePx)
	}

	var items []PositionedItem
	lineIndex := 0
	x := opts.Leading
	y := dimen.Dimen(0)
	lineStartItem := 0
	maxX := dimen.Dimen(0)

	flushLine := func() {
		start, end := lineSpan(opts, lineIndex, lineWidth)
		used := x - start
		if used < 0 {
			used = 0
		}
		applyAlignment(items[lineStartItem:], opts.TextAlignH, end-start, used)
		if x > maxX {
			maxX = x
		}
		lineIndex++
		lineStartItem = len(items)
		y += lineHeight
		start, _ = lineSpan(opts, lineIndex, lineWidth)
		x = start
	}

	for _, w := range words {
		if w.Text == "\t" {
			items = append(items, PositionedItem{
				Kind: ItemTab, Text: w.Text, X: x, Y: y, Width: tabWidth,
				Height: lineHeight, LineIndex: lineIndex, StyledNodeID: w.StyledNodeID,
				Breakable: w.Breakable,
			})
			x += tabWidth
			continue
		}
		width := wordWidth(font, w.Text, opts)
		_, end := lineSpan(opts, lineIndex, lineWidth)
		if !w.Whitespace && x+width > end && x > opts.Leading && len(items) > lineStartItem {
			flushLine()
		}
		items = append(items, PositionedItem{
			Kind: ItemGlyphRun, Text: w.Text, X: x, Y: y, Width: width,
			Height: lineHeight, LineIndex: lineIndex, StyledNodeID: w.StyledNodeID,
			Breakable: w.Breakable,
		})
		x += width
		if w.Whitespace && w.Breakable {
			_, end = lineSpan(opts, lineIndex, lineWidth)
			if x >= end {
				flushLine()
			}
		}
	}
	if len(items) > lineStartItem {
		start, end := lineSpan(opts, lineIndex, lineWidth)
		used := x - start
		if used < 0 {
			used = 0
		}
		applyAlignment(items[lineStartItem:], opts.TextAlignH, end-start, used)
		if x > maxX {
			maxX = x
		}
	}
	numLines := lineIndex + 1
	if len(items) == 0 {
		numLines = 1
	}
	return UnifiedLayout{
		Items:       items,
		ContentSize: dimen.Point{X: maxX, Y: lineHeight * dimen.Dimen(numLines)},
		NumLines:    numLines,
	}
}

// effectiveLineWidth resolves options into a concrete per-line width.
// Callers map AvailableSpace::MaxContent to "no constraint" (HasMaxWidth
// = false) and AvailableSpace::MinContent to a width of 0, forcing a
// break at every opportunity.
func effectiveLineWidth(opts Options) dimen.Dimen {
	if !opts.HasMaxWidth {
		return dimen.Infinity
	}
	return opts.MaxHorizontalWidth
}

// lineSpan returns the [start, end) horizontal extent available to line
// lineIndex, narrowed by any float holes whose vertical range covers
// that line's band (§6.3 `holes`).
func lineSpan(opts Options, lineIndex int, lineWidth dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	lh := opts.LineHeightPx
	if lh == 0 {
		lh = dimen.BP * 12
	}
	top := dimen.Dimen(lineIndex) * lh
	bot := top + lh
	start, end := dimen.Dimen(0), lineWidth
	for _, hole := range opts.Holes {
		if hole.BotR.Y <= top || hole.TopL.Y >= bot {
			continue
		}
		if hole.TopL.X <= 0 && hole.BotR.X > start {
			start = hole.BotR.X
		}
		if opts.HasMaxWidth && hole.BotR.X >= lineWidth && hole.TopL.X < end {
			end = hole.TopL.X
		}
	}
	if lineIndex == 0 {
		start += opts.Leading
	}
	return start, end
}

func wordWidth(font fontcap.ParsedFont, text string, opts Options) dimen.Dimen {
	if font == nil || text == "" {
		return 0
	}
	glyphs := font.Shape(text, opts.FontSizePx)
	var w dimen.Dimen
	for i, g := range glyphs {
		w += g.AdvanceX
		if i > 0 {
			w += opts.LetterSpacing
		}
	}
	if opts.WordSpacing != 0 && isAllSpace(text) {
		w += opts.WordSpacing
	}
	return w
}

func spaceAdvance(font fontcap.ParsedFont, opts Options) dimen.Dimen {
	return wordWidth(font, " ", opts)
}

func naturalLineHeight(font fontcap.ParsedFont, fontSizePx dimen.Dimen) dimen.Dimen {
	if font == nil {
		return fontSizePx
	}
	m := font.Metrics(fontSizePx)
	return m.AscentPx + m.DescentPx + m.LineGapPx
}

// applyAlignment shifts a completed line's items according to
// text-align (§6.3 `text_align_horizontal`). Start needs no shift;
// End/Center/Justify redistribute the line's slack, mirroring the
// position solver's justify-content handling in spirit (§4.6).
func applyAlignment(line []PositionedItem, align TextAlign, available, used dimen.Dimen) {
	slack := available - used
	if slack <= 0 || len(line) == 0 {
		return
	}
	switch align {
	case AlignEnd:
		for i := range line {
			line[i].X += slack
		}
	case AlignCenter:
		shift := slack / 2
		for i := range line {
			line[i].X += shift
		}
	case AlignJustify:
		n := 0
		for _, it := range line {
			if it.Kind == ItemGlyphRun && it.Text == " " {
				n++
			}
		}
		if n == 0 {
			return
		}
		extra := slack / dimen.Dimen(n)
		var shift dimen.Dimen
		for i := range line {
			line[i].X += shift
			if line[i].Kind == ItemGlyphRun && line[i].Text == " " {
				line[i].Width += extra
				shift += extra
			}
		}
	}
}
