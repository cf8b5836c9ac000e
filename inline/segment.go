package inline

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// Segment splits text into Words at UAX #29 word-break boundaries,
// grounded on the teacher's typesetting pipeline
// (khipukamayuq.PrepareTypesettingPipeline), which drives a
// segment.Segmenter with a uax29.WordBreaker. Every segment becomes one
// Word; a Word is breakable when it is whitespace (a line may end right
// after it) or when it is immediately followed by whitespace.
func Segment(text string, styledNodeID int) []Word {
	if text == "" {
		return nil
	}
	seg := segment.NewSegmenter(uax29.NewWordBreaker(1))
	seg.Init(strings.NewReader(text))
	var words []Word
	for seg.Next() {
		frag := seg.Text()
		if frag == "" {
			continue
		}
		words = append(words, Word{
			Text:         frag,
			Whitespace:   isAllSpace(frag),
			StyledNodeID: styledNodeID,
		})
	}
	// A word is a break opportunity if it is whitespace itself, or the
	// following word is (CSS collapses trailing run-of-whitespace to the
	// line end, so the break point sits before it).
	for i := range words {
		if words[i].Whitespace {
			words[i].Breakable = true
			continue
		}
		if i+1 < len(words) && words[i+1].Whitespace {
			words[i].Breakable = true
		}
	}
	if n := len(words); n > 0 {
		words[n-1].Breakable = true
	}
	return words
}

func isAllSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
