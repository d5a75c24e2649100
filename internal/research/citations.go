package research

import (
	"strings"

	"github.com/davetashner/gptresearch/internal/llm"
)

// SourcesHeader separates the answer from the citation list.
const SourcesHeader = "\n\n## Sources\n"

// Citation is a source the answer was grounded on.
type Citation struct {
	Title string
	URL   string
}

// Line renders the citation as a markdown list item.
func (c Citation) Line() string {
	return "- [" + c.Title + "](" + c.URL + ")"
}

// ExtractCitations walks resp.Output in order (item, then block, then
// annotation) and returns one Citation per annotation found on a message
// item. Non-message items and blocks without annotations contribute nothing.
// Duplicates are kept.
//
// With urlOnly set, annotations with an explicit kind other than
// url_citation are skipped; annotations with no kind are kept.
func ExtractCitations(resp *llm.Response, urlOnly bool) []Citation {
	if resp == nil {
		return nil
	}

	var out []Citation
	for _, item := range resp.Output {
		switch it := item.(type) {
		case llm.MessageItem:
			for _, block := range it.Content {
				for _, a := range block.Annotations {
					if urlOnly && a.Type != "" && a.Type != llm.AnnotationTypeURLCitation {
						continue
					}
					out = append(out, Citation{Title: a.Title, URL: a.URL})
				}
			}
		default:
			// Not a message: nothing to cite.
		}
	}
	return out
}

// Format appends the Sources section to answer. With no citations the
// answer is returned unchanged.
func Format(answer string, citations []Citation) string {
	if len(citations) == 0 {
		return answer
	}

	lines := make([]string, len(citations))
	for i, c := range citations {
		lines[i] = c.Line()
	}
	return answer + SourcesHeader + strings.Join(lines, "\n")
}
