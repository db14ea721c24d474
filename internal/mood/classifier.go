// Package mood classifies a free-text mood description into one of six
// fixed labels, each pre-mapped to TMDB genre ids. It is the free-text
// counterpart of the structured quiz path.
package mood

import "strings"

// OverrideAuto is the override value meaning "classify the text for me".
const OverrideAuto = "자동 분류"

// Label is one of the six fixed mood labels.
type Label string

const (
	LabelHealing  Label = "힐링/잔잔함"
	LabelLaughter Label = "웃음/가벼움"
	LabelThrill   Label = "스릴/긴장감"
	LabelRomance  Label = "로맨스/설렘"
	LabelFantasy  Label = "판타지/몰입"
	LabelReality  Label = "현실/드라마"
)

// Result is the classifier output: the chosen label, its fixed genre ids
// (primary first) and a fixed rationale sentence for the UI.
type Result struct {
	Label     Label  `json:"label"`
	GenreIDs  []int  `json:"genreIds"`
	Rationale string `json:"rationale"`
}

type definition struct {
	label     Label
	keywords  []string
	genreIDs  []int
	rationale string
}

// Declaration order is the tie-break priority: with equal per-set weights a
// tie is possible whenever two sets each match, and the earlier label wins.
var definitions = []definition{
	{
		label:     LabelHealing,
		keywords:  []string{"힐링", "잔잔", "편안", "쉬고", "위로", "지쳤"},
		genreIDs:  []int{18, 10751},
		rationale: "지친 마음을 가만히 데워주는, 잔잔하고 따뜻한 작품을 골랐어요.",
	},
	{
		label:     LabelLaughter,
		keywords:  []string{"웃", "개그", "코미디", "유쾌", "빵 터"},
		genreIDs:  []int{35},
		rationale: "아무 생각 없이 웃을 수 있는, 가볍고 유쾌한 작품을 골랐어요.",
	},
	{
		label:     LabelThrill,
		keywords:  []string{"스릴", "긴장", "짜릿", "추격", "무서"},
		genreIDs:  []int{28, 53},
		rationale: "심장이 빨라지는 전개와 긴장감이 살아있는 작품을 골랐어요.",
	},
	{
		label:     LabelRomance,
		keywords:  []string{"설레", "설렘", "연애", "사랑", "로맨스"},
		genreIDs:  []int{10749, 18},
		rationale: "두근거림과 설렘이 스며드는 로맨스 작품을 골랐어요.",
	},
	{
		label:     LabelFantasy,
		keywords:  []string{"판타지", "마법", "우주", "다른 세계", "상상"},
		genreIDs:  []int{14, 878},
		rationale: "현실을 잠시 잊게 해주는, 몰입감 있는 세계관의 작품을 골랐어요.",
	},
	{
		label:     LabelReality,
		keywords:  []string{"현실", "공감", "인생", "일상", "고민"},
		genreIDs:  []int{18},
		rationale: "내 이야기 같은 공감과 현실감이 담긴 드라마 작품을 골랐어요.",
	},
}

// Any keyword hit within a set scores the whole set once.
const setWeight = 3

// Classify maps free text to a mood result. An override other than
// OverrideAuto short-circuits keyword scoring entirely; text with no keyword
// hits defaults to the healing label.
func Classify(text, override string) Result {
	if override != "" && override != OverrideAuto {
		for _, def := range definitions {
			if string(def.label) == override {
				return def.result()
			}
		}
	}

	normalized := strings.ToLower(text)
	best := 0
	winner := definitions[0]
	for _, def := range definitions {
		score := 0
		for _, kw := range def.keywords {
			if strings.Contains(normalized, kw) {
				score = setWeight
				break
			}
		}
		if score > best {
			best = score
			winner = def
		}
	}
	return winner.result()
}

// Labels returns the six labels in priority order, for UI pickers.
func Labels() []Label {
	out := make([]Label, 0, len(definitions))
	for _, def := range definitions {
		out = append(out, def.label)
	}
	return out
}

func (d definition) result() Result {
	ids := make([]int, len(d.genreIDs))
	copy(ids, d.genreIDs)
	return Result{Label: d.label, GenreIDs: ids, Rationale: d.rationale}
}
