package quiz

// TMDB genre ids used by the quiz path.
const (
	GenreIDAction  = 28
	GenreIDComedy  = 35
	GenreIDDrama   = 18
	GenreIDSciFi   = 878
	GenreIDRomance = 10749
	GenreIDFantasy = 14
)

// Genre is the final resolved preference: a display label, one or more TMDB
// genre ids (primary first) and a fixed rationale sentence for the UI.
type Genre struct {
	Label     string `json:"label"`
	GenreIDs  []int  `json:"genreIds"`
	Rationale string `json:"rationale"`
}

var rationales = map[string]string{
	"로맨스": "답변에서 감정선과 관계, 여운을 중시하는 성향이 가장 강하게 나타나 로맨스 장르의 인기작을 골랐습니다.",
	"드라마": "답변에서 감정선과 여운을 중시하는 성향이 가장 강하게 나타나 드라마 장르의 인기작을 골랐습니다.",
	"액션":  "답변에서 속도감과 긴장감, 해결의 쾌감을 즐기는 성향이 가장 강하게 나타나 액션 장르의 인기작을 골랐습니다.",
	"SF":  "답변에서 세계관과 상상력, 비현실적 공간에 끌리는 성향이 가장 강하게 나타나 SF 장르의 인기작을 골랐습니다.",
	"판타지": "답변에서 세계관과 상상력을 중시하는 성향이 가장 강하게 나타나 판타지 장르의 인기작을 골랐습니다.",
	"코미디": "답변에서 가벼움과 유머, 기분전환을 찾는 성향이 가장 강하게 나타나 코미디 장르의 인기작을 골랐습니다.",
}

// Resolve refines the winning category into a concrete genre using two
// secondary signals: answer #2 (the life you'd want to live) and answer #5
// (the scene matching your mood). Pure function, no randomness.
func Resolve(cat Category, answer2, answer5 string) Genre {
	switch cat {
	case CategoryDrama:
		// Relationship-centered life weighs heavier than a single moody scene.
		signals := 0
		if answer2 == questions[1].Options[0] {
			signals += 2
		}
		if answer5 == questions[4].Options[0] {
			signals++
		}
		if signals >= 2 {
			return genre("로맨스", GenreIDRomance, GenreIDDrama)
		}
		return genre("드라마", GenreIDDrama)

	case CategoryAction:
		return genre("액션", GenreIDAction)

	case CategoryFantasy:
		signals := 0
		if answer5 == questions[4].Options[2] {
			signals += 2
		}
		if answer2 == questions[1].Options[2] {
			signals++
		}
		if signals >= 2 {
			return genre("SF", GenreIDSciFi)
		}
		return genre("판타지", GenreIDFantasy)

	default:
		return genre("코미디", GenreIDComedy)
	}
}

func genre(label string, ids ...int) Genre {
	return Genre{
		Label:     label,
		GenreIDs:  ids,
		Rationale: rationales[label],
	}
}
