package quiz

// Question is one fixed-choice quiz question. Option order is meaningful:
// the index of the chosen option is the category it votes for
// (0=로맨스/드라마, 1=액션/어드벤처, 2=SF/판타지, 3=코미디).
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

var questions = []Question{
	{
		ID:   1,
		Text: "1️⃣ 시험 끝난 날, 가장 하고 싶은 건?",
		Options: []string{
			"💌 조용한 카페에서 여운 있는 영화 한 편",
			"💥 친구들이랑 스트레스 풀 겸 통쾌한 액션 영화",
			"🚀 현실 잊게 만드는 다른 세계관 영화 몰아보기",
			"😂 아무 생각 없이 웃긴 영화 보면서 쉬기",
		},
	},
	{
		ID:   2,
		Text: "2️⃣ 영화 주인공으로 살아야 한다면, 어떤 인생이 좋아?",
		Options: []string{
			"🌸 사람들 사이의 감정과 관계가 중심이 되는 삶",
			"🏃 위험하지만 매 순간이 긴박한 모험의 연속",
			"🪐 현실엔 없는 능력이나 세계가 존재하는 삶",
			"🤡 크게 심각하지 않고, 웃지 못할 상황도 웃어넘기는 삶",
		},
	},
	{
		ID:   3,
		Text: "3️⃣ 친구들이 너한테 자주 하는 말은?",
		Options: []string{
			"🤍 “너랑 얘기하면 생각이 많아져”",
			"🔥 “너 진짜 추진력 하나는 인정”",
			"🧠 “너 생각하는 거 좀 독특하다?”",
			"😆 “너 있으면 분위기 살잖아”",
		},
	},
	{
		ID:   4,
		Text: "4️⃣ 영화 볼 때 가장 중요한 요소는?",
		Options: []string{
			"🎭 배우의 연기력과 감정선",
			"🎬 몰입감 있는 전개와 스케일",
			"🌌 세계관 설정과 상상력",
			"🎉 얼마나 많이 웃게 해주느냐",
		},
	},
	{
		ID:   5,
		Text: "5️⃣ 요즘 네 상태를 영화 장면으로 표현한다면?",
		Options: []string{
			"🌧️ 조용히 혼자 걷는 감정적인 장면",
			"⚡ 바쁘게 움직이며 사건을 해결하는 장면",
			"🌀 현실과 다른 공간을 떠도는 장면",
			"🎈 실수 연발이지만 웃음이 터지는 장면",
		},
	},
}

// Questions returns the fixed five-question bank in presentation order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
