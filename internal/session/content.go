package session

// PromptChallenge is one Mission 1 question.
type PromptChallenge struct {
	ID                  int
	Scenario            string
	BadPrompt           string
	BetterPromptOptions []string
	CorrectIndex        int
	Explanation         string
}

// FactCheckItem is one generated Mission 3 statement.
type FactCheckItem struct {
	Topic      string
	Statement  string
	IsTrue     bool
	Correction string
}

// Topic is a Mission 3 category.
type Topic struct {
	Name string
	Icon string
}

// RetryFeedback is shown when a Mission 1 choice is wrong.
const RetryFeedback = "😅 조금 더 구체적인 질문이 필요해요. AI가 헷갈리지 않게 자세히 말해볼까요?"

// Challenges returns the fixed Mission 1 catalog in order.
func Challenges() []PromptChallenge {
	return []PromptChallenge{
		{
			ID:        1,
			Scenario:  "유튜브 크리에이터가 되고 싶어. AI에게 도움을 요청해보자.",
			BadPrompt: "유튜브 어떻게 해?",
			BetterPromptOptions: []string{
				"유튜브 알고리즘 알려줘.",
				"중학생이 시작하기 좋은 유튜브 주제 3가지만 추천해줘. 나는 춤추는 걸 좋아해.",
				"유명한 유튜버 이름 알려줘.",
			},
			CorrectIndex: 1,
			Explanation:  "👍 완벽해! 구체적인 상황(중학생, 춤)과 원하는 결과(3가지 추천)를 말해주면 AI는 최고의 파트너가 됩니다.",
		},
		{
			ID:        2,
			Scenario:  "숙제로 '환경 오염' 포스터를 그려야 해.",
			BadPrompt: "환경 오염 그림 그려줘.",
			BetterPromptOptions: []string{
				"지구가 아파하는 그림 그려줘.",
				"미래 도시의 모습을 그려줘.",
				"쓰레기로 뒤덮인 바다에서 로봇 물고기가 청소하는 모습을 긍정적인 톤으로 그려줘.",
			},
			CorrectIndex: 2,
			Explanation:  "🎨 멋져요! AI에게 '무엇을', '어떻게', '어떤 분위기로' 그릴지 설명하면 상상 속 이미지를 그대로 꺼낼 수 있어요.",
		},
	}
}

// Topics returns the four fixed Mission 3 topics in grid order.
func Topics() []Topic {
	return []Topic{
		{Name: "역사", Icon: "📜"},
		{Name: "과학", Icon: "🧪"},
		{Name: "우주", Icon: "🚀"},
		{Name: "동물", Icon: "🦁"},
	}
}

// DiarySuggestions are the refinement shortcuts offered after the first
// Mission 2 iteration.
func DiarySuggestions() []string {
	return []string{
		"더 감동적으로 바꿔줘",
		"갑작스러운 위기 상황을 추가해줘",
		"미래 기술에 대해 더 자세히 묘사해줘",
	}
}

// TopicSet records cleared Mission 3 topics.
type TopicSet map[string]struct{}

func NewTopicSet() TopicSet {
	return make(TopicSet)
}

// Add marks a topic cleared. Adding twice is a no-op.
func (s TopicSet) Add(topic string) {
	s[topic] = struct{}{}
}

func (s TopicSet) Has(topic string) bool {
	_, ok := s[topic]
	return ok
}

func (s TopicSet) Len() int {
	return len(s)
}

// Complete reports whether every fixed topic has been cleared.
func (s TopicSet) Complete() bool {
	for _, t := range Topics() {
		if !s.Has(t.Name) {
			return false
		}
	}
	return true
}
