package generation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

const sampleFact = "STATEMENT: 이순신 장군은 거북선을 이끌었다.\nTRUTH: TRUE\nEXPLANATION: 임진왜란 때 거북선을 활용했습니다."

func fixedSeeds(seeds ...int) func() int {
	i := 0
	return func() int {
		s := seeds[i%len(seeds)]
		i++
		return s
	}
}

func TestNarrative_InitialAndRefine(t *testing.T) {
	t.Parallel()
	mock := NewMockGenerator(
		MockResponse{Text: "### 2045년 5월 20일\n첫 일기"},
		MockResponse{Text: "### 2045년 5월 20일\n고친 일기"},
	)
	c := NewClient(mock, nil)

	first := c.Narrative(context.Background(), "화성에서 일하는 로봇 엔지니어", "")
	if !strings.Contains(first, "첫 일기") {
		t.Errorf("first = %q", first)
	}
	second := c.Narrative(context.Background(), "위기 상황 추가해줘", first)
	if !strings.Contains(second, "고친 일기") {
		t.Errorf("second = %q", second)
	}

	mock.AssertCallCount(t, 2)
	mock.AssertCall(t, 0, "화성에서 일하는 로봇 엔지니어")
	mock.AssertCall(t, 1, "CURRENT DIARY:")
	mock.AssertCall(t, 1, "첫 일기")
	mock.AssertCall(t, 1, "위기 상황 추가해줘")
	if strings.Contains(mock.Calls[0].Prompt, "CURRENT DIARY:") {
		t.Error("initial prompt should not carry a prior diary")
	}
}

func TestNarrative_Fallbacks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		resp MockResponse
		want string
	}{
		{"empty", MockResponse{Text: ""}, NarrativeEmptyFallback},
		{"whitespace", MockResponse{Text: "  \n\t"}, NarrativeEmptyFallback},
		{"error", MockResponse{Err: errors.New("401 unauthorized")}, NarrativeErrorFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := NewClient(NewMockGenerator(tt.resp), nil)
			if got := c.Narrative(context.Background(), "아이디어", ""); got != tt.want {
				t.Errorf("Narrative() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFactCheckItem_Parsed(t *testing.T) {
	t.Parallel()
	mock := NewMockGenerator(MockResponse{Text: sampleFact})
	c := NewClient(mock, nil, WithSeedSource(fixedSeeds(4242)))

	item := c.FactCheckItem(context.Background(), "역사")
	if item.Topic != "역사" {
		t.Errorf("Topic = %q", item.Topic)
	}
	if !item.IsTrue {
		t.Error("IsTrue = false, want true")
	}
	if item.Statement != "이순신 장군은 거북선을 이끌었다." {
		t.Errorf("Statement = %q", item.Statement)
	}

	mock.AssertCall(t, 0, "(Seed: 4242)")
	mock.AssertCall(t, 0, "한국의 역사 (Korean History)")
	if temp := mock.Calls[0].Temperature; temp == nil || *temp != 0.9 {
		t.Errorf("Temperature = %v, want 0.9", temp)
	}
}

func TestFactCheckItem_TopicNotExpanded(t *testing.T) {
	t.Parallel()
	mock := NewMockGenerator(MockResponse{Text: sampleFact})
	c := NewClient(mock, nil)

	c.FactCheckItem(context.Background(), "우주")
	if strings.Contains(mock.Calls[0].Prompt, "Korean History") {
		t.Error("non-history topic should not be expanded")
	}
	mock.AssertCall(t, 0, "우주")
}

func TestFactCheckItem_RepeatOpensCallAgain(t *testing.T) {
	t.Parallel()
	mock := NewMockGenerator(
		MockResponse{Text: sampleFact},
		MockResponse{Text: "STATEMENT: 세종대왕은 조선의 첫 번째 왕이다.\nTRUTH: FALSE\nEXPLANATION: 첫 번째 왕은 태조입니다."},
	)
	c := NewClient(mock, nil, WithSeedSource(fixedSeeds(1, 2)))

	a := c.FactCheckItem(context.Background(), "역사")
	b := c.FactCheckItem(context.Background(), "역사")

	mock.AssertCallCount(t, 2)
	mock.AssertCall(t, 0, "(Seed: 1)")
	mock.AssertCall(t, 1, "(Seed: 2)")
	if a.Statement == b.Statement {
		t.Error("expected distinct statements for separate opens")
	}
	if b.IsTrue {
		t.Error("second item IsTrue = true, want false")
	}
}

func TestFactCheckItem_Fallbacks(t *testing.T) {
	t.Parallel()

	t.Run("unparseable", func(t *testing.T) {
		t.Parallel()
		c := NewClient(NewMockGenerator(MockResponse{Text: "잘 모르겠어요"}), nil)
		item := c.FactCheckItem(context.Background(), "과학")
		want := FactParseFallback("과학")
		if item != want {
			t.Errorf("item = %+v, want %+v", item, want)
		}
		if item.Statement != "과학에 대한 AI의 지식은 방대하지만 가끔은 실수를 합니다." || !item.IsTrue {
			t.Errorf("unexpected fallback %+v", item)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		c := NewClient(NewMockGenerator(MockResponse{Err: errors.New("dial tcp: refused")}), nil)
		item := c.FactCheckItem(context.Background(), "동물")
		if item.Statement != FactLoadingStatement || !item.IsTrue || item.Correction != FactLoadingCorrection {
			t.Errorf("unexpected fallback %+v", item)
		}
		if item.Topic != "동물" {
			t.Errorf("Topic = %q", item.Topic)
		}
	})
}

func TestCoachPrompt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		resp MockResponse
		want string
	}{
		{"feedback", MockResponse{Text: "  좋은 질문이에요! 대상을 밝혀서 더 좋아요.\n"}, "좋은 질문이에요! 대상을 밝혀서 더 좋아요."},
		{"empty", MockResponse{Text: ""}, CoachEmptyFallback},
		{"error", MockResponse{Err: errors.New("boom")}, CoachErrorFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := NewMockGenerator(tt.resp)
			c := NewClient(mock, nil)
			if got := c.CoachPrompt(context.Background(), "우주 여행 알려줘"); got != tt.want {
				t.Errorf("CoachPrompt() = %q, want %q", got, tt.want)
			}
			mock.AssertCall(t, 0, "우주 여행 알려줘")
		})
	}
}

type slowGenerator struct{}

func (slowGenerator) Generate(ctx context.Context, _ Request) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func (slowGenerator) Name() string { return "slow" }

func TestClient_TimeoutFallsBack(t *testing.T) {
	t.Parallel()
	c := NewClient(slowGenerator{}, nil, WithTimeout(10*time.Millisecond))
	if got := c.Narrative(context.Background(), "아이디어", ""); got != NarrativeErrorFallback {
		t.Errorf("Narrative() = %q, want error fallback", got)
	}
}

func TestNewClient_DefaultSeedInRange(t *testing.T) {
	t.Parallel()
	c := NewClient(NewMockGenerator(), nil)
	for i := 0; i < 100; i++ {
		if s := c.seed(); s < 0 || s >= seedLimit {
			t.Fatalf("seed %d out of range", s)
		}
	}
	if c.Backend() != "mock" {
		t.Errorf("Backend() = %q", c.Backend())
	}
}
