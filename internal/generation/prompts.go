package generation

import (
	"fmt"
	"strings"
)

// MaxDiaryChars is the length cap given to the model for diary entries.
const MaxDiaryChars = 600

// historyTopic is widened so questions stay on Korean history.
const historyTopic = "역사"

const diaryFormatRules = `FORMAT:
- Reply with the diary entry only. No greeting, no explanation before or after it.
- The first line is a Markdown level-3 heading (###) holding the date and place, e.g. ### 2045년 5월 20일, 화성 기지에서
- Mark key technologies and feelings with **bold**.
- Split the entry into short paragraphs.
LENGTH: stay under %d Korean characters in total.
LANGUAGE: Korean.`

// BuildNarrativePrompt returns the initial-diary prompt when prior is empty
// and the rewrite prompt otherwise.
func BuildNarrativePrompt(instruction, prior string) string {
	var b strings.Builder
	rules := fmt.Sprintf(diaryFormatRules, MaxDiaryChars)

	if strings.TrimSpace(prior) == "" {
		b.WriteString("ROLE: You are a creative writing partner for a middle school student imagining their career in the year 2045.\n\n")
		fmt.Fprintf(&b, "STUDENT IDEA: %q\n\n", instruction)
		b.WriteString("TASK:\n")
		b.WriteString("1. Work out the job and situation the student describes.\n")
		b.WriteString("2. Write a vivid first-person (\"나\") diary entry from that future day.\n\n")
		b.WriteString(rules)
		b.WriteString("\n\nTONE: exciting, futuristic, encouraging.")
		return b.String()
	}

	b.WriteString("ROLE: You are a creative writing partner helping a student revise a \"future diary\" for a career education class.\n\n")
	fmt.Fprintf(&b, "CURRENT DIARY:\n%s\n\n", prior)
	fmt.Fprintf(&b, "STUDENT REQUEST: %q\n\n", instruction)
	b.WriteString("TASK: Rewrite the whole diary entry following the request. ")
	b.WriteString("When the student asks to change something, rewrite that scene; when they ask to add something such as a crisis or a new event, weave it in naturally.\n\n")
	b.WriteString(rules)
	return b.String()
}

// BuildFactCheckPrompt asks for one clearly true or clearly false trivia
// statement in three labelled lines. seed only varies the prompt text so the
// backend cannot serve a cached answer.
func BuildFactCheckPrompt(topic string, seed int) string {
	subject := topic
	if topic == historyTopic {
		subject = "한국의 역사 (Korean History)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TASK: Write one trivia statement about %q for a middle school student. (Seed: %d)\n\n", subject, seed)
	b.WriteString("RULES:\n")
	b.WriteString("1. Everything must be written in Korean.\n")
	b.WriteString("2. Easy or medium difficulty; nothing obscure.\n")
	b.WriteString("3. The statement must be clearly true or clearly false. No trick questions that hinge on technicalities.\n")
	if topic == historyTopic {
		b.WriteString("4. Stick to well-known figures (세종대왕, 이순신 and the like) or major events.\n")
	}
	b.WriteString("\nReply with exactly these three lines and nothing else:\n")
	b.WriteString("STATEMENT: <the statement in Korean>\n")
	b.WriteString("TRUTH: <TRUE or FALSE>\n")
	b.WriteString("EXPLANATION: <one Korean sentence explaining the answer>\n")
	return b.String()
}

// BuildCoachPrompt asks for short feedback on a student's own prompt.
func BuildCoachPrompt(prompt string) string {
	var b strings.Builder
	b.WriteString("ROLE: You are a friendly AI coach for middle school students.\n\n")
	fmt.Fprintf(&b, "STUDENT PROMPT: %q\n\n", prompt)
	b.WriteString("Judge the prompt on clarity and specificity (context, persona, output format). ")
	b.WriteString("Reply in Korean with at most two encouraging sentences saying why it works or how to improve it.")
	return b.String()
}
