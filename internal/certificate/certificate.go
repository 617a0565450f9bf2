// Package certificate draws the AI Co-Pilot license card and exports it as a
// single-page PDF.
package certificate

import (
	"fmt"
	"strings"
	"time"

	"github.com/manasm11/academy/internal/session"
)

// Card text.
const (
	Title     = "AI CO-PILOT LICENSE"
	Subtitle  = "OFFICIAL CERTIFICATION"
	Statement = "위 사람은 AI 아카데미의 모든 과정을 우수하게 수료하였으며, AI를 단순한 도구가 아닌 '최고의 협력자'로 활용할 준비가 되었음을 증명합니다."
)

// DefaultIssuer is used when the config leaves the issuer blank.
const DefaultIssuer = "부산대학교 AI융합교육원"

// ExportErrorMessage is shown to the student when the PDF cannot be written.
const ExportErrorMessage = "PDF 다운로드 중 오류가 발생했습니다."

// Badge is one earned skill printed on the card.
type Badge struct {
	Icon     string
	Title    string
	Subtitle string
}

// Badges returns the three badges, one per mission.
func Badges() []Badge {
	return []Badge{
		{Icon: "🗣️", Title: "Prompt Master", Subtitle: "질문이 곧 능력이다"},
		{Icon: "🧠", Title: "Thinking Partner", Subtitle: "AI는 나의 확장 도구"},
		{Icon: "🕵️", Title: "Fact Checker", Subtitle: "비판적 사고 완료"},
	}
}

// Data is everything printed on one card.
type Data struct {
	Profile  session.UserProfile
	Issuer   string
	IssuedAt time.Time
}

// NewData builds card data, filling in the default issuer.
func NewData(p session.UserProfile, issuer string, issuedAt time.Time) Data {
	if strings.TrimSpace(issuer) == "" {
		issuer = DefaultIssuer
	}
	return Data{Profile: p.Trimmed(), Issuer: issuer, IssuedAt: issuedAt}
}

// IssuedLine is the date line under the issuer.
func (d Data) IssuedLine() string {
	return "발급일자: " + FormatDate(d.IssuedAt)
}

// FormatDate renders t as "YYYY년 M월 D일".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

// FileName returns the export file name for a student. Path separators are
// replaced so the name cannot escape the export directory.
func FileName(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	return "AI_License_" + clean + ".pdf"
}
