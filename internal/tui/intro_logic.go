package tui

import (
	"strings"

	"github.com/manasm11/academy/internal/session"
)

// Intro form field order.
const (
	fieldSchool = iota
	fieldGrade
	fieldName
	introFieldCount
)

var introPlaceholders = [introFieldCount]string{
	"학교 이름 (예: 서울중학교)",
	"학년 반 (예: 1학년 3반)",
	"이름 (예: 홍길동)",
}

// ProfileFromFields builds a profile from the form values in field order.
func ProfileFromFields(values [introFieldCount]string) session.UserProfile {
	return session.UserProfile{
		School: values[fieldSchool],
		Grade:  values[fieldGrade],
		Name:   values[fieldName],
	}
}

// FirstEmptyField returns the index of the first blank field, or -1.
func FirstEmptyField(values [introFieldCount]string) int {
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return i
		}
	}
	return -1
}

// CycleFocus moves focus by delta, wrapping around the form.
func CycleFocus(current, delta int) int {
	return ((current+delta)%introFieldCount + introFieldCount) % introFieldCount
}
