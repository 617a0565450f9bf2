package tui

import (
	"strings"

	"github.com/manasm11/academy/internal/survey"
)

const (
	surveyFieldSatisfaction = iota
	surveyFieldHelpfulness
	surveyFieldOpinion
	surveyFieldCount
)

// surveyQuestions are the labels of the two rating rows.
var surveyQuestions = [2]string{
	"교육 프로그램에 대해 얼마나 만족하시나요?",
	"AI를 다루는 방법을 이해하는 데 도움이 되었나요?",
}

// NewSurveyResponse returns a response with both ratings at the default.
func NewSurveyResponse() survey.Response {
	return survey.Response{
		Satisfaction: survey.DefaultRating,
		Helpfulness:  survey.DefaultRating,
	}
}

// AdjustRating moves a rating by delta, clamped to the valid range.
func AdjustRating(current, delta int) int {
	v := current + delta
	if v < survey.MinRating {
		return survey.MinRating
	}
	if v > survey.MaxRating {
		return survey.MaxRating
	}
	return v
}

// Stars renders a rating as filled and empty stars.
func Stars(rating int) string {
	rating = AdjustRating(rating, 0)
	return strings.Repeat("★", rating) + strings.Repeat("☆", survey.MaxRating-rating)
}
