// Package output renders solved answers in the supported formats.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thesuzerain/advent-of-code/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	answerLineFormat      = "Result for day %d-%d = %s\n"
	multilineAnswerFormat = "Result for day %d-%d:\n%s\n"

	unsupportedFormatMessage = "unsupported output format '%s'"
)

// IsSupportedFormat reports whether the provided format is recognized.
func IsSupportedFormat(format string) bool {
	switch format {
	case types.FormatRaw, types.FormatJSON:
		return true
	default:
		return false
	}
}

// RenderAnswersRaw formats answers one per line. Answers spanning several
// lines (such as a rendered screen) print beneath their header.
func RenderAnswersRaw(answers []types.Answer) string {
	var buffer bytes.Buffer
	for _, answer := range answers {
		if strings.Contains(answer.Value, "\n") {
			buffer.WriteString(fmt.Sprintf(multilineAnswerFormat, answer.Day, answer.Part, answer.Value))
			continue
		}
		buffer.WriteString(fmt.Sprintf(answerLineFormat, answer.Day, answer.Part, answer.Value))
	}
	return buffer.String()
}

// RenderAnswersJSON marshals answers as an indented JSON array.
func RenderAnswersJSON(answers []types.Answer) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(answers, indentPrefix, indentSpacer)
	return string(encoded), jsonEncodeError
}

// RenderAnswers renders answers in the requested format.
func RenderAnswers(answers []types.Answer, format string) (string, error) {
	switch format {
	case types.FormatRaw:
		return RenderAnswersRaw(answers), nil
	case types.FormatJSON:
		return RenderAnswersJSON(answers)
	}
	return "", fmt.Errorf(unsupportedFormatMessage, format)
}

// RenderDayListRaw formats registered days one per line.
func RenderDayListRaw(descriptions []types.DayDescription) string {
	var buffer bytes.Buffer
	for _, description := range descriptions {
		buffer.WriteString(fmt.Sprintf("Day %d: %s (%s)\n", description.Day, description.Title, strings.Join(description.InputFiles, ", ")))
	}
	return buffer.String()
}

// RenderDayList renders registered days in the requested format.
func RenderDayList(descriptions []types.DayDescription, format string) (string, error) {
	switch format {
	case types.FormatRaw:
		return RenderDayListRaw(descriptions), nil
	case types.FormatJSON:
		encoded, jsonEncodeError := json.MarshalIndent(descriptions, indentPrefix, indentSpacer)
		return string(encoded), jsonEncodeError
	}
	return "", fmt.Errorf(unsupportedFormatMessage, format)
}
