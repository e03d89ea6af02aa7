// Package export serializes a generated quiz to JSON, CSV, or HTML.
// Pure formatting; round-trip fidelity is the only contract.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"slices"
	"strconv"
	"strings"

	"github.com/dgallion1/quizgen/internal/quiz"
)

// Formats lists the supported export formats.
var Formats = map[string]bool{
	"json": true,
	"csv":  true,
	"html": true,
}

// JSON renders the quiz as indented JSON.
func JSON(questions []quiz.Question) ([]byte, error) {
	return json.MarshalIndent(questions, "", "  ")
}

// CSV renders one row per question. The column set is the sorted union of the
// JSON keys present across all questions; list-valued fields are joined with
// ", ".
func CSV(questions []quiz.Question) (string, error) {
	if len(questions) == 0 {
		return "", nil
	}

	present := map[string]bool{
		"type":           true,
		"question":       true,
		"correct_answer": true,
	}
	for _, q := range questions {
		if q.Options != nil {
			present["options"] = true
		}
		if q.CorrectIndex != nil {
			present["correct_answer_index"] = true
		}
		if q.Explanation != "" {
			present["explanation"] = true
		}
	}

	columns := make([]string, 0, len(present))
	for col := range present {
		columns = append(columns, col)
	}
	slices.Sort(columns)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, q := range questions {
		row := make([]string, len(columns))
		for i, col := range columns {
			switch col {
			case "type":
				row[i] = string(q.Type)
			case "question":
				row[i] = q.Question
			case "options":
				row[i] = strings.Join(q.Options, ", ")
			case "correct_answer":
				row[i] = q.CorrectAnswer
			case "correct_answer_index":
				if q.CorrectIndex != nil {
					row[i] = strconv.Itoa(*q.CorrectIndex)
				}
			case "explanation":
				row[i] = q.Explanation
			}
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

var htmlTmpl = template.Must(template.New("quiz").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
.question { margin: 20px 0; padding: 15px; border: 1px solid #ddd; border-radius: 5px; }
.question-text { font-weight: bold; margin-bottom: 10px; }
.options { margin-left: 20px; }
.option { margin: 5px 0; }
.explanation { background-color: #f0f0f0; padding: 10px; margin-top: 10px; border-radius: 3px; }
</style>
</head>
<body>
<h1>Quiz</h1>
{{- range $i, $q := . }}
<div class="question">
<div class="question-text">Question {{ inc $i }}: {{ $q.Question }}</div>
<div class="type">Type: {{ $q.Type }}</div>
{{- if $q.Options }}
<div class="options">
{{- range $q.Options }}
<div class="option">- {{ . }}</div>
{{- end }}
</div>
{{- end }}
{{- if $q.Explanation }}
<div class="explanation"><strong>Explanation:</strong> {{ $q.Explanation }}</div>
{{- end }}
</div>
{{- end }}
</body>
</html>
`))

// HTML renders a standalone page with one block per question.
func HTML(questions []quiz.Question) (string, error) {
	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, questions); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
