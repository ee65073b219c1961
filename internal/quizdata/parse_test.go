package quizdata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizview/internal/quiz"
)

const twoQuestions = `[
  {
    "question_number": 7,
    "question_text": "Pick the odd one out",
    "question_image": "img/q7.png",
    "options": {"Z": "zebra", "A": "apple", "M": "mango"},
    "correct_answer": "Z",
    "explanation": {
      "correct": "A zebra is not a fruit.",
      "incorrect": {"M": "Mango is a fruit.", "A": "Apple is a fruit."},
      "explanation_image": "img/e7.png"
    }
  },
  {
    "question_number": "8b",
    "question_text": "True or false?",
    "question_image": null,
    "options": {"T": "True", "F": "False"},
    "correct_answer": "F",
    "explanation": {"correct": "It was false."}
  }
]`

func TestParse_PreservesKeyOrder(t *testing.T) {
	qs, err := Parse([]byte(twoQuestions))
	require.NoError(t, err)
	require.Len(t, qs, 2)

	q := qs[0]
	assert.Equal(t, "7", q.Number)
	assert.Equal(t, "Pick the odd one out", q.Text)
	assert.Equal(t, "img/q7.png", q.Image)
	assert.Equal(t, []string{"Z", "A", "M"}, q.OptionKeys())
	assert.Equal(t, "Z", q.CorrectAnswer)
	assert.Equal(t, "A zebra is not a fruit.", q.Explanation.Correct)
	assert.Equal(t, []quiz.Option{
		{Key: "M", Text: "Mango is a fruit."},
		{Key: "A", Text: "Apple is a fruit."},
	}, q.Explanation.Incorrect)
	assert.Equal(t, "img/e7.png", q.Explanation.Image)
}

func TestParse_OptionalFields(t *testing.T) {
	qs, err := Parse([]byte(twoQuestions))
	require.NoError(t, err)

	q := qs[1]
	assert.Equal(t, "8b", q.Number)
	assert.Empty(t, q.Image)
	assert.Nil(t, q.Explanation.Incorrect)
	assert.Empty(t, q.Explanation.Image)
}

func TestParse_EmptyArray(t *testing.T) {
	qs, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		index int
	}{
		{"malformed JSON", `[{`, -1},
		{"not an array", `{"question_text":"x"}`, -1},
		{"missing options", `[{"question_number":1,"question_text":"x","correct_answer":"A","explanation":{"correct":"y"}}]`, -1},
		{"empty options", `[{"question_number":1,"question_text":"x","options":{},"correct_answer":"A","explanation":{"correct":"y"}}]`, -1},
		{"non-string option", `[{"question_number":1,"question_text":"x","options":{"A":1},"correct_answer":"A","explanation":{"correct":"y"}}]`, -1},
		{"missing explanation text", `[{"question_number":1,"question_text":"x","options":{"A":"a"},"correct_answer":"A","explanation":{}}]`, -1},
		{"correct answer not an option", `[{"question_number":1,"question_text":"x","options":{"A":"a","B":"b"},"correct_answer":"C","explanation":{"correct":"y"}}]`, 0},
		{"duplicate option key", `[{"question_number":1,"question_text":"x","options":{"A":"a"},"correct_answer":"A","explanation":{"correct":"y"}},
		  {"question_number":2,"question_text":"x","options":{"A":"a","A":"b"},"correct_answer":"A","explanation":{"correct":"y"}}]`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
			assert.Equal(t, tt.index, verr.Index)
		})
	}
}

func TestParse_DuplicateEmptyKey(t *testing.T) {
	raw := `[{"question_number":1,"question_text":"x","options":{"":"x","":"y","A":"z"},"correct_answer":"A","explanation":{"correct":"y"}}]`

	_, err := Parse([]byte(raw))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, verr.Index)
	assert.Contains(t, err.Error(), `duplicate key ""`)
}

func TestParse_CorrectAnswerErrorListsKeys(t *testing.T) {
	raw := `[{"question_number":1,"question_text":"x","options":{"A":"a","B":"b"},"correct_answer":"C","explanation":{"correct":"y"}}]`

	_, err := Parse([]byte(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `correct_answer "C" is not an option key [A B]`)
}

func TestParse_SampleDocuments(t *testing.T) {
	raw, err := sampleFS.ReadFile("sample/questions.json")
	require.NoError(t, err)

	qs, err := Parse(raw)
	require.NoError(t, err)
	assert.Len(t, qs, 3)
	for i, q := range qs {
		assert.True(t, q.HasOption(q.CorrectAnswer), "question %d", i)
	}
}
