package config

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// Question is a prompt with a fixed list of answers and the index of the
// correct one.
type Question struct {
	Text    string
	Answers []string
	Correct int
}

// QuestionPools holds the two fixed trivia pools.
type QuestionPools struct {
	TrueFalse      []Question
	MultipleChoice []Question
}

type trueFalseSpec struct {
	Text   string `yaml:"text"`
	Answer bool   `yaml:"answer"`
}

type multipleChoiceSpec struct {
	Text    string   `yaml:"text"`
	Answers []string `yaml:"answers"`
	Correct int      `yaml:"correct"`
}

type questionsSpec struct {
	TrueFalse      []trueFalseSpec      `yaml:"true_false"`
	MultipleChoice []multipleChoiceSpec `yaml:"multiple_choice"`
}

// Labels used for true/false answers, in answer-index order.
var TrueFalseAnswers = []string{"True", "False"}

// Questions is the global question pool loaded from the embedded YAML.
var Questions QuestionPools

var errEmptyPool = errors.New("question pool is empty")

// ParseQuestions decodes and validates a question pool document.
func ParseQuestions(data []byte) (QuestionPools, error) {
	var spec questionsSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return QuestionPools{}, fmt.Errorf("questions: unmarshal: %w", err)
	}

	var pools QuestionPools
	for i, tf := range spec.TrueFalse {
		correct := 1
		if tf.Answer {
			correct = 0
		}
		q := Question{Text: tf.Text, Answers: TrueFalseAnswers, Correct: correct}
		if err := q.validate(); err != nil {
			return QuestionPools{}, fmt.Errorf("questions: true_false[%d]: %w", i, err)
		}
		pools.TrueFalse = append(pools.TrueFalse, q)
	}
	for i, mc := range spec.MultipleChoice {
		q := Question{Text: mc.Text, Answers: mc.Answers, Correct: mc.Correct}
		if err := q.validate(); err != nil {
			return QuestionPools{}, fmt.Errorf("questions: multiple_choice[%d]: %w", i, err)
		}
		pools.MultipleChoice = append(pools.MultipleChoice, q)
	}

	if len(pools.TrueFalse) == 0 {
		return QuestionPools{}, fmt.Errorf("questions: true_false: %w", errEmptyPool)
	}
	if len(pools.MultipleChoice) == 0 {
		return QuestionPools{}, fmt.Errorf("questions: multiple_choice: %w", errEmptyPool)
	}
	return pools, nil
}

// MustParseQuestions is ParseQuestions for data compiled into the binary.
func MustParseQuestions(data []byte) QuestionPools {
	pools, err := ParseQuestions(data)
	if err != nil {
		panic(err)
	}
	return pools
}

func (q Question) validate() error {
	if q.Text == "" {
		return errors.New("empty text")
	}
	if len(q.Answers) < 2 {
		return fmt.Errorf("need at least 2 answers, got %d", len(q.Answers))
	}
	if q.Correct < 0 || q.Correct >= len(q.Answers) {
		return fmt.Errorf("correct index %d out of range", q.Correct)
	}
	return nil
}

// IsCorrect reports whether choice is the right answer.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Correct
}

func init() {
	Questions = MustParseQuestions(questionsYAML)
}
