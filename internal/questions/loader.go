package questions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fibberd/fibberd/internal/models"
	"gopkg.in/yaml.v3"
)

// Define errors
var (
	ErrNoQuestions = errors.New("question file contains no questions")
)

// questionFile is the on-disk shape of a question file
type questionFile struct {
	Questions []questionEntry `yaml:"questions"`
}

type questionEntry struct {
	Text   string `yaml:"text"`
	Answer string `yaml:"answer"`
}

// Load reads and validates an ordered question sequence from a YAML file.
// The session engine assumes the sequence is fixed and valid before it
// starts, so every entry is checked here.
func Load(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question file: %w", err)
	}

	var file questionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse question file: %w", err)
	}

	if len(file.Questions) == 0 {
		return nil, ErrNoQuestions
	}

	questions := make([]models.Question, 0, len(file.Questions))
	for i, entry := range file.Questions {
		text := strings.TrimSpace(entry.Text)
		answer := strings.TrimSpace(entry.Answer)

		if text == "" {
			return nil, fmt.Errorf("question %d has empty text", i+1)
		}
		if answer == "" {
			return nil, fmt.Errorf("question %d has empty answer", i+1)
		}

		questions = append(questions, models.Question{
			Text:   text,
			Answer: answer,
		})
	}

	return questions, nil
}
