// Package quiz stores multiple-choice questions in a JSON file and runs the
// interactive flows that enter new questions and take a quiz.
package quiz

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/nativemen/teach-rs-xw/internal/logging"
)

// DefaultFile is where the quizzer binary keeps its questions.
const DefaultFile = "questions.json"

// OptionCount is the number of answers offered per question.
const OptionCount = 4

// Question is one multiple-choice question. CorrectAnswer is 1-based.
type Question struct {
	Question      string              `json:"question"`
	Options       [OptionCount]string `json:"options"`
	CorrectAnswer int                 `json:"correct_answer"`
}

// ErrAnswerRange is returned for a correct answer outside 1..OptionCount.
var ErrAnswerRange = fmt.Errorf("correct answer must be between 1 and %d", OptionCount)

// Validate checks that CorrectAnswer points at one of the options.
func (q Question) Validate() error {
	if q.CorrectAnswer < 1 || q.CorrectAnswer > OptionCount {
		return fmt.Errorf("%w, got %d", ErrAnswerRange, q.CorrectAnswer)
	}
	return nil
}

// Save writes qs to path as a JSON array, replacing the file.
func Save(qs []Question, path string) (err error) {
	if qs == nil {
		qs = []Question{}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create question file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close question file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(qs); err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write question file: %w", err)
	}

	logging.Get(logging.CategoryQuiz).Debug("questions saved",
		zap.String("path", path), zap.Int("count", len(qs)))
	return nil
}

// Load reads the JSON array at path. Every question is validated.
func Load(path string) ([]Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open question file: %w", err)
	}
	defer f.Close()

	var qs []Question
	if err := json.NewDecoder(bufio.NewReader(f)).Decode(&qs); err != nil {
		return nil, fmt.Errorf("failed to parse question file %s: %w", path, err)
	}
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d in %s: %w", i+1, path, err)
		}
	}

	logging.Get(logging.CategoryQuiz).Debug("questions loaded",
		zap.String("path", path), zap.Int("count", len(qs)))
	return qs, nil
}

// Append adds qs to the questions already stored at path. A missing file is
// treated as empty.
func Append(path string, qs ...Question) error {
	existing, err := Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return Save(append(existing, qs...), path)
}
