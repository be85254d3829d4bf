package quiz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/nativemen/teach-rs-xw/internal/logging"
)

// ParseError reports user input that is not a number.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Score is the outcome of Take.
type Score struct {
	Correct int
	Total   int
}

func (s Score) String() string {
	return fmt.Sprintf("Your score is %d / %d", s.Correct, s.Total)
}

// session reads one line per answer and writes styled prompts.
type session struct {
	in  *bufio.Reader
	out io.Writer
	st  styles
	log *zap.Logger
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{
		in:  bufio.NewReader(in),
		out: out,
		st:  newStyles(out),
		log: logging.Get(logging.CategoryQuiz),
	}
}

func (s *session) println(style func(...string) string, format string, args ...any) error {
	_, err := fmt.Fprintln(s.out, style(fmt.Sprintf(format, args...)))
	return err
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted; running out of input before any text is io.ErrUnexpectedEOF.
func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", io.ErrUnexpectedEOF
		}
	}
	return strings.TrimSpace(line), nil
}

func (s *session) ask(prompt string) (string, error) {
	if err := s.println(s.st.Prompt.Render, "%s", prompt); err != nil {
		return "", err
	}
	return s.readLine()
}

func (s *session) askInt(prompt string) (int, error) {
	text, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &ParseError{Input: text, Err: err}
	}
	return n, nil
}

func (s *session) enterOne() (Question, error) {
	var q Question
	var err error
	if q.Question, err = s.ask("Enter the question:"); err != nil {
		return q, err
	}
	for i := range q.Options {
		if q.Options[i], err = s.ask(fmt.Sprintf("Enter option %d:", i+1)); err != nil {
			return q, err
		}
	}
	for {
		if q.CorrectAnswer, err = s.askInt("Enter the number of the correct answer:"); err != nil {
			return q, err
		}
		verr := q.Validate()
		if verr == nil {
			return q, nil
		}
		if err := s.println(s.st.Warning.Render, "%v", verr); err != nil {
			return q, err
		}
	}
}

// Enter prompts for questions until the user answers anything but "yes" to
// adding another one, and returns what was entered.
func Enter(in io.Reader, out io.Writer) ([]Question, error) {
	s := newSession(in, out)
	var qs []Question
	for {
		q, err := s.enterOne()
		if err != nil {
			return qs, err
		}
		qs = append(qs, q)
		s.log.Debug("question entered", zap.String("question", q.Question))

		another, err := s.ask("Do you want to add another question? (yes/no)")
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return qs, nil
		}
		if err != nil {
			return qs, err
		}
		if !strings.EqualFold(another, "yes") {
			return qs, nil
		}
	}
}

// Take asks every question in qs and counts the correct answers.
func Take(qs []Question, in io.Reader, out io.Writer) (Score, error) {
	s := newSession(in, out)
	score := Score{Total: len(qs)}
	for i, q := range qs {
		if err := s.println(s.st.Question.Render, "Question %d: %s", i+1, q.Question); err != nil {
			return score, err
		}
		for j, opt := range q.Options {
			if err := s.println(s.st.Option.Render, "(%d) %s", j+1, opt); err != nil {
				return score, err
			}
		}
		answer, err := s.askInt("Please input your answer:")
		if err != nil {
			return score, err
		}
		if answer == q.CorrectAnswer {
			score.Correct++
		}
	}
	s.log.Info("quiz finished", zap.Int("correct", score.Correct), zap.Int("total", score.Total))
	return score, s.println(s.st.Score.Render, "%s", score)
}
