// Command quizzer enters multiple-choice questions into a JSON file and
// quizzes the user on them.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nativemen/teach-rs-xw/internal/cli"
	"github.com/nativemen/teach-rs-xw/internal/logging"
	"github.com/nativemen/teach-rs-xw/internal/quiz"
)

func main() {
	cli.Main(newRootCmd())
}

func newRootCmd() *cobra.Command {
	root, _ := cli.NewRoot("quizzer", "Enter quiz questions or take a quiz")

	var file string
	root.PersistentFlags().StringVarP(&file, "file", "f", quiz.DefaultFile, "Question file")

	enterCmd := &cobra.Command{
		Use:   "enter",
		Short: "Enter quiz questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := quiz.Enter(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := quiz.Append(file, qs...); err != nil {
				return err
			}
			logging.Get(logging.CategoryQuiz).Info("questions stored",
				zap.String("file", file), zap.Int("added", len(qs)))
			return nil
		},
	}

	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take a quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			qs, err := quiz.Load(file)
			if err != nil {
				return err
			}
			_, err = quiz.Take(qs, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}

	root.AddCommand(enterCmd, quizCmd)
	return root
}
