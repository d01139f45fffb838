package questions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LoaderTestSuite struct {
	suite.Suite
	dir string
}

func (s *LoaderTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *LoaderTestSuite) TestLoadValidFile() {
	path := s.write("questions.yaml", `
questions:
  - text: "Capital of France?"
    answer: "Paris"
  - text: "Capital of Italy?"
    answer: "Rome"
`)

	questions, err := Load(path)
	s.Require().NoError(err)
	s.Require().Len(questions, 2)

	s.Equal("Capital of France?", questions[0].Text)
	s.Equal("Paris", questions[0].Answer)
	s.Equal("Rome", questions[1].Answer)
}

func (s *LoaderTestSuite) TestLoadTrimsWhitespace() {
	path := s.write("questions.yaml", `
questions:
  - text: "  Capital of France?  "
    answer: " Paris "
`)

	questions, err := Load(path)
	s.Require().NoError(err)
	s.Equal("Capital of France?", questions[0].Text)
	s.Equal("Paris", questions[0].Answer)
}

func (s *LoaderTestSuite) TestLoadMissingFile() {
	_, err := Load(filepath.Join(s.dir, "nope.yaml"))
	s.Error(err)
}

func (s *LoaderTestSuite) TestLoadEmptyList() {
	path := s.write("questions.yaml", "questions: []\n")

	_, err := Load(path)
	s.ErrorIs(err, ErrNoQuestions)
}

func (s *LoaderTestSuite) TestLoadRejectsBlankFields() {
	path := s.write("questions.yaml", `
questions:
  - text: "Capital of France?"
    answer: ""
`)

	_, err := Load(path)
	s.Error(err)
	s.Contains(err.Error(), "empty answer")
}

func (s *LoaderTestSuite) TestLoadMalformedYAML() {
	path := s.write("questions.yaml", "questions: [whoops")

	_, err := Load(path)
	s.Error(err)
}
