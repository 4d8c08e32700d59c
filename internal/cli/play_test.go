package cli

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/lifegame/internal/api"
	"github.com/mcoot/lifegame/internal/factory"
	"github.com/mcoot/lifegame/internal/testutil"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedPrompter answers prompts from fixed queues and records what it was asked
type scriptedPrompter struct {
	selects []string
	inputs  []string

	selectTitles []string
	inputTitles  []string
	offered      [][]option
}

func (p *scriptedPrompter) Select(title string, options []option) (string, error) {
	p.selectTitles = append(p.selectTitles, title)
	p.offered = append(p.offered, options)
	if len(p.selects) == 0 {
		return "", errScriptExhausted
	}
	next := p.selects[0]
	p.selects = p.selects[1:]
	return next, nil
}

func (p *scriptedPrompter) Input(title string, secret bool) (string, error) {
	p.inputTitles = append(p.inputTitles, title)
	if len(p.inputs) == 0 {
		return "", errScriptExhausted
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	return next, nil
}

type PlaySuite struct {
	suite.Suite
	server *httptest.Server
	app    *factory.TestApp
	cfg    *Config
	buf    *bytes.Buffer
}

func TestPlaySuite(t *testing.T) {
	suite.Run(t, new(PlaySuite))
}

func (s *PlaySuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:      testutil.NopLogger(),
		AuthService: s.app.AuthService,
		Controller:  s.app.Controller,
	}))
	s.cfg = &Config{
		ServerURL: s.server.URL,
		TokenFile: filepath.Join(s.T().TempDir(), "token"),
		Output:    OutputText,
	}
	s.buf = &bytes.Buffer{}
}

func (s *PlaySuite) TearDownTest() {
	s.server.Close()
}

func (s *PlaySuite) newSession(p prompter) *session {
	return &session{
		client: NewClient(s.cfg.ServerURL, s.cfg.Token),
		cfg:    s.cfg,
		out:    &Output{format: OutputText, w: s.buf, errW: s.buf},
		prompt: p,
	}
}

func (s *PlaySuite) registerAlice() string {
	var entry Entry
	err := NewClient(s.server.URL, "").Invoke("createNewPlayer", map[string]string{
		"name": "Alice", "age": "25", "height": "170", "city": "Paris",
		"job": "Baker", "username": "alice", "password": "secret123",
	}, &entry)
	s.Require().NoError(err)
	return entry.SessionToken
}

func (s *PlaySuite) TestRegisterThenPlay() {
	p := &scriptedPrompter{
		selects: []string{"register", "READ_A_BOOK", choiceDetails, choiceQuit},
		inputs: []string{
			"Alice",
			"abc", "25",
			"170", "Paris", "Baker", "alice",
			"short", "secret123",
		},
	}

	err := s.newSession(p).run()
	s.Require().ErrorIs(err, errQuit)

	// Rejected answers are asked again
	s.Len(p.inputTitles, 9)
	s.Equal(p.inputTitles[1], p.inputTitles[2])
	s.Equal(p.inputTitles[7], p.inputTitles[8])

	s.Require().Len(p.selectTitles, 4)
	s.Equal("Hello Alice, it's 08:00 o'clock. what would you like to do?", p.selectTitles[1])
	s.Equal("Hello Alice, it's 12:00 o'clock. what would you like to do?", p.selectTitles[2])

	last := p.offered[1]
	s.Equal(choiceDetails, last[len(last)-2].Value)
	s.Equal(choiceQuit, last[len(last)-1].Value)

	token, err := os.ReadFile(s.cfg.TokenFile)
	s.Require().NoError(err)
	s.NotEmpty(token)

	out := s.buf.String()
	s.Contains(out, "Error:")
	s.Contains(out, "Alice (alice)")
	s.Contains(out, "study_level")
}

func (s *PlaySuite) TestResumesSavedSession() {
	s.cfg.Token = s.registerAlice()
	p := &scriptedPrompter{selects: []string{choiceQuit}}

	err := s.newSession(p).run()
	s.Require().ErrorIs(err, errQuit)

	s.Require().Len(p.selectTitles, 1)
	s.Equal("Hello Alice, it's 08:00 o'clock. what would you like to do?", p.selectTitles[0])
	s.Empty(p.inputTitles)
}

func (s *PlaySuite) TestSleepingPrintsBirthdayAndBonus() {
	s.cfg.Token = s.registerAlice()
	selects := make([]string, 0, 11)
	for range 10 {
		selects = append(selects, "SLEEP")
	}
	p := &scriptedPrompter{selects: append(selects, choiceQuit)}

	err := s.newSession(p).run()
	s.Require().ErrorIs(err, errQuit)

	out := s.buf.String()
	s.Contains(out, "Bonus point in study_level!")
	s.Contains(out, "Happy birthday! You are now 26.")
}

func (s *PlaySuite) TestStaleTokenFallsBackToLogin() {
	s.registerAlice()
	s.cfg.Token = "not-a-token"
	p := &scriptedPrompter{
		selects: []string{"login", "login", choiceQuit},
		inputs:  []string{"alice", "wrong-password", "alice", "secret123"},
	}

	err := s.newSession(p).run()
	s.Require().ErrorIs(err, errQuit)

	s.Require().Len(p.selectTitles, 3)
	s.Equal("Hello Alice, it's 08:00 o'clock. what would you like to do?", p.selectTitles[2])
	s.Contains(s.buf.String(), "Error:")
}

func (s *PlaySuite) TestQuitBeforeEntering() {
	p := &scriptedPrompter{selects: []string{choiceQuit}}

	err := s.newSession(p).run()
	s.ErrorIs(err, errQuit)
	s.NoFileExists(s.cfg.TokenFile)
}

func (s *PlaySuite) TestPromptFailureStopsSession() {
	p := &scriptedPrompter{}

	err := s.newSession(p).run()
	s.ErrorIs(err, errScriptExhausted)
}
