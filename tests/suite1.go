package tests

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"time"

	sel "github.com/debduthira/valorant-prs/tests/selectors"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/suite"
)

type TestSuite1 struct {
	suite.Suite
	process *Process
}

var (
	serverConfigPath string
	authConfigPath   string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&authConfigPath, "auth-config", "", "path to auth configs")
}

// SetupSuite starts the server binary the suite drives.
func (s *TestSuite1) SetupSuite() {
	fmt.Println("setupSuite")
	s.Require().NotEmpty(serverConfigPath, "-server-config MUST be set")
	s.Require().NotEmpty(authConfigPath, "-auth-config MUST be set")
	p := NewProcess(context.Background(), "../bin/server",
		"-server-config", serverConfigPath,
		"-auth-config", authConfigPath)
	s.process = p
	err := p.Start(context.Background())
	if err != nil {
		s.T().Errorf("cant start process: %v", err)
	}

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v", err)
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get("http://0.0.0.0:3000/signin")
			if r != nil && r.StatusCode == http.StatusOK {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *TestSuite1) TearDownSuite() {
	fmt.Println("teardown Suite1")
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *TestSuite1) TestPlayerFlow() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	ctx, cancelChrome := chromedp.NewContext(ctx)
	defer cancelChrome()

	var logo string
	var leaderName string
	err := chromedp.Run(ctx,
		// a guest hitting the api is sent to the signin page
		chromedp.Navigate(`http://0.0.0.0:3000/api`),
		chromedp.WaitVisible(sel.SignInFormSubmit),

		// register a player
		chromedp.Navigate(`http://0.0.0.0:3000/signup`),
		chromedp.SendKeys(sel.SignUpFormUsername, "autotest_player"),
		chromedp.SendKeys(sel.SignUpFormPass, "secret-pass"),
		chromedp.SendKeys(sel.SignUpFormPassRepeat, "secret-pass"),
		chromedp.Click(sel.SignUpFormSubmit),
		chromedp.WaitVisible(sel.SignInFormSubmit),

		// registration does not log in, a session needs explicit signin
		chromedp.SendKeys(sel.SignInFormUsername, "autotest_player"),
		chromedp.SendKeys(sel.SignInFormPass, "secret-pass"),
		chromedp.Click(sel.SignInFormSubmit),
		chromedp.WaitVisible(sel.Logo),
		chromedp.Text(sel.Logo, &logo),

		// submit a match, the player name field is locked to the username
		chromedp.Navigate(`http://0.0.0.0:3000/api/matches`),
		chromedp.SendKeys(sel.NewMatchFormACS, "250"),
		chromedp.SendKeys(sel.NewMatchFormKills, "20"),
		chromedp.SendKeys(sel.NewMatchFormDeaths, "10"),
		chromedp.SendKeys(sel.NewMatchFormAssists, "5"),
		chromedp.Click(sel.NewMatchFormSubmit),
		chromedp.WaitVisible(sel.MatchListRow),

		// the leaderboard picks the match up
		chromedp.Navigate(`http://0.0.0.0:3000/api`),
		chromedp.WaitVisible(sel.LeaderboardRow),
		chromedp.Text(sel.LeaderboardRowName, &leaderName),
	)
	if err != nil {
		s.T().Fatal(err.Error())
	}
	s.Equal("Valorant Tracker", logo)
	s.Equal("autotest_player", leaderName)
}
