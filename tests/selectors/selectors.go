package sel

const (
	Logo = ".brand-logo"

	SignUpFormUsername   = "#username-field"
	SignUpFormPass       = "#password-field"
	SignUpFormPassRepeat = "#password-repeat-field"
	SignUpFormSubmit     = "#signup-form-submit"

	SignInFormUsername = "#username-field"
	SignInFormPass     = "#password-field"
	SignInFormSubmit   = "#signin-form-submit"

	NewMatchFormPlayer  = "#new-match-form-player"
	NewMatchFormACS     = "#new-match-form-acs"
	NewMatchFormKills   = "#new-match-form-kills"
	NewMatchFormDeaths  = "#new-match-form-deaths"
	NewMatchFormAssists = "#new-match-form-assists"
	NewMatchFormSubmit  = "#new-match-form-submit"

	LeaderboardRow     = "#leaderboard-row"
	LeaderboardRowName = "#leaderboard-row-name"

	MatchListRow      = "#match-list-row"
	DeleteMatchSubmit = "#delete-match-submit"
)
