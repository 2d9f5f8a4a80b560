package team

// Team is one registered club as shown in the teams report. Fields hold
// display text already normalized from the upstream record.
type Team struct {
	ID      string
	Name    string
	City    string
	Points  string
	Fouls   string
	LogoURL string
}

// HasLogoURL reports whether the upstream record named a remote crest.
func (t Team) HasLogoURL() bool {
	return t.LogoURL != ""
}

// Filter narrows the upstream team listing. Empty fields are not sent.
type Filter struct {
	Search string
	City   string
}
