package types

type DBConfig struct {
	URI             string
	DBName          string
	Timeout         int
	MaxPoolSize     uint64
	IdleConnTimeout int
}

type OAuthConfig struct {
	GitHubClientID     string
	GitHubClientSecret string
	FacebookAppID      string
	GoogleAPIKey       string
	GoogleUserIP       string
}
