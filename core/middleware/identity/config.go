package identity

// Config holds the user token settings.
type Config struct {
	// TokenHeader is the header carrying the caller's user token.
	TokenHeader string `mapstructure:"token_header" default:"x-authenticated-user-token"`
	// TokenSecret is the HS256 key user tokens are signed with.
	TokenSecret string `mapstructure:"token_secret" default:""`
}
