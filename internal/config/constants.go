package config

// Defaults used when neither the environment, a file nor a prompt supplies a value.
const (
	DefaultAPIKey        = "this_really_should_be_a_long_random_alphanumeric_value_but_this_still_works"
	DefaultEndpoint      = "http://localhost:9011"
	DefaultAdminPassword = "password"

	// DefaultSourceThemeID is the ID of FusionAuth's built-in default theme.
	DefaultSourceThemeID = "75a068fd-e94b-451a-9aeb-3ddb9a3b5987"

	// DefaultPublishRegion is used for object storage when no region is set.
	DefaultPublishRegion = "us-east-1"
)

// AdminRole is the application role granted to the provisioned admin user.
const AdminRole = "admin"
