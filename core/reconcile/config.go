package reconcile

// Config holds the policy options consumed by request validation and the update flow.
type Config struct {
	// AllowedReadFields is the allow-list of external field names a read may request.
	AllowedReadFields []string `mapstructure:"allowed_read_fields" default:"userId,contentId,status,progress,lastAccessTime,lastCompletedTime,lastUpdatedTime,completionPercentage,progressDetails"`
	// RequiredUpdateFields must be present and non-blank on every update entry.
	RequiredUpdateFields []string `mapstructure:"required_update_fields" default:"contentId,status"`
	// RequireReadFields makes the "fields" list mandatory on reads.
	RequireReadFields bool `mapstructure:"require_read_fields" default:"false"`
	// ProcessAllContents merges every update entry instead of only the first one.
	ProcessAllContents bool `mapstructure:"process_all_contents" default:"false"`
	// SerializeWrites serializes fetch-merge-persist per (user, content) inside this process.
	SerializeWrites bool `mapstructure:"serialize_writes" default:"true"`
}
