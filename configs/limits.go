package configs

// Feed paging bounds. DefaultFeedLimit matches the grid the web client
// renders (3x3).
const (
	DefaultFeedLimit = 9
	MaxFeedLimit     = 50
)

const (
	MinPasswordLen = 8
	MaxHandleLen   = 30
)
