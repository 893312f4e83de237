package app

import "log/slog"

// Build metadata, set at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/wordflow-backend/internal/app.Version=1.2.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// buildAttr groups the build metadata for the startup log line.
func buildAttr() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("time", BuildTime),
	)
}
