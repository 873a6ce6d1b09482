package banner

import (
	"io"

	"go.uber.org/zap"
)

// Announce prints the banner and opens the browser when configured.
// A launch failure leaves the server running and is only logged.
func Announce(w io.Writer, info Info, cfg Config, launcher Launcher, logger *zap.Logger) {
	Print(w, info)

	if !cfg.OpenBrowser || launcher == nil {
		return
	}
	if err := launcher.Open(info.URL()); err != nil {
		logger.Warn("Could not open browser automatically, copy the URL above", zap.Error(err))
		return
	}
	logger.Info("Opening browser", zap.String("url", info.URL()))
}
