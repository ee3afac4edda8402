package media

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"socialgate/config"
	"socialgate/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultConvertTimeout = 60 * time.Second

// execConverter shells out to the ImageMagick convert binary.
type execConverter struct {
	convertPath string
	timeout     time.Duration
	logger      *slog.Logger
}

// NewExecConverter creates an image converter over the configured binary.
func NewExecConverter(cfg *config.MediaConfig, logger *slog.Logger) service.ImageConverter {
	convertPath := cfg.ConvertPath
	if convertPath == "" {
		convertPath = "convert"
	}
	timeout := cfg.ConvertTimeout
	if timeout <= 0 {
		timeout = defaultConvertTimeout
	}

	return &execConverter{
		convertPath: convertPath,
		timeout:     timeout,
		logger:      logger,
	}
}

// Convert runs the tool as "convert <src> <args...> <dest>".
func (c *execConverter) Convert(ctx context.Context, srcPath, destPath string, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmdArgs := make([]string, 0, len(args)+2)
	cmdArgs = append(cmdArgs, srcPath)
	cmdArgs = append(cmdArgs, args...)
	cmdArgs = append(cmdArgs, destPath)

	cmd := exec.CommandContext(ctx, c.convertPath, cmdArgs...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "convert failed: %s", strings.TrimSpace(string(output)))
	}

	c.logger.Debug("Image converted",
		slog.String("src", srcPath),
		slog.String("dest", destPath),
	)

	return nil
}
