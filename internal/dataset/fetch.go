package dataset

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"homicide-insights-go/internal/logger"
)

const (
	fetchTimeout      = 30 * time.Second
	fetchMaxRetryTime = 2 * time.Minute
)

// Fetch downloads the published dataset to dest, retrying transient
// failures with exponential backoff. Client errors (4xx) are permanent.
func Fetch(url, dest string) error {
	log := logger.New().WithComponent("dataset").WithField("url", url)

	op := func() error {
		client := &http.Client{Timeout: fetchTimeout}
		resp, err := client.Get(url)
		if err != nil {
			log.WithError(err).Warn("dataset download failed, will retry")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("dataset download: status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("dataset download: status %d", resp.StatusCode)
			log.WithError(err).Warn("dataset download failed, will retry")
			return err
		}

		tmp, err := os.CreateTemp(os.TempDir(), "dataset-*.part")
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create temp file: %w", err))
		}
		defer os.Remove(tmp.Name())

		if _, err := io.Copy(tmp, resp.Body); err != nil {
			tmp.Close()
			log.WithError(err).Warn("dataset download interrupted, will retry")
			return err
		}
		if err := tmp.Close(); err != nil {
			return err
		}
		return os.Rename(tmp.Name(), dest)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = fetchMaxRetryTime

	if err := backoff.Retry(op, b); err != nil {
		return fmt.Errorf("fetch dataset: %w", err)
	}
	log.WithField("dest", dest).Info("dataset downloaded")
	return nil
}
