// Package notifier pushes progress updates to the drip-tray companion app
// over its local webhook. The tray writes a lockfile (port|pid|secret) into
// its config dir on startup; we validate the PID actually belongs to a
// drip-tray process before sending anything to the port.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/driplog/drip/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type Notifier struct{}

type WebhookPayload struct {
	Text       string `json:"text"`
	Current    int    `json:"current"`
	Goal       int    `json:"goal"`
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{}
}

// NotifyProgress sends the day's running total to the tray so it can redraw
// its fill indicator.
func (n *Notifier) NotifyProgress(current, goal int) error {
	text := fmt.Sprintf("%d / %d", current, goal)
	if goal > 0 && current >= goal {
		text = fmt.Sprintf("Goal reached! %d / %d", current, goal)
	}
	return n.send(WebhookPayload{
		Text:       text,
		Current:    current,
		Goal:       goal,
		DurationMs: constants.NotificationDurationMs,
	})
}

// Notify sends a free-form message to the tray.
func (n *Notifier) Notify(text string) error {
	return n.send(WebhookPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

func (n *Notifier) send(payload WebhookPayload) error {
	trayAppConfigPath, err := GetTrayAppConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateTrayProcess(filepath.Join(trayAppConfigPath, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	return sendNotification(port, secret, payload)
}

// GetTrayAppConfigDir returns the configuration directory used by the tray
// application. The tray can relocate its lockfile via settings.json.
func GetTrayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("drip-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("drip-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), "drip-tray") {
		return "", "", fmt.Errorf("process with PID %d is not drip-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func sendNotification(port string, secret string, payload WebhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 2 * time.Second}

	var lastErr error
	for attempt := 0; attempt < constants.NotifyMaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(constants.NotifyRetryDelay)
		}
		req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Drip-Secret", secret)

		res, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if res.StatusCode == http.StatusOK {
			res.Body.Close()
			return nil
		}
		body, _ := io.ReadAll(res.Body)
		res.Body.Close()
		lastErr = fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
	}
	return lastErr
}
