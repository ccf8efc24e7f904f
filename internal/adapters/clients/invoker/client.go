package invoker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-command-bridge/internal/domain"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-command-bridge/internal/platform/logging"
	"github.com/jsamuelsen11/go-command-bridge/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CommandInvoker = (*Client)(nil)
	_ ports.HealthChecker  = (*Client)(nil)
)

const (
	invokePath   = "/api/v1/invoke"
	commandsPath = "/api/v1/commands"
)

// envelope mirrors the host's invoke response.
type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

type commandList struct {
	Commands []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"commands"`
}

// Client invokes host commands. It implements ports.CommandInvoker and,
// through the underlying httpclient.Client, ports.HealthChecker.
type Client struct {
	hc     *httpclient.Client
	logger *slog.Logger
}

// New returns a Client that sends every call through hc.
func New(hc *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{hc: hc, logger: logger}
}

// Invoke calls the named command with args, which may be nil.
func (c *Client) Invoke(ctx context.Context, name string, args json.RawMessage) (json.RawMessage, error) {
	var body io.Reader
	if len(args) > 0 {
		body = bytes.NewReader(args)
	}

	var env envelope
	if err := c.do(ctx, http.MethodPost, invokePath+"/"+url.PathEscape(name), body, &env); err != nil {
		return nil, fmt.Errorf("invoking %q: %w", name, err)
	}

	switch env.Status {
	case "ok":
		if len(env.Data) == 0 {
			return json.RawMessage("null"), nil
		}
		return env.Data, nil
	case "error":
		return nil, &RemoteError{Command: name, Message: env.Error}
	default:
		return nil, fmt.Errorf("invoking %q: unexpected envelope status %q", name, env.Status)
	}
}

// List returns the commands the host exposes, in the host's order.
func (c *Client) List(ctx context.Context) ([]domain.Command, error) {
	var resp commandList
	if err := c.do(ctx, http.MethodGet, commandsPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("listing commands: %w", err)
	}

	cmds := make([]domain.Command, 0, len(resp.Commands))
	for _, cmd := range resp.Commands {
		cmds = append(cmds, domain.Command{Name: cmd.Name, Description: cmd.Description})
	}
	return cmds, nil
}

// Name identifies the host in readiness output.
func (c *Client) Name() string {
	return c.hc.Name()
}

// HealthCheck reports the host as unhealthy while the breaker is not closed.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.hc.HealthCheck(ctx)
}

// do sends one request and decodes a 200 body into out. Any other status
// is translated into a domain error.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := c.hc.NewRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(ctx, req)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}
	if err != nil {
		if resp != nil {
			return translateProblem(resp)
		}
		logging.FromContextOr(ctx, c.logger).ErrorContext(ctx, "host request failed",
			slog.String("method", method),
			slog.String("path", path),
			logging.Err(err),
		)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrUnavailable, err)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return translateProblem(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body", logging.Err(err))
	}
}
