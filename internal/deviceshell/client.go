package deviceshell

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/kbdware/pocket-guard/go-monitor/gen/deviceshell"
	"github.com/kbdware/pocket-guard/go-monitor/internal/episode"
)

// #endregion imports

// #region types

// Sample is one sensor reading delivered by the shell.
type Sample struct {
	Kind              episode.Kind
	ProximityDistance float64
	ProximityMaxRange float64
	Lux               float64
	At                time.Time
}

// Caps reports which sensors the device actually has. A missing sensor
// permanently disables the matching detector for the process lifetime.
type Caps struct {
	HasProximity bool
	HasLight     bool
}

// #endregion types

// #region client-struct

// Client wraps the gRPC connection to the device-shell service. Sample
// subscriptions are tracked per kind so register and unregister stay
// idempotent.
type Client struct {
	conn   *grpc.ClientConn
	client pb.DeviceShellClient

	mu      sync.Mutex
	streams map[episode.Kind]context.CancelFunc
}

// NewClient connects to the device-shell gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:    conn,
		client:  pb.NewDeviceShellClient(conn),
		streams: make(map[episode.Kind]context.CancelFunc),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.DeviceShellClient) *Client {
	return &Client{
		client:  svc,
		streams: make(map[episode.Kind]context.CancelFunc),
	}
}

// Close cancels all sample streams and shuts down the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	for kind, cancel := range c.streams {
		cancel()
		delete(c.streams, kind)
	}
	c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion client-struct

// #region subscribe

// Subscribe opens a sample stream for one sensor kind and delivers each
// sample to handler on a dedicated goroutine, preserving per-kind ordering.
// A no-op if the kind is already subscribed.
func (c *Client) Subscribe(ctx context.Context, kind episode.Kind, handler func(Sample)) error {
	c.mu.Lock()
	if _, ok := c.streams[kind]; ok {
		c.mu.Unlock()
		return nil
	}
	streamCtx, cancel := context.WithCancel(ctx)
	c.streams[kind] = cancel
	c.mu.Unlock()

	stream, err := c.client.StreamSamples(streamCtx, &pb.StreamSamplesRequest{Kind: string(kind)})
	if err != nil {
		c.dropStream(kind)
		cancel()
		return fmt.Errorf("stream samples %s: %w", kind, err)
	}

	go func() {
		defer c.dropStream(kind)
		for {
			msg, err := stream.Recv()
			if err != nil {
				if !errors.Is(err, io.EOF) && streamCtx.Err() == nil {
					log.Printf("[SHELL] %s stream ended: %v", kind, err)
				}
				return
			}
			handler(Sample{
				Kind:              episode.Kind(msg.Kind),
				ProximityDistance: msg.ProximityDistance,
				ProximityMaxRange: msg.ProximityMaxRange,
				Lux:               msg.Lux,
				At:                time.UnixMilli(msg.UnixMillis),
			})
		}
	}()
	return nil
}

// Unsubscribe cancels the sample stream for one kind. A no-op if the kind is
// not subscribed.
func (c *Client) Unsubscribe(kind episode.Kind) {
	c.mu.Lock()
	cancel, ok := c.streams[kind]
	if ok {
		delete(c.streams, kind)
	}
	c.mu.Unlock()
	if ok {
		cancel()
	}
}

// Subscribed reports whether a stream for kind is active.
func (c *Client) Subscribed(kind episode.Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.streams[kind]
	return ok
}

func (c *Client) dropStream(kind episode.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.streams, kind)
}

// #endregion subscribe

// #region power

// IsInteractive reports whether the display is interactive right now.
func (c *Client) IsInteractive(ctx context.Context) (bool, error) {
	status, err := c.client.QueryPower(ctx, &pb.QueryPowerRequest{})
	if err != nil {
		return false, fmt.Errorf("query power: %w", err)
	}
	return status.Interactive, nil
}

// IsLocked reports whether the device is locked right now.
func (c *Client) IsLocked(ctx context.Context) (bool, error) {
	status, err := c.client.QueryPower(ctx, &pb.QueryPowerRequest{})
	if err != nil {
		return false, fmt.Errorf("query power: %w", err)
	}
	return status.Locked, nil
}

// #endregion power

// #region feature

// FeatureEnabled reports whether the always-on display is enabled.
func (c *Client) FeatureEnabled(ctx context.Context) (bool, error) {
	state, err := c.client.FeatureStatus(ctx, &pb.FeatureStatusRequest{})
	if err != nil {
		return false, fmt.Errorf("feature status: %w", err)
	}
	return state.Enabled, nil
}

// Disable turns the always-on display setting off.
func (c *Client) Disable(ctx context.Context) error {
	return c.setFeature(ctx, false)
}

// Enable turns the always-on display setting on.
func (c *Client) Enable(ctx context.Context) error {
	return c.setFeature(ctx, true)
}

func (c *Client) setFeature(ctx context.Context, enabled bool) error {
	reply, err := c.client.SetFeature(ctx, &pb.SetFeatureRequest{Enabled: enabled})
	if err != nil {
		return fmt.Errorf("set feature: %w", err)
	}
	if !reply.Ok {
		return fmt.Errorf("shell declined feature change: %s", reply.Detail)
	}
	return nil
}

// ForceRefresh re-applies the current feature state to the live display.
func (c *Client) ForceRefresh(ctx context.Context) error {
	reply, err := c.client.ForceRefresh(ctx, &pb.ForceRefreshRequest{})
	if err != nil {
		return fmt.Errorf("force refresh: %w", err)
	}
	if !reply.Ok {
		return fmt.Errorf("shell declined refresh: %s", reply.Detail)
	}
	return nil
}

// #endregion feature

// #region suppression

// SetSuppressed toggles the shell-side event observer's suppression flag.
func (c *Client) SetSuppressed(ctx context.Context, on bool) error {
	reply, err := c.client.SetEventSuppression(ctx, &pb.SetEventSuppressionRequest{Suppressed: on})
	if err != nil {
		return fmt.Errorf("set event suppression: %w", err)
	}
	if !reply.Ok {
		return fmt.Errorf("shell declined suppression change: %s", reply.Detail)
	}
	return nil
}

// #endregion suppression

// #region caps

// SensorCaps reports which sensors the device has.
func (c *Client) SensorCaps(ctx context.Context) (Caps, error) {
	reply, err := c.client.SensorCaps(ctx, &pb.SensorCapsRequest{})
	if err != nil {
		return Caps{}, fmt.Errorf("sensor caps: %w", err)
	}
	return Caps{HasProximity: reply.HasProximity, HasLight: reply.HasLight}, nil
}

// #endregion caps
