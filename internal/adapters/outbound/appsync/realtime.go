package appsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-snippet-canvas/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vektah/gqlparser/v2/ast"
)

const realtimeSubprotocol = "graphql-ws"

// Message types of the AppSync realtime protocol.
const (
	msgConnectionInit  = "connection_init"
	msgConnectionAck   = "connection_ack"
	msgConnectionError = "connection_error"
	msgKeepAlive       = "ka"
	msgStart           = "start"
	msgStartAck        = "start_ack"
	msgData            = "data"
	msgError           = "error"
	msgComplete        = "complete"
	msgStop            = "stop"
)

// defaultKeepAliveTimeout is used when connection_ack carries no timeout.
const defaultKeepAliveTimeout = 5 * time.Minute

type message struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type startPayload struct {
	Data       string          `json:"data"`
	Extensions startExtensions `json:"extensions"`
}

type startExtensions struct {
	Authorization map[string]string `json:"authorization"`
}

type ackPayload struct {
	ConnectionTimeoutMs int `json:"connectionTimeoutMs"`
}

type dataPayload struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []domain.GraphQLError      `json:"errors,omitempty"`
}

var _ domain.GraphQLSubscriber = RealtimeSubscriber{}

// RealtimeSubscriber opens GraphQL subscriptions over the AppSync realtime websocket.
// Every subscription uses its own connection.
type RealtimeSubscriber struct {
	realtimeURL string
	host        string
	auth        Authorizer
	operations  Catalogue
	dialer      *websocket.Dialer
	timeout     time.Duration
	logger      *log.Logger
}

// NewRealtimeSubscriber creates a subscriber. graphqlURL is only used to sign the handshake.
func NewRealtimeSubscriber(
	realtimeURL string,
	graphqlURL string,
	auth Authorizer,
	operations Catalogue,
	timeout time.Duration,
	logger *log.Logger,
) (RealtimeSubscriber, error) {
	u, err := url.Parse(graphqlURL)
	if err != nil {
		return RealtimeSubscriber{}, fmt.Errorf("invalid GraphQL URL: %w", err)
	}
	return RealtimeSubscriber{
		realtimeURL: realtimeURL,
		host:        u.Host,
		auth:        auth,
		operations:  operations,
		dialer: &websocket.Dialer{
			Subprotocols:     []string{realtimeSubprotocol},
			HandshakeTimeout: timeout,
		},
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Open validates the operation and prepares the start message. The connection
// is dialed when the returned observable is subscribed and lives at most as long as ctx.
func (s RealtimeSubscriber) Open(ctx context.Context, operationName string, variables map[string]any) (domain.Observable, error) {
	op, err := s.operations.Lookup(operationName)
	if err != nil {
		return nil, err
	}
	if op.Kind != ast.Subscription {
		return nil, fmt.Errorf("operation %s is not a subscription", operationName)
	}

	data, err := json.Marshal(request{Query: op.Document, OperationName: op.Name, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal subscription: %w", err)
	}

	return &realtimeObservable{
		ctx:        ctx,
		subscriber: s,
		rootField:  op.RootField,
		data:       string(data),
	}, nil
}

type realtimeObservable struct {
	ctx        context.Context
	subscriber RealtimeSubscriber
	rootField  string
	data       string
}

// Subscribe starts the connection in the background and returns immediately.
func (o *realtimeObservable) Subscribe(observer domain.SubscriptionObserver) domain.Subscription {
	ctx, cancel := context.WithCancel(o.ctx)
	sub := &realtimeSubscription{
		id:       uuid.NewString(),
		observer: observer,
		logger:   o.subscriber.logger,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go sub.run(ctx, o)
	return sub
}

// realtimeSubscription is one subscription on its own websocket.
type realtimeSubscription struct {
	id       string
	observer domain.SubscriptionObserver
	logger   *log.Logger
	cancel   context.CancelFunc
	done     chan struct{}

	mu      sync.Mutex
	conn    *websocket.Conn
	stopped bool

	writeMu sync.Mutex
}

// Unsubscribe sends stop and closes the connection. It is idempotent and no
// observer callback starts after it returns.
func (s *realtimeSubscription) Unsubscribe() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	conn := s.conn
	s.mu.Unlock()

	if conn != nil {
		_ = s.write(conn, message{ID: s.id, Type: msgStop})
		_ = conn.Close()
	}
	s.cancel()
}

func (s *realtimeSubscription) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func (s *realtimeSubscription) write(conn *websocket.Conn, msg message) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteJSON(msg)
}

func (s *realtimeSubscription) run(ctx context.Context, o *realtimeObservable) {
	defer close(s.done)

	conn, err := s.connect(ctx, o.subscriber)
	if err != nil {
		if ctx.Err() == nil {
			s.fail(err)
		}
		return
	}
	defer conn.Close() //nolint:errcheck

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.conn = conn
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.Unsubscribe()
		case <-s.done:
		}
	}()

	keepAlive, err := s.handshake(conn, o.subscriber.timeout)
	if err != nil {
		s.fail(err)
		return
	}

	start, err := json.Marshal(startPayload{
		Data: o.data,
		Extensions: startExtensions{
			Authorization: o.subscriber.auth.Headers(o.subscriber.host),
		},
	})
	if err != nil {
		s.fail(fmt.Errorf("marshal start: %w", err))
		return
	}
	if err := s.write(conn, message{ID: s.id, Type: msgStart, Payload: start}); err != nil {
		s.fail(fmt.Errorf("send start: %w", err))
		return
	}

	s.readLoop(conn, o.rootField, keepAlive)
}

func (s *realtimeSubscription) connect(ctx context.Context, sub RealtimeSubscriber) (*websocket.Conn, error) {
	connectURL, err := sub.auth.ConnectURL(sub.realtimeURL, sub.host)
	if err != nil {
		return nil, err
	}

	conn, resp, err := sub.dialer.DialContext(ctx, connectURL, nil)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("realtime dial: %w: %s", err, resp.Status)
		}
		return nil, fmt.Errorf("realtime dial: %w", err)
	}
	return conn, nil
}

// handshake sends connection_init and waits for connection_ack. It returns
// the keep-alive timeout announced by the server.
func (s *realtimeSubscription) handshake(conn *websocket.Conn, timeout time.Duration) (time.Duration, error) {
	if err := s.write(conn, message{Type: msgConnectionInit}); err != nil {
		return 0, fmt.Errorf("send connection_init: %w", err)
	}
	if timeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(timeout))
	}

	for {
		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			return 0, fmt.Errorf("waiting for connection_ack: %w", err)
		}
		switch msg.Type {
		case msgConnectionAck:
			var ack ackPayload
			_ = json.Unmarshal(msg.Payload, &ack)
			if ack.ConnectionTimeoutMs > 0 {
				return time.Duration(ack.ConnectionTimeoutMs) * time.Millisecond, nil
			}
			return defaultKeepAliveTimeout, nil
		case msgConnectionError, msgError:
			return 0, payloadError(msg.Payload)
		case msgKeepAlive:
		default:
			return 0, fmt.Errorf("unexpected %q before connection_ack", msg.Type)
		}
	}
}

func (s *realtimeSubscription) readLoop(conn *websocket.Conn, rootField string, keepAlive time.Duration) {
	for {
		_ = conn.SetReadDeadline(time.Now().Add(keepAlive))

		var msg message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				s.complete()
				return
			}
			s.fail(fmt.Errorf("realtime read: %w", err))
			return
		}
		if msg.ID != "" && msg.ID != s.id {
			continue
		}

		switch msg.Type {
		case msgKeepAlive, msgStartAck:
		case msgData:
			var payload dataPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				s.fail(fmt.Errorf("decode data: %w", err))
				return
			}
			if len(payload.Errors) > 0 {
				s.fail(&domain.GraphQLResponseError{Errors: payload.Errors})
				return
			}
			if raw, ok := payload.Data[rootField]; ok && !s.isStopped() && s.observer.Next != nil {
				s.observer.Next(raw)
			}
		case msgError, msgConnectionError:
			s.fail(payloadError(msg.Payload))
			return
		case msgComplete:
			s.complete()
			return
		}
	}
}

func (s *realtimeSubscription) fail(err error) {
	if s.isStopped() {
		return
	}
	if s.logger != nil {
		s.logger.Printf("RealtimeSubscriber: subscription %s failed: %v", s.id, err)
	}
	if s.observer.Error != nil {
		s.observer.Error(err)
	}
}

func (s *realtimeSubscription) complete() {
	if s.isStopped() {
		return
	}
	if s.observer.Complete != nil {
		s.observer.Complete()
	}
}

// payloadError decodes the errors list AppSync sends with error and connection_error messages.
func payloadError(raw json.RawMessage) error {
	var payload struct {
		Errors []domain.GraphQLError `json:"errors"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Errors) == 0 {
		return errors.New("realtime: subscription failed")
	}
	return &domain.GraphQLResponseError{Errors: payload.Errors}
}
