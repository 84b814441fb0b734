package bus

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisConfig describes the Redis-backed bus connection. Fields can be
// populated from environment variables via github.com/caarlos0/env.
type RedisConfig struct {
	ConnectionURL  string        `env:"IMMEDIATE_REDIS_URL" envDefault:"redis://localhost:6379/0"` // Format: "redis://:password@localhost:6379/0"
	Channel        string        `env:"IMMEDIATE_REDIS_CHANNEL" envDefault:"immediate:signal"`     // Pub/sub channel shared by all bus instances.
	RetryAttempts  int           `env:"IMMEDIATE_REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // Connection attempts before giving up.
	RetryInterval  time.Duration `env:"IMMEDIATE_REDIS_RETRY_INTERVAL" envDefault:"5s"`            // Delay between attempts.
	ConnectTimeout time.Duration `env:"IMMEDIATE_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // Overall connect deadline.
}

// redisEnvelope is the wire format on the pub/sub channel.
type redisEnvelope struct {
	Origin string `json:"origin"`
	Data   string `json:"data"`
}

// RedisBus extends the broadcast medium across processes via Redis pub/sub.
// Delivery is asynchronous by construction (messages arrive on the pub/sub
// reader goroutine), so the bus qualifies as a scheduling trigger. The same
// filtering contract applies: consumers drop messages whose origin or
// payload convention they do not recognise.
type RedisBus struct {
	client  *redis.Client
	channel string
	origin  string
	pubsub  *redis.PubSub
	wg      sync.WaitGroup

	mu     sync.RWMutex
	subs   map[uint64]Handler
	nextID uint64
	closed bool
}

// DialRedis connects to Redis using cfg, retrying per the config, and
// returns a bus publishing on cfg.Channel. The returned bus owns the client
// and closes it on Close.
func DialRedis(ctx context.Context, cfg RedisConfig) (*RedisBus, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for i := 0; i < max(cfg.RetryAttempts, 1); i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisBus(client, cfg.Channel), nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// NewRedisBus wraps an already-connected client. The bus takes ownership of
// the client and closes it on Close.
func NewRedisBus(client *redis.Client, channel string) *RedisBus {
	b := &RedisBus{
		client:  client,
		channel: channel,
		origin:  uuid.New().String(),
		subs:    make(map[uint64]Handler),
	}

	b.pubsub = client.Subscribe(context.Background(), channel)

	b.wg.Add(1)
	go b.receive()

	return b
}

// Origin returns the identity stamped on messages published by this
// instance.
func (b *RedisBus) Origin() string { return b.origin }

// Publish sends data on the shared channel. Every RedisBus subscribed to
// the same channel — in this process or another — receives it.
func (b *RedisBus) Publish(ctx context.Context, data string) error {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return ErrBusClosed
	}

	payload, err := json.Marshal(redisEnvelope{Origin: b.origin, Data: data})
	if err != nil {
		return err
	}

	return b.client.Publish(ctx, b.channel, payload).Err()
}

// Subscribe installs h as a persistent handler. The returned function
// removes the handler and is safe to call more than once.
func (b *RedisBus) Subscribe(h Handler) (func(), error) {
	if h == nil {
		return nil, ErrNilHandler
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}, nil
}

// Close stops the reader goroutine and closes the underlying client.
// Close is idempotent.
func (b *RedisBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	err := b.pubsub.Close()
	b.wg.Wait()
	if cerr := b.client.Close(); err == nil {
		err = cerr
	}
	return err
}

func (b *RedisBus) receive() {
	defer b.wg.Done()

	// Channel() is closed by pubsub.Close, which ends the loop.
	for msg := range b.pubsub.Channel() {
		var env redisEnvelope
		if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
			// Foreign payload on the shared channel: drop silently.
			continue
		}

		b.mu.RLock()
		handlers := make([]Handler, 0, len(b.subs))
		for _, h := range b.subs {
			handlers = append(handlers, h)
		}
		b.mu.RUnlock()

		m := Message{Origin: env.Origin, Data: env.Data}
		for _, h := range handlers {
			h(m)
		}
	}
}
