// Package hal layers a polling service over the raw driver: it paces reads
// at the sensor's conversion interval, retries the transient failure kinds
// with backoff, and fans validated samples out on a channel. The retry
// policy lives here on purpose; the driver itself never retries.
package hal

import (
	"context"
	"time"

	dht22 "dht22-go"
	"dht22-go/x/timex"
)

// Sample is one validated reading with its producer timestamp.
type Sample struct {
	Reading dht22.Reading
	TsMs    int64
}

// Config centralises timings and limits. All fields are optional.
type Config struct {
	// Interval between poll cycles. Defaults to 2s, the minimum the sensor
	// needs between reads for fresh data; shorter values are accepted but
	// risk stale or erratic readings.
	Interval time.Duration
	// MaxRetries bounds extra read attempts per cycle after a transient
	// failure (timeout or checksum). Default 3.
	MaxRetries int
	// RetryBackoff is the wait before a retry. Default 2s, keeping retries
	// inside the sensor's conversion interval contract.
	RetryBackoff time.Duration
	// QueueSize buffers the sample and error channels. Default 8.
	QueueSize int
}

// Poller drives one Device on a fixed interval.
type Poller struct {
	dev  *dht22.Device
	cfg  Config
	out  chan Sample
	errs chan error
}

// New creates a Poller. Defaults are applied here so a zero Config is usable.
func New(dev *dht22.Device, cfg Config) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = 2 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = 2 * time.Second
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 8
	}
	return &Poller{
		dev:  dev,
		cfg:  cfg,
		out:  make(chan Sample, cfg.QueueSize),
		errs: make(chan error, cfg.QueueSize),
	}
}

// Samples delivers validated readings. Emission never blocks the poll loop:
// when the buffer is full the oldest sample is dropped for the new one.
func (p *Poller) Samples() <-chan Sample { return p.out }

// Errors delivers the failures that survived the retry budget.
func (p *Poller) Errors() <-chan error { return p.errs }

// Start launches the poll loop; it stops when ctx is cancelled. The first
// poll happens one interval after Start, giving a freshly powered sensor
// time to settle.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		timer := time.NewTimer(p.cfg.Interval)
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			p.poll(ctx)
			resetTimer(timer, p.cfg.Interval)
		}
	}()
}

// poll runs one read cycle, retrying transient failures within the budget.
func (p *Poller) poll(ctx context.Context) {
	var err error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			if !sleepCtx(ctx, p.cfg.RetryBackoff) {
				return
			}
		}
		var r dht22.Reading
		r, err = p.dev.Read()
		if err == nil {
			p.emit(Sample{Reading: r, TsMs: timex.NowMs()})
			return
		}
		if !dht22.Retryable(err) {
			break
		}
	}
	select {
	case p.errs <- err:
	default:
	}
}

func (p *Poller) emit(s Sample) {
	select {
	case p.out <- s:
		return
	default:
	}
	// Full buffer: drop the oldest sample, then try once more.
	select {
	case <-p.out:
	default:
	}
	select {
	case p.out <- s:
	default:
	}
}

// sleepCtx waits for d unless ctx ends first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
