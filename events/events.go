package events

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
)

const TypeOrderSubmitted = "order.submitted"

// OrderEvent is published after an order commits.
type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   int64           `json:"orderId,string"`
	Number    string          `json:"number"`
	UserID    int64           `json:"userId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    int             `json:"status"`
	OrderTime time.Time       `json:"orderTime"`
}

// Publisher delivers one event to a sink.
type Publisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
}

// DefaultPublishTimeout bounds one delivery to one publisher.
const DefaultPublishTimeout = 5 * time.Second

// Notifier fans an event out to every publisher in the background. Failures
// are logged and never returned; the order is already committed by the time
// it runs.
type Notifier struct {
	pubs    []Publisher
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewNotifier(pubs ...Publisher) *Notifier {
	n := &Notifier{timeout: DefaultPublishTimeout}
	for _, p := range pubs {
		if p != nil {
			n.pubs = append(n.pubs, p)
		}
	}
	return n
}

// OrderSubmitted returns immediately. Each publisher gets its own goroutine
// and a deadline detached from the caller's request.
func (n *Notifier) OrderSubmitted(ctx context.Context, ev OrderEvent) {
	if n == nil {
		return
	}
	ev.Type = TypeOrderSubmitted
	base := context.WithoutCancel(ctx)
	for _, p := range n.pubs {
		n.wg.Add(1)
		go func(p Publisher) {
			defer n.wg.Done()
			pctx, cancel := context.WithTimeout(base, n.timeout)
			defer cancel()
			if err := p.Publish(pctx, ev); err != nil {
				logger.S().Warnw("order notification failed", "order", ev.Number, "err", err)
			}
		}(p)
	}
}

// Wait blocks until every in-flight delivery has finished.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}
