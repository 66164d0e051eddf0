package payment

import (
	"context"
	"math/rand"
	"net/url"
	"strconv"
	"strings"

	"campus-parking/internal/data/entity"

	"go.uber.org/zap"
)

const (
	DefaultGatewayURL  = "http://localhost:8080/simulated-payment.html"
	DefaultSuccessRate = 0.99
)

// Simulator stands in for a real gateway: a draw below SuccessRate succeeds.
type Simulator struct {
	gatewayURL  string
	successRate float64
	draw        func() float64
	log         *zap.Logger
}

type SimulatorOption func(*Simulator)

// WithDraw replaces the random source; draw must return values in [0, 1).
func WithDraw(draw func() float64) SimulatorOption {
	return func(s *Simulator) {
		s.draw = draw
	}
}

func NewSimulator(gatewayURL string, successRate float64, log *zap.Logger, opts ...SimulatorOption) *Simulator {
	if gatewayURL == "" {
		gatewayURL = DefaultGatewayURL
	}

	s := &Simulator{
		gatewayURL:  gatewayURL,
		successRate: successRate,
		draw:        rand.Float64,
		log:         log.With(zap.String("provider", "simulator")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulator) Initiate(ctx context.Context, txn *entity.Transaction) (string, error) {
	s.log.Info("Initiating payment",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("slot_id", txn.SlotID),
		zap.Float64("amount", txn.AmountPaid),
		zap.Int("duration_hours", txn.DurationHours),
	)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if s.draw() >= s.successRate {
		s.log.Warn("Payment initiation declined", zap.String("transaction_id", txn.TransactionID))
		return "", ErrDeclined
	}

	return RedirectURL(s.gatewayURL, txn), nil
}

// RedirectURL builds the gateway link for txn. The result only depends on its inputs.
func RedirectURL(gatewayURL string, txn *entity.Transaction) string {
	sep := "?"
	if strings.Contains(gatewayURL, "?") {
		sep = "&"
	}

	return gatewayURL + sep +
		"txnId=" + url.QueryEscape(txn.TransactionID) +
		"&amount=" + strconv.FormatFloat(txn.AmountPaid, 'f', 2, 64) +
		"&slot=" + url.QueryEscape(txn.SlotID)
}
