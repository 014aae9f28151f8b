// Package catalog holds the static desks of the laboratory: canned trading
// signals, the education track and the chart-widget parameter set.
package catalog

import (
	"context"
	"fmt"

	"tfxlab/internal/domain"
)

var signals = []domain.Signal{
	{
		ID: "SIG-001", Pair: "EUR/USD", Side: domain.SignalBuy, Timeframe: "M15",
		Confidence: 96, Strategy: "Intraday", Entry: "1.08450", TakeProfit: "1.09200",
		StopLoss: "1.08100", Note: "Price rejected daily demand zone.",
	},
	{
		ID: "SIG-002", Pair: "XAU/USD", Side: domain.SignalSell, Timeframe: "H1",
		Confidence: 94, Strategy: "Swing", Entry: "2724.50", TakeProfit: "2680.00",
		StopLoss: "2745.00", Note: "Strong bearish divergence on RSI.",
	},
	{
		ID: "SIG-003", Pair: "GBP/JPY", Side: domain.SignalBuy, Timeframe: "M5",
		Confidence: 98, Strategy: "Scalp", Entry: "192.100", TakeProfit: "193.500",
		StopLoss: "191.800", Note: "Institutional buy order block confirmed.",
	},
}

// Signals returns the canned signal list.
func Signals() []domain.Signal {
	out := make([]domain.Signal, len(signals))
	copy(out, signals)
	return out
}

// SignalByID looks up one signal.
func SignalByID(id string) (domain.Signal, error) {
	for _, s := range signals {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Signal{}, domain.ErrSignalNotFound
}

// FormatSignalEntry renders the terminal-sync line for a signal, e.g.
// "EUR/USD BUY @ 1.08450".
func FormatSignalEntry(s domain.Signal) string {
	return fmt.Sprintf("%s %s @ %s", s.Pair, s.Side, s.Entry)
}

// ClipboardSink receives a formatted entry line. Delivery is fire-and-forget;
// implementations must not fail the caller.
type ClipboardSink interface {
	Write(ctx context.Context, text string)
}
